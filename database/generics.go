package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertGeneric applies an update document to the first match of filter,
// inserting when absent, and returns the resulting document.
func UpsertGeneric[T any](ctx context.Context, collection *mongo.Collection, filter bson.M, update bson.M) (*T, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var updatedDoc T
	err := collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updatedDoc)
	if err != nil {
		return nil, err
	}

	return &updatedDoc, nil
}

// UpdateGeneric is the non-inserting variant: it applies the update to the
// first match and returns the resulting document, or mongo.ErrNoDocuments
// when the filter matches nothing.
func UpdateGeneric[T any](ctx context.Context, collection *mongo.Collection, filter bson.M, update bson.M) (*T, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After)

	var updatedDoc T
	err := collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updatedDoc)
	if err != nil {
		return nil, err
	}

	return &updatedDoc, nil
}
