package repository

import (
	"context"
	"errors"
	"slices"

	"github.com/dafahentra/stocks-dashboard/customerrors"
	"github.com/dafahentra/stocks-dashboard/database"
	"github.com/dafahentra/stocks-dashboard/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type WatchlistRepository struct {
	collection *mongo.Collection
}

func NewWatchlistRepository(db *mongo.Database) *WatchlistRepository {
	return &WatchlistRepository{
		collection: db.Collection("watchlist_groups"),
	}
}

// AddSymbol upserts the group and adds the symbol to its set. The caller's
// current symbols ride along so the first write of a preset group stores the
// whole set instead of a one-symbol document.
func (r *WatchlistRepository) AddSymbol(ctx context.Context, group, symbol string, current []string) (*model.WatchGroup, error) {
	symbols := append(slices.Clone(current), symbol)
	return database.UpsertGeneric[model.WatchGroup](
		ctx,
		r.collection,
		bson.M{"_id": group},
		bson.M{"$addToSet": bson.M{"symbols": bson.M{"$each": symbols}}},
	)
}

// RemoveSymbol pulls the symbol from the group's set. Unknown groups are
// reported, never created.
func (r *WatchlistRepository) RemoveSymbol(ctx context.Context, group, symbol string) (*model.WatchGroup, error) {
	updated, err := database.UpdateGeneric[model.WatchGroup](
		ctx,
		r.collection,
		bson.M{"_id": group},
		bson.M{"$pull": bson.M{"symbols": symbol}},
	)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, customerrors.ErrWatchGroupNotFound
	}
	return updated, err
}

// ReplaceSymbols stores the full symbol set for a group, creating the
// document when missing. Used to persist the first edit of a preset group.
func (r *WatchlistRepository) ReplaceSymbols(ctx context.Context, group string, symbols []string) (*model.WatchGroup, error) {
	return database.UpsertGeneric[model.WatchGroup](
		ctx,
		r.collection,
		bson.M{"_id": group},
		bson.M{"$set": bson.M{"symbols": symbols}},
	)
}

func (r *WatchlistRepository) FindAll(ctx context.Context) ([]model.WatchGroup, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []model.WatchGroup
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	if groups == nil {
		return []model.WatchGroup{}, nil
	}
	return groups, nil
}
