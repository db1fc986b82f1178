package database

import (
	"context"
	"time"

	"github.com/dafahentra/stocks-dashboard/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongoClient connects to the optional watchlist store. Only called
// when a Mongo URI is configured; price data is never persisted.
func InitMongoClient(sysConfigs *config.SystemConfigs) (*mongo.Client, *mongo.Database) {
	clientOptions := options.Client().ApplyURI(sysConfigs.Config.MongoUri)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal().Msgf("Failed to connect to MongoDB: %v", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Fatal().Msgf("Could not ping MongoDB: %v", err)
	}

	name := sysConfigs.Config.MongoDatabase
	log.Info().Msgf("Connected to MongoDB (%s)", name)

	return client, client.Database(name)
}
