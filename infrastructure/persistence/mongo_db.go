package persistence

import (
	"context"
	"fmt"
	"time"

	"finflix/domain/repository"
	"finflix/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	collectionUsers      = "users"
	collectionVideos     = "videos"
	collectionCreators   = "creators"
	collectionCategories = "categories"
	collectionPlaylists  = "playlists"
)

// NewMongoDb connects to MongoDB and verifies the connection.
func NewMongoDb(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the unique indexes the catalog and user store rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionCreators: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionCategories: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionPlaylists: {
			{Keys: bson.D{{Key: "user", Value: 1}}},
		},
	}
	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
		logger.GetLogger().WithField("collection", name).Debug("indexes ensured")
	}
	return nil
}

// NewRepositories builds the Mongo-backed repository set on db.
func NewRepositories(db *mongo.Database) *repository.Repositories {
	return &repository.Repositories{
		Users:      NewUserRepository(db),
		Videos:     NewVideoRepository(db),
		Creators:   NewCreatorRepository(db),
		Categories: NewCategoryRepository(db),
		Playlists:  NewPlaylistRepository(db),
	}
}
