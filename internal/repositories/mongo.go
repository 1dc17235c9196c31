package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	collUsers         = "users"
	collCarousel      = "carouselslides"
	collAnnouncements = "announcements"
	collEvents        = "events"
	collBlogs         = "blogs"
	collGallery       = "galleryimages"
	collExecutives    = "executives"
	collForums        = "forums"
	collThreads       = "forumthreads"
	collPosts         = "forumposts"
)

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the application relies on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	}
	if _, err := db.Collection(collUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	forumIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(collForums).Indexes().CreateMany(ctx, forumIndexes); err != nil {
		return fmt.Errorf("failed to create forum indexes: %w", err)
	}

	threadIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "forumId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	}
	if _, err := db.Collection(collThreads).Indexes().CreateMany(ctx, threadIndexes); err != nil {
		return fmt.Errorf("failed to create thread indexes: %w", err)
	}

	postIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "threadId", Value: 1}, {Key: "createdAt", Value: 1}},
		},
	}
	if _, err := db.Collection(collPosts).Indexes().CreateMany(ctx, postIndexes); err != nil {
		return fmt.Errorf("failed to create post indexes: %w", err)
	}

	return nil
}
