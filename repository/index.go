package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"main/utils"
)

// SetupIndexes creates the indexes every query path relies on. Safe to call
// on startup repeatedly: Mongo treats identical index specs as no-ops.
func SetupIndexes(client *mongo.Client) error {
	dbName := os.Getenv("MONGO_DB")
	db := client.Database(dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	habitIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "is_active", Value: 1}},
		},
	}
	if _, err := db.Collection(utils.GetEnvAsString("HABITS_COLLECTION", "habits")).Indexes().CreateMany(ctx, habitIndexes); err != nil {
		return fmt.Errorf("failed to create habit indexes: %w", err)
	}

	logIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "habit_id", Value: 1}, {Key: "date", Value: 1}},
		},
	}
	if _, err := db.Collection(utils.GetEnvAsString("LOGS_COLLECTION", "habit_logs")).Indexes().CreateMany(ctx, logIndexes); err != nil {
		return fmt.Errorf("failed to create habit log indexes: %w", err)
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(utils.GetEnvAsString("USERS_COLLECTION", "users")).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "is_active", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}
	if _, err := db.Collection(utils.GetEnvAsString("SESSIONS_COLLECTION", "sessions")).Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}

	settingsIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(utils.GetEnvAsString("SETTINGS_COLLECTION", "settings")).Indexes().CreateMany(ctx, settingsIndexes); err != nil {
		return fmt.Errorf("failed to create settings indexes: %w", err)
	}

	return nil
}
