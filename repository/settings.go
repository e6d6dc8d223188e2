package repository

import (
	"context"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"main/model"
	"main/utils"
)

type SettingsRepo struct {
	MongoCollection *mongo.Collection
}

func GetSettingsRepo(client *mongo.Client) *SettingsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("SETTINGS_COLLECTION", "settings")
	return &SettingsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// GetSettings returns the user's settings, falling back to defaults when
// none are stored yet.
func (r *SettingsRepo) GetSettings(ctx context.Context, userID string) (*model.AppSettings, error) {
	timer := utils.TrackDBOperation("find", "settings")
	defer timer.ObserveDuration()

	var settings model.AppSettings
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&settings)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return model.DefaultSettings(userID), nil
		}
		utils.TrackError("database", "settings_fetch_failed")
		return nil, err
	}
	return &settings, nil
}

// SaveSettings upserts the full settings document for a user.
func (r *SettingsRepo) SaveSettings(ctx context.Context, settings *model.AppSettings) error {
	timer := utils.TrackDBOperation("update", "settings")
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"theme":             settings.Theme,
			"notifications":     settings.Notifications,
			"success_threshold": settings.SuccessThreshold,
		},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.MongoCollection.UpdateOne(ctx, bson.M{"user_id": settings.UserID}, update, opts); err != nil {
		utils.TrackError("database", "settings_save_failed")
		return err
	}
	return nil
}

// DeleteSettings removes the stored document. Reads afterwards fall back to
// defaults, so a missing document is not an error.
func (r *SettingsRepo) DeleteSettings(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("delete", "settings")
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.DeleteOne(ctx, bson.M{"user_id": userID}); err != nil {
		utils.TrackError("database", "settings_delete_failed")
		return err
	}
	return nil
}
