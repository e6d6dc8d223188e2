package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"main/model"
	"main/utils"
)

type LogsRepo struct {
	MongoCollection *mongo.Collection
}

func GetLogsRepo(client *mongo.Client) *LogsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("LOGS_COLLECTION", "habit_logs")
	return &LogsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateLog records one contribution. Several logs may target the same
// (habit, date); the stats engine sums them.
func (r *LogsRepo) CreateLog(ctx context.Context, log *model.HabitLog) error {
	timer := utils.TrackDBOperation("insert", "habit_logs")
	defer timer.ObserveDuration()

	if log.UserID == "" || log.HabitID == "" {
		utils.TrackError("database", "missing_log_owner")
		return errors.New("user ID and habit ID are required")
	}
	if log.Amount < 0 {
		utils.TrackError("database", "negative_log_amount")
		return errors.New("amount cannot be negative")
	}
	if !utils.ValidDate(log.Date) {
		utils.TrackError("database", "invalid_log_date")
		return errors.New("date must be YYYY-MM-DD")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, log); err != nil {
		utils.TrackError("database", "log_creation_failed")
		return err
	}
	return nil
}

// GetUserLogs returns the full log history for a user, ordered by date then
// creation time so same-day entries display in logging order.
func (r *LogsRepo) GetUserLogs(ctx context.Context, userID string) ([]*model.HabitLog, error) {
	timer := utils.TrackDBOperation("find", "habit_logs")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "log_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*model.HabitLog
	if err = cursor.All(ctx, &logs); err != nil {
		utils.TrackError("database", "log_decode_failed")
		return nil, err
	}
	return logs, nil
}

func (r *LogsRepo) GetHabitLogs(ctx context.Context, habitID, userID string) ([]*model.HabitLog, error) {
	timer := utils.TrackDBOperation("find", "habit_logs")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID, "habit_id": habitID}, opts)
	if err != nil {
		utils.TrackError("database", "log_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*model.HabitLog
	if err = cursor.All(ctx, &logs); err != nil {
		utils.TrackError("database", "log_decode_failed")
		return nil, err
	}
	return logs, nil
}

// GetLogsByDateRange returns a user's logs with dates inside the inclusive
// [start, end] window, optionally narrowed to one habit.
func (r *LogsRepo) GetLogsByDateRange(ctx context.Context, userID, habitID, start, end string) ([]*model.HabitLog, error) {
	timer := utils.TrackDBOperation("find", "habit_logs")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": start, "$lte": end},
	}
	if habitID != "" {
		filter["habit_id"] = habitID
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "log_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*model.HabitLog
	if err = cursor.All(ctx, &logs); err != nil {
		utils.TrackError("database", "log_decode_failed")
		return nil, err
	}
	return logs, nil
}

func (r *LogsRepo) GetLogByID(ctx context.Context, logID, userID string) (*model.HabitLog, error) {
	timer := utils.TrackDBOperation("find", "habit_logs")
	defer timer.ObserveDuration()

	var log model.HabitLog
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": logID, "user_id": userID}).Decode(&log)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("log not found")
		}
		utils.TrackError("database", "log_fetch_failed")
		return nil, err
	}
	return &log, nil
}

// UpdateLog edits a log's amount and note. The date and owning habit stay
// fixed; correcting those is delete-and-recreate.
func (r *LogsRepo) UpdateLog(ctx context.Context, logID, userID string, amount float64, note string) error {
	timer := utils.TrackDBOperation("update", "habit_logs")
	defer timer.ObserveDuration()

	if amount < 0 {
		utils.TrackError("database", "negative_log_amount")
		return errors.New("amount cannot be negative")
	}

	update := bson.M{
		"$set": bson.M{
			"amount":     amount,
			"note":       note,
			"updated_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": logID, "user_id": userID}, update)
	if err != nil {
		utils.TrackError("database", "log_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "log_not_found")
		return errors.New("log not found")
	}
	return nil
}

func (r *LogsRepo) DeleteLog(ctx context.Context, logID, userID string) error {
	timer := utils.TrackDBOperation("delete", "habit_logs")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": logID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "log_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "log_not_found")
		return errors.New("log not found")
	}
	return nil
}

// DeleteHabitLogs removes every log owned by a habit, the cascade step of
// hard habit deletion.
func (r *LogsRepo) DeleteHabitLogs(ctx context.Context, habitID, userID string) (int, error) {
	timer := utils.TrackDBOperation("delete", "habit_logs")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID, "habit_id": habitID})
	if err != nil {
		utils.TrackError("database", "log_cascade_failed")
		return 0, err
	}
	return int(result.DeletedCount), nil
}
