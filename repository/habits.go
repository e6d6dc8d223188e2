package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"main/model"
	"main/utils"
)

type HabitsRepo struct {
	MongoCollection *mongo.Collection
}

func GetHabitsRepo(client *mongo.Client) *HabitsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("HABITS_COLLECTION", "habits")
	return &HabitsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateHabit inserts a new habit after enforcing the goal invariants.
func (r *HabitsRepo) CreateHabit(ctx context.Context, habit *model.Habit) error {
	timer := utils.TrackDBOperation("insert", "habits")
	defer timer.ObserveDuration()

	if habit.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}
	if habit.GoalAmount <= 0 {
		utils.TrackError("database", "invalid_goal_amount")
		return errors.New("goal amount must be positive")
	}
	if habit.GoalPeriodDays < 1 {
		utils.TrackError("database", "invalid_goal_period_days")
		return errors.New("goal period days must be at least 1")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, habit); err != nil {
		utils.TrackError("database", "habit_creation_failed")
		return err
	}
	return nil
}

// GetUserHabits returns every habit a user owns, active or not.
func (r *HabitsRepo) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var habits []*model.Habit
	if err = cursor.All(ctx, &habits); err != nil {
		utils.TrackError("database", "habit_decode_failed")
		return nil, err
	}
	return habits, nil
}

// GetActiveHabits returns only the habits included in aggregations.
func (r *HabitsRepo) GetActiveHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID, "is_active": true})
	if err != nil {
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var habits []*model.Habit
	if err = cursor.All(ctx, &habits); err != nil {
		utils.TrackError("database", "habit_decode_failed")
		return nil, err
	}
	return habits, nil
}

func (r *HabitsRepo) GetHabitByID(ctx context.Context, habitID, userID string) (*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	var habit model.Habit
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": habitID, "user_id": userID}).Decode(&habit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("habit not found")
		}
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	return &habit, nil
}

// UpdateHabit rewrites the mutable habit fields. Identity and creation time
// never change.
func (r *HabitsRepo) UpdateHabit(ctx context.Context, habitID, userID string, updates *model.Habit) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	if updates.GoalAmount <= 0 {
		utils.TrackError("database", "invalid_goal_amount")
		return errors.New("goal amount must be positive")
	}
	if updates.GoalPeriodDays < 1 {
		utils.TrackError("database", "invalid_goal_period_days")
		return errors.New("goal period days must be at least 1")
	}

	update := bson.M{
		"$set": bson.M{
			"name":             updates.Name,
			"unit":             updates.Unit,
			"category":         updates.Category,
			"goal_amount":      updates.GoalAmount,
			"goal_period":      updates.GoalPeriod,
			"goal_period_days": updates.GoalPeriodDays,
			"color":            updates.Color,
			"updated_at":       time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": habitID, "user_id": userID}, update)
	if err != nil {
		utils.TrackError("database", "habit_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return errors.New("habit not found")
	}
	return nil
}

// SetActive toggles the soft activation flag. Deactivation keeps history.
func (r *HabitsRepo) SetActive(ctx context.Context, habitID, userID string, active bool) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{"is_active": active, "updated_at": time.Now()}}
	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": habitID, "user_id": userID}, update)
	if err != nil {
		utils.TrackError("database", "habit_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return errors.New("habit not found")
	}
	return nil
}

// DeleteHabit removes the habit document. Cascading log deletion is the
// service layer's job, via LogsRepo.DeleteHabitLogs.
func (r *HabitsRepo) DeleteHabit(ctx context.Context, habitID, userID string) error {
	timer := utils.TrackDBOperation("delete", "habits")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": habitID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "habit_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return errors.New("habit not found")
	}
	return nil
}

// CountHabits returns the number of habits a user owns.
func (r *HabitsRepo) CountHabits(ctx context.Context, userID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
