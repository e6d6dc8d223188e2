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

type UsersRepo struct {
	MongoCollection *mongo.Collection
}

func GetUsersRepo(client *mongo.Client) *UsersRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("USERS_COLLECTION", "users")
	return &UsersRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *UsersRepo) CreateUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if user.UserID == "" || user.Email == "" {
		utils.TrackError("database", "invalid_user_data")
		return errors.New("user ID and email are required")
	}

	existing, err := r.FindByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		utils.TrackError("database", "duplicate_email")
		return errors.New("email already registered")
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if _, err := r.MongoCollection.InsertOne(ctx, user); err != nil {
		utils.TrackError("database", "user_creation_failed")
		return err
	}
	return nil
}

func (r *UsersRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_fetch_failed")
		return nil, err
	}
	return &user, nil
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_fetch_failed")
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the account document. Habit and log cascades are the
// service layer's responsibility.
func (r *UsersRepo) DeleteUser(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("delete", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "user_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "user_not_found")
		return errors.New("user not found")
	}
	return nil
}
