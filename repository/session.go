package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"main/model"
	"main/services"
	"main/utils"
)

type SessionRepo struct {
	MongoCollection *mongo.Collection
}

func GetSessionRepo(client *mongo.Client) *SessionRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("SESSIONS_COLLECTION", "sessions")
	return &SessionRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *SessionRepo) CreateSession(session *model.Session) error {
	timer := utils.TrackDBOperation("insert", "sessions")
	defer timer.ObserveDuration()

	if session == nil {
		utils.TrackError("database", "nil_session")
		return fmt.Errorf("session cannot be nil")
	}
	if session.SessionID == "" || session.UserID == "" {
		utils.TrackError("database", "invalid_session_data")
		return fmt.Errorf("invalid session data: missing required fields")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.MongoCollection.InsertOne(ctx, session); err != nil {
		utils.TrackError("database", "session_creation_failed")
		return fmt.Errorf("failed to create session in database: %w", err)
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.SetSession(session); err != nil {
			utils.TrackError("cache", "session_cache_set_failed")
			log.Printf("Warning: Failed to cache session: %v", err)
		}
		if err := services.GlobalSessionCache.InvalidateUserSessions(session.UserID); err != nil {
			log.Printf("Warning: Failed to invalidate user session cache: %v", err)
		}
	}

	return nil
}

func (r *SessionRepo) GetSession(sessionID string) (*model.Session, error) {
	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	if sessionID == "" {
		return nil, fmt.Errorf("sessionID cannot be empty")
	}

	if services.GlobalSessionCache != nil {
		if session, err := services.GlobalSessionCache.GetSession(sessionID); err == nil && session != nil {
			utils.TrackCacheOperation("session", true)
			return session, nil
		}
		utils.TrackCacheOperation("session", false)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var session model.Session
	err := r.MongoCollection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "session_fetch_failed")
		return nil, fmt.Errorf("failed to fetch session from database: %w", err)
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.SetSession(&session); err != nil {
			log.Printf("Warning: Failed to cache session: %v", err)
		}
	}

	return &session, nil
}

func (r *SessionRepo) UpdateSession(session *model.Session) error {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"last_activity_at": time.Now(),
			"is_active":        session.IsActive,
			"expires_at":       session.ExpiresAt,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"session_id": session.SessionID}, update)
	if err != nil {
		utils.TrackError("database", "session_update_failed")
		return fmt.Errorf("failed to update session in database: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("session not found")
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.SetSession(session); err != nil {
			log.Printf("Warning: Failed to update session cache: %v", err)
		}
		if err := services.GlobalSessionCache.InvalidateUserSessions(session.UserID); err != nil {
			log.Printf("Warning: Failed to invalidate user session cache: %v", err)
		}
	}

	return nil
}

func (r *SessionRepo) DeleteSession(sessionID string) error {
	timer := utils.TrackDBOperation("delete", "sessions")
	defer timer.ObserveDuration()

	if sessionID == "" {
		return fmt.Errorf("sessionID cannot be empty")
	}

	session, err := r.GetSession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to fetch session for deletion: %w", err)
	}
	if session == nil {
		return fmt.Errorf("session not found")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		utils.TrackError("database", "session_deletion_failed")
		return fmt.Errorf("failed to delete session from database: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("session not found")
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.DeleteSession(sessionID); err != nil {
			log.Printf("Warning: Failed to delete session from cache: %v", err)
		}
		if err := services.GlobalSessionCache.InvalidateUserSessions(session.UserID); err != nil {
			log.Printf("Warning: Failed to invalidate user session cache: %v", err)
		}
	}

	return nil
}

func (r *SessionRepo) GetUserActiveSessions(userID string) ([]*model.Session, error) {
	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}

	if services.GlobalSessionCache != nil {
		if sessions, err := services.GlobalSessionCache.GetUserSessions(userID); err == nil && sessions != nil {
			utils.TrackCacheOperation("user_sessions", true)
			return sessions, nil
		}
		utils.TrackCacheOperation("user_sessions", false)
	}

	return r.fetchAndCacheActiveSessions(userID)
}

func (r *SessionRepo) fetchAndCacheActiveSessions(userID string) ([]*model.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"last_activity_at": -1})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{
		"user_id":    userID,
		"is_active":  true,
		"expires_at": bson.M{"$gt": time.Now()},
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []*model.Session
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.CacheUserSessions(userID, sessions); err != nil {
			log.Printf("Warning: Failed to cache user sessions: %v", err)
		}
	}

	return sessions, nil
}

func (r *SessionRepo) EndAllUserSessions(userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"is_active":        false,
			"last_activity_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateMany(ctx, bson.M{"user_id": userID, "is_active": true}, update)
	if err != nil {
		return fmt.Errorf("failed to end user sessions: %w", err)
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.InvalidateUserSessions(userID); err != nil {
			log.Printf("Warning: Failed to invalidate user session cache: %v", err)
		}
	}

	log.Printf("Ended %d active sessions for user %s", result.ModifiedCount, userID)
	return nil
}

func (r *SessionRepo) DeleteUserSessions(userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete user sessions: %w", err)
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.InvalidateUserSessions(userID); err != nil {
			log.Printf("Warning: Failed to invalidate user session cache: %v", err)
		}
	}

	log.Printf("Deleted %d sessions for user %s", result.DeletedCount, userID)
	return nil
}

// EndLeastActiveSession enforces the per-user session cap by retiring the
// session idle the longest.
func (r *SessionRepo) EndLeastActiveSession(userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	sessions, err := r.GetUserActiveSessions(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch active sessions: %w", err)
	}
	if len(sessions) == 0 {
		return fmt.Errorf("no active sessions found")
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LastActivityAt.Before(sessions[j].LastActivityAt)
	})
	leastActive := sessions[0]

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"is_active":        false,
			"last_activity_at": time.Now(),
		},
	}
	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"session_id": leastActive.SessionID}, update)
	if err != nil {
		return fmt.Errorf("failed to end least active session: %w", err)
	}
	if result.ModifiedCount == 0 {
		return fmt.Errorf("failed to end session: session not found")
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.DeleteSession(leastActive.SessionID); err != nil {
			log.Printf("Warning: Failed to delete session from cache: %v", err)
		}
		if err := services.GlobalSessionCache.InvalidateUserSessions(userID); err != nil {
			log.Printf("Warning: Failed to invalidate user session cache: %v", err)
		}
	}

	return nil
}

func (r *SessionRepo) CountActiveSessions(userID string) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("userID cannot be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id":    userID,
		"is_active":  true,
		"expires_at": bson.M{"$gt": time.Now()},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count active sessions: %w", err)
	}
	return int(count), nil
}
