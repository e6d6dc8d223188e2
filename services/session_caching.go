package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"main/model"
	"main/utils"
)

// SessionCache is a Redis-backed read-through cache in front of the session
// collection. Entries expire with the session they mirror.
type SessionCache struct {
	client *redis.Client
}

// GlobalSessionCache is nil when Redis is unavailable; callers fall back to
// Mongo.
var GlobalSessionCache *SessionCache

func NewSessionCache(redisURL string) (*SessionCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &SessionCache{client: client}, nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func userSessionsKey(userID string) string {
	return "user_sessions:" + userID
}

// SetSession caches one session with a TTL matching its expiry.
func (sc *SessionCache) SetSession(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("cannot cache nil session")
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session has already expired")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return sc.client.Set(context.Background(), sessionKey(session.SessionID), data, ttl).Err()
}

// GetSession returns a cached session, or nil on miss or expiry.
func (sc *SessionCache) GetSession(sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID cannot be empty")
	}

	data, err := sc.client.Get(context.Background(), sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from cache: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		sc.DeleteSession(sessionID)
		return nil, nil
	}

	return &session, nil
}

// CacheUserSessions stores a user's active session list for a short window.
func (sc *SessionCache) CacheUserSessions(userID string, sessions []*model.Session) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}

	return sc.client.Set(context.Background(), userSessionsKey(userID), data, 5*time.Minute).Err()
}

// GetUserSessions returns the cached session list for a user, nil on miss.
func (sc *SessionCache) GetUserSessions(userID string) ([]*model.Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}

	data, err := sc.client.Get(context.Background(), userSessionsKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user sessions from cache: %w", err)
	}

	var sessions []*model.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession drops one session from the cache.
func (sc *SessionCache) DeleteSession(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID cannot be empty")
	}
	return sc.client.Del(context.Background(), sessionKey(sessionID)).Err()
}

// InvalidateUserSessions drops the cached session list after any write
// touching a user's sessions.
func (sc *SessionCache) InvalidateUserSessions(userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}
	return sc.client.Del(context.Background(), userSessionsKey(userID)).Err()
}

// CleanupExpiredSessions scans cached sessions and drops stale ones. TTLs
// make this mostly redundant; it exists to reap entries whose session
// expiry moved earlier after caching.
func (sc *SessionCache) CleanupExpiredSessions() error {
	ctx := context.Background()

	var cursor uint64
	for {
		keys, newCursor, err := sc.client.Scan(ctx, cursor, "session:*", 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan keys: %w", err)
		}

		for _, key := range keys {
			data, err := sc.client.Get(ctx, key).Bytes()
			if err != nil {
				continue
			}
			var session model.Session
			if err := json.Unmarshal(data, &session); err != nil {
				continue
			}
			if time.Now().After(session.ExpiresAt) {
				sc.client.Del(ctx, key)
			}
		}

		cursor = newCursor
		if cursor == 0 {
			break
		}
	}
	return nil
}

// StartCleanupTask reaps expired cached sessions on a fixed interval.
func (sc *SessionCache) StartCleanupTask() {
	interval := utils.GetEnvAsDuration("SESSION_CLEANUP_INTERVAL", 15*time.Minute)
	go func() {
		ticker := time.NewTicker(interval)
		for range ticker.C {
			if err := sc.CleanupExpiredSessions(); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}
		}
	}()
}

func (sc *SessionCache) IsConnected() bool {
	if sc == nil || sc.client == nil {
		return false
	}
	return sc.client.Ping(context.Background()).Err() == nil
}

func (sc *SessionCache) Close() error {
	return sc.client.Close()
}
