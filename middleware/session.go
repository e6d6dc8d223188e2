package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"main/model"
	"main/repository"
	"main/utils"
)

// inactivityTimeout retires sessions that stop sending requests even when
// their expiry is still ahead.
const inactivityTimeout = 48 * time.Hour

const sessionDuration = 24 * time.Hour

// SessionMiddleware resolves the session cookie, retires stale sessions and
// refreshes the activity timestamp. No cookie is not an error; JWT auth is
// what actually gates protected routes.
func SessionMiddleware(sessionRepo *repository.SessionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("session_id")
		if err != nil {
			c.Next()
			return
		}

		session, err := sessionRepo.GetSession(sessionID)
		if err != nil || session == nil || !session.IsActive {
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		if time.Since(session.LastActivityAt) > inactivityTimeout {
			session.IsActive = false
			if err := sessionRepo.UpdateSession(session); err != nil {
				utils.TrackError("session", "inactivity_update")
			}
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		session.LastActivityAt = time.Now()
		if err := sessionRepo.UpdateSession(session); err != nil {
			utils.TrackError("session", "activity_update")
		}

		c.Set("session", session)
		c.Next()
	}
}

// CreateSession opens a session for a signed-in user and sets the cookie.
func CreateSession(c *gin.Context, userID string, sessionRepo *repository.SessionRepo) (*model.Session, error) {
	userAgent := c.Request.UserAgent()
	browser, os, device := utils.ParseUserAgent(userAgent)

	session := &model.Session{
		SessionID:      uuid.New().String(),
		UserID:         userID,
		DisplayName:    utils.GenerateSessionName(userAgent),
		DeviceInfo:     fmt.Sprintf("%s on %s (%s)", browser, os, device),
		IPAddress:      c.ClientIP(),
		CreatedAt:      time.Now(),
		ExpiresAt:      time.Now().Add(sessionDuration),
		LastActivityAt: time.Now(),
		IsActive:       true,
	}

	if err := sessionRepo.CreateSession(session); err != nil {
		return nil, err
	}

	c.SetCookie(
		"session_id",
		session.SessionID,
		int(sessionDuration.Seconds()),
		"/",
		"",
		true,
		true,
	)

	return session, nil
}
