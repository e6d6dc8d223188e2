package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"main/repository"
	"main/services"
	"main/utils"
)

// LogoutHandler blacklists both tokens and ends the current session. The
// refresh token rides in the Refresh-Token header.
func LogoutHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.Unauthorized(c, "Missing or invalid access token")
		return
	}
	accessToken := strings.TrimPrefix(authHeader, "Bearer ")

	if _, err := services.ParseToken(accessToken); err != nil {
		utils.Unauthorized(c, "Invalid access token")
		return
	}

	refreshToken := c.GetHeader("Refresh-Token")
	if refreshToken == "" {
		utils.BadRequest(c, "Missing refresh token")
		return
	}
	if _, err := services.ParseToken(refreshToken); err != nil {
		utils.BadRequest(c, "Invalid refresh token")
		return
	}

	if err := services.BlacklistTokens(accessToken, refreshToken); err != nil {
		utils.TrackError("auth", "blacklist_failed")
		utils.InternalError(c, "Failed to logout")
		return
	}

	if sessionID, err := c.Cookie("session_id"); err == nil && sessionID != "" {
		if err := sessionRepo.DeleteSession(sessionID); err != nil {
			utils.TrackError("session", "deletion")
		}
	}
	c.SetCookie("session_id", "", -1, "/", "", true, true)

	utils.Success(c, gin.H{
		"message": "Successfully logged out",
	})
}
