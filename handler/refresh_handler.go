package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"main/services"
	"main/utils"
)

// RefreshTokenHandler exchanges a refresh token (Bearer header) for a fresh
// token pair. The old refresh token is blacklisted so it cannot be replayed.
func RefreshTokenHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.Unauthorized(c, "Missing or invalid refresh token")
		return
	}
	refreshToken := strings.TrimPrefix(authHeader, "Bearer ")

	if services.IsTokenBlacklisted(refreshToken) {
		utils.Unauthorized(c, "Refresh token has been revoked")
		return
	}

	claims, err := services.ParseToken(refreshToken)
	if err != nil {
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		utils.Unauthorized(c, "Not a refresh token")
		return
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		utils.Unauthorized(c, "Invalid token claims")
		return
	}

	newAccessToken, err := services.GenerateToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate access token")
		return
	}
	newRefreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	// Rotation: the consumed refresh token must not keep working.
	if err := services.BlacklistTokens("", refreshToken); err != nil {
		utils.TrackError("auth", "refresh_rotation")
	}

	utils.Success(c, gin.H{
		"token":         newAccessToken,
		"refresh_token": newRefreshToken,
	})
}
