package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"main/dto"
	"main/repository"
	"main/usecase"
	"main/utils"
)

func GetUserProfileHandler(c *gin.Context, userService *usecase.UserService) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := userService.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		if err.Error() == "user not found" {
			utils.NotFound(c, "User not found")
			return
		}
		utils.InternalError(c, "Could not fetch user details")
		return
	}

	baseURL := utils.GetBaseURL(c)
	links := map[string]dto.UserLink{
		"self":     {Href: baseURL + "/user/profile", Method: http.MethodGet},
		"habits":   {Href: baseURL + "/habits", Method: http.MethodGet},
		"settings": {Href: baseURL + "/settings", Method: http.MethodGet},
		"delete":   {Href: baseURL + "/user", Method: http.MethodDelete},
	}

	utils.Success(c, dto.ToUserProfileResponse(user, links))
}

// DeleteUserHandler removes the account and everything it owns, then tears
// down every session.
func DeleteUserHandler(c *gin.Context, userService *usecase.UserService, sessionRepo *repository.SessionRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := userService.DeleteAccount(c.Request.Context(), userID.(string)); err != nil {
		if err.Error() == "user not found" {
			utils.NotFound(c, "User not found")
			return
		}
		utils.TrackError("database", "account_deletion_failed")
		utils.InternalError(c, "Failed to delete account")
		return
	}

	if err := sessionRepo.DeleteUserSessions(userID.(string)); err != nil {
		utils.TrackError("session", "cascade_deletion")
	}
	c.SetCookie("session_id", "", -1, "/", "", true, true)

	utils.Success(c, gin.H{
		"message": "Account deleted",
	})
}
