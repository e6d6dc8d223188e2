package handler

import (
	"github.com/gin-gonic/gin"

	"main/dto"
	"main/usecase"
	"main/utils"
)

type registrationRequest struct {
	Username string `json:"username" binding:"max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegistrationHandler creates an account explicitly. Duplicate emails are
// rejected here, unlike login's find-or-create.
func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req registrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("auth", "invalid_request")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := userService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if err.Error() == "email already registered" {
			utils.Conflict(c, "Email already registered")
			return
		}
		utils.TrackError("auth", "registration_failed")
		utils.InternalError(c, "Failed to register")
		return
	}

	utils.Created(c, gin.H{
		"message": "Registration successful",
		"user":    dto.ToUserProfileResponse(user, nil),
	})
}
