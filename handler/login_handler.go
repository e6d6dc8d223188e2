package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"
)

const MaxActiveSessions = 5

// LoginHandler signs a user in. Any email/password pair is accepted; a user
// record is created on first sign-in, so this doubles as onboarding.
func LoginHandler(c *gin.Context, userService *usecase.UserService, sessionRepo *repository.SessionRepo) {
	var loginReq model.LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		utils.TrackError("auth", "invalid_request")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := userService.Login(c.Request.Context(), loginReq.Email, loginReq.Password)
	if err != nil {
		utils.TrackError("auth", "login_failed")
		utils.InternalError(c, "Failed to sign in")
		return
	}

	issueSession(c, user, sessionRepo)
}

// OAuthLoginHandler is the provider passthrough flow. The provider claim is
// accepted as-is, matching the demo auth contract.
func OAuthLoginHandler(c *gin.Context, userService *usecase.UserService, sessionRepo *repository.SessionRepo) {
	var oauthReq model.OAuthRequest
	if err := c.ShouldBindJSON(&oauthReq); err != nil {
		utils.TrackError("auth", "invalid_request")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := userService.OAuthLogin(c.Request.Context(), oauthReq.Provider, oauthReq.Email, oauthReq.Name)
	if err != nil {
		utils.TrackError("auth", "oauth_failed")
		utils.InternalError(c, "Failed to sign in")
		return
	}

	issueSession(c, user, sessionRepo)
}

// issueSession is the shared tail of every sign-in flow: enforce the
// session cap, mint tokens, create the session, respond.
func issueSession(c *gin.Context, user *model.User, sessionRepo *repository.SessionRepo) {
	activeCount, err := sessionRepo.CountActiveSessions(user.UserID)
	if err != nil {
		utils.TrackError("session", "count_check")
		utils.InternalError(c, "Failed to check session count")
		return
	}

	var notice string
	if activeCount >= MaxActiveSessions {
		if err := sessionRepo.EndLeastActiveSession(user.UserID); err != nil {
			utils.TrackError("session", "session_cleanup")
			utils.InternalError(c, "Failed to manage sessions")
			return
		}
		notice = "Logged out of least active session due to session limit"
		log.Printf("Ended least active session for user %s due to session limit", user.UserID)
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "refresh_token_generation")
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	session, err := middleware.CreateSession(c, user.UserID, sessionRepo)
	if err != nil {
		utils.TrackError("session", "creation")
		utils.InternalError(c, "Failed to create session")
		return
	}

	response := gin.H{
		"message": "Login successful",
		"auth": dto.AuthResponse{
			Token:        token,
			RefreshToken: refreshToken,
			SessionID:    session.SessionID,
			User:         dto.ToUserProfileResponse(user, nil),
		},
	}
	if notice != "" {
		response["notice"] = notice
	}
	utils.Success(c, response)
}
