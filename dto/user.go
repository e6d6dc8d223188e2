package dto

import (
	"time"

	"main/model"
)

type UserLink struct {
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

type UserProfileResponse struct {
	Username  string              `json:"username"`
	Email     string              `json:"email"`
	Provider  string              `json:"provider,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	Links     map[string]UserLink `json:"_links,omitempty"` // HAL UserLinks
}

func ToUserProfileResponse(user *model.User, links map[string]UserLink) UserProfileResponse {
	return UserProfileResponse{
		Username:  user.Username,
		Email:     user.Email,
		Provider:  user.Provider,
		CreatedAt: user.CreatedAt,
		Links:     links,
	}
}

type AuthResponse struct {
	Token        string              `json:"token"`
	RefreshToken string              `json:"refresh_token"`
	SessionID    string              `json:"session_id"`
	User         UserProfileResponse `json:"user"`
}
