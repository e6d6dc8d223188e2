package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Username  string    `bson:"username" json:"username"`
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Password  string    `bson:"password" json:"-"`
	Provider  string    `bson:"provider,omitempty" json:"provider,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OAuthRequest is the passthrough sign-in payload. The provider assertion is
// accepted as-is; this is a demo auth layer, not a real OAuth verifier.
type OAuthRequest struct {
	Provider string `json:"provider" binding:"required,oneof=google apple linkedin"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
}
