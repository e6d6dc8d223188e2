package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"main/utils"
)

const tokenIssuer = "habits"

// GenerateToken issues a short-lived access token for a user.
func GenerateToken(userID string) (string, error) {
	return signToken(userID, "access", time.Duration(utils.JWTExpirationTime)*time.Second)
}

// GenerateRefreshToken issues a long-lived refresh token for a user.
func GenerateRefreshToken(userID string) (string, error) {
	return signToken(userID, "refresh", time.Duration(utils.RefreshTokenExpirationTime)*time.Second)
}

func signToken(userID, tokenType string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    tokenType,
		"iss":     tokenIssuer,
		"iat":     now.Unix(),
		"exp":     now.Add(lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}

// ParseToken validates a signed token and returns its claims. Expired or
// tampered tokens return an error.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// RefreshAccessToken exchanges a valid refresh token for a new access
// token. Access tokens are rejected here; the two types are not
// interchangeable.
func RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := ParseToken(refreshToken)
	if err != nil {
		return "", err
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return "", errors.New("not a refresh token")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("missing user ID in token")
	}
	return GenerateToken(userID)
}
