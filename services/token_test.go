package services

import (
	"os"
	"testing"

	"main/utils"
)

func init() {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims["user_id"] != "user-123" {
		t.Errorf("expected user_id user-123, got %v", claims["user_id"])
	}
	if claims["type"] != "access" {
		t.Errorf("expected type access, got %v", claims["type"])
	}
	if claims["iss"] != "habits" {
		t.Errorf("expected issuer habits, got %v", claims["iss"])
	}
}

func TestParseTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ParseToken(token + "x"); err == nil {
		t.Error("expected tampered token to fail parsing")
	}
	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("expected garbage token to fail parsing")
	}
}

func TestRefreshAccessToken(t *testing.T) {
	refresh, err := GenerateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	newAccess, err := RefreshAccessToken(refresh)
	if err != nil {
		t.Fatalf("RefreshAccessToken failed: %v", err)
	}

	claims, err := ParseToken(newAccess)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims["type"] != "access" {
		t.Errorf("expected type access, got %v", claims["type"])
	}
}

func TestRefreshAccessTokenRejectsAccessToken(t *testing.T) {
	access, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := RefreshAccessToken(access); err == nil {
		t.Error("expected access token to be rejected by refresh")
	}
}
