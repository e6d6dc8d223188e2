package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"main/services"
	"main/utils"
)

func init() {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
	gin.SetMode(gin.TestMode)
}

func performRefresh(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.POST("/api/auth/refresh", RefreshTokenHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRefreshTokenHandler(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		w := performRefresh(t, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		w := performRefresh(t, "Token abc")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		w := performRefresh(t, "Bearer not-a-jwt")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("access token rejected", func(t *testing.T) {
		access, err := services.GenerateToken("user-1")
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		w := performRefresh(t, "Bearer "+access)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 for access token, got %d", w.Code)
		}
	})

	t.Run("valid refresh token", func(t *testing.T) {
		refresh, err := services.GenerateRefreshToken("user-1")
		if err != nil {
			t.Fatalf("GenerateRefreshToken: %v", err)
		}
		w := performRefresh(t, "Bearer "+refresh)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		body := w.Body.String()
		for _, key := range []string{"token", "refresh_token"} {
			if !strings.Contains(body, key) {
				t.Errorf("response missing %q: %s", key, body)
			}
		}
	})
}
