package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/auth"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: 15 * time.Minute,
		Issuer:     "test-issuer",
	})
}

func newTestToken(t *testing.T, jwtService *auth.JWTService) (*auth.Token, auth.GenerateTokenInput) {
	t.Helper()
	input := auth.GenerateTokenInput{UserID: uuid.New(), Username: "admin", Role: "admin"}
	token, err := jwtService.GenerateToken(input)
	require.NoError(t, err)
	return token, input
}

// newGuardedRouter mounts the default guard over a GET and a POST route
func newGuardedRouter(cfg JWTMiddlewareConfig, called *bool) *gin.Engine {
	router := gin.New()
	api := router.Group("/api")
	api.Use(JWTAuthMiddlewareWithConfig(cfg))
	handler := func(c *gin.Context) {
		*called = true
		c.JSON(http.StatusOK, gin.H{"user_id": GetJWTUserID(c), "username": GetJWTUsername(c)})
	}
	api.GET("/records", handler)
	api.POST("/records", handler)
	api.POST("/auth/login", handler)
	return router
}

func TestJWTAuthMiddleware_GuardsOnlyMutatingRequests(t *testing.T) {
	jwtService := newTestJWTService()
	var called bool
	router := newGuardedRouter(DefaultJWTConfig(jwtService), &called)

	t.Run("GET passes without a token", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/records", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})

	t.Run("POST without header is rejected before the handler", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/records", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Authentication required", body["message"])
		assert.Equal(t, "UNAUTHORIZED", body["code"])
	})

	t.Run("login is exempt", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	token, input := newTestToken(t, jwtService)
	var called bool
	router := newGuardedRouter(DefaultJWTConfig(jwtService), &called)

	req := httptest.NewRequest(http.MethodPost, "/api/records", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), input.UserID.String())
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	jwtService := newTestJWTService()
	other := auth.NewJWTService(config.JWTConfig{Secret: "another-secret-key-at-least-32-chars", Expiration: time.Minute, Issuer: "test-issuer"})
	foreign, _ := newTestToken(t, other)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{name: "wrong scheme", header: "Basic abc", message: "Invalid authorization header format"},
		{name: "garbage token", header: "Bearer not.a.jwt", message: "Invalid token"},
		{name: "bad signature", header: "Bearer " + foreign.AccessToken, message: "Invalid token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			router := newGuardedRouter(DefaultJWTConfig(jwtService), &called)

			req := httptest.NewRequest(http.MethodPost, "/api/records", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.False(t, called)
		})
	}
}

func TestJWTAuthMiddleware_Blacklist(t *testing.T) {
	jwtService := newTestJWTService()
	blacklist := auth.NewInMemoryTokenBlacklist()
	cfg := DefaultJWTConfig(jwtService)
	cfg.TokenBlacklist = blacklist

	t.Run("revoked jti", func(t *testing.T) {
		token, _ := newTestToken(t, jwtService)
		claims, err := jwtService.ValidateToken(token.AccessToken)
		require.NoError(t, err)
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Minute))

		var called bool
		router := newGuardedRouter(cfg, &called)
		req := httptest.NewRequest(http.MethodPost, "/api/records", nil)
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token has been revoked")
		assert.False(t, called)
	})

	t.Run("all tokens of user invalidated", func(t *testing.T) {
		token, input := newTestToken(t, jwtService)
		time.Sleep(10 * time.Millisecond)
		require.NoError(t, blacklist.AddUserTokensToBlacklist(context.Background(), input.UserID.String(), time.Minute))

		var called bool
		router := newGuardedRouter(cfg, &called)
		req := httptest.NewRequest(http.MethodPost, "/api/records", nil)
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestJWTAuthMiddleware_AllMethods(t *testing.T) {
	jwtService := newTestJWTService()
	router := gin.New()
	router.GET("/api/auth/me", JWTAuthMiddlewareWithConfig(JWTMiddlewareConfig{JWTService: jwtService}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
