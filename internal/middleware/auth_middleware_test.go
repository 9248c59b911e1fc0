package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelechi/studentbase/internal/app/models"
	"github.com/kelechi/studentbase/internal/app/models/dto"
	"github.com/kelechi/studentbase/internal/pkg/apperrors"
	"github.com/kelechi/studentbase/internal/pkg/auth"
)

type fakeResolver struct {
	users map[string]*models.User
}

func (r *fakeResolver) ResolveUser(_ context.Context, userID string) (*models.User, error) {
	if user, ok := r.users[userID]; ok {
		return user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func newGuardedRouter(t *testing.T, jwtService *auth.JWTService, resolver *fakeResolver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	authMw := NewAuthMiddleware(jwtService, resolver)
	router.GET("/protected", authMw.JWTAuth(), func(c *gin.Context) {
		userID := c.GetString(ContextUserIDKey)
		c.JSON(http.StatusOK, dto.NewSuccessDataResponse("ok", gin.H{"user_id": userID}))
	})
	return router
}

func doProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthValidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "studentbase-test",
	})
	resolver := &fakeResolver{users: map[string]*models.User{
		"user-1": {ID: "user-1", Email: "ada@history.org"},
	}}
	router := newGuardedRouter(t, jwtService, resolver)

	token, _, err := jwtService.GenerateToken("user-1", "ada@history.org")
	require.NoError(t, err)

	rec := doProtected(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, dto.StatusSuccess, body.Status)
	assert.Equal(t, "user-1", body.Data.(map[string]interface{})["user_id"])
}

func TestJWTAuthMissingHeader(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})
	router := newGuardedRouter(t, jwtService, &fakeResolver{})

	rec := doProtected(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body dto.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, dto.StatusFailed, body.Status)
	assert.Equal(t, "authentication required", body.Msg)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})
	router := newGuardedRouter(t, jwtService, &fakeResolver{})

	rec := doProtected(router, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: -time.Minute})
	router := newGuardedRouter(t, jwtService, &fakeResolver{})

	token, _, err := jwtService.GenerateToken("user-1", "ada@history.org")
	require.NoError(t, err)

	rec := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body dto.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "token expired", body.Msg)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})
	other := auth.NewJWTService(auth.JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	router := newGuardedRouter(t, jwtService, &fakeResolver{})

	token, _, err := other.GenerateToken("user-1", "ada@history.org")
	require.NoError(t, err)

	rec := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthUnknownSubject(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})
	router := newGuardedRouter(t, jwtService, &fakeResolver{users: map[string]*models.User{}})

	token, _, err := jwtService.GenerateToken("deleted-user", "gone@history.org")
	require.NoError(t, err)

	rec := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body dto.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid token", body.Msg)
}
