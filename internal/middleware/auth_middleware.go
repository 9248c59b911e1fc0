package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelechi/studentbase/internal/app/models"
	"github.com/kelechi/studentbase/internal/app/models/dto"
	"github.com/kelechi/studentbase/internal/pkg/auth"
)

// ContextUserIDKey is the gin context key holding the resolved user id.
const ContextUserIDKey = "userID"

// UserResolver resolves a token subject to a persisted user.
type UserResolver interface {
	ResolveUser(ctx context.Context, userID string) (*models.User, error)
}

// AuthMiddleware guards routes behind bearer token authentication
type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      UserResolver
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// JWTAuth validates the bearer token and resolves its subject against the
// user table. A token whose user no longer exists is rejected.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewFailedResponse("authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewFailedResponse(msg))
			return
		}

		user, err := m.users.ResolveUser(c.Request.Context(), claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewFailedResponse("invalid token"))
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}
