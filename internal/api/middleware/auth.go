package middleware

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/service"
	apperrors "github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/errors"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/response"
)

const (
	userIDKey    = "user_id"
	appKeyHeader = "X-APP-KEY"
)

// Authenticator resolves a bearer token to the calling user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*service.Identity, error)
}

// JWTAuth reads Authorization: Bearer <token>, resolves the caller and stores
// the Identity in the request context.
func JWTAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "No Auth Token Provided")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.Unauthorized(c, "Invalid Auth Token Provided")
			return
		}

		id, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindUnauthorized {
				response.Unauthorized(c, service.ErrInvalidToken.Message)
				return
			}
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(service.WithIdentity(c.Request.Context(), id))
		c.Set(userIDKey, id.UserID)

		c.Next()
	}
}

// RoleHolder is any caller that can answer a role check.
type RoleHolder interface {
	HasRole(name string) bool
}

// RoleAuth admits callers holding at least one of roles.
func RoleAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := service.IdentityFrom(c.Request.Context())
		if !ok {
			response.Unauthorized(c, "No Auth Token Provided")
			return
		}

		if hasAnyRole(id, roles) {
			c.Next()
			return
		}

		response.Forbidden(c, "You do not have permission to perform this action")
	}
}

func hasAnyRole(h RoleHolder, roles []string) bool {
	for _, r := range roles {
		if h.HasRole(r) {
			return true
		}
	}
	return false
}

// AppKey requires the X-APP-KEY header to equal key. An empty key disables the check.
func AppKey(key string) gin.HandlerFunc {
	expected := []byte(key)
	return func(c *gin.Context) {
		if len(expected) == 0 {
			c.Next()
			return
		}

		got := []byte(c.GetHeader(appKeyHeader))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			response.Forbidden(c, "Invalid application key")
			return
		}

		c.Next()
	}
}
