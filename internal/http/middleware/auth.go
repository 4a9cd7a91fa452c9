package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"zalestorm.app/crm/internal/model"
	"zalestorm.app/crm/internal/store"
)

type contextKey string

const userContextKey contextKey = "user"

// ErrMsgUnauthorized is the user-facing message for every auth failure.
const ErrMsgUnauthorized = "Non autorisé - authentification requise"

// RequireAuth enforces the bearer credential. A missing or blank token is
// rejected before any other work; token-to-owner resolution is a store lookup,
// actual credential validation stays with the backend that issued it.
func RequireAuth(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrMsgUnauthorized})
			return
		}

		user, err := users.GetByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrMsgUnauthorized})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userContextKey, user)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUser returns the authenticated owner, or nil outside RequireAuth.
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
