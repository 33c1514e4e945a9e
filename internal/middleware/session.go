package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EraEKV/restometrics/internal/auth"
)

// SessionResolver maps a session id to a restaurant id.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (string, error)
}

// SessionMiddleware resolves the session cookie and attaches the
// restaurant id to the request context. It never blocks the request;
// handlers that require a session check for the key themselves.
func SessionMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(auth.SessionCookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		restaurantID, err := resolver.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			c.Next()
			return
		}

		c.Set("sessionID", sessionID)
		c.Set("restaurantID", restaurantID)
		c.Next()
	}
}

// RequireSession rejects requests that did not resolve to a restaurant.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("restaurantID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
