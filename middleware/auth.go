package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NAdun-bit/rasa-storefront-api/auth"
)

// SessionAuth resolves the caller's session from the Authorization header.
// Guest tokens are JWTs we issued ourselves; anything else is treated as an
// opaque token from the user service and doubles as the session id.
func SessionAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		if sessionID, ok := auth.ParseGuestToken(jwtSecret, token); ok {
			c.Set("session_id", sessionID)
			c.Set("auth_token", token)
			c.Set("is_guest", true)
			c.Next()
			return
		}

		c.Set("session_id", token)
		c.Set("auth_token", token)
		c.Set("is_guest", false)
		c.Next()
	}
}

// SessionID reads the session id set by SessionAuth.
func SessionID(c *gin.Context) string {
	return c.GetString("session_id")
}

// AuthToken reads the bearer token set by SessionAuth.
func AuthToken(c *gin.Context) string {
	return c.GetString("auth_token")
}

// IsGuest reports whether the session carries a guest token.
func IsGuest(c *gin.Context) bool {
	return c.GetBool("is_guest")
}
