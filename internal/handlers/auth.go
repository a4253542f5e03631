package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	tokenKey  = "sessionToken"
	userIDKey = "sessionUser"
)

// ExtractSession copies the bearer token and user id from the request
// into the gin context. Missing credentials are not an error here: only
// submitting a flow that needs a login checks for them.
func ExtractSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			c.Set(tokenKey, strings.TrimSpace(token))
		}
		if user := c.GetHeader("X-User-ID"); user != "" {
			c.Set(userIDKey, user)
		}
		c.Next()
	}
}

func credentials(c *gin.Context) (token, userID string) {
	return c.GetString(tokenKey), c.GetString(userIDKey)
}
