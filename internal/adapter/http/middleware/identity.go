package middleware

import "github.com/gin-gonic/gin"

const userIDKey = "userID"

// Identity resolves the acting user identity for the request. There is no
// authentication in this system: the identity comes from the X-User-Id header
// when present and falls back to the configured mock identity. Handlers read
// it via UserID and thread it through every service call.
func Identity(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-User-Id")
		if id == "" {
			id = defaultUserID
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

// UserID returns the identity resolved by the Identity middleware.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
