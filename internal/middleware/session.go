// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "shop_session"
	sessionHeader = "X-Session-ID"

	// Matches the lifetime of the storefront's local state, one year.
	sessionMaxAge = 365 * 24 * 60 * 60
)

// Session resolves the caller's session ID, the key that scopes cart
// and wishlist state. Clients may pin a session via the X-Session-ID
// header; otherwise a cookie is issued on first contact.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)

		if sessionID == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				sessionID = cookie
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(sessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}
