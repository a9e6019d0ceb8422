package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/domain/session"
)

// SessionIDKey is the context key holding the shopper session id
const SessionIDKey = "session_id"

// Session makes sure every shopper request carries a session id cookie.
// The cookie is re-issued on every request so its lifetime slides with
// activity, matching the server-side idle timeout.
func Session(cfg config.SessionConfig) gin.HandlerFunc {
	maxAge := int(cfg.IdleTimeout.Seconds())

	return func(c *gin.Context) {
		id, err := c.Cookie(cfg.CookieName)
		if err != nil || !session.ValidID(id) {
			id = session.NewID()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, id, maxAge, "/", "", cfg.SecureCookie, true)
		c.Set(SessionIDKey, id)

		c.Next()
	}
}

// GetSessionID returns the session id set by Session
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
