package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// BrowserSession identifies the browser, not an account. The id keys the
// draft staging store and the ownership index. It is a convenience gate,
// not an authorization boundary.
const (
	sessionCookieName = "recyklat.sid"
	sessionLocal      = "session_id"

	// A year, matching how long the ownership index should stay usable.
	sessionMaxAgeSeconds = 365 * 24 * 60 * 60
)

// SessionConfig controls the session cookie flags.
type SessionConfig struct {
	IsProduction bool
}

// BrowserSession reads the session cookie, minting one on first contact, and
// exposes the id via Locals for handlers.
func BrowserSession(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(sessionCookieName)
		if sid == "" || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     sessionCookieName,
				Value:    sid,
				MaxAge:   sessionMaxAgeSeconds,
				HTTPOnly: true,
				Secure:   cfg.IsProduction,
				SameSite: "Lax",
				Path:     "/",
			})
		}
		c.Locals(sessionLocal, sid)
		return c.Next()
	}
}

// SessionID returns the browser session id for this request.
func SessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(sessionLocal).(string); ok {
		return id
	}
	return ""
}
