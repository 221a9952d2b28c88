package middleware

import (
	"strings"
	"time"

	"users-management/internal/screen"

	"github.com/gofiber/fiber/v2"
)

const (
	controllerKey = "screen.controller"
	sessionIDKey  = "screen.session"
)

// HTMXHeader marks requests issued by htmx.
const HTMXHeader = "HX-Request"

// IsHTMX reports whether the request was initiated by htmx.
func IsHTMX(c *fiber.Ctx) bool {
	return strings.EqualFold(c.Get(HTMXHeader), "true")
}

// Session binds the request to its screen controller. The cookie is written
// on every request so its lifetime slides with the server-side idle TTL.
func Session(reg *screen.Registry, cookieName string, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctrl, id := reg.Acquire(c.Cookies(cookieName))
		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(controllerKey, ctrl)
		c.Locals(sessionIDKey, id)
		return c.Next()
	}
}

// Controller returns the screen controller bound by Session, or nil.
func Controller(c *fiber.Ctx) *screen.Controller {
	ctrl, _ := c.Locals(controllerKey).(*screen.Controller)
	return ctrl
}
