package middleware

import (
	"github.com/gofiber/fiber/v2"

	"filebox/internal/auth"
)

// UsernameLocalKey stores the authenticated username in Fiber context locals.
const UsernameLocalKey = "username"

// RequireAuth gates a route on a valid session cookie. The file manager's
// core operations assume an authenticated session as a precondition; this
// middleware is that gate.
func RequireAuth(sessions *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(auth.CookieName)
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
		}

		claims, err := sessions.Verify(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
		}

		c.Locals(UsernameLocalKey, claims.Username)
		return c.Next()
	}
}
