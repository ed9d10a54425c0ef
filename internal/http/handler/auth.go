package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"filebox/internal/auth"
	"filebox/internal/model"
)

// Login handles POST /login: on a valid credential pair it issues a session
// token in an HTTP-only cookie.
func Login(sessions *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if !sessions.CheckCredentials(req.Username, req.Password) {
			return c.Status(fiber.StatusUnauthorized).JSON(model.LoginResponse{
				Success:       false,
				Message:       "Invalid credentials",
				Authenticated: false,
			})
		}

		token, err := sessions.Issue(req.Username)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		c.Cookie(&fiber.Cookie{
			Name:     auth.CookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(sessions.TTL()),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return c.JSON(model.LoginResponse{
			Success:       true,
			Message:       "Login successful",
			Authenticated: true,
		})
	}
}

// Logout handles POST /logout by expiring the session cookie.
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     auth.CookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return c.JSON(model.LoginResponse{
			Success:       true,
			Message:       "Logged out successfully",
			Authenticated: false,
		})
	}
}

// AuthStatus handles GET /auth/status.
func AuthStatus(sessions *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(auth.CookieName); token != "" {
			if claims, err := sessions.Verify(token); err == nil {
				username := claims.Username
				return c.JSON(model.AuthStatus{
					Authenticated: true,
					Username:      &username,
				})
			}
		}
		return c.JSON(model.AuthStatus{Authenticated: false})
	}
}
