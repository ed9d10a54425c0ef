package handler

import (
	"github.com/gofiber/fiber/v2"

	"filebox/internal/model"
	"filebox/internal/storage"
)

// HealthCheck verifies the storage root is reachable.
func HealthCheck(store storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.Ping(); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness check.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Debug reports whether debug mode is enabled.
func Debug(debugMode bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.DebugInfo{DebugMode: debugMode})
	}
}
