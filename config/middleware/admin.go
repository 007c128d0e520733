package middleware

import (
	"github.com/gofiber/fiber/v2"

	"Sistem-Manajemen-HR/models"
)

// AdminMiddleware harus dipasang setelah AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
		}

		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "Admin access required"})
		}

		return c.Next()
	}
}
