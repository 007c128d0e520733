package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"Sistem-Manajemen-HR/pkg/paseto"
	"Sistem-Manajemen-HR/repository"
)

// AuthMiddleware memvalidasi bearer token lalu me-resolve user dari database.
// User (tanpa password) disimpan di locals untuk handler berikutnya.
func AuthMiddleware(maker *paseto.Maker, userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "No token provided"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Authorization header format must be Bearer <token>"})
		}

		claims, err := maker.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Invalid or expired token"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		user, err := userRepo.FindUserByID(ctx, claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error"})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "User not found"})
		}

		user.Password = ""
		c.Locals("user", user)

		return c.Next()
	}
}
