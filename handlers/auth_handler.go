package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"Sistem-Manajemen-HR/models"
	"Sistem-Manajemen-HR/pkg/paseto"
	"Sistem-Manajemen-HR/pkg/password"
	util "Sistem-Manajemen-HR/pkg/utils"
	"Sistem-Manajemen-HR/repository"
)

type AuthHandler struct {
	userRepo repository.UserRepository
	maker    *paseto.Maker
}

func NewAuthHandler(userRepo repository.UserRepository, maker *paseto.Maker) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		maker:    maker,
	}
}

// Login godoc
// @Summary Login
// @Description Verifies credentials and issues a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Login credentials"
// @Success 200 {object} models.LoginSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error"})
	}
	if user == nil {
		// Email tidak dikenal dan password salah memberi jawaban yang sama
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Wrong email or password"})
	}

	if !password.CheckPasswordHash(payload.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Wrong email or password"})
	}

	token, err := h.maker.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to generate token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}

// Verify godoc
// @Summary Verify token
// @Description Confirms the bearer token and echoes the resolved user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.VerifySuccessResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    user.Public(),
	})
}

// ChangePassword godoc
// @Summary Change password
// @Description Rotates the caller's password after verifying the old one
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param password body models.ChangePasswordPayload true "Old and new password"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	var payload models.ChangePasswordPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	// Locals user sudah tanpa password, ambil ulang hash dari database
	stored, err := h.userRepo.FindUserByID(ctx, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error"})
	}
	if stored == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	if !password.CheckPasswordHash(payload.OldPassword, stored.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Old password is incorrect"})
	}

	newHashed, err := password.HashPassword(payload.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to hash new password"})
	}

	if err := h.userRepo.UpdateUserPassword(ctx, stored.ID, newHashed); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to update password"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Password changed successfully",
	})
}
