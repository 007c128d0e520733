package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-HR/models"
	util "Sistem-Manajemen-HR/pkg/utils"
	"Sistem-Manajemen-HR/repository"
)

type LeaveHandler struct {
	leaveRepo repository.LeaveRepository
	empRepo   repository.EmployeeRepository
}

func NewLeaveHandler(leaveRepo repository.LeaveRepository, empRepo repository.EmployeeRepository) *LeaveHandler {
	return &LeaveHandler{
		leaveRepo: leaveRepo,
		empRepo:   empRepo,
	}
}

// AddLeave godoc
// @Summary Apply for leave
// @Description Creates a Pending leave request for the caller's employee profile
// @Tags Leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param leave body models.LeaveCreatePayload true "Leave request"
// @Success 201 {object} models.MessageResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /leave [post]
func (h *LeaveHandler) AddLeave(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	var payload models.LeaveCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	employee, err := h.empRepo.FindEmployeeByUserID(ctx, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error in adding leave"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Employee profile not found for this user"})
	}

	fromDate, _ := time.Parse("2006-01-02", payload.FromDate)
	toDate, _ := time.Parse("2006-01-02", payload.ToDate)
	// Tag gtefield tidak membandingkan isi string tanggal, cek di sini
	if toDate.Before(fromDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "toDate must not be earlier than fromDate"})
	}

	newLeave := &models.Leave{
		EmployeeID:       employee.ID,
		LeaveType:        payload.LeaveType,
		FromDate:         fromDate,
		ToDate:           toDate,
		Description:      payload.Description,
		Status:           models.LeaveStatusPending,
		IsSeenByEmployee: false,
		AppliedAt:        time.Now(),
	}

	if _, err := h.leaveRepo.CreateLeave(ctx, newLeave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error in adding leave"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Leave applied",
		"leave":   newLeave,
	})
}

// GetMyLeaves godoc
// @Summary Get the caller's leave history
// @Description Leave requests of the caller's employee profile, newest application first
// @Tags Leaves
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,leaves=[]models.Leave}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /leave/my [get]
func (h *LeaveHandler) GetMyLeaves(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.empRepo.FindEmployeeByUserID(ctx, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error fetching leaves"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Employee profile not found for this user"})
	}

	leaves, err := h.leaveRepo.FindLeavesByEmployee(ctx, employee.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error fetching leaves"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"leaves":  leaves,
	})
}

// GetAdminLeaves godoc
// @Summary List all leave requests
// @Description Every leave request joined with employee, user, and department info, oldest application first
// @Tags Leaves
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,leaves=[]models.LeaveWithDetails}
// @Failure 500 {object} models.ErrorResponse
// @Router /leave/admin [get]
func (h *LeaveHandler) GetAdminLeaves(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	leaves, err := h.leaveRepo.GetAllLeavesWithDetails(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error fetching leaves"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"leaves":  leaves,
	})
}

// GetSingleLeave godoc
// @Summary Get leave request by ID
// @Tags Leaves
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} object{success=bool,leave=models.LeaveWithDetails}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /leave/admin/{id} [get]
func (h *LeaveHandler) GetSingleLeave(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid leave ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	leave, err := h.leaveRepo.GetLeaveWithDetails(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error fetching leave"})
	}
	if leave == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Leave not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"leave":   leave,
	})
}

// UpdateLeaveStatus godoc
// @Summary Approve or reject a leave request
// @Description Moves a Pending request to Approved or Rejected and marks the decision unseen for the employee
// @Tags Leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param status body models.LeaveStatusUpdatePayload true "New status"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /leave/admin/{id}/status [put]
func (h *LeaveHandler) UpdateLeaveStatus(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid leave ID format"})
	}

	var payload models.LeaveStatusUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.leaveRepo.UpdateLeaveStatus(ctx, objID, payload.Status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error updating leave status"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Leave not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Leave status updated",
	})
}

// GetMyLeaveNotifications godoc
// @Summary Get unseen leave decisions
// @Description Up to 20 decided-but-unseen leave requests of the caller, newest decision first
// @Tags Leaves
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.NotificationsResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /leave/my/notifications [get]
func (h *LeaveHandler) GetMyLeaveNotifications(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.empRepo.FindEmployeeByUserID(ctx, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error fetching notifications"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Employee profile not found for this user"})
	}

	notifications, err := h.leaveRepo.FindUnseenDecidedLeaves(ctx, employee.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error fetching notifications"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"notifications": notifications,
		"unreadCount":   len(notifications),
	})
}

// MarkNotificationsSeen godoc
// @Summary Mark leave decisions as seen
// @Description Flags every decided-but-unseen leave request of the caller as seen
// @Tags Leaves
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /leave/my/notifications/mark-seen [patch]
func (h *LeaveHandler) MarkNotificationsSeen(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.empRepo.FindEmployeeByUserID(ctx, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error updating notifications"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Employee profile not found for this user"})
	}

	if _, err := h.leaveRepo.MarkLeavesSeen(ctx, employee.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error updating notifications"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Notifications marked as seen",
	})
}
