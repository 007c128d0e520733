package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-HR/models"
	util "Sistem-Manajemen-HR/pkg/utils"
	"Sistem-Manajemen-HR/repository"
)

type DepartmentHandler struct {
	deptRepo   repository.DepartmentRepository
	empRepo    repository.EmployeeRepository
	userRepo   repository.UserRepository
	salaryRepo repository.SalaryRepository
	leaveRepo  repository.LeaveRepository
}

func NewDepartmentHandler(
	deptRepo repository.DepartmentRepository,
	empRepo repository.EmployeeRepository,
	userRepo repository.UserRepository,
	salaryRepo repository.SalaryRepository,
	leaveRepo repository.LeaveRepository,
) *DepartmentHandler {
	return &DepartmentHandler{
		deptRepo:   deptRepo,
		empRepo:    empRepo,
		userRepo:   userRepo,
		salaryRepo: salaryRepo,
		leaveRepo:  leaveRepo,
	}
}

// AddDepartment godoc
// @Summary Create department
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param department body models.DepartmentCreatePayload true "New department"
// @Success 201 {object} models.MessageResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /department/add [post]
func (h *DepartmentHandler) AddDepartment(c *fiber.Ctx) error {
	var payload models.DepartmentCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	newDept := &models.Department{
		Name:        payload.Name,
		Head:        payload.Head,
		Description: payload.Description,
	}

	if _, err := h.deptRepo.CreateDepartment(ctx, newDept); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": fmt.Sprintf("Failed to create department: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"department": newDept,
	})
}

// ListDepartments godoc
// @Summary List departments
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,departments=[]models.Department}
// @Failure 500 {object} models.ErrorResponse
// @Router /department [get]
func (h *DepartmentHandler) ListDepartments(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	departments, err := h.deptRepo.GetAllDepartments(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": fmt.Sprintf("Failed to fetch departments: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"departments": departments,
	})
}

// GetDepartmentByID godoc
// @Summary Get department by ID
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} object{success=bool,department=models.Department}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /department/{id} [get]
func (h *DepartmentHandler) GetDepartmentByID(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid department ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dept, err := h.deptRepo.GetDepartmentByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": fmt.Sprintf("Failed to fetch department: %v", err)})
	}
	if dept == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Department not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"department": dept,
	})
}

// UpdateDepartment godoc
// @Summary Update department
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param department body models.DepartmentUpdatePayload true "Fields to update"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /department/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid department ID format"})
	}

	var payload models.DepartmentUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": errors})
	}

	updateData := bson.M{}
	if payload.Name != nil {
		updateData["name"] = *payload.Name
	}
	if payload.Head != nil {
		updateData["head"] = *payload.Head
	}
	if payload.Description != nil {
		updateData["description"] = *payload.Description
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "No fields to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.deptRepo.UpdateDepartment(ctx, objID, updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": fmt.Sprintf("Failed to update department: %v", err)})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Department not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Department updated successfully",
	})
}

// DeleteDepartment godoc
// @Summary Delete department and everything it owns
// @Description Removes the department's employees, their salary and leave records, and their login accounts, then the department itself. The sequence is not transactional.
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /department/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid department ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	employees, err := h.empRepo.FindEmployeesByDepartment(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Delete failed"})
	}

	employeeIDs := make([]primitive.ObjectID, 0, len(employees))
	userIDs := make([]primitive.ObjectID, 0, len(employees))
	for _, emp := range employees {
		employeeIDs = append(employeeIDs, emp.ID)
		if !emp.UserID.IsZero() {
			userIDs = append(userIDs, emp.UserID)
		}
	}

	// Urutan cascade: salary -> leave -> employee -> user -> department.
	// Tanpa transaksi; kegagalan di tengah meninggalkan delete sebelumnya.
	if len(employeeIDs) > 0 {
		if _, err := h.salaryRepo.DeleteSalariesByEmployeeIDs(ctx, employeeIDs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Delete failed"})
		}
		if _, err := h.leaveRepo.DeleteLeavesByEmployeeIDs(ctx, employeeIDs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Delete failed"})
		}
		if _, err := h.empRepo.DeleteEmployeesByIDs(ctx, employeeIDs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Delete failed"})
		}
	}
	if len(userIDs) > 0 {
		if _, err := h.userRepo.DeleteUsersByIDs(ctx, userIDs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Delete failed"})
		}
	}

	result, err := h.deptRepo.DeleteDepartment(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Delete failed"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Department not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Department is deleted.",
	})
}
