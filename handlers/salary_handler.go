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

type SalaryHandler struct {
	salaryRepo repository.SalaryRepository
	empRepo    repository.EmployeeRepository
}

func NewSalaryHandler(salaryRepo repository.SalaryRepository, empRepo repository.EmployeeRepository) *SalaryHandler {
	return &SalaryHandler{
		salaryRepo: salaryRepo,
		empRepo:    empRepo,
	}
}

// SaveSalary godoc
// @Summary Record salary
// @Description Replaces the employee's previous salary records with a new one and refreshes the denormalized salary on the employee
// @Tags Salaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param salary body models.SalaryCreatePayload true "Salary record"
// @Success 201 {object} models.MessageResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /salary/addSalary [post]
func (h *SalaryHandler) SaveSalary(c *fiber.Ctx) error {
	var payload models.SalaryCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": errors})
	}

	empID, err := primitive.ObjectIDFromHex(payload.Employee)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid employee ID format"})
	}
	deptID, err := primitive.ObjectIDFromHex(payload.Department)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid department ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	employee, err := h.empRepo.FindEmployeeByID(ctx, empID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error in adding salary"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Employee not found"})
	}

	// Riwayat lama dihapus dulu, satu employee selalu punya tepat satu record.
	if payload.EmployeeCode != "" {
		if _, err := h.salaryRepo.DeleteSalariesByEmployeeCode(ctx, payload.EmployeeCode); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error in adding salary"})
		}
	} else {
		if _, err := h.salaryRepo.DeleteSalariesByEmployee(ctx, empID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error in adding salary"})
		}
	}

	payDate := time.Now()
	if payload.PayDate != "" {
		payDate, _ = time.Parse("2006-01-02", payload.PayDate)
	}

	net := payload.Net()
	newSalary := &models.Salary{
		EmployeeID:   empID,
		DepartmentID: deptID,
		EmployeeCode: payload.EmployeeCode,
		BasicSalary:  *payload.BasicSalary,
		Allowance:    *payload.Allowance,
		Deductions:   *payload.Deductions,
		NetSalary:    net,
		PayDate:      payDate,
	}

	if _, err := h.salaryRepo.CreateSalary(ctx, newSalary); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error in adding salary"})
	}

	if err := h.empRepo.UpdateEmployeeSalary(ctx, empID, net); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error in adding salary"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Salary added",
		"salary":  newSalary,
	})
}

// ListSalaries godoc
// @Summary List salary records
// @Description All salary records joined with employee, user, and department info
// @Tags Salaries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,salaries=[]models.SalaryWithDetails}
// @Failure 500 {object} models.ErrorResponse
// @Router /salary [get]
func (h *SalaryHandler) ListSalaries(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	salaries, err := h.salaryRepo.GetAllSalariesWithDetails(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error fetching salaries"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"salaries": salaries,
	})
}

// GetMySalaries godoc
// @Summary Get the caller's salary history
// @Description Salary records of the caller's employee profile, newest pay date first
// @Tags Salaries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,salaries=[]models.Salary}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /salary/my [get]
func (h *SalaryHandler) GetMySalaries(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.empRepo.FindEmployeeByUserID(ctx, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error fetching salaries"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Employee profile not found for this user"})
	}

	salaries, err := h.salaryRepo.FindSalariesByEmployee(ctx, employee.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error fetching salaries"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"salaries": salaries,
	})
}
