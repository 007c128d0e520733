package handlers

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-HR/models"
	"Sistem-Manajemen-HR/pkg/password"
	util "Sistem-Manajemen-HR/pkg/utils"
	"Sistem-Manajemen-HR/repository"
)

const uploadDir = "./public/uploads"

type EmployeeHandler struct {
	empRepo    repository.EmployeeRepository
	userRepo   repository.UserRepository
	salaryRepo repository.SalaryRepository
	leaveRepo  repository.LeaveRepository
}

func NewEmployeeHandler(
	empRepo repository.EmployeeRepository,
	userRepo repository.UserRepository,
	salaryRepo repository.SalaryRepository,
	leaveRepo repository.LeaveRepository,
) *EmployeeHandler {
	return &EmployeeHandler{
		empRepo:    empRepo,
		userRepo:   userRepo,
		salaryRepo: salaryRepo,
		leaveRepo:  leaveRepo,
	}
}

func saveAvatar(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	fileName := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(uploadDir, fileName)); err != nil {
		return "", err
	}
	return fileName, nil
}

// removeAvatarFile best-effort: kegagalan hanya dicatat di log.
func removeAvatarFile(fileName string) {
	if fileName == "" {
		return
	}
	if err := os.Remove(filepath.Join(uploadDir, fileName)); err != nil && !os.IsNotExist(err) {
		log.Printf("Gagal menghapus file avatar %s: %v", fileName, err)
	}
}

// AddEmployee godoc
// @Summary Create employee
// @Description Creates the login account, the employee record, and the initial salary record in sequence
// @Tags Employees
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Full name"
// @Param email formData string true "Email (unique)"
// @Param password formData string true "Password"
// @Param role formData string true "admin or employee"
// @Param employeeId formData string true "Employee code, e.g. EMP-001"
// @Param department formData string true "Department ID"
// @Param salary formData number false "Initial salary"
// @Param avatar formData file false "Avatar image"
// @Success 201 {object} models.MessageResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /employee/add [post]
func (h *EmployeeHandler) AddEmployee(c *fiber.Ctx) error {
	var payload models.EmployeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": errors})
	}

	deptID, err := primitive.ObjectIDFromHex(payload.Department)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid department ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	existing, err := h.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error in adding employee"})
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Email already in use"})
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to hash password"})
	}

	avatarFileName := ""
	if file, err := c.FormFile("avatar"); err == nil && file != nil {
		avatarFileName, err = saveAvatar(c, file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to save avatar file"})
		}
	}

	newUser := &models.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: hashedPassword,
		Role:     payload.Role,
		Avatar:   avatarFileName,
	}

	// Tiga insert berurutan tanpa atomicity: user, employee, lalu salary awal.
	if _, err := h.userRepo.CreateUser(ctx, newUser); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": fmt.Sprintf("Server error in adding employee: %v", err)})
	}

	newEmployee := &models.Employee{
		UserID:        newUser.ID,
		EmployeeCode:  payload.EmployeeCode,
		Gender:        payload.Gender,
		MaritalStatus: payload.MaritalStatus,
		Designation:   payload.Designation,
		DepartmentID:  deptID,
		Salary:        payload.Salary,
	}
	if payload.DOB != "" {
		dob, _ := time.Parse("2006-01-02", payload.DOB)
		newEmployee.DOB = &dob
	}

	if _, err := h.empRepo.CreateEmployee(ctx, newEmployee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error in adding employee"})
	}

	initialSalary := &models.Salary{
		EmployeeID:   newEmployee.ID,
		DepartmentID: deptID,
		EmployeeCode: payload.EmployeeCode,
		BasicSalary:  payload.Salary,
		Allowance:    0,
		Deductions:   0,
		NetSalary:    payload.Salary,
		PayDate:      time.Now(),
	}
	if _, err := h.salaryRepo.CreateSalary(ctx, initialSalary); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error in adding employee"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Employee created",
	})
}

// ListEmployees godoc
// @Summary List employees
// @Description All employees joined with user public fields and department name
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,employees=[]models.EmployeeWithDetails}
// @Failure 500 {object} models.ErrorResponse
// @Router /employee [get]
func (h *EmployeeHandler) ListEmployees(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	employees, err := h.empRepo.GetAllEmployeesWithDetails(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error fetching employees"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"employees": employees,
	})
}

// GetEmployeeByID godoc
// @Summary Get employee by ID
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} object{success=bool,employee=models.EmployeeWithDetails}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /employee/{id} [get]
func (h *EmployeeHandler) GetEmployeeByID(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid employee ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.empRepo.GetEmployeeWithDetails(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error fetching employee"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Employee not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"employee": employee,
	})
}

// GetMyProfile godoc
// @Summary Get the caller's employee profile
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,employee=models.EmployeeWithDetails}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /employee/me/profile [get]
func (h *EmployeeHandler) GetMyProfile(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.empRepo.GetEmployeeWithDetailsByUserID(ctx, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error fetching employee profile"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Employee profile not found for this user"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"employee": employee,
	})
}

// UpdateEmployee godoc
// @Summary Update employee
// @Description Patches provided fields on the linked user and the employee record; replacing the avatar deletes the old file first
// @Tags Employees
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /employee/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid employee ID format"})
	}

	var payload models.EmployeeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	employee, err := h.empRepo.FindEmployeeByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error updating employee"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Employee not found"})
	}

	user, err := h.userRepo.FindUserByID(ctx, employee.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error updating employee"})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Linked user not found"})
	}

	userUpdate := bson.M{}
	if payload.Name != "" {
		userUpdate["name"] = payload.Name
	}
	if payload.Email != "" {
		userUpdate["email"] = payload.Email
	}
	if payload.Role != "" {
		userUpdate["role"] = payload.Role
	}

	if file, err := c.FormFile("avatar"); err == nil && file != nil {
		removeAvatarFile(user.Avatar)

		newAvatar, err := saveAvatar(c, file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to save avatar file"})
		}
		userUpdate["avatar"] = newAvatar
	}

	if len(userUpdate) > 0 {
		if _, err := h.userRepo.UpdateUser(ctx, user.ID, userUpdate); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": fmt.Sprintf("Server error updating employee: %v", err)})
		}
	}

	empUpdate := bson.M{}
	if payload.DOB != "" {
		dob, _ := time.Parse("2006-01-02", payload.DOB)
		empUpdate["dob"] = dob
	}
	if payload.Gender != "" {
		empUpdate["gender"] = payload.Gender
	}
	if payload.MaritalStatus != "" {
		empUpdate["marital_status"] = payload.MaritalStatus
	}
	if payload.Designation != "" {
		empUpdate["designation"] = payload.Designation
	}
	if payload.Department != "" {
		deptID, err := primitive.ObjectIDFromHex(payload.Department)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid department ID format"})
		}
		empUpdate["department_id"] = deptID
	}

	if len(empUpdate) > 0 {
		if _, err := h.empRepo.UpdateEmployee(ctx, objID, empUpdate); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error updating employee"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Employee updated successfully",
	})
}

// DeleteEmployee godoc
// @Summary Delete employee
// @Description Removes the avatar file (best-effort), then the user, the employee, and every salary and leave record owned by it
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /employee/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid employee ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	employee, err := h.empRepo.FindEmployeeByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error deleting employee"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Employee not found"})
	}

	user, err := h.userRepo.FindUserByID(ctx, employee.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error deleting employee"})
	}
	if user != nil {
		removeAvatarFile(user.Avatar)
	}

	if _, err := h.userRepo.DeleteUser(ctx, employee.UserID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error deleting employee"})
	}
	if _, err := h.empRepo.DeleteEmployee(ctx, objID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error deleting employee"})
	}
	if _, err := h.salaryRepo.DeleteSalariesByEmployee(ctx, objID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error deleting employee"})
	}
	if _, err := h.leaveRepo.DeleteLeavesByEmployee(ctx, objID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Error deleting employee"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Employee deleted successfully",
	})
}
