package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Sistem-Manajemen-HR/models"
	"Sistem-Manajemen-HR/pkg/password"
)

func newEmployeeHandlerWithMocks() (*EmployeeHandler, *MockEmployeeRepository, *MockUserRepository, *MockSalaryRepository, *MockLeaveRepository) {
	empRepo := new(MockEmployeeRepository)
	userRepo := new(MockUserRepository)
	salaryRepo := new(MockSalaryRepository)
	leaveRepo := new(MockLeaveRepository)
	handler := NewEmployeeHandler(empRepo, userRepo, salaryRepo, leaveRepo)
	return handler, empRepo, userRepo, salaryRepo, leaveRepo
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAddEmployeeSuccess(t *testing.T) {
	handler, empRepo, userRepo, salaryRepo, _ := newEmployeeHandlerWithMocks()

	deptID := primitive.NewObjectID()
	userRepo.On("FindUserByEmail", mock.Anything, "dewi@gmail.com").Return(nil, nil)
	userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).
		Return(&mongo.InsertOneResult{}, nil)
	empRepo.On("CreateEmployee", mock.Anything, mock.AnythingOfType("*models.Employee")).
		Return(&mongo.InsertOneResult{}, nil)
	salaryRepo.On("CreateSalary", mock.Anything, mock.AnythingOfType("*models.Salary")).
		Return(&mongo.InsertOneResult{}, nil)

	app := fiber.New()
	app.Post("/api/employee/add", handler.AddEmployee)

	form := url.Values{}
	form.Set("name", "Dewi Lestari")
	form.Set("email", "dewi@gmail.com")
	form.Set("password", "rahasia123")
	form.Set("role", "employee")
	form.Set("employeeId", "EMP-007")
	form.Set("dob", "1995-04-12")
	form.Set("gender", "Female")
	form.Set("maritalStatus", "Single")
	form.Set("designation", "Software Engineer")
	form.Set("department", deptID.Hex())
	form.Set("salary", "3000")

	resp, err := app.Test(formRequest("/api/employee/add", form), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	createdUser := userRepo.Calls[1].Arguments.Get(1).(*models.User)
	assert.Equal(t, "dewi@gmail.com", createdUser.Email)
	assert.NotEqual(t, "rahasia123", createdUser.Password, "password harus tersimpan sebagai hash")
	assert.True(t, password.CheckPasswordHash("rahasia123", createdUser.Password))

	createdEmployee := empRepo.Calls[0].Arguments.Get(1).(*models.Employee)
	assert.Equal(t, "EMP-007", createdEmployee.EmployeeCode)
	assert.Equal(t, deptID, createdEmployee.DepartmentID)

	// Record gaji awal: net = basic, tanpa tunjangan dan potongan
	initialSalary := salaryRepo.Calls[0].Arguments.Get(1).(*models.Salary)
	assert.Equal(t, 3000.0, initialSalary.BasicSalary)
	assert.Equal(t, 0.0, initialSalary.Allowance)
	assert.Equal(t, 0.0, initialSalary.Deductions)
	assert.Equal(t, 3000.0, initialSalary.NetSalary)
}

func TestAddEmployeeDuplicateEmail(t *testing.T) {
	handler, empRepo, userRepo, _, _ := newEmployeeHandlerWithMocks()

	existing := &models.User{ID: primitive.NewObjectID(), Email: "dewi@gmail.com"}
	userRepo.On("FindUserByEmail", mock.Anything, "dewi@gmail.com").Return(existing, nil)

	app := fiber.New()
	app.Post("/api/employee/add", handler.AddEmployee)

	form := url.Values{}
	form.Set("name", "Dewi Lestari")
	form.Set("email", "dewi@gmail.com")
	form.Set("password", "rahasia123")
	form.Set("role", "employee")
	form.Set("employeeId", "EMP-007")
	form.Set("department", primitive.NewObjectID().Hex())

	resp, err := app.Test(formRequest("/api/employee/add", form), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Email already in use", body["error"])
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	empRepo.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}

func TestAddEmployeeInvalidRole(t *testing.T) {
	handler, _, userRepo, _, _ := newEmployeeHandlerWithMocks()

	app := fiber.New()
	app.Post("/api/employee/add", handler.AddEmployee)

	form := url.Values{}
	form.Set("name", "Dewi Lestari")
	form.Set("email", "dewi@gmail.com")
	form.Set("password", "rahasia123")
	form.Set("role", "superuser")
	form.Set("employeeId", "EMP-007")
	form.Set("department", primitive.NewObjectID().Hex())

	resp, err := app.Test(formRequest("/api/employee/add", form), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	userRepo.AssertNotCalled(t, "FindUserByEmail", mock.Anything, mock.Anything)
}

func TestGetEmployeeByIDNotFound(t *testing.T) {
	handler, empRepo, _, _, _ := newEmployeeHandlerWithMocks()

	empID := primitive.NewObjectID()
	empRepo.On("GetEmployeeWithDetails", mock.Anything, empID).Return(nil, nil)

	app := fiber.New()
	app.Get("/api/employee/:id", handler.GetEmployeeByID)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/employee/"+empID.Hex(), nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetEmployeeByIDInvalidID(t *testing.T) {
	handler, empRepo, _, _, _ := newEmployeeHandlerWithMocks()

	app := fiber.New()
	app.Get("/api/employee/:id", handler.GetEmployeeByID)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/employee/bukan-objectid", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	empRepo.AssertNotCalled(t, "GetEmployeeWithDetails", mock.Anything, mock.Anything)
}

func TestGetMyProfile(t *testing.T) {
	handler, empRepo, _, _, _ := newEmployeeHandlerWithMocks()

	userID := primitive.NewObjectID()
	localsUser := &models.User{ID: userID, Role: models.RoleEmployee}
	details := &models.EmployeeWithDetails{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		EmployeeCode: "EMP-007",
		UserName:     "Dewi Lestari",
	}

	empRepo.On("GetEmployeeWithDetailsByUserID", mock.Anything, userID).Return(details, nil)

	app := fiber.New()
	app.Get("/api/employee/me/profile", withUser(localsUser), handler.GetMyProfile)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/employee/me/profile", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	employee := body["employee"].(map[string]interface{})
	assert.Equal(t, "EMP-007", employee["employeeId"])
	assert.Equal(t, "Dewi Lestari", employee["name"])
}

func TestDeleteEmployeeRemovesAllRecords(t *testing.T) {
	handler, empRepo, userRepo, salaryRepo, leaveRepo := newEmployeeHandlerWithMocks()

	empID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	employee := &models.Employee{ID: empID, UserID: userID}
	user := &models.User{ID: userID}

	empRepo.On("FindEmployeeByID", mock.Anything, empID).Return(employee, nil)
	userRepo.On("FindUserByID", mock.Anything, userID).Return(user, nil)
	userRepo.On("DeleteUser", mock.Anything, userID).Return(&mongo.DeleteResult{DeletedCount: 1}, nil)
	empRepo.On("DeleteEmployee", mock.Anything, empID).Return(&mongo.DeleteResult{DeletedCount: 1}, nil)
	salaryRepo.On("DeleteSalariesByEmployee", mock.Anything, empID).Return(&mongo.DeleteResult{DeletedCount: 1}, nil)
	leaveRepo.On("DeleteLeavesByEmployee", mock.Anything, empID).Return(&mongo.DeleteResult{DeletedCount: 2}, nil)

	app := fiber.New()
	app.Delete("/api/employee/:id", handler.DeleteEmployee)

	resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/employee/"+empID.Hex(), nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	userRepo.AssertCalled(t, "DeleteUser", mock.Anything, userID)
	empRepo.AssertCalled(t, "DeleteEmployee", mock.Anything, empID)
	salaryRepo.AssertCalled(t, "DeleteSalariesByEmployee", mock.Anything, empID)
	leaveRepo.AssertCalled(t, "DeleteLeavesByEmployee", mock.Anything, empID)
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	handler, empRepo, userRepo, _, _ := newEmployeeHandlerWithMocks()

	empID := primitive.NewObjectID()
	empRepo.On("FindEmployeeByID", mock.Anything, empID).Return(nil, nil)

	app := fiber.New()
	app.Delete("/api/employee/:id", handler.DeleteEmployee)

	resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/employee/"+empID.Hex(), nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	userRepo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}
