package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Sistem-Manajemen-HR/models"
)

func newDepartmentHandlerWithMocks() (*DepartmentHandler, *MockDepartmentRepository, *MockEmployeeRepository, *MockUserRepository, *MockSalaryRepository, *MockLeaveRepository) {
	deptRepo := new(MockDepartmentRepository)
	empRepo := new(MockEmployeeRepository)
	userRepo := new(MockUserRepository)
	salaryRepo := new(MockSalaryRepository)
	leaveRepo := new(MockLeaveRepository)
	handler := NewDepartmentHandler(deptRepo, empRepo, userRepo, salaryRepo, leaveRepo)
	return handler, deptRepo, empRepo, userRepo, salaryRepo, leaveRepo
}

func TestAddDepartment(t *testing.T) {
	handler, deptRepo, _, _, _, _ := newDepartmentHandlerWithMocks()

	deptRepo.On("CreateDepartment", mock.Anything, mock.AnythingOfType("*models.Department")).
		Return(&mongo.InsertOneResult{}, nil)

	app := fiber.New()
	app.Post("/api/department/add", handler.AddDepartment)

	req := jsonRequest(http.MethodPost, "/api/department/add", fiber.Map{
		"dept_name": "Teknologi Informasi",
		"dept_head": "Siti Rahayu",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	created := deptRepo.Calls[0].Arguments.Get(1).(*models.Department)
	assert.Equal(t, "Teknologi Informasi", created.Name)
}

func TestUpdateDepartmentNotFound(t *testing.T) {
	handler, deptRepo, _, _, _, _ := newDepartmentHandlerWithMocks()

	deptID := primitive.NewObjectID()
	deptRepo.On("UpdateDepartment", mock.Anything, deptID, mock.AnythingOfType("primitive.M")).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil)

	app := fiber.New()
	app.Put("/api/department/:id", handler.UpdateDepartment)

	req := jsonRequest(http.MethodPut, "/api/department/"+deptID.Hex(), fiber.Map{
		"dept_name": "Nama Baru",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateDepartmentNoFields(t *testing.T) {
	handler, deptRepo, _, _, _, _ := newDepartmentHandlerWithMocks()

	app := fiber.New()
	app.Put("/api/department/:id", handler.UpdateDepartment)

	req := jsonRequest(http.MethodPut, "/api/department/"+primitive.NewObjectID().Hex(), fiber.Map{})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	deptRepo.AssertNotCalled(t, "UpdateDepartment", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteDepartmentCascade(t *testing.T) {
	handler, deptRepo, empRepo, userRepo, salaryRepo, leaveRepo := newDepartmentHandlerWithMocks()

	deptID := primitive.NewObjectID()
	emp1 := models.Employee{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), DepartmentID: deptID}
	emp2 := models.Employee{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), DepartmentID: deptID}
	employees := []models.Employee{emp1, emp2}
	employeeIDs := []primitive.ObjectID{emp1.ID, emp2.ID}
	userIDs := []primitive.ObjectID{emp1.UserID, emp2.UserID}

	empRepo.On("FindEmployeesByDepartment", mock.Anything, deptID).Return(employees, nil)
	salaryRepo.On("DeleteSalariesByEmployeeIDs", mock.Anything, employeeIDs).
		Return(&mongo.DeleteResult{DeletedCount: 2}, nil)
	leaveRepo.On("DeleteLeavesByEmployeeIDs", mock.Anything, employeeIDs).
		Return(&mongo.DeleteResult{DeletedCount: 3}, nil)
	empRepo.On("DeleteEmployeesByIDs", mock.Anything, employeeIDs).
		Return(&mongo.DeleteResult{DeletedCount: 2}, nil)
	userRepo.On("DeleteUsersByIDs", mock.Anything, userIDs).
		Return(&mongo.DeleteResult{DeletedCount: 2}, nil)
	deptRepo.On("DeleteDepartment", mock.Anything, deptID).
		Return(&mongo.DeleteResult{DeletedCount: 1}, nil)

	app := fiber.New()
	app.Delete("/api/department/:id", handler.DeleteDepartment)

	resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/department/"+deptID.Hex(), nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	salaryRepo.AssertCalled(t, "DeleteSalariesByEmployeeIDs", mock.Anything, employeeIDs)
	leaveRepo.AssertCalled(t, "DeleteLeavesByEmployeeIDs", mock.Anything, employeeIDs)
	empRepo.AssertCalled(t, "DeleteEmployeesByIDs", mock.Anything, employeeIDs)
	userRepo.AssertCalled(t, "DeleteUsersByIDs", mock.Anything, userIDs)
	deptRepo.AssertCalled(t, "DeleteDepartment", mock.Anything, deptID)
}

func TestDeleteEmptyDepartmentSkipsChildDeletes(t *testing.T) {
	handler, deptRepo, empRepo, userRepo, salaryRepo, leaveRepo := newDepartmentHandlerWithMocks()

	deptID := primitive.NewObjectID()
	empRepo.On("FindEmployeesByDepartment", mock.Anything, deptID).Return([]models.Employee{}, nil)
	deptRepo.On("DeleteDepartment", mock.Anything, deptID).
		Return(&mongo.DeleteResult{DeletedCount: 1}, nil)

	app := fiber.New()
	app.Delete("/api/department/:id", handler.DeleteDepartment)

	resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/department/"+deptID.Hex(), nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	salaryRepo.AssertNotCalled(t, "DeleteSalariesByEmployeeIDs", mock.Anything, mock.Anything)
	leaveRepo.AssertNotCalled(t, "DeleteLeavesByEmployeeIDs", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "DeleteUsersByIDs", mock.Anything, mock.Anything)
}

func TestDeleteDepartmentNotFound(t *testing.T) {
	handler, deptRepo, empRepo, _, _, _ := newDepartmentHandlerWithMocks()

	deptID := primitive.NewObjectID()
	empRepo.On("FindEmployeesByDepartment", mock.Anything, deptID).Return([]models.Employee{}, nil)
	deptRepo.On("DeleteDepartment", mock.Anything, deptID).
		Return(&mongo.DeleteResult{DeletedCount: 0}, nil)

	app := fiber.New()
	app.Delete("/api/department/:id", handler.DeleteDepartment)

	resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/department/"+deptID.Hex(), nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateDepartmentBuildsPartialPatch(t *testing.T) {
	handler, deptRepo, _, _, _, _ := newDepartmentHandlerWithMocks()

	deptID := primitive.NewObjectID()
	deptRepo.On("UpdateDepartment", mock.Anything, deptID, mock.AnythingOfType("primitive.M")).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	app := fiber.New()
	app.Put("/api/department/:id", handler.UpdateDepartment)

	req := jsonRequest(http.MethodPut, "/api/department/"+deptID.Hex(), fiber.Map{
		"dept_head": "Agus Wijaya",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	patch := deptRepo.Calls[0].Arguments.Get(2).(bson.M)
	assert.Equal(t, "Agus Wijaya", patch["head"])
	_, hasName := patch["name"]
	assert.False(t, hasName, "field yang tidak dikirim tidak boleh ikut di patch")
}
