package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Sistem-Manajemen-HR/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, updateData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	args := m.Called(ctx, id, hashedPassword)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

func (m *MockUserRepository) DeleteUsersByIDs(ctx context.Context, ids []primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) CreateDepartment(ctx context.Context, department *models.Department) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockDepartmentRepository) GetAllDepartments(ctx context.Context) ([]models.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) GetDepartmentByID(ctx context.Context, id primitive.ObjectID) (*models.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) UpdateDepartment(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, updateData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockDepartmentRepository) DeleteDepartment(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) CreateEmployee(ctx context.Context, employee *models.Employee) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Employee, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeesByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]models.Employee, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetAllEmployeesWithDetails(ctx context.Context) ([]models.EmployeeWithDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EmployeeWithDetails), args.Error(1)
}

func (m *MockEmployeeRepository) GetEmployeeWithDetails(ctx context.Context, id primitive.ObjectID) (*models.EmployeeWithDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmployeeWithDetails), args.Error(1)
}

func (m *MockEmployeeRepository) GetEmployeeWithDetailsByUserID(ctx context.Context, userID primitive.ObjectID) (*models.EmployeeWithDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmployeeWithDetails), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, updateData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployeeSalary(ctx context.Context, id primitive.ObjectID, netSalary float64) error {
	args := m.Called(ctx, id, netSalary)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteEmployeesByIDs(ctx context.Context, ids []primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

type MockSalaryRepository struct {
	mock.Mock
}

func (m *MockSalaryRepository) CreateSalary(ctx context.Context, salary *models.Salary) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, salary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockSalaryRepository) DeleteSalariesByEmployeeCode(ctx context.Context, employeeCode string) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, employeeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

func (m *MockSalaryRepository) DeleteSalariesByEmployee(ctx context.Context, employeeID primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

func (m *MockSalaryRepository) DeleteSalariesByEmployeeIDs(ctx context.Context, employeeIDs []primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, employeeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

func (m *MockSalaryRepository) GetAllSalariesWithDetails(ctx context.Context) ([]models.SalaryWithDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SalaryWithDetails), args.Error(1)
}

func (m *MockSalaryRepository) FindSalariesByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Salary, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Salary), args.Error(1)
}

type MockLeaveRepository struct {
	mock.Mock
}

func (m *MockLeaveRepository) CreateLeave(ctx context.Context, leave *models.Leave) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, leave)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockLeaveRepository) FindLeaveByID(ctx context.Context, id primitive.ObjectID) (*models.Leave, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Leave), args.Error(1)
}

func (m *MockLeaveRepository) FindLeavesByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Leave, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Leave), args.Error(1)
}

func (m *MockLeaveRepository) GetAllLeavesWithDetails(ctx context.Context) ([]models.LeaveWithDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaveWithDetails), args.Error(1)
}

func (m *MockLeaveRepository) GetLeaveWithDetails(ctx context.Context, id primitive.ObjectID) (*models.LeaveWithDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeaveWithDetails), args.Error(1)
}

func (m *MockLeaveRepository) UpdateLeaveStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockLeaveRepository) FindUnseenDecidedLeaves(ctx context.Context, employeeID primitive.ObjectID) ([]models.Leave, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Leave), args.Error(1)
}

func (m *MockLeaveRepository) MarkLeavesSeen(ctx context.Context, employeeID primitive.ObjectID) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockLeaveRepository) DeleteLeavesByEmployee(ctx context.Context, employeeID primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

func (m *MockLeaveRepository) DeleteLeavesByEmployeeIDs(ctx context.Context, employeeIDs []primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, employeeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}
