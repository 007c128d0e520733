package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Sistem-Manajemen-HR/config"
	"Sistem-Manajemen-HR/models"
)

type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) (*mongo.InsertOneResult, error)
	FindEmployeeByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	FindEmployeeByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Employee, error)
	FindEmployeesByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]models.Employee, error)
	GetAllEmployeesWithDetails(ctx context.Context) ([]models.EmployeeWithDetails, error)
	GetEmployeeWithDetails(ctx context.Context, id primitive.ObjectID) (*models.EmployeeWithDetails, error)
	GetEmployeeWithDetailsByUserID(ctx context.Context, userID primitive.ObjectID) (*models.EmployeeWithDetails, error)
	UpdateEmployee(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	UpdateEmployeeSalary(ctx context.Context, id primitive.ObjectID, netSalary float64) error
	DeleteEmployee(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	DeleteEmployeesByIDs(ctx context.Context, ids []primitive.ObjectID) (*mongo.DeleteResult, error)
}

type employeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository() EmployeeRepository {
	return &employeeRepository{
		collection: config.GetCollection(config.EmployeeCollection),
	}
}

func (r *employeeRepository) CreateEmployee(ctx context.Context, employee *models.Employee) (*mongo.InsertOneResult, error) {
	employee.ID = primitive.NewObjectID()
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat employee: %w", err)
	}
	return result, nil
}

func (r *employeeRepository) FindEmployeeByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan employee berdasarkan ID: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepository) FindEmployeeByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan employee berdasarkan user ID: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepository) FindEmployeesByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]models.Employee, error) {
	var employees []models.Employee
	cursor, err := r.collection.Find(ctx, bson.M{"department_id": departmentID})
	if err != nil {
		return nil, fmt.Errorf("gagal mencari employee berdasarkan departemen: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("gagal mendecode employee: %w", err)
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	return employees, nil
}

// detailsPipeline melakukan lookup ke users dan departments lalu
// meratakan field yang dibutuhkan response API.
func (r *employeeRepository) detailsPipeline(match bson.D) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	pipeline = append(pipeline,
		bson.D{{
			Key: "$lookup",
			Value: bson.D{
				{Key: "from", Value: config.UserCollection},
				{Key: "localField", Value: "user_id"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "user_info"},
			},
		}},
		bson.D{{
			Key: "$unwind",
			Value: bson.D{
				{Key: "path", Value: "$user_info"},
				{Key: "preserveNullAndEmptyArrays", Value: false},
			},
		}},
		bson.D{{
			Key: "$lookup",
			Value: bson.D{
				{Key: "from", Value: config.DepartmentCollection},
				{Key: "localField", Value: "department_id"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "department_info"},
			},
		}},
		bson.D{{
			Key: "$unwind",
			Value: bson.D{
				{Key: "path", Value: "$department_info"},
				{Key: "preserveNullAndEmptyArrays", Value: true},
			},
		}},
		bson.D{{
			Key: "$project",
			Value: bson.D{
				{Key: "_id", Value: 1},
				{Key: "user_id", Value: 1},
				{Key: "employee_code", Value: 1},
				{Key: "dob", Value: 1},
				{Key: "gender", Value: 1},
				{Key: "marital_status", Value: 1},
				{Key: "designation", Value: 1},
				{Key: "department_id", Value: 1},
				{Key: "salary", Value: 1},
				{Key: "created_at", Value: 1},
				{Key: "updated_at", Value: 1},
				{Key: "user_name", Value: "$user_info.name"},
				{Key: "user_email", Value: "$user_info.email"},
				{Key: "user_avatar", Value: "$user_info.avatar"},
				{Key: "user_role", Value: "$user_info.role"},
				{Key: "department_name", Value: "$department_info.name"},
			},
		}},
	)

	return pipeline
}

func (r *employeeRepository) GetAllEmployeesWithDetails(ctx context.Context) ([]models.EmployeeWithDetails, error) {
	cursor, err := r.collection.Aggregate(ctx, r.detailsPipeline(nil))
	if err != nil {
		return nil, fmt.Errorf("gagal melakukan agregasi employee dengan detail: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.EmployeeWithDetails
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("gagal mendecode employee dengan detail: %w", err)
	}
	if employees == nil {
		employees = []models.EmployeeWithDetails{}
	}
	return employees, nil
}

func (r *employeeRepository) GetEmployeeWithDetails(ctx context.Context, id primitive.ObjectID) (*models.EmployeeWithDetails, error) {
	return r.aggregateOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *employeeRepository) GetEmployeeWithDetailsByUserID(ctx context.Context, userID primitive.ObjectID) (*models.EmployeeWithDetails, error) {
	return r.aggregateOne(ctx, bson.D{{Key: "user_id", Value: userID}})
}

func (r *employeeRepository) aggregateOne(ctx context.Context, match bson.D) (*models.EmployeeWithDetails, error) {
	cursor, err := r.collection.Aggregate(ctx, r.detailsPipeline(match))
	if err != nil {
		return nil, fmt.Errorf("gagal melakukan agregasi employee dengan detail: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.EmployeeWithDetails
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("gagal mendecode employee dengan detail: %w", err)
	}
	if len(employees) == 0 {
		return nil, nil
	}
	return &employees[0], nil
}

func (r *employeeRepository) UpdateEmployee(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate employee: %w", err)
	}
	return result, nil
}

func (r *employeeRepository) UpdateEmployeeSalary(ctx context.Context, id primitive.ObjectID, netSalary float64) error {
	update := bson.M{
		"$set": bson.M{
			"salary":     netSalary,
			"updated_at": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("gagal mengupdate salary employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) DeleteEmployee(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus employee: %w", err)
	}
	return result, nil
}

func (r *employeeRepository) DeleteEmployeesByIDs(ctx context.Context, ids []primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus banyak employee: %w", err)
	}
	return result, nil
}
