package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Sistem-Manajemen-HR/config"
	"Sistem-Manajemen-HR/models"
)

type SalaryRepository interface {
	CreateSalary(ctx context.Context, salary *models.Salary) (*mongo.InsertOneResult, error)
	DeleteSalariesByEmployeeCode(ctx context.Context, employeeCode string) (*mongo.DeleteResult, error)
	DeleteSalariesByEmployee(ctx context.Context, employeeID primitive.ObjectID) (*mongo.DeleteResult, error)
	DeleteSalariesByEmployeeIDs(ctx context.Context, employeeIDs []primitive.ObjectID) (*mongo.DeleteResult, error)
	GetAllSalariesWithDetails(ctx context.Context) ([]models.SalaryWithDetails, error)
	FindSalariesByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Salary, error)
}

type salaryRepository struct {
	collection *mongo.Collection
}

func NewSalaryRepository() SalaryRepository {
	return &salaryRepository{
		collection: config.GetCollection(config.SalaryCollection),
	}
}

func (r *salaryRepository) CreateSalary(ctx context.Context, salary *models.Salary) (*mongo.InsertOneResult, error) {
	salary.ID = primitive.NewObjectID()
	salary.CreatedAt = time.Now()
	salary.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, salary)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat salary: %w", err)
	}
	return result, nil
}

func (r *salaryRepository) DeleteSalariesByEmployeeCode(ctx context.Context, employeeCode string) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"employee_code": employeeCode})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus salary berdasarkan kode employee: %w", err)
	}
	return result, nil
}

func (r *salaryRepository) DeleteSalariesByEmployee(ctx context.Context, employeeID primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus salary berdasarkan employee: %w", err)
	}
	return result, nil
}

func (r *salaryRepository) DeleteSalariesByEmployeeIDs(ctx context.Context, employeeIDs []primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"employee_id": bson.M{"$in": employeeIDs}})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus banyak salary: %w", err)
	}
	return result, nil
}

func (r *salaryRepository) GetAllSalariesWithDetails(ctx context.Context) ([]models.SalaryWithDetails, error) {
	pipeline := mongo.Pipeline{
		bson.D{{
			Key: "$lookup",
			Value: bson.D{
				{Key: "from", Value: config.EmployeeCollection},
				{Key: "localField", Value: "employee_id"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "employee_info"},
			},
		}},
		bson.D{{
			Key: "$unwind",
			Value: bson.D{
				{Key: "path", Value: "$employee_info"},
				{Key: "preserveNullAndEmptyArrays", Value: false},
			},
		}},
		bson.D{{
			Key: "$lookup",
			Value: bson.D{
				{Key: "from", Value: config.UserCollection},
				{Key: "localField", Value: "employee_info.user_id"},
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
				{Key: "employee_id", Value: 1},
				{Key: "employee_code", Value: 1},
				{Key: "basic_salary", Value: 1},
				{Key: "allowance", Value: 1},
				{Key: "deductions", Value: 1},
				{Key: "net_salary", Value: 1},
				{Key: "pay_date", Value: 1},
				{Key: "created_at", Value: 1},
				{Key: "user_name", Value: "$user_info.name"},
				{Key: "user_email", Value: "$user_info.email"},
				{Key: "user_avatar", Value: "$user_info.avatar"},
				{Key: "department_name", Value: "$department_info.name"},
			},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal melakukan agregasi salary dengan detail: %w", err)
	}
	defer cursor.Close(ctx)

	var salaries []models.SalaryWithDetails
	if err = cursor.All(ctx, &salaries); err != nil {
		return nil, fmt.Errorf("gagal mendecode salary dengan detail: %w", err)
	}
	if salaries == nil {
		salaries = []models.SalaryWithDetails{}
	}
	return salaries, nil
}

func (r *salaryRepository) FindSalariesByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Salary, error) {
	filter := bson.M{"employee_id": employeeID}
	opts := options.Find().SetSort(bson.D{
		{Key: "pay_date", Value: -1},
		{Key: "created_at", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari salary berdasarkan employee: %w", err)
	}
	defer cursor.Close(ctx)

	var salaries []models.Salary
	if err = cursor.All(ctx, &salaries); err != nil {
		return nil, fmt.Errorf("gagal mendecode salary: %w", err)
	}
	if salaries == nil {
		salaries = []models.Salary{}
	}
	return salaries, nil
}
