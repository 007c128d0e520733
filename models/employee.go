package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Employee struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	EmployeeCode  string             `json:"employeeId" bson:"employee_code,omitempty"`
	DOB           *time.Time         `json:"dob,omitempty" bson:"dob,omitempty"`
	Gender        string             `json:"gender" bson:"gender,omitempty"`
	MaritalStatus string             `json:"maritalStatus" bson:"marital_status,omitempty"`
	Designation   string             `json:"designation" bson:"designation,omitempty"`
	DepartmentID  primitive.ObjectID `json:"department" bson:"department_id,omitempty"`
	Salary        float64            `json:"salary" bson:"salary"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// EmployeeCreatePayload dibaca dari form multipart (file avatar terpisah).
type EmployeeCreatePayload struct {
	Name          string  `form:"name" validate:"required,min=3,max=100"`
	Email         string  `form:"email" validate:"required,email"`
	Password      string  `form:"password" validate:"required,min=6,max=50"`
	Role          string  `form:"role" validate:"required,oneof=admin employee"`
	EmployeeCode  string  `form:"employeeId" validate:"required,min=2,max=20"`
	DOB           string  `form:"dob" validate:"omitempty,datetime=2006-01-02"`
	Gender        string  `form:"gender" validate:"omitempty,oneof=Male Female Other"`
	MaritalStatus string  `form:"maritalStatus" validate:"omitempty,oneof=Single Married"`
	Designation   string  `form:"designation" validate:"omitempty,max=100"`
	Department    string  `form:"department" validate:"required"`
	Salary        float64 `form:"salary" validate:"min=0"`
}

type EmployeeUpdatePayload struct {
	Name          string `form:"name" validate:"omitempty,min=3,max=100"`
	Email         string `form:"email" validate:"omitempty,email"`
	Role          string `form:"role" validate:"omitempty,oneof=admin employee"`
	DOB           string `form:"dob" validate:"omitempty,datetime=2006-01-02"`
	Gender        string `form:"gender" validate:"omitempty,oneof=Male Female Other"`
	MaritalStatus string `form:"maritalStatus" validate:"omitempty,oneof=Single Married"`
	Designation   string `form:"designation" validate:"omitempty,max=100"`
	Department    string `form:"department" validate:"omitempty"`
}

// EmployeeWithDetails adalah hasil $lookup ke users dan departments.
type EmployeeWithDetails struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	UserID         primitive.ObjectID `json:"user_id" bson:"user_id"`
	EmployeeCode   string             `json:"employeeId" bson:"employee_code"`
	DOB            *time.Time         `json:"dob,omitempty" bson:"dob,omitempty"`
	Gender         string             `json:"gender" bson:"gender"`
	MaritalStatus  string             `json:"maritalStatus" bson:"marital_status"`
	Designation    string             `json:"designation" bson:"designation"`
	DepartmentID   primitive.ObjectID `json:"department_id" bson:"department_id"`
	Salary         float64            `json:"salary" bson:"salary"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
	UserName       string             `json:"name" bson:"user_name"`
	UserEmail      string             `json:"email" bson:"user_email"`
	UserAvatar     string             `json:"avatar" bson:"user_avatar"`
	UserRole       string             `json:"role" bson:"user_role"`
	DepartmentName string             `json:"dept_name" bson:"department_name"`
}
