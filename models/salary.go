package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Salary struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	EmployeeID   primitive.ObjectID `json:"employee" bson:"employee_id,omitempty"`
	DepartmentID primitive.ObjectID `json:"department" bson:"department_id,omitempty"`
	EmployeeCode string             `json:"employeeId,omitempty" bson:"employee_code,omitempty"`
	BasicSalary  float64            `json:"basicSalary" bson:"basic_salary"`
	Allowance    float64            `json:"allowance" bson:"allowance"`
	Deductions   float64            `json:"deductions" bson:"deductions"`
	NetSalary    float64            `json:"netSalary" bson:"net_salary"`
	PayDate      time.Time          `json:"payDate" bson:"pay_date,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// SalaryCreatePayload memakai pointer supaya field uang yang tidak dikirim
// bisa dibedakan dari nilai 0.
type SalaryCreatePayload struct {
	Employee     string   `json:"employee" validate:"required"`
	Department   string   `json:"department" validate:"required"`
	EmployeeCode string   `json:"employeeId" validate:"omitempty,min=2,max=20"`
	BasicSalary  *float64 `json:"basicSalary" validate:"required,min=0"`
	Allowance    *float64 `json:"allowance" validate:"required,min=0"`
	Deductions   *float64 `json:"deductions" validate:"required,min=0"`
	PayDate      string   `json:"payDate" validate:"omitempty,datetime=2006-01-02"`
}

// Net menghitung gaji bersih: basic + allowance - deductions.
func (p *SalaryCreatePayload) Net() float64 {
	return *p.BasicSalary + *p.Allowance - *p.Deductions
}

// SalaryWithDetails adalah hasil $lookup ke employees, users, dan departments.
type SalaryWithDetails struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	EmployeeID     primitive.ObjectID `json:"employee" bson:"employee_id"`
	EmployeeCode   string             `json:"employeeId,omitempty" bson:"employee_code,omitempty"`
	BasicSalary    float64            `json:"basicSalary" bson:"basic_salary"`
	Allowance      float64            `json:"allowance" bson:"allowance"`
	Deductions     float64            `json:"deductions" bson:"deductions"`
	NetSalary      float64            `json:"netSalary" bson:"net_salary"`
	PayDate        time.Time          `json:"payDate" bson:"pay_date"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UserName       string             `json:"name" bson:"user_name"`
	UserEmail      string             `json:"email" bson:"user_email"`
	UserAvatar     string             `json:"avatar" bson:"user_avatar"`
	DepartmentName string             `json:"dept_name" bson:"department_name"`
}
