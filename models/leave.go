package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

type Leave struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	EmployeeID       primitive.ObjectID `json:"employee" bson:"employee_id,omitempty"`
	LeaveType        string             `json:"leaveType" bson:"leave_type,omitempty"`
	FromDate         time.Time          `json:"fromDate" bson:"from_date,omitempty"`
	ToDate           time.Time          `json:"toDate" bson:"to_date,omitempty"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	Status           string             `json:"status" bson:"status,omitempty"`
	IsSeenByEmployee bool               `json:"isSeenByEmployee" bson:"is_seen_by_employee"`
	AppliedAt        time.Time          `json:"appliedAt" bson:"applied_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type LeaveCreatePayload struct {
	LeaveType   string `json:"leaveType" validate:"required,oneof='Annual Leave' 'Sick Leave' 'Casual Leave' 'Others'"`
	FromDate    string `json:"fromDate" validate:"required,datetime=2006-01-02"`
	ToDate      string `json:"toDate" validate:"required,datetime=2006-01-02,gtefield=FromDate"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// LeaveStatusUpdatePayload hanya menerima dua status final.
// Tidak ada jalan kembali ke Pending.
type LeaveStatusUpdatePayload struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected"`
}

// LeaveWithDetails adalah hasil $lookup ke employees, users, dan departments.
type LeaveWithDetails struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id"`
	EmployeeID       primitive.ObjectID `json:"employee" bson:"employee_id"`
	EmployeeCode     string             `json:"employeeId" bson:"employee_code"`
	LeaveType        string             `json:"leaveType" bson:"leave_type"`
	FromDate         time.Time          `json:"fromDate" bson:"from_date"`
	ToDate           time.Time          `json:"toDate" bson:"to_date"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	Status           string             `json:"status" bson:"status"`
	IsSeenByEmployee bool               `json:"isSeenByEmployee" bson:"is_seen_by_employee"`
	AppliedAt        time.Time          `json:"appliedAt" bson:"applied_at"`
	UserName         string             `json:"name" bson:"user_name"`
	UserEmail        string             `json:"email" bson:"user_email"`
	UserAvatar       string             `json:"avatar" bson:"user_avatar"`
	DepartmentName   string             `json:"dept_name" bson:"department_name"`
}
