package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Department struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"dept_name"`
	Head        string             `bson:"head" json:"dept_head"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type DepartmentCreatePayload struct {
	Name        string `json:"dept_name" validate:"required,min=2,max=100"`
	Head        string `json:"dept_head" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type DepartmentUpdatePayload struct {
	Name        *string `json:"dept_name,omitempty" validate:"omitempty,min=2,max=100"`
	Head        *string `json:"dept_head,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}
