package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee statuses stored in the database. Matching against them is
// case-insensitive and ignores spaces/hyphens (see utils.NormalizeStatus).
const (
	EmployeeStatusActive   = "Active"
	EmployeeStatusOnLeave  = "On Leave"
	EmployeeStatusInactive = "Inactive"
)

type Employee struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName     string             `json:"first_name" bson:"first_name" validate:"required"`
	LastName      string             `json:"last_name" bson:"last_name" validate:"required"`
	Email         string             `json:"email" bson:"email" validate:"required,email"`
	Phone         string             `json:"phone" bson:"phone"`
	Status        string             `json:"status" bson:"status"`
	DepartmentID  primitive.ObjectID `json:"department_id" bson:"department_id"`
	DesignationID primitive.ObjectID `json:"designation_id" bson:"designation_id"`
	// JoiningDate is stored as a date-only string ("2006-01-02") and must be
	// range-filtered with string comparisons, never with time.Time values.
	JoiningDate string   `json:"joining_date" bson:"joining_date" validate:"required,datetime=2006-01-02"`
	IsDeleted   bool     `json:"is_deleted" bson:"is_deleted"`
	Metadata    Metadata `json:"metadata" bson:"metadata"`
}

type Department struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Description string             `json:"description" bson:"description"`
	IsActive    bool               `json:"is_active" bson:"is_active"`
	IsDeleted   bool               `json:"is_deleted" bson:"is_deleted"`
	Metadata    Metadata           `json:"metadata" bson:"metadata"`
}

type Designation struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" validate:"required"`
	DepartmentID primitive.ObjectID `json:"department_id" bson:"department_id"`
	IsDeleted    bool               `json:"is_deleted" bson:"is_deleted"`
	Metadata     Metadata           `json:"metadata" bson:"metadata"`
}
