package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Resignation struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployeeID primitive.ObjectID `json:"employee_id" bson:"employee_id"`
	// ResignationDate is a date-only string ("2006-01-02"); range filters on it
	// must use string comparisons.
	ResignationDate string   `json:"resignation_date" bson:"resignation_date" validate:"required,datetime=2006-01-02"`
	Reason          string   `json:"reason" bson:"reason"`
	NoticeDate      string   `json:"notice_date" bson:"notice_date" validate:"omitempty,datetime=2006-01-02"`
	IsDeleted       bool     `json:"is_deleted" bson:"is_deleted"`
	Metadata        Metadata `json:"metadata" bson:"metadata"`
}

type Termination struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployeeID primitive.ObjectID `json:"employee_id" bson:"employee_id"`
	// TerminationDate is a date-only string, same comparison rules as
	// Resignation.ResignationDate.
	TerminationDate string   `json:"termination_date" bson:"termination_date" validate:"required,datetime=2006-01-02"`
	TerminationType string   `json:"termination_type" bson:"termination_type"`
	Reason          string   `json:"reason" bson:"reason"`
	IsDeleted       bool     `json:"is_deleted" bson:"is_deleted"`
	Metadata        Metadata `json:"metadata" bson:"metadata"`
}

type Policy struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required"`
	Description string             `json:"description" bson:"description"`
	AppliesTo   string             `json:"applies_to" bson:"applies_to"`
	IsDeleted   bool               `json:"is_deleted" bson:"is_deleted"`
	Metadata    Metadata           `json:"metadata" bson:"metadata"`
}
