package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project statuses as written by the UI. Older tenants carry variants like
// "on-hold" and "onhold"; groupings must treat them all as equivalent.
const (
	ProjectStatusActive    = "Active"
	ProjectStatusOnHold    = "On Hold"
	ProjectStatusCompleted = "Completed"
	ProjectStatusCancelled = "Cancelled"
)

type Project struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name         string               `json:"name" bson:"name" validate:"required"`
	Description  string               `json:"description" bson:"description"`
	Status       string               `json:"status" bson:"status"`
	DepartmentID primitive.ObjectID   `json:"department_id" bson:"department_id"`
	Members      []primitive.ObjectID `json:"members" bson:"members"`
	StartDate    time.Time            `json:"start_date" bson:"start_date"`
	EndDate      time.Time            `json:"end_date" bson:"end_date"`
	IsDeleted    bool                 `json:"is_deleted" bson:"is_deleted"`
	Metadata     Metadata             `json:"metadata" bson:"metadata"`
}
