package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TrainingStatusScheduled = "Scheduled"
	TrainingStatusOngoing   = "Ongoing"
	TrainingStatusCompleted = "Completed"
	TrainingStatusCancelled = "Cancelled"
)

type Training struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title          string               `json:"title" bson:"title" validate:"required"`
	Description    string               `json:"description" bson:"description"`
	TrainingTypeID primitive.ObjectID   `json:"training_type_id" bson:"training_type_id"`
	TrainerID      primitive.ObjectID   `json:"trainer_id" bson:"trainer_id"`
	Status         string               `json:"status" bson:"status"`
	StartDate      time.Time            `json:"start_date" bson:"start_date"`
	EndDate        time.Time            `json:"end_date" bson:"end_date"`
	Attendees      []primitive.ObjectID `json:"attendees" bson:"attendees"`
	IsDeleted      bool                 `json:"is_deleted" bson:"is_deleted"`
	Metadata       Metadata             `json:"metadata" bson:"metadata"`
}

type Trainer struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Email     string             `json:"email" bson:"email" validate:"omitempty,email"`
	Expertise string             `json:"expertise" bson:"expertise"`
	IsDeleted bool               `json:"is_deleted" bson:"is_deleted"`
	Metadata  Metadata           `json:"metadata" bson:"metadata"`
}

type TrainingType struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	IsDeleted bool               `json:"is_deleted" bson:"is_deleted"`
	Metadata  Metadata           `json:"metadata" bson:"metadata"`
}
