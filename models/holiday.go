package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Holiday struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required"`
	Date        time.Time          `json:"date" bson:"date" validate:"required"`
	Description string             `json:"description" bson:"description"`
	// RepeatsEveryYear marks the holiday as year-agnostic: only the month and
	// day of Date matter going forward, even though Date carries a full year.
	RepeatsEveryYear bool               `json:"repeats_every_year" bson:"repeats_every_year"`
	HolidayTypeID    primitive.ObjectID `json:"holiday_type_id" bson:"holiday_type_id"`
	IsActive         bool               `json:"is_active" bson:"is_active"`
	IsDeleted        bool               `json:"is_deleted" bson:"is_deleted"`
	Metadata         Metadata           `json:"metadata" bson:"metadata"`
}

type HolidayType struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	IsDeleted bool               `json:"is_deleted" bson:"is_deleted"`
	Metadata  Metadata           `json:"metadata" bson:"metadata"`
}

// ResolvedHoliday is derived per request and never persisted. OriginalDate is
// the stored date unchanged; ResolvedDate is the occurrence to use this cycle
// (same as OriginalDate for non-repeating holidays, the current or next
// occurrence of month+day for repeating ones).
type ResolvedHoliday struct {
	ID               primitive.ObjectID `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	RepeatsEveryYear bool               `json:"repeats_every_year"`
	HolidayTypeID    primitive.ObjectID `json:"holiday_type_id"`
	OriginalDate     time.Time          `json:"original_date"`
	ResolvedDate     time.Time          `json:"resolved_date"`
}
