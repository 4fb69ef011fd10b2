package repository

import (
	"context"
	"fmt"
	"time"

	"hrmproject/database"
	"hrmproject/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HolidayRepository interface {
	Create(ctx context.Context, holiday *models.Holiday) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Holiday, error)
	GetAll(ctx context.Context) ([]models.Holiday, error)
	Update(ctx context.Context, id primitive.ObjectID, holiday *models.Holiday) error
	SoftDelete(ctx context.Context, id primitive.ObjectID, updatedBy string) error
	GetTypes(ctx context.Context) ([]models.HolidayType, error)
}

type holidayRepository struct {
	partition *database.TenantPartition
}

func NewHolidayRepository(partition *database.TenantPartition) HolidayRepository {
	return &holidayRepository{partition: partition}
}

func (r *holidayRepository) Create(ctx context.Context, holiday *models.Holiday) error {
	holiday.ID = primitive.NewObjectID()

	_, err := r.partition.Holidays().InsertOne(ctx, holiday)
	return err
}

func (r *holidayRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Holiday, error) {
	var holiday models.Holiday
	err := r.partition.Holidays().FindOne(ctx, bson.M{"_id": id, "is_deleted": bson.M{"$ne": true}}).Decode(&holiday)
	if err != nil {
		return nil, err
	}

	return &holiday, nil
}

func (r *holidayRepository) GetAll(ctx context.Context) ([]models.Holiday, error) {
	opts := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := r.partition.Holidays().Find(ctx, notDeleted(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var holidays []models.Holiday
	if err = cursor.All(ctx, &holidays); err != nil {
		return nil, err
	}

	return holidays, nil
}

func (r *holidayRepository) Update(ctx context.Context, id primitive.ObjectID, holiday *models.Holiday) error {
	filter := bson.M{"_id": id, "is_deleted": bson.M{"$ne": true}}
	result, err := r.partition.Holidays().UpdateOne(ctx, filter, bson.M{"$set": holiday})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no holiday found with id %s", id.Hex())
	}

	return nil
}

func (r *holidayRepository) SoftDelete(ctx context.Context, id primitive.ObjectID, updatedBy string) error {
	update := bson.M{
		"$set": bson.M{
			"is_deleted":          true,
			"metadata.updated_at": time.Now(),
			"metadata.updated_by": updatedBy,
		},
	}

	filter := bson.M{"_id": id, "is_deleted": bson.M{"$ne": true}}
	result, err := r.partition.Holidays().UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no holiday found with id %s or already deleted", id.Hex())
	}

	return nil
}

func (r *holidayRepository) GetTypes(ctx context.Context) ([]models.HolidayType, error) {
	cursor, err := r.partition.HolidayTypes().Find(ctx, notDeleted())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var types []models.HolidayType
	if err = cursor.All(ctx, &types); err != nil {
		return nil, err
	}

	return types, nil
}
