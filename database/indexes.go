package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsurePartitionIndexes creates the indexes every tenant partition needs. It
// runs once per tenant, when the partition is first bound.
func EnsurePartitionIndexes(ctx context.Context, p *TenantPartition) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	sets := []struct {
		collection *mongo.Collection
		indexes    []mongo.IndexModel
	}{
		{
			// DASHBOARD: status grouping and joining_date range scans
			collection: p.Employees(),
			indexes: []mongo.IndexModel{
				{
					Keys: bson.D{
						{Key: "is_deleted", Value: 1},
						{Key: "status", Value: 1},
					},
					Options: options.Index().SetName("idx_is_deleted_status"),
				},
				{
					Keys: bson.D{
						{Key: "is_deleted", Value: 1},
						{Key: "joining_date", Value: 1},
					},
					Options: options.Index().SetName("idx_is_deleted_joining_date"),
				},
			},
		},
		{
			// DASHBOARD: active-holiday fetch for the resolver
			collection: p.Holidays(),
			indexes: []mongo.IndexModel{
				{
					Keys: bson.D{
						{Key: "is_deleted", Value: 1},
						{Key: "is_active", Value: 1},
						{Key: "date", Value: 1},
					},
					Options: options.Index().SetName("idx_is_deleted_is_active_date"),
				},
			},
		},
		{
			// DASHBOARD: project status rollups
			collection: p.Projects(),
			indexes: []mongo.IndexModel{
				{
					Keys: bson.D{
						{Key: "is_deleted", Value: 1},
						{Key: "status", Value: 1},
					},
					Options: options.Index().SetName("idx_is_deleted_status"),
				},
			},
		},
		{
			// DASHBOARD: training distribution lookups
			collection: p.Trainings(),
			indexes: []mongo.IndexModel{
				{
					Keys: bson.D{
						{Key: "is_deleted", Value: 1},
						{Key: "training_type_id", Value: 1},
					},
					Options: options.Index().SetName("idx_is_deleted_training_type_id"),
				},
			},
		},
		{
			// DASHBOARD: resignation date-range scans (string dates)
			collection: p.Resignations(),
			indexes: []mongo.IndexModel{
				{
					Keys: bson.D{
						{Key: "is_deleted", Value: 1},
						{Key: "resignation_date", Value: 1},
					},
					Options: options.Index().SetName("idx_is_deleted_resignation_date"),
				},
			},
		},
	}

	for _, set := range sets {
		if _, err := set.collection.Indexes().CreateMany(ctx, set.indexes); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %v", set.collection.Name(), err)
		}
	}

	return nil
}
