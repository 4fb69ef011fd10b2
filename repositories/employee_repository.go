package repository

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"hrmproject/database"
	"hrmproject/models"
	"hrmproject/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	List(ctx context.Context, status string, page, pageSize int64) ([]models.Employee, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, employee *models.Employee) error
	SoftDelete(ctx context.Context, id primitive.ObjectID, updatedBy string) error
}

type employeeRepository struct {
	partition *database.TenantPartition
}

func NewEmployeeRepository(partition *database.TenantPartition) EmployeeRepository {
	return &employeeRepository{partition: partition}
}

func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	employee.ID = primitive.NewObjectID()

	_, err := r.partition.Employees().InsertOne(ctx, employee)
	return err
}

func (r *employeeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	var employee models.Employee
	err := r.partition.Employees().FindOne(ctx, bson.M{"_id": id, "is_deleted": bson.M{"$ne": true}}).Decode(&employee)
	if err != nil {
		return nil, err
	}

	return &employee, nil
}

// List returns one page of employees plus the total match count. An empty
// status matches everyone; otherwise the status filter is case-insensitive
// and ignores spaces and hyphens.
func (r *employeeRepository) List(ctx context.Context, status string, page, pageSize int64) ([]models.Employee, int64, error) {
	filter := notDeleted()
	if status != "" {
		filter["status"] = primitive.Regex{Pattern: statusPattern(status), Options: "i"}
	}

	total, err := r.partition.Employees().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	opts := options.Find().
		SetSort(bson.M{"metadata.created_at": -1}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	cursor, err := r.partition.Employees().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// statusPattern builds an anchored regex matching any stored variant of the
// status ("On Leave", "on-leave", ...), allowing a single space or hyphen
// between characters of the normalized form but not at the ends.
func statusPattern(status string) string {
	var parts []string
	for _, ch := range utils.NormalizeStatus(status) {
		parts = append(parts, regexp.QuoteMeta(string(ch)))
	}

	return "^" + strings.Join(parts, "[ -]?") + "$"
}

func (r *employeeRepository) Update(ctx context.Context, id primitive.ObjectID, employee *models.Employee) error {
	filter := bson.M{"_id": id, "is_deleted": bson.M{"$ne": true}}
	result, err := r.partition.Employees().UpdateOne(ctx, filter, bson.M{"$set": employee})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no employee found with id %s", id.Hex())
	}

	return nil
}

func (r *employeeRepository) SoftDelete(ctx context.Context, id primitive.ObjectID, updatedBy string) error {
	update := bson.M{
		"$set": bson.M{
			"is_deleted":          true,
			"metadata.updated_at": time.Now(),
			"metadata.updated_by": updatedBy,
		},
	}

	filter := bson.M{"_id": id, "is_deleted": bson.M{"$ne": true}}
	result, err := r.partition.Employees().UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no employee found with id %s or already deleted", id.Hex())
	}

	return nil
}
