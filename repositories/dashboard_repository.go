package repository

import (
	"context"
	"sort"
	"time"

	"hrmproject/database"
	"hrmproject/models"
	"hrmproject/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DateOnlyFormat is the layout of date-only string fields (joining_date,
// resignation_date, termination_date). Range filters on those fields compare
// formatted strings; using time.Time values against them silently matches
// nothing.
const DateOnlyFormat = "2006-01-02"

// DashboardRepository is the fixed catalogue of read/aggregate queries the
// dashboard issues against one tenant partition. Each method is independent;
// the service layer fans them out concurrently and substitutes defaults on
// failure.
type DashboardRepository interface {
	CountEmployees(ctx context.Context) (total int64, active int64, err error)
	CountNewJoiners(ctx context.Context, year int) (int64, error)
	CountResignations(ctx context.Context) (int64, error)
	CountTerminations(ctx context.Context) (int64, error)
	EmployeesByDepartment(ctx context.Context) ([]models.GroupCount, error)
	EmployeesByStatus(ctx context.Context) ([]models.GroupCount, error)
	DepartmentStats(ctx context.Context) (models.DepartmentStats, error)
	DesignationStats(ctx context.Context) (models.DesignationStats, error)
	PolicyStats(ctx context.Context, recentSince time.Time) (models.PolicyStats, error)
	HolidayStats(ctx context.Context) (models.HolidayStats, error)
	TrainingStats(ctx context.Context, year int) (models.TrainingStats, error)
	ProjectStats(ctx context.Context) (models.ProjectStats, error)
	ResourceStats(ctx context.Context) (models.ResourceStats, error)
	RecentActivities(ctx context.Context, since time.Time, limit int) ([]models.Activity, error)
	DepartmentWiseProjects(ctx context.Context) ([]models.GroupCount, error)
	TrainingDistribution(ctx context.Context) ([]models.GroupCount, error)
	ActiveHolidays(ctx context.Context) ([]models.Holiday, error)
}

type dashboardRepository struct {
	partition *database.TenantPartition
}

func NewDashboardRepository(partition *database.TenantPartition) DashboardRepository {
	return &dashboardRepository{partition: partition}
}

func notDeleted() bson.M {
	return bson.M{"is_deleted": bson.M{"$ne": true}}
}

// statusIs builds a case-insensitive exact match for a single-word status.
func statusIs(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + value + "$", Options: "i"}
}

// normalizedStatusExpr lowercases $status and strips spaces and hyphens, so
// "On Hold", "on-hold" and "onhold" group into one bucket.
func normalizedStatusExpr() bson.M {
	return bson.M{
		"$toLower": bson.M{
			"$replaceAll": bson.M{
				"input": bson.M{
					"$replaceAll": bson.M{
						"input":       bson.M{"$ifNull": []interface{}{"$status", ""}},
						"find":        " ",
						"replacement": "",
					},
				},
				"find":        "-",
				"replacement": "",
			},
		},
	}
}

// canonicalStatusLabels maps normalized status keys back to display labels.
var canonicalStatusLabels = map[string]string{
	"active":    "Active",
	"inactive":  "Inactive",
	"onleave":   "On Leave",
	"onhold":    "On Hold",
	"completed": "Completed",
	"cancelled": "Cancelled",
	"scheduled": "Scheduled",
	"ongoing":   "Ongoing",
}

func canonicalLabel(normalized string) string {
	if label, ok := canonicalStatusLabels[normalized]; ok {
		return label
	}
	return normalized
}

func (r *dashboardRepository) CountEmployees(ctx context.Context) (int64, int64, error) {
	total, err := r.partition.Employees().CountDocuments(ctx, notDeleted())
	if err != nil {
		return 0, 0, err
	}

	activeFilter := notDeleted()
	activeFilter["status"] = statusIs("active")
	active, err := r.partition.Employees().CountDocuments(ctx, activeFilter)
	if err != nil {
		return 0, 0, err
	}

	return total, active, nil
}

func (r *dashboardRepository) CountNewJoiners(ctx context.Context, year int) (int64, error) {
	// joining_date is a date-only string, so the year window is a pair of
	// string bounds.
	filter := notDeleted()
	filter["joining_date"] = bson.M{
		"$gte": time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Format(DateOnlyFormat),
		"$lte": time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).Format(DateOnlyFormat),
	}

	return r.partition.Employees().CountDocuments(ctx, filter)
}

func (r *dashboardRepository) CountResignations(ctx context.Context) (int64, error) {
	return r.partition.Resignations().CountDocuments(ctx, notDeleted())
}

func (r *dashboardRepository) CountTerminations(ctx context.Context) (int64, error) {
	return r.partition.Terminations().CountDocuments(ctx, notDeleted())
}

func (r *dashboardRepository) EmployeesByDepartment(ctx context.Context) ([]models.GroupCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: notDeleted()}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "departments",
			"localField":   "department_id",
			"foreignField": "_id",
			"as":           "department",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$department",
			"preserveNullAndEmptyArrays": false,
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$department.name",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	return r.groupCounts(ctx, r.partition.Employees(), pipeline, false)
}

func (r *dashboardRepository) EmployeesByStatus(ctx context.Context) ([]models.GroupCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: notDeleted()}},
		bson.D{{Key: "$addFields", Value: bson.M{"status_key": normalizedStatusExpr()}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status_key",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	return r.groupCounts(ctx, r.partition.Employees(), pipeline, true)
}

func (r *dashboardRepository) DepartmentStats(ctx context.Context) (models.DepartmentStats, error) {
	var stats models.DepartmentStats

	total, err := r.partition.Departments().CountDocuments(ctx, notDeleted())
	if err != nil {
		return stats, err
	}

	activeFilter := notDeleted()
	activeFilter["is_active"] = true
	active, err := r.partition.Departments().CountDocuments(ctx, activeFilter)
	if err != nil {
		return stats, err
	}

	stats.TotalDepartments = total
	stats.ActiveDepartments = active
	return stats, nil
}

func (r *dashboardRepository) DesignationStats(ctx context.Context) (models.DesignationStats, error) {
	stats := models.DesignationStats{ByDepartment: []models.GroupCount{}}

	total, err := r.partition.Designations().CountDocuments(ctx, notDeleted())
	if err != nil {
		return stats, err
	}
	stats.TotalDesignations = total

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: notDeleted()}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "departments",
			"localField":   "department_id",
			"foreignField": "_id",
			"as":           "department",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$department",
			"preserveNullAndEmptyArrays": false,
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$department.name",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	byDepartment, err := r.groupCounts(ctx, r.partition.Designations(), pipeline, false)
	if err != nil {
		return stats, err
	}
	if byDepartment != nil {
		stats.ByDepartment = byDepartment
	}

	return stats, nil
}

func (r *dashboardRepository) PolicyStats(ctx context.Context, recentSince time.Time) (models.PolicyStats, error) {
	var stats models.PolicyStats

	total, err := r.partition.Policies().CountDocuments(ctx, notDeleted())
	if err != nil {
		return stats, err
	}

	// metadata.created_at is a true datetime, compared as one.
	recentFilter := notDeleted()
	recentFilter["metadata.created_at"] = bson.M{"$gte": recentSince}
	recent, err := r.partition.Policies().CountDocuments(ctx, recentFilter)
	if err != nil {
		return stats, err
	}

	stats.TotalPolicies = total
	stats.RecentPolicies = recent
	return stats, nil
}

func (r *dashboardRepository) HolidayStats(ctx context.Context) (models.HolidayStats, error) {
	var stats models.HolidayStats

	total, err := r.partition.Holidays().CountDocuments(ctx, notDeleted())
	if err != nil {
		return stats, err
	}

	activeFilter := notDeleted()
	activeFilter["is_active"] = true
	active, err := r.partition.Holidays().CountDocuments(ctx, activeFilter)
	if err != nil {
		return stats, err
	}

	repeatingFilter := notDeleted()
	repeatingFilter["repeats_every_year"] = true
	repeating, err := r.partition.Holidays().CountDocuments(ctx, repeatingFilter)
	if err != nil {
		return stats, err
	}

	stats.TotalHolidays = total
	stats.ActiveHolidays = active
	stats.RepeatingHolidays = repeating
	return stats, nil
}

func (r *dashboardRepository) TrainingStats(ctx context.Context, year int) (models.TrainingStats, error) {
	var stats models.TrainingStats

	// start_date is a true datetime; the year window is a datetime range.
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	match := notDeleted()
	match["start_date"] = bson.M{"$gte": yearStart, "$lt": yearEnd}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$addFields", Value: bson.M{"status_key": normalizedStatusExpr()}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status_key",
			"count": bson.M{"$sum": 1},
		}}},
	}

	groups, err := r.groupCounts(ctx, r.partition.Trainings(), pipeline, false)
	if err != nil {
		return stats, err
	}

	for _, g := range groups {
		stats.TotalTrainings += g.Count
		switch g.Label {
		case "ongoing":
			stats.OngoingTrainings = g.Count
		case "completed":
			stats.CompletedTrainings = g.Count
		}
	}

	trainers, err := r.partition.Trainers().CountDocuments(ctx, notDeleted())
	if err != nil {
		return stats, err
	}
	stats.TotalTrainers = trainers

	return stats, nil
}

func (r *dashboardRepository) ProjectStats(ctx context.Context) (models.ProjectStats, error) {
	var stats models.ProjectStats

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: notDeleted()}},
		bson.D{{Key: "$addFields", Value: bson.M{"status_key": normalizedStatusExpr()}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status_key",
			"count": bson.M{"$sum": 1},
		}}},
	}

	groups, err := r.groupCounts(ctx, r.partition.Projects(), pipeline, false)
	if err != nil {
		return stats, err
	}

	for _, g := range groups {
		stats.TotalProjects += g.Count
		switch g.Label {
		case "active":
			stats.ActiveProjects = g.Count
		case "completed":
			stats.CompletedProjects = g.Count
		case "onhold":
			stats.OnHoldProjects = g.Count
		}
	}

	return stats, nil
}

func (r *dashboardRepository) ResourceStats(ctx context.Context) (models.ResourceStats, error) {
	var stats models.ResourceStats

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: notDeleted()}},
		bson.D{{Key: "$unwind", Value: "$members"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"members": bson.M{"$addToSet": "$members"},
			"slots":   bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"assigned": bson.M{"$size": "$members"},
			"slots":    1,
		}}},
	}

	cursor, err := r.partition.Projects().Aggregate(ctx, pipeline)
	if err != nil {
		return stats, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Assigned int64 `bson:"assigned"`
		Slots    int64 `bson:"slots"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return stats, err
	}

	var assigned, slots int64
	if len(rows) > 0 {
		assigned = rows[0].Assigned
		slots = rows[0].Slots
	}

	projects, err := r.partition.Projects().CountDocuments(ctx, notDeleted())
	if err != nil {
		return stats, err
	}

	activeFilter := notDeleted()
	activeFilter["status"] = statusIs("active")
	activeEmployees, err := r.partition.Employees().CountDocuments(ctx, activeFilter)
	if err != nil {
		return stats, err
	}

	stats.AssignedEmployees = assigned
	if activeEmployees > assigned {
		stats.UnassignedEmployees = activeEmployees - assigned
	}
	if projects > 0 {
		stats.AvgMembersPerProject = float64(slots) / float64(projects)
	}

	return stats, nil
}

func (r *dashboardRepository) RecentActivities(ctx context.Context, since time.Time, limit int) ([]models.Activity, error) {
	activities := []models.Activity{}

	findOpts := options.Find().
		SetSort(bson.M{"metadata.created_at": -1}).
		SetLimit(int64(limit))

	recent := notDeleted()
	recent["metadata.created_at"] = bson.M{"$gte": since}

	// Three independent sources merged by creation time. Each source is
	// already capped, so the merge never holds more than 3*limit records.
	var employees []models.Employee
	cursor, err := r.partition.Employees().Find(ctx, recent, findOpts)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	for _, e := range employees {
		activities = append(activities, models.Activity{
			Type:       "employee_joined",
			Title:      e.FirstName + " " + e.LastName,
			OccurredAt: e.Metadata.CreatedAt,
		})
	}

	var projects []models.Project
	cursor, err = r.partition.Projects().Find(ctx, recent, findOpts)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	for _, p := range projects {
		activities = append(activities, models.Activity{
			Type:       "project_created",
			Title:      p.Name,
			OccurredAt: p.Metadata.CreatedAt,
		})
	}

	var trainings []models.Training
	cursor, err = r.partition.Trainings().Find(ctx, recent, findOpts)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &trainings); err != nil {
		return nil, err
	}
	for _, t := range trainings {
		activities = append(activities, models.Activity{
			Type:       "training_scheduled",
			Title:      t.Title,
			OccurredAt: t.Metadata.CreatedAt,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].OccurredAt.After(activities[j].OccurredAt)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}

	return activities, nil
}

func (r *dashboardRepository) DepartmentWiseProjects(ctx context.Context) ([]models.GroupCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: notDeleted()}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "departments",
			"localField":   "department_id",
			"foreignField": "_id",
			"as":           "department",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$department",
			"preserveNullAndEmptyArrays": false,
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$department.name",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	return r.groupCounts(ctx, r.partition.Projects(), pipeline, false)
}

func (r *dashboardRepository) TrainingDistribution(ctx context.Context) ([]models.GroupCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: notDeleted()}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "training_types",
			"localField":   "training_type_id",
			"foreignField": "_id",
			"as":           "training_type",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$training_type",
			"preserveNullAndEmptyArrays": false,
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$training_type.name",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	return r.groupCounts(ctx, r.partition.Trainings(), pipeline, false)
}

func (r *dashboardRepository) ActiveHolidays(ctx context.Context) ([]models.Holiday, error) {
	filter := notDeleted()
	filter["is_active"] = true

	cursor, err := r.partition.Holidays().Find(ctx, filter)
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

// groupCounts runs a grouping pipeline and decodes the label/count rows.
// When relabel is set, normalized status keys are mapped back to their
// display labels.
func (r *dashboardRepository) groupCounts(ctx context.Context, collection *mongo.Collection, pipeline mongo.Pipeline, relabel bool) ([]models.GroupCount, error) {
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.GroupCount
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	if relabel {
		for i := range groups {
			groups[i].Label = canonicalLabel(utils.NormalizeStatus(groups[i].Label))
		}
	}

	return groups, nil
}
