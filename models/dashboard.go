package models

import "time"

// DashboardSnapshot is the assembled dashboard payload. It is built fresh on
// every request, immutable after assembly, and never persisted. Every field
// group is computed behind its own failure boundary: a failed sub-query leaves
// its group at the default produced by NewDashboardSnapshot instead of failing
// the whole snapshot.
type DashboardSnapshot struct {
	Stats                  HeadcountStats    `json:"stats"`
	EmployeesByDepartment  []GroupCount      `json:"employeesByDepartment"`
	EmployeesByStatus      []GroupCount      `json:"employeesByStatus"`
	DepartmentStats        DepartmentStats   `json:"departmentStats"`
	DesignationStats       DesignationStats  `json:"designationStats"`
	PolicyStats            PolicyStats       `json:"policyStats"`
	HolidayStats           HolidayStats      `json:"holidayStats"`
	TrainingStats          TrainingStats     `json:"trainingStats"`
	ProjectStats           ProjectStats      `json:"projectStats"`
	ResourceStats          ResourceStats     `json:"resourceStats"`
	RecentActivities       []Activity        `json:"recentActivities"`
	DepartmentWiseProjects []GroupCount      `json:"departmentWiseProjects"`
	TrainingDistribution   []GroupCount      `json:"trainingDistribution"`
	UpcomingHolidays       []ResolvedHoliday `json:"upcomingHolidays"`
	TodaysHolidays         []ResolvedHoliday `json:"todaysHolidays"`
	AllActiveHolidays      []ResolvedHoliday `json:"allActiveHolidays"`
}

type HeadcountStats struct {
	TotalEmployees  int64 `json:"total_employees"`
	ActiveEmployees int64 `json:"active_employees"`
	NewJoiners      int64 `json:"new_joiners"`
	Resignations    int64 `json:"resignations"`
	Terminations    int64 `json:"terminations"`
	// GrowthPercent is new joiners as a percentage of total headcount, rounded
	// to one decimal; 0 when headcount is 0.
	GrowthPercent float64 `json:"growth_percent"`
}

// GroupCount is one bucket of a grouped statistic (department name, status
// value, training type, ...).
type GroupCount struct {
	Label string `json:"label" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

type DepartmentStats struct {
	TotalDepartments  int64 `json:"total_departments"`
	ActiveDepartments int64 `json:"active_departments"`
}

type DesignationStats struct {
	TotalDesignations int64        `json:"total_designations"`
	ByDepartment      []GroupCount `json:"by_department"`
}

type PolicyStats struct {
	TotalPolicies  int64 `json:"total_policies"`
	RecentPolicies int64 `json:"recent_policies"`
}

type HolidayStats struct {
	TotalHolidays     int64 `json:"total_holidays"`
	ActiveHolidays    int64 `json:"active_holidays"`
	RepeatingHolidays int64 `json:"repeating_holidays"`
}

type TrainingStats struct {
	TotalTrainings     int64 `json:"total_trainings"`
	OngoingTrainings   int64 `json:"ongoing_trainings"`
	CompletedTrainings int64 `json:"completed_trainings"`
	TotalTrainers      int64 `json:"total_trainers"`
}

type ProjectStats struct {
	TotalProjects     int64 `json:"total_projects"`
	ActiveProjects    int64 `json:"active_projects"`
	CompletedProjects int64 `json:"completed_projects"`
	OnHoldProjects    int64 `json:"on_hold_projects"`
}

type ResourceStats struct {
	AssignedEmployees    int64   `json:"assigned_employees"`
	UnassignedEmployees  int64   `json:"unassigned_employees"`
	AvgMembersPerProject float64 `json:"avg_members_per_project"`
}

type Activity struct {
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewDashboardSnapshot returns a snapshot populated with the documented
// default for every statistic: zero counters and empty (non-nil) lists, so a
// fully-defaulted snapshot still serializes with [] instead of null.
func NewDashboardSnapshot() *DashboardSnapshot {
	return &DashboardSnapshot{
		DesignationStats:       DesignationStats{ByDepartment: []GroupCount{}},
		EmployeesByDepartment:  []GroupCount{},
		EmployeesByStatus:      []GroupCount{},
		RecentActivities:       []Activity{},
		DepartmentWiseProjects: []GroupCount{},
		TrainingDistribution:   []GroupCount{},
		UpcomingHolidays:       []ResolvedHoliday{},
		TodaysHolidays:         []ResolvedHoliday{},
		AllActiveHolidays:      []ResolvedHoliday{},
	}
}
