package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrmproject/database"
	"hrmproject/models"
	repository "hrmproject/repositories"
)

type fakeResolver struct {
	err   error
	calls int
}

func (f *fakeResolver) Resolve(_ context.Context, tenantID string) (*database.TenantPartition, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &database.TenantPartition{TenantID: tenantID}, nil
}

// fakeDashboardRepo implements repository.DashboardRepository in memory. With
// failAll set, every query fails, exercising the per-statistic defaulting.
type fakeDashboardRepo struct {
	failAll bool

	totalEmployees  int64
	activeEmployees int64
	newJoiners      int64
	resignations    int64
	terminations    int64
	holidays        []models.Holiday

	newJoinersYear int
	trainingYear   int
}

var errUnavailable = errors.New("collection unavailable")

func (f *fakeDashboardRepo) CountEmployees(context.Context) (int64, int64, error) {
	if f.failAll {
		return 0, 0, errUnavailable
	}
	return f.totalEmployees, f.activeEmployees, nil
}

func (f *fakeDashboardRepo) CountNewJoiners(_ context.Context, year int) (int64, error) {
	f.newJoinersYear = year
	if f.failAll {
		return 0, errUnavailable
	}
	return f.newJoiners, nil
}

func (f *fakeDashboardRepo) CountResignations(context.Context) (int64, error) {
	if f.failAll {
		return 0, errUnavailable
	}
	return f.resignations, nil
}

func (f *fakeDashboardRepo) CountTerminations(context.Context) (int64, error) {
	if f.failAll {
		return 0, errUnavailable
	}
	return f.terminations, nil
}

func (f *fakeDashboardRepo) EmployeesByDepartment(context.Context) ([]models.GroupCount, error) {
	if f.failAll {
		return nil, errUnavailable
	}
	return nil, nil
}

func (f *fakeDashboardRepo) EmployeesByStatus(context.Context) ([]models.GroupCount, error) {
	if f.failAll {
		return nil, errUnavailable
	}
	return nil, nil
}

func (f *fakeDashboardRepo) DepartmentStats(context.Context) (models.DepartmentStats, error) {
	if f.failAll {
		return models.DepartmentStats{}, errUnavailable
	}
	return models.DepartmentStats{}, nil
}

func (f *fakeDashboardRepo) DesignationStats(context.Context) (models.DesignationStats, error) {
	if f.failAll {
		return models.DesignationStats{}, errUnavailable
	}
	return models.DesignationStats{ByDepartment: []models.GroupCount{}}, nil
}

func (f *fakeDashboardRepo) PolicyStats(context.Context, time.Time) (models.PolicyStats, error) {
	if f.failAll {
		return models.PolicyStats{}, errUnavailable
	}
	return models.PolicyStats{}, nil
}

func (f *fakeDashboardRepo) HolidayStats(context.Context) (models.HolidayStats, error) {
	if f.failAll {
		return models.HolidayStats{}, errUnavailable
	}
	return models.HolidayStats{}, nil
}

func (f *fakeDashboardRepo) TrainingStats(_ context.Context, year int) (models.TrainingStats, error) {
	f.trainingYear = year
	if f.failAll {
		return models.TrainingStats{}, errUnavailable
	}
	return models.TrainingStats{}, nil
}

func (f *fakeDashboardRepo) ProjectStats(context.Context) (models.ProjectStats, error) {
	if f.failAll {
		return models.ProjectStats{}, errUnavailable
	}
	return models.ProjectStats{}, nil
}

func (f *fakeDashboardRepo) ResourceStats(context.Context) (models.ResourceStats, error) {
	if f.failAll {
		return models.ResourceStats{}, errUnavailable
	}
	return models.ResourceStats{}, nil
}

func (f *fakeDashboardRepo) RecentActivities(context.Context, time.Time, int) ([]models.Activity, error) {
	if f.failAll {
		return nil, errUnavailable
	}
	return nil, nil
}

func (f *fakeDashboardRepo) DepartmentWiseProjects(context.Context) ([]models.GroupCount, error) {
	if f.failAll {
		return nil, errUnavailable
	}
	return nil, nil
}

func (f *fakeDashboardRepo) TrainingDistribution(context.Context) ([]models.GroupCount, error) {
	if f.failAll {
		return nil, errUnavailable
	}
	return nil, nil
}

func (f *fakeDashboardRepo) ActiveHolidays(context.Context) ([]models.Holiday, error) {
	if f.failAll {
		return nil, errUnavailable
	}
	return f.holidays, nil
}

func newTestService(repo *fakeDashboardRepo, now time.Time) (*dashboardService, *fakeResolver) {
	resolver := &fakeResolver{}
	svc := &dashboardService{
		resolver: resolver,
		newRepo: func(*database.TenantPartition) repository.DashboardRepository {
			return repo
		},
		now: func() time.Time { return now },
	}
	return svc, resolver
}

func TestGetDashboardStatsEmptyTenant(t *testing.T) {
	svc, _ := newTestService(&fakeDashboardRepo{}, date(2024, time.June, 1))

	snapshot, err := svc.GetDashboardStats(context.Background(), "acme-corp", 0)
	if err != nil {
		t.Fatalf("empty tenant must still succeed, got %v", err)
	}

	assertDefaultSnapshot(t, snapshot)
}

func TestGetDashboardStatsAllQueriesFailing(t *testing.T) {
	svc, _ := newTestService(&fakeDashboardRepo{failAll: true}, date(2024, time.June, 1))

	snapshot, err := svc.GetDashboardStats(context.Background(), "acme-corp", 0)
	if err != nil {
		t.Fatalf("sub-query failures must not abort the call, got %v", err)
	}

	assertDefaultSnapshot(t, snapshot)
}

func assertDefaultSnapshot(t *testing.T, snapshot *models.DashboardSnapshot) {
	t.Helper()

	if snapshot == nil {
		t.Fatal("expected a snapshot")
	}
	if snapshot.Stats != (models.HeadcountStats{}) {
		t.Errorf("expected zero headcount stats, got %+v", snapshot.Stats)
	}
	if snapshot.ProjectStats != (models.ProjectStats{}) {
		t.Errorf("expected zero project stats, got %+v", snapshot.ProjectStats)
	}
	if snapshot.ResourceStats != (models.ResourceStats{}) {
		t.Errorf("expected zero resource stats, got %+v", snapshot.ResourceStats)
	}
	if snapshot.DesignationStats.TotalDesignations != 0 {
		t.Errorf("expected zero designations, got %d", snapshot.DesignationStats.TotalDesignations)
	}
	if snapshot.DesignationStats.ByDepartment == nil || len(snapshot.DesignationStats.ByDepartment) != 0 {
		t.Errorf("expected empty designation breakdown, got %+v", snapshot.DesignationStats.ByDepartment)
	}
	for name, list := range map[string]int{
		"employeesByDepartment":  len(snapshot.EmployeesByDepartment),
		"employeesByStatus":      len(snapshot.EmployeesByStatus),
		"recentActivities":       len(snapshot.RecentActivities),
		"departmentWiseProjects": len(snapshot.DepartmentWiseProjects),
		"trainingDistribution":   len(snapshot.TrainingDistribution),
		"upcomingHolidays":       len(snapshot.UpcomingHolidays),
		"todaysHolidays":         len(snapshot.TodaysHolidays),
		"allActiveHolidays":      len(snapshot.AllActiveHolidays),
	} {
		if list != 0 {
			t.Errorf("expected empty %s, got %d entries", name, list)
		}
	}
	if snapshot.EmployeesByDepartment == nil || snapshot.UpcomingHolidays == nil {
		t.Error("defaulted lists must be empty, not nil")
	}
}

func TestGetDashboardStatsResolverFailureAborts(t *testing.T) {
	svc, resolver := newTestService(&fakeDashboardRepo{}, date(2024, time.June, 1))
	resolver.err = database.ErrInvalidTenant

	_, err := svc.GetDashboardStats(context.Background(), "", 0)
	if !errors.Is(err, database.ErrInvalidTenant) {
		t.Fatalf("expected resolver error to surface, got %v", err)
	}
}

func TestGetDashboardStatsGrowthPercent(t *testing.T) {
	repo := &fakeDashboardRepo{totalEmployees: 200, activeEmployees: 180, newJoiners: 25}
	svc, _ := newTestService(repo, date(2024, time.June, 1))

	snapshot, err := svc.GetDashboardStats(context.Background(), "acme-corp", 0)
	if err != nil {
		t.Fatalf("GetDashboardStats failed: %v", err)
	}

	if snapshot.Stats.GrowthPercent != 12.5 {
		t.Fatalf("expected growth 12.5, got %v", snapshot.Stats.GrowthPercent)
	}
}

func TestGrowthPercentRounding(t *testing.T) {
	cases := []struct {
		newJoiners, total int64
		want              float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 40, 0},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{25, 200, 12.5},
		{200, 200, 100},
	}

	for _, c := range cases {
		if got := growthPercent(c.newJoiners, c.total); got != c.want {
			t.Errorf("growthPercent(%d, %d) = %v, want %v", c.newJoiners, c.total, got, c.want)
		}
	}
}

func TestGetDashboardStatsYearScopesStatsOnly(t *testing.T) {
	// The year argument scopes joiner/training statistics; holiday rollover
	// keeps using the real current date regardless.
	now := date(2024, time.March, 1)
	repo := &fakeDashboardRepo{
		holidays: []models.Holiday{holiday("Leap Day", date(2020, time.February, 29), true)},
	}
	svc, _ := newTestService(repo, now)

	snapshot, err := svc.GetDashboardStats(context.Background(), "acme-corp", 2030)
	if err != nil {
		t.Fatalf("GetDashboardStats failed: %v", err)
	}

	if repo.newJoinersYear != 2030 {
		t.Errorf("expected new-joiner query scoped to 2030, got %d", repo.newJoinersYear)
	}
	if repo.trainingYear != 2030 {
		t.Errorf("expected training query scoped to 2030, got %d", repo.trainingYear)
	}

	// 2024-02-29 has already passed on 2024-03-01, so the occurrence rolls
	// over into 2025, a non-leap year.
	if len(snapshot.UpcomingHolidays) != 1 {
		t.Fatalf("expected one upcoming holiday, got %d", len(snapshot.UpcomingHolidays))
	}
	want := date(2025, time.February, 28)
	if !snapshot.UpcomingHolidays[0].ResolvedDate.Equal(want) {
		t.Fatalf("expected rollover to %v, got %v", want, snapshot.UpcomingHolidays[0].ResolvedDate)
	}
}

func TestGetDashboardStatsDefaultsYearToCurrent(t *testing.T) {
	repo := &fakeDashboardRepo{}
	svc, _ := newTestService(repo, date(2026, time.August, 30))

	if _, err := svc.GetDashboardStats(context.Background(), "acme-corp", 0); err != nil {
		t.Fatalf("GetDashboardStats failed: %v", err)
	}

	if repo.newJoinersYear != 2026 {
		t.Errorf("expected default year 2026, got %d", repo.newJoinersYear)
	}
	if repo.trainingYear != 2026 {
		t.Errorf("expected default year 2026, got %d", repo.trainingYear)
	}
}

func TestGetDashboardStatsHolidayViews(t *testing.T) {
	now := date(2024, time.December, 25)
	repo := &fakeDashboardRepo{
		holidays: []models.Holiday{
			holiday("Christmas", date(2019, time.December, 25), true),
			holiday("New Year", date(2019, time.January, 1), true),
			holiday("Past Offsite", date(2024, time.March, 10), false),
		},
	}
	svc, _ := newTestService(repo, now)

	snapshot, err := svc.GetDashboardStats(context.Background(), "acme-corp", 0)
	if err != nil {
		t.Fatalf("GetDashboardStats failed: %v", err)
	}

	if len(snapshot.AllActiveHolidays) != 3 {
		t.Errorf("expected all 3 active holidays, got %d", len(snapshot.AllActiveHolidays))
	}
	if len(snapshot.TodaysHolidays) != 1 || snapshot.TodaysHolidays[0].Title != "Christmas" {
		t.Errorf("expected Christmas as today's holiday, got %+v", snapshot.TodaysHolidays)
	}
	// Christmas today and New Year next week; the past offsite is excluded.
	if len(snapshot.UpcomingHolidays) != 2 {
		t.Fatalf("expected 2 upcoming holidays, got %d", len(snapshot.UpcomingHolidays))
	}
	if snapshot.UpcomingHolidays[0].Title != "Christmas" || snapshot.UpcomingHolidays[1].Title != "New Year" {
		t.Errorf("upcoming holidays out of order: %+v", snapshot.UpcomingHolidays)
	}
}
