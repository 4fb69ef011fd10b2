package services

import (
	"context"
	"log"
	"math"
	"time"

	"hrmproject/database"
	"hrmproject/models"
	repository "hrmproject/repositories"

	"golang.org/x/sync/errgroup"
)

// subQueryTimeout bounds each fanned-out statistic query independently, so one
// slow collection cannot stall the whole snapshot.
const subQueryTimeout = 5 * time.Second

// recentWindow defines "recent": the last 30 days from the moment of the call,
// not calendar-aligned.
const recentWindow = 30 * 24 * time.Hour

// PartitionResolver yields the tenant's partition handle. Satisfied by
// *database.PartitionRegistry.
type PartitionResolver interface {
	Resolve(ctx context.Context, tenantID string) (*database.TenantPartition, error)
}

type DashboardService interface {
	// GetDashboardStats assembles the full dashboard snapshot for one tenant.
	// year scopes the new-joiner and training statistics only; year <= 0 means
	// the current year. The call fails only when the tenant partition cannot
	// be resolved; every individual statistic failure is absorbed with its
	// documented default.
	GetDashboardStats(ctx context.Context, tenantID string, year int) (*models.DashboardSnapshot, error)
}

type dashboardService struct {
	resolver PartitionResolver
	newRepo  func(*database.TenantPartition) repository.DashboardRepository
	now      func() time.Time
}

func NewDashboardService(resolver PartitionResolver) DashboardService {
	return &dashboardService{
		resolver: resolver,
		newRepo:  repository.NewDashboardRepository,
		now:      time.Now,
	}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context, tenantID string, year int) (*models.DashboardSnapshot, error) {
	partition, err := s.resolver.Resolve(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	repo := s.newRepo(partition)
	now := s.now()
	recentSince := now.Add(-recentWindow)

	statsYear := year
	if statsYear <= 0 {
		statsYear = now.Year()
	}

	snapshot := models.NewDashboardSnapshot()

	// Fan-out: every statistic runs concurrently with its own timeout and its
	// own failure boundary, writing a disjoint field of the snapshot. A failed
	// sub-query is logged and leaves its default in place; it never aborts the
	// snapshot.
	var activeHolidays []models.Holiday

	g := new(errgroup.Group)

	s.collect(ctx, g, tenantID, "employee counts", func(qctx context.Context) error {
		total, active, err := repo.CountEmployees(qctx)
		if err != nil {
			return err
		}
		snapshot.Stats.TotalEmployees = total
		snapshot.Stats.ActiveEmployees = active
		return nil
	})

	s.collect(ctx, g, tenantID, "new joiners", func(qctx context.Context) error {
		count, err := repo.CountNewJoiners(qctx, statsYear)
		if err != nil {
			return err
		}
		snapshot.Stats.NewJoiners = count
		return nil
	})

	s.collect(ctx, g, tenantID, "resignation count", func(qctx context.Context) error {
		count, err := repo.CountResignations(qctx)
		if err != nil {
			return err
		}
		snapshot.Stats.Resignations = count
		return nil
	})

	s.collect(ctx, g, tenantID, "termination count", func(qctx context.Context) error {
		count, err := repo.CountTerminations(qctx)
		if err != nil {
			return err
		}
		snapshot.Stats.Terminations = count
		return nil
	})

	s.collect(ctx, g, tenantID, "employees by department", func(qctx context.Context) error {
		groups, err := repo.EmployeesByDepartment(qctx)
		if err != nil {
			return err
		}
		if groups != nil {
			snapshot.EmployeesByDepartment = groups
		}
		return nil
	})

	s.collect(ctx, g, tenantID, "employees by status", func(qctx context.Context) error {
		groups, err := repo.EmployeesByStatus(qctx)
		if err != nil {
			return err
		}
		if groups != nil {
			snapshot.EmployeesByStatus = groups
		}
		return nil
	})

	s.collect(ctx, g, tenantID, "department stats", func(qctx context.Context) error {
		stats, err := repo.DepartmentStats(qctx)
		if err != nil {
			return err
		}
		snapshot.DepartmentStats = stats
		return nil
	})

	s.collect(ctx, g, tenantID, "designation stats", func(qctx context.Context) error {
		stats, err := repo.DesignationStats(qctx)
		if err != nil {
			return err
		}
		snapshot.DesignationStats = stats
		return nil
	})

	s.collect(ctx, g, tenantID, "policy stats", func(qctx context.Context) error {
		stats, err := repo.PolicyStats(qctx, recentSince)
		if err != nil {
			return err
		}
		snapshot.PolicyStats = stats
		return nil
	})

	s.collect(ctx, g, tenantID, "holiday stats", func(qctx context.Context) error {
		stats, err := repo.HolidayStats(qctx)
		if err != nil {
			return err
		}
		snapshot.HolidayStats = stats
		return nil
	})

	s.collect(ctx, g, tenantID, "training stats", func(qctx context.Context) error {
		stats, err := repo.TrainingStats(qctx, statsYear)
		if err != nil {
			return err
		}
		snapshot.TrainingStats = stats
		return nil
	})

	s.collect(ctx, g, tenantID, "project stats", func(qctx context.Context) error {
		stats, err := repo.ProjectStats(qctx)
		if err != nil {
			return err
		}
		snapshot.ProjectStats = stats
		return nil
	})

	s.collect(ctx, g, tenantID, "resource stats", func(qctx context.Context) error {
		stats, err := repo.ResourceStats(qctx)
		if err != nil {
			return err
		}
		snapshot.ResourceStats = stats
		return nil
	})

	s.collect(ctx, g, tenantID, "recent activities", func(qctx context.Context) error {
		activities, err := repo.RecentActivities(qctx, recentSince, 10)
		if err != nil {
			return err
		}
		if activities != nil {
			snapshot.RecentActivities = activities
		}
		return nil
	})

	s.collect(ctx, g, tenantID, "department-wise projects", func(qctx context.Context) error {
		groups, err := repo.DepartmentWiseProjects(qctx)
		if err != nil {
			return err
		}
		if groups != nil {
			snapshot.DepartmentWiseProjects = groups
		}
		return nil
	})

	s.collect(ctx, g, tenantID, "training distribution", func(qctx context.Context) error {
		groups, err := repo.TrainingDistribution(qctx)
		if err != nil {
			return err
		}
		if groups != nil {
			snapshot.TrainingDistribution = groups
		}
		return nil
	})

	s.collect(ctx, g, tenantID, "active holidays", func(qctx context.Context) error {
		holidays, err := repo.ActiveHolidays(qctx)
		if err != nil {
			return err
		}
		activeHolidays = holidays
		return nil
	})

	// Fan-in. collect never propagates errors, so Wait only synchronizes.
	_ = g.Wait()

	// Holiday rollover always uses the real current date; the year argument
	// scopes joiner/training statistics and nothing else.
	resolved := ResolveHolidays(activeHolidays, now)
	snapshot.AllActiveHolidays = resolved
	snapshot.TodaysHolidays = TodaysHolidays(resolved, now)
	snapshot.UpcomingHolidays = UpcomingHolidays(resolved, now)

	snapshot.Stats.GrowthPercent = growthPercent(snapshot.Stats.NewJoiners, snapshot.Stats.TotalEmployees)

	return snapshot, nil
}

// collect schedules one statistic query on the group, bounded by its own
// timeout. Failures are logged and swallowed so one unavailable collection
// cannot take down the rest of the snapshot.
func (s *dashboardService) collect(ctx context.Context, g *errgroup.Group, tenantID, name string, query func(ctx context.Context) error) {
	g.Go(func() error {
		qctx, cancel := context.WithTimeout(ctx, subQueryTimeout)
		defer cancel()

		if err := query(qctx); err != nil {
			log.Printf("dashboard: %s failed for tenant %s: %v", name, tenantID, err)
		}
		return nil
	})
}

// growthPercent is new joiners as a percentage of total headcount, rounded to
// one decimal; 0 when headcount is 0.
func growthPercent(newJoiners, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(newJoiners)/float64(total)*1000) / 10
}
