package services

import (
	"context"
	"fmt"
	"time"

	"hrmproject/database"
	"hrmproject/models"
	repository "hrmproject/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HolidayService interface {
	CreateHoliday(ctx context.Context, tenantID string, holiday *models.Holiday) (*models.Holiday, error)
	GetHolidayByID(ctx context.Context, tenantID string, id primitive.ObjectID) (*models.Holiday, error)
	GetAllHolidays(ctx context.Context, tenantID string) ([]models.Holiday, error)
	// GetHolidayCalendar returns every non-deleted holiday resolved against
	// the current date, the shape the calendar view highlights from.
	GetHolidayCalendar(ctx context.Context, tenantID string) ([]models.ResolvedHoliday, error)
	UpdateHoliday(ctx context.Context, tenantID string, id primitive.ObjectID, holiday *models.Holiday) (*models.Holiday, error)
	SoftDeleteHoliday(ctx context.Context, tenantID string, id primitive.ObjectID, updatedBy string) error
	GetHolidayTypes(ctx context.Context, tenantID string) ([]models.HolidayType, error)
}

type holidayService struct {
	resolver PartitionResolver
	newRepo  func(*database.TenantPartition) repository.HolidayRepository
	now      func() time.Time
}

func NewHolidayService(resolver PartitionResolver) HolidayService {
	return &holidayService{
		resolver: resolver,
		newRepo:  repository.NewHolidayRepository,
		now:      time.Now,
	}
}

func (s *holidayService) repo(ctx context.Context, tenantID string) (repository.HolidayRepository, error) {
	partition, err := s.resolver.Resolve(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return s.newRepo(partition), nil
}

func (s *holidayService) CreateHoliday(ctx context.Context, tenantID string, holiday *models.Holiday) (*models.Holiday, error) {
	repo, err := s.repo(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	holiday.Metadata.CreatedAt = now
	holiday.Metadata.UpdatedAt = now
	holiday.IsDeleted = false

	if err := repo.Create(ctx, holiday); err != nil {
		return nil, fmt.Errorf("failed to create holiday: %v", err)
	}

	return holiday, nil
}

func (s *holidayService) GetHolidayByID(ctx context.Context, tenantID string, id primitive.ObjectID) (*models.Holiday, error) {
	repo, err := s.repo(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return repo.GetByID(ctx, id)
}

func (s *holidayService) GetAllHolidays(ctx context.Context, tenantID string) ([]models.Holiday, error) {
	repo, err := s.repo(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return repo.GetAll(ctx)
}

func (s *holidayService) GetHolidayCalendar(ctx context.Context, tenantID string) ([]models.ResolvedHoliday, error) {
	repo, err := s.repo(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	holidays, err := repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return ResolveHolidays(holidays, s.now()), nil
}

func (s *holidayService) UpdateHoliday(ctx context.Context, tenantID string, id primitive.ObjectID, holiday *models.Holiday) (*models.Holiday, error) {
	repo, err := s.repo(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if holiday.Title != "" {
		existing.Title = holiday.Title
	}
	if !holiday.Date.IsZero() {
		existing.Date = holiday.Date
	}
	if holiday.Description != "" {
		existing.Description = holiday.Description
	}
	if !holiday.HolidayTypeID.IsZero() {
		existing.HolidayTypeID = holiday.HolidayTypeID
	}
	existing.RepeatsEveryYear = holiday.RepeatsEveryYear
	existing.IsActive = holiday.IsActive
	existing.Metadata.UpdatedBy = holiday.Metadata.UpdatedBy
	existing.Metadata.UpdatedAt = s.now()

	if err := repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *holidayService) SoftDeleteHoliday(ctx context.Context, tenantID string, id primitive.ObjectID, updatedBy string) error {
	repo, err := s.repo(ctx, tenantID)
	if err != nil {
		return err
	}

	return repo.SoftDelete(ctx, id, updatedBy)
}

func (s *holidayService) GetHolidayTypes(ctx context.Context, tenantID string) ([]models.HolidayType, error) {
	repo, err := s.repo(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return repo.GetTypes(ctx)
}
