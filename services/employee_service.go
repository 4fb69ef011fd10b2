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

// EmployeePage is one page of the employee listing.
type EmployeePage struct {
	Employees []models.Employee `json:"employees"`
	Total     int64             `json:"total"`
	Page      int64             `json:"page"`
	PageSize  int64             `json:"page_size"`
}

type EmployeeService interface {
	CreateEmployee(ctx context.Context, tenantID string, employee *models.Employee) (*models.Employee, error)
	GetEmployeeByID(ctx context.Context, tenantID string, id primitive.ObjectID) (*models.Employee, error)
	ListEmployees(ctx context.Context, tenantID, status string, page, pageSize int64) (*EmployeePage, error)
	UpdateEmployee(ctx context.Context, tenantID string, id primitive.ObjectID, employee *models.Employee) (*models.Employee, error)
	SoftDeleteEmployee(ctx context.Context, tenantID string, id primitive.ObjectID, updatedBy string) error
}

type employeeService struct {
	resolver PartitionResolver
	newRepo  func(*database.TenantPartition) repository.EmployeeRepository
	now      func() time.Time
}

func NewEmployeeService(resolver PartitionResolver) EmployeeService {
	return &employeeService{
		resolver: resolver,
		newRepo:  repository.NewEmployeeRepository,
		now:      time.Now,
	}
}

func (s *employeeService) repo(ctx context.Context, tenantID string) (repository.EmployeeRepository, error) {
	partition, err := s.resolver.Resolve(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return s.newRepo(partition), nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, tenantID string, employee *models.Employee) (*models.Employee, error) {
	repo, err := s.repo(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	employee.Metadata.CreatedAt = now
	employee.Metadata.UpdatedAt = now
	employee.IsDeleted = false
	if employee.Status == "" {
		employee.Status = models.EmployeeStatusActive
	}

	if err := repo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %v", err)
	}

	return employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, tenantID string, id primitive.ObjectID) (*models.Employee, error) {
	repo, err := s.repo(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return repo.GetByID(ctx, id)
}

func (s *employeeService) ListEmployees(ctx context.Context, tenantID, status string, page, pageSize int64) (*EmployeePage, error) {
	repo, err := s.repo(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	employees, total, err := repo.List(ctx, status, page, pageSize)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	return &EmployeePage{
		Employees: employees,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, tenantID string, id primitive.ObjectID, employee *models.Employee) (*models.Employee, error) {
	repo, err := s.repo(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if employee.FirstName != "" {
		existing.FirstName = employee.FirstName
	}
	if employee.LastName != "" {
		existing.LastName = employee.LastName
	}
	if employee.Email != "" {
		existing.Email = employee.Email
	}
	if employee.Phone != "" {
		existing.Phone = employee.Phone
	}
	if employee.Status != "" {
		existing.Status = employee.Status
	}
	if !employee.DepartmentID.IsZero() {
		existing.DepartmentID = employee.DepartmentID
	}
	if !employee.DesignationID.IsZero() {
		existing.DesignationID = employee.DesignationID
	}
	if employee.JoiningDate != "" {
		existing.JoiningDate = employee.JoiningDate
	}
	existing.Metadata.UpdatedBy = employee.Metadata.UpdatedBy
	existing.Metadata.UpdatedAt = s.now()

	if err := repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *employeeService) SoftDeleteEmployee(ctx context.Context, tenantID string, id primitive.ObjectID, updatedBy string) error {
	repo, err := s.repo(ctx, tenantID)
	if err != nil {
		return err
	}

	return repo.SoftDelete(ctx, id, updatedBy)
}
