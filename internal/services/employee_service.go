package services

import (
	"context"
	"errors"
	"fmt"

	"staffdir/internal/models"
	"staffdir/internal/repositories"
)

// EmployeeService handles business logic for employee records.
type EmployeeService struct {
	repo             repositories.EmployeeRepository
	events           EventPublisher
	enforceOwnership bool
}

// NewEmployeeService creates a new EmployeeService. When enforceOwnership is set,
// get/update/delete by id only succeed for the owning admin; other callers see
// ErrNotFound.
func NewEmployeeService(repo repositories.EmployeeRepository, events EventPublisher, enforceOwnership bool) *EmployeeService {
	return &EmployeeService{
		repo:             repo,
		events:           events,
		enforceOwnership: enforceOwnership,
	}
}

// CreateEmployee stores a new employee owned by adminID. Any AdminID already set on
// employee is overwritten.
func (s *EmployeeService) CreateEmployee(ctx context.Context, adminID string, employee *models.Employee) error {
	if adminID == "" {
		return fmt.Errorf("%w: missing owning admin", ErrValidation)
	}
	employee.AdminID = adminID

	existing, err := s.repo.GetByEmail(ctx, employee.Email)
	if err == nil && existing != nil {
		return ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrDuplicateEmail
		}
		return err
	}

	publishEvent(s.events, EventEmployeeCreated, map[string]string{
		"employeeId": employee.ID,
		"adminId":    employee.AdminID,
	})
	return nil
}

// GetEmployeesByAdmin lists the employees owned by adminID.
func (s *EmployeeService) GetEmployeesByAdmin(ctx context.Context, adminID string) ([]models.Employee, error) {
	return s.repo.GetByAdminID(ctx, adminID)
}

// GetEmployeeByID retrieves a single employee.
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, callerID, id string) (*models.Employee, error) {
	return s.lookup(ctx, callerID, id)
}

// UpdateEmployee applies a partial update. The owning admin never changes.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, callerID, id string, update models.EmployeeUpdate) (*models.Employee, error) {
	if s.enforceOwnership {
		if _, err := s.lookup(ctx, callerID, id); err != nil {
			return nil, err
		}
	}
	employee, err := s.repo.Update(ctx, id, update)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		return nil, ErrDuplicateEmail
	}
	return employee, err
}

// DeleteEmployee removes an employee.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, callerID, id string) error {
	if s.enforceOwnership {
		if _, err := s.lookup(ctx, callerID, id); err != nil {
			return err
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	publishEvent(s.events, EventEmployeeDeleted, map[string]string{
		"employeeId": id,
		"deletedBy":  callerID,
	})
	return nil
}

func (s *EmployeeService) lookup(ctx context.Context, callerID, id string) (*models.Employee, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.enforceOwnership && employee.AdminID != callerID {
		return nil, fmt.Errorf("employee %s is not owned by %s: %w", id, callerID, ErrNotFound)
	}
	return employee, nil
}
