package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"staffdir/internal/models"

	"github.com/google/uuid"
)

// MockEmployeeRepository is an in-memory implementation of EmployeeRepository.
type MockEmployeeRepository struct {
	employees map[string]models.Employee
	mu        sync.RWMutex
}

// NewMockEmployeeRepository creates a new instance of MockEmployeeRepository.
func NewMockEmployeeRepository() *MockEmployeeRepository {
	return &MockEmployeeRepository{
		employees: make(map[string]models.Employee),
	}
}

// Create adds a new employee.
func (r *MockEmployeeRepository) Create(_ context.Context, employee *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTakenLocked(employee.Email, "") {
		return fmt.Errorf("failed to create employee: %w", ErrDuplicateKey)
	}
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	r.employees[employee.ID] = *employee
	return nil
}

// GetByAdminID returns the employees owned by adminID.
func (r *MockEmployeeRepository) GetByAdminID(_ context.Context, adminID string) ([]models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := []models.Employee{}
	for _, e := range r.employees {
		if e.AdminID == adminID {
			employees = append(employees, e)
		}
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].CreatedAt.Before(employees[j].CreatedAt) })
	return employees, nil
}

// GetByEmail returns the employee with the given email.
func (r *MockEmployeeRepository) GetByEmail(_ context.Context, email string) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.Email == email {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("employee with email %s: %w", email, ErrNotFound)
}

// GetByID returns an employee by its ID.
func (r *MockEmployeeRepository) GetByID(_ context.Context, id string) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return nil, fmt.Errorf("employee with ID %s: %w", id, ErrNotFound)
	}
	return &e, nil
}

// Update applies a partial update.
func (r *MockEmployeeRepository) Update(_ context.Context, id string, update models.EmployeeUpdate) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return nil, fmt.Errorf("employee with ID %s not found for update: %w", id, ErrNotFound)
	}
	if update.Email != nil && r.emailTakenLocked(*update.Email, id) {
		return nil, fmt.Errorf("failed to update employee %s: %w", id, ErrDuplicateKey)
	}
	update.Apply(&e)
	e.UpdatedAt = time.Now()
	r.employees[id] = e
	return &e, nil
}

// Delete removes an employee by its ID.
func (r *MockEmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return fmt.Errorf("employee with ID %s not found for deletion: %w", id, ErrNotFound)
	}
	delete(r.employees, id)
	return nil
}

func (r *MockEmployeeRepository) emailTakenLocked(email, exceptID string) bool {
	for id, e := range r.employees {
		if id != exceptID && e.Email == email {
			return true
		}
	}
	return false
}
