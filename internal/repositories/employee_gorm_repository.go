package repositories

import (
	"context"
	"fmt"

	"staffdir/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEmployeeRepository is a GORM implementation of EmployeeRepository.
type GORMEmployeeRepository struct {
	db *gorm.DB
}

// NewGORMEmployeeRepository creates a new instance of GORMEmployeeRepository.
func NewGORMEmployeeRepository(db *gorm.DB) *GORMEmployeeRepository {
	return &GORMEmployeeRepository{
		db: db,
	}
}

// Create inserts a new employee.
func (r *GORMEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(employee).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", translate(err))
	}
	return nil
}

// GetByAdminID retrieves the employees owned by adminID.
func (r *GORMEmployeeRepository) GetByAdminID(ctx context.Context, adminID string) ([]models.Employee, error) {
	employees := []models.Employee{}
	err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("created_at").
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get employees for admin %s: %w", adminID, err)
	}
	return employees, nil
}

// GetByEmail retrieves an employee by email.
func (r *GORMEmployeeRepository) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).First(&employee, "email = ?", email).Error; err != nil {
		return nil, fmt.Errorf("failed to get employee by email %s: %w", email, translate(err))
	}
	return &employee, nil
}

// GetByID retrieves a single employee by its ID.
func (r *GORMEmployeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get employee by ID %s: %w", id, translate(err))
	}
	return &employee, nil
}

// Update applies a partial update and returns the stored record.
func (r *GORMEmployeeRepository) Update(ctx context.Context, id string, update models.EmployeeUpdate) (*models.Employee, error) {
	cols := update.Columns()
	if len(cols) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Employee{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update employee %s: %w", id, translate(res.Error))
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("employee with ID %s not found for update: %w", id, ErrNotFound)
		}
	}
	return r.GetByID(ctx, id)
}

// Delete deletes an employee by its ID.
func (r *GORMEmployeeRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Employee{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("employee with ID %s not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}
