package repositories

import (
	"context"

	"staffdir/internal/models"
)

// EmployeeRepository defines the interface for employee data access.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByAdminID(ctx context.Context, adminID string) ([]models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	Update(ctx context.Context, id string, update models.EmployeeUpdate) (*models.Employee, error)
	Delete(ctx context.Context, id string) error
}
