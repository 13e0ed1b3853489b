package services

import (
	"context"
	"errors"

	"staffdir/internal/models"
	"staffdir/internal/repositories"
)

// UserService handles account listing and maintenance.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all accounts.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}

// UpdateUser replaces the supplied fields. A new password is stored exactly as sent;
// only RegisterUser hashes.
func (s *UserService) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (*models.User, error) {
	user, err := s.repo.Update(ctx, id, update)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		return nil, ErrDuplicateEmail
	}
	return user, err
}

// DeleteUser removes an account. Employees it owns are left in place.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
