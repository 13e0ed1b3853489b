package services

import (
	"errors"

	"staffdir/internal/repositories"
)

var (
	// ErrValidation marks input the service refuses to store.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicateEmail is returned when an email is already in use, whether caught by
	// the existence check or by the store's unique index.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = repositories.ErrNotFound
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
