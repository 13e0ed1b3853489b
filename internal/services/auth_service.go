package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"staffdir/internal/models"
	"staffdir/internal/repositories"
)

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// AuthService handles registration and login.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
	events   EventPublisher
	// dummyHash is compared against when the email is unknown so both
	// login failure paths spend a bcrypt comparison.
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService, events EventPublisher) *AuthService {
	dummy, err := HashPassword("staffdir-unknown-account")
	if err != nil {
		log.Printf("Warning: could not prepare dummy password hash: %v", err)
	}
	return &AuthService{
		userRepo:  userRepo,
		tokens:    tokens,
		events:    events,
		dummyHash: dummy,
	}
}

// RegisterUser hashes the user's password and stores the user. On success user.Password
// holds the hash, never the plaintext.
func (s *AuthService) RegisterUser(ctx context.Context, user *models.User) error {
	existing, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two registrations can both pass the check above; the unique index decides.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to register user: %w", err)
	}

	publishEvent(s.events, EventUserRegistered, map[string]string{
		"userId": user.ID,
		"email":  user.Email,
	})
	return nil
}

// LoginUser authenticates a user by email and password and issues a token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			CheckPassword(s.dummyHash, password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:    token,
		UserID:   user.ID,
		Username: user.Name,
	}, nil
}

// ValidateToken verifies a bearer token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	return s.tokens.Verify(tokenString)
}
