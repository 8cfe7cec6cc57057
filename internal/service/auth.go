package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatehouse-app/gatehouse/internal/domain"
)

// AuthService handles user registration, login, and session token
// operations.
type AuthService struct {
	users      domain.UserRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new non-admin user account and returns it together
// with a freshly issued session token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email, and password are required", domain.ErrInvalidInput)
	}

	// The store's unique constraint is the real guard; this check exists
	// so a duplicate register gets its specific rejection before any
	// hashing work is done.
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", fmt.Errorf("check existing email: %w", err)
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      false,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.IssueSessionToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a freshly issued
// session token. Unknown email and wrong password are indistinguishable
// to the caller: both come back as ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, "", domain.ErrUnauthorized
	}

	token, err := s.IssueSessionToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}

	return user, token, nil
}

// GetUserByID retrieves a user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
