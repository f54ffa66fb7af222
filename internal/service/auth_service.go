package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"minifeed/internal/models"
	"minifeed/internal/repository"
	"minifeed/internal/validation"
)

// AuthService handles account registration, login, password recovery and
// the session pointer. The mutex serializes read-modify-write sequences
// against the shared store; the persistence layer has no locking of its own.
type AuthService struct {
	accounts *repository.AccountRepository
	mu       sync.Mutex
}

// NewAuthService creates a new auth service
func NewAuthService(accounts *repository.AccountRepository) *AuthService {
	return &AuthService{accounts: accounts}
}

// Register creates a new account, establishes the session and returns the
// new user with the password redacted.
func (s *AuthService) Register(username, email, password, dateOfBirth string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate inputs
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}
	if err := validation.ValidateDateOfBirth(dateOfBirth); err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	// Check uniqueness (case-insensitive on both fields)
	existing, err := s.accounts.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if existing != nil {
		return nil, ConflictError{Message: "username already taken"}
	}

	existing, err = s.accounts.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, ConflictError{Message: "email already registered"}
	}

	now := time.Now()
	user := &models.User{
		Username:    username,
		Email:       email,
		Password:    password,
		DateOfBirth: strings.TrimSpace(dateOfBirth),
		CreatedAt:   now,
		SignInCount: 1,
		LastLoginAt: now,
	}

	if err := s.accounts.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if err := s.accounts.SetCurrentUsername(user.Username); err != nil {
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}

	return user.Redacted(), nil
}

// Login authenticates a user, updates the login statistics and establishes
// the session.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.accounts.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || user.Password != password {
		return nil, AuthError{Message: "invalid username or password"}
	}

	user.SignInCount++
	user.LastLoginAt = time.Now()

	if err := s.accounts.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update login stats: %w", err)
	}
	if err := s.accounts.SetCurrentUsername(user.Username); err != nil {
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}

	return user.Redacted(), nil
}

// ResetPassword overwrites the password after checking the date of birth
// recovery secret. It does not establish a session.
func (s *AuthService) ResetPassword(username, dateOfBirth, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.ValidateUsername(username); err != nil {
		return err
	}
	if err := validation.ValidateDateOfBirth(dateOfBirth); err != nil {
		return err
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}

	user, err := s.accounts.GetByUsername(username)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return NotFoundError{Entity: "user", ID: strings.TrimSpace(username)}
	}

	if user.DateOfBirth != strings.TrimSpace(dateOfBirth) {
		return MismatchError{Message: "date of birth does not match our records"}
	}

	now := time.Now()
	user.Password = newPassword
	user.LastPasswordResetAt = &now

	if err := s.accounts.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// CurrentUser returns the session's user with the password redacted, or nil
// when no session is established.
func (s *AuthService) CurrentUser() (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username, ok, err := s.accounts.CurrentUsername()
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	user, err := s.accounts.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		// Dangling pointer; treat as logged out
		return nil, nil
	}

	return user.Redacted(), nil
}

// Logout clears the session pointer
func (s *AuthService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.accounts.ClearCurrentUsername(); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}
