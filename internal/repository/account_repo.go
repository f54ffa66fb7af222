package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"minifeed/internal/kvstore"
	"minifeed/internal/models"
)

// AccountRepository handles persistence for user records and the current
// session pointer. Users are keyed by lowercased username.
type AccountRepository struct {
	kv kvstore.Store
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(kv kvstore.Store) *AccountRepository {
	return &AccountRepository{kv: kv}
}

// loadUsers reads the full users map, defaulting an absent document
func (r *AccountRepository) loadUsers() (map[string]models.User, error) {
	raw, ok, err := r.kv.Get(usersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	if !ok {
		return map[string]models.User{}, nil
	}

	var users map[string]models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	if users == nil {
		users = map[string]models.User{}
	}
	return users, nil
}

// saveUsers writes the full users map back
func (r *AccountRepository) saveUsers(users map[string]models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := r.kv.Set(usersKey, string(raw)); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by username (case-insensitive)
func (r *AccountRepository) GetByUsername(username string) (*models.User, error) {
	users, err := r.loadUsers()
	if err != nil {
		return nil, err
	}

	user, ok := users[normalizeUsername(username)]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetByEmail retrieves a user by email address (case-insensitive)
func (r *AccountRepository) GetByEmail(email string) (*models.User, error) {
	users, err := r.loadUsers()
	if err != nil {
		return nil, err
	}

	// Linear scan; fine at demo scale
	needle := strings.ToLower(strings.TrimSpace(email))
	for _, user := range users {
		if strings.ToLower(user.Email) == needle {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

// Create inserts a new user record. Uniqueness is checked by the service.
func (r *AccountRepository) Create(user *models.User) error {
	users, err := r.loadUsers()
	if err != nil {
		return err
	}

	users[normalizeUsername(user.Username)] = *user
	return r.saveUsers(users)
}

// Update overwrites an existing user record
func (r *AccountRepository) Update(user *models.User) error {
	users, err := r.loadUsers()
	if err != nil {
		return err
	}

	key := normalizeUsername(user.Username)
	if _, ok := users[key]; !ok {
		return fmt.Errorf("cannot update unknown user %s", user.Username)
	}

	users[key] = *user
	return r.saveUsers(users)
}

// CurrentUsername returns the session pointer, if set. The value is stored
// as a plain string, not JSON.
func (r *AccountRepository) CurrentUsername() (string, bool, error) {
	username, ok, err := r.kv.Get(currentUserKey)
	if err != nil {
		return "", false, fmt.Errorf("failed to read current user: %w", err)
	}
	if !ok || username == "" {
		return "", false, nil
	}
	return username, true, nil
}

// SetCurrentUsername establishes the session pointer
func (r *AccountRepository) SetCurrentUsername(username string) error {
	if err := r.kv.Set(currentUserKey, username); err != nil {
		return fmt.Errorf("failed to write current user: %w", err)
	}
	return nil
}

// ClearCurrentUsername removes the session pointer
func (r *AccountRepository) ClearCurrentUsername() error {
	if err := r.kv.Delete(currentUserKey); err != nil {
		return fmt.Errorf("failed to clear current user: %w", err)
	}
	return nil
}

// normalizeUsername lowercases and trims a username for use as a map key
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
