package repository

import (
	"testing"
	"time"

	"minifeed/internal/kvstore"
	"minifeed/internal/models"
)

func newTestUser(username, email string) *models.User {
	return &models.User{
		Username:    username,
		Email:       email,
		Password:    "secret1",
		DateOfBirth: "2000-01-01",
		CreatedAt:   time.Now(),
		SignInCount: 1,
		LastLoginAt: time.Now(),
	}
}

func TestAccountRepositoryCreateAndGet(t *testing.T) {
	repo := NewAccountRepository(kvstore.NewMemoryStore())

	if err := repo.Create(newTestUser("Alice", "a@x.com")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tests := []struct {
		name   string
		lookup string
		found  bool
	}{
		{name: "exact case", lookup: "Alice", found: true},
		{name: "lower case", lookup: "alice", found: true},
		{name: "upper case", lookup: "ALICE", found: true},
		{name: "unknown user", lookup: "bob", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := repo.GetByUsername(tt.lookup)
			if err != nil {
				t.Fatalf("GetByUsername failed: %v", err)
			}
			if (user != nil) != tt.found {
				t.Errorf("GetByUsername(%q) found = %v, want %v", tt.lookup, user != nil, tt.found)
			}
		})
	}
}

func TestAccountRepositoryGetByEmailCaseInsensitive(t *testing.T) {
	repo := NewAccountRepository(kvstore.NewMemoryStore())

	if err := repo.Create(newTestUser("alice", "Alice@X.com")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	user, err := repo.GetByEmail("alice@x.COM")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if user == nil {
		t.Fatal("expected user for case-insensitive email lookup")
	}
	if user.Username != "alice" {
		t.Errorf("got username %q, want 'alice'", user.Username)
	}

	missing, err := repo.GetByEmail("nobody@x.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown email")
	}
}

func TestAccountRepositoryUpdate(t *testing.T) {
	repo := NewAccountRepository(kvstore.NewMemoryStore())

	user := newTestUser("alice", "a@x.com")
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	user.SignInCount = 5
	if err := repo.Update(user); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stored, err := repo.GetByUsername("alice")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if stored.SignInCount != 5 {
		t.Errorf("SignInCount = %d, want 5", stored.SignInCount)
	}

	// Updating a user that was never created is an error
	if err := repo.Update(newTestUser("ghost", "g@x.com")); err == nil {
		t.Error("expected error updating unknown user")
	}
}

func TestAccountRepositorySessionPointer(t *testing.T) {
	repo := NewAccountRepository(kvstore.NewMemoryStore())

	if _, ok, err := repo.CurrentUsername(); err != nil || ok {
		t.Fatalf("CurrentUsername on empty store = ok %v, err %v", ok, err)
	}

	if err := repo.SetCurrentUsername("alice"); err != nil {
		t.Fatalf("SetCurrentUsername failed: %v", err)
	}

	username, ok, err := repo.CurrentUsername()
	if err != nil {
		t.Fatalf("CurrentUsername failed: %v", err)
	}
	if !ok || username != "alice" {
		t.Errorf("CurrentUsername = %q, ok %v; want 'alice', true", username, ok)
	}

	if err := repo.ClearCurrentUsername(); err != nil {
		t.Fatalf("ClearCurrentUsername failed: %v", err)
	}
	if _, ok, _ := repo.CurrentUsername(); ok {
		t.Error("session pointer still set after clear")
	}
}
