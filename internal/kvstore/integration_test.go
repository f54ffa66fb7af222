package kvstore

import (
	"os"
	"path/filepath"
	"testing"
)

// TestSQLStoreIntegration tests the complete store lifecycle against SQLite
func TestSQLStoreIntegration(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "kv_integration.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	// Absent key
	if _, ok, err := store.Get("auth.users"); err != nil || ok {
		t.Fatalf("Get(absent) = ok %v, err %v; want absent, nil", ok, err)
	}

	// Set, get, overwrite
	if err := store.Set("auth.users", `{"alice":{}}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := store.Get("auth.users")
	if err != nil || !ok || value != `{"alice":{}}` {
		t.Fatalf("Get = %q, ok %v, err %v", value, ok, err)
	}

	if err := store.Set("auth.users", `{"alice":{},"bob":{}}`); err != nil {
		t.Fatalf("overwrite Set failed: %v", err)
	}
	value, _, _ = store.Get("auth.users")
	if value != `{"alice":{},"bob":{}}` {
		t.Errorf("after overwrite Get = %q", value)
	}

	// Delete
	if err := store.Delete("auth.users"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.Get("auth.users"); ok {
		t.Error("key still present after Delete")
	}
}

// TestSQLStorePersistsAcrossReopen verifies data survives closing the store
func TestSQLStorePersistsAcrossReopen(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "kv_reopen.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := store.Set("auth.postsSeeded", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	if _, ok, err := reopened.Get("auth.postsSeeded"); err != nil || !ok {
		t.Errorf("sentinel lost across reopen: ok %v, err %v", ok, err)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}
