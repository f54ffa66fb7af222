package kvstore

import "testing"

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v; want absent, nil", ok, err)
	}

	if err := store.Set("auth.currentUser", "alice"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := store.Get("auth.currentUser")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != "alice" {
		t.Errorf("Get = %q, ok %v; want 'alice', true", value, ok)
	}

	// Overwrite
	if err := store.Set("auth.currentUser", "bob"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, _, _ = store.Get("auth.currentUser")
	if value != "bob" {
		t.Errorf("after overwrite Get = %q, want 'bob'", value)
	}

	if err := store.Delete("auth.currentUser"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.Get("auth.currentUser"); ok {
		t.Error("key still present after Delete")
	}

	// Deleting a missing key is not an error
	if err := store.Delete("auth.currentUser"); err != nil {
		t.Errorf("Delete of missing key failed: %v", err)
	}
}
