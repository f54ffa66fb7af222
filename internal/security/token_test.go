package security

import (
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := SignSessionToken("alice", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken failed: %v", err)
	}

	username, err := ParseSessionToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseSessionToken failed: %v", err)
	}
	if username != "alice" {
		t.Errorf("username = %q, want 'alice'", username)
	}
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	token, err := SignSessionToken("alice", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken failed: %v", err)
	}

	if _, err := ParseSessionToken(token, "other-secret"); err == nil {
		t.Error("token accepted with wrong secret")
	}
}

func TestSessionTokenRejectsExpired(t *testing.T) {
	token, err := SignSessionToken("alice", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("SignSessionToken failed: %v", err)
	}

	if _, err := ParseSessionToken(token, "test-secret"); err == nil {
		t.Error("expired token accepted")
	}
}

func TestSessionTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseSessionToken("not-a-token", "test-secret"); err == nil {
		t.Error("garbage token accepted")
	}
}
