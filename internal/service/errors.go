package service

import "fmt"

// The stores report failures as plain values carrying a human-readable
// message; none are fatal. ValidationError lives in internal/validation,
// the rest of the taxonomy is defined here.

// AuthError indicates bad credentials
type AuthError struct {
	Message string
}

func (e AuthError) Error() string {
	return e.Message
}

// NotFoundError indicates an unknown entity id
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ConflictError indicates a duplicate username or email
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}

// MismatchError indicates a recovery secret that doesn't match
type MismatchError struct {
	Message string
}

func (e MismatchError) Error() string {
	return e.Message
}
