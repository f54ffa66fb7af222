package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"minifeed/internal/service"
	"minifeed/internal/validation"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: validation.ValidationError{Field: "text", Message: "empty"}, want: http.StatusBadRequest},
		{name: "auth", err: service.AuthError{Message: "bad credentials"}, want: http.StatusUnauthorized},
		{name: "not found", err: service.NotFoundError{Entity: "post", ID: "p1"}, want: http.StatusNotFound},
		{name: "conflict", err: service.ConflictError{Message: "taken"}, want: http.StatusConflict},
		{name: "mismatch", err: service.MismatchError{Message: "wrong secret"}, want: http.StatusUnprocessableEntity},
		{name: "wrapped not found", err: errorsJoin(service.NotFoundError{Entity: "post", ID: "p1"}), want: http.StatusNotFound},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusForError(tt.err); got != tt.want {
				t.Errorf("statusForError() = %d, want %d", got, tt.want)
			}
		})
	}
}

// errorsJoin wraps an error the way services do before handing it up
func errorsJoin(err error) error {
	return &wrappedError{inner: err}
}

type wrappedError struct {
	inner error
}

func (w *wrappedError) Error() string { return "wrapped: " + w.inner.Error() }
func (w *wrappedError) Unwrap() error { return w.inner }

func TestRespondWithErrorHidesInternalDetails(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondWithError(recorder, errors.New("database exploded"))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", recorder.Code)
	}
	if strings.Contains(recorder.Body.String(), "exploded") {
		t.Error("internal error detail leaked to the client")
	}
}

func TestRespondWithErrorCarriesMessage(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondWithError(recorder, service.ConflictError{Message: "username already taken"})

	if recorder.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "username already taken") {
		t.Errorf("body missing message: %s", recorder.Body.String())
	}
}
