package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"minifeed/internal/service"
	"minifeed/internal/validation"
)

// respondJSON writes a JSON response with the given status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// respondWithError maps a store error onto an HTTP status and writes the
// error message as JSON. Unrecognized errors are logged and hidden behind
// a generic 500.
func respondWithError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		message = "internal server error"
	}

	respondJSON(w, status, map[string]string{"error": message})
}

// statusForError translates the error taxonomy to HTTP statuses
func statusForError(err error) int {
	var validationErr validation.ValidationError
	var authErr service.AuthError
	var notFoundErr service.NotFoundError
	var conflictErr service.ConflictError
	var mismatchErr service.MismatchError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	case errors.As(err, &mismatchErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
