package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"minifeed/internal/security"
	"minifeed/internal/service"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService     *service.AuthService
	sessionSecret   string
	sessionDuration time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, sessionSecret string, sessionDuration time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		sessionSecret:   sessionSecret,
		sessionDuration: sessionDuration,
	}
}

type registerRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth string `json:"dateOfBirth"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type resetPasswordRequest struct {
	Username    string `json:"username"`
	DateOfBirth string `json:"dateOfBirth"`
	NewPassword string `json:"newPassword"`
}

// Register handles account creation and establishes the session
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, err := h.authService.Register(req.Username, req.Email, req.Password, req.DateOfBirth)
	if err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.setSessionCookie(w, r, user.Username); err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// Login handles credential checks and establishes the session
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.setSessionCookie(w, r, user.Username); err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// Logout clears the session pointer and the session cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(); err != nil {
		respondWithError(w, err)
		return
	}

	http.SetCookie(w, security.CreateDeleteCookie(r))
	respondJSON(w, http.StatusNoContent, nil)
}

// ResetPassword overwrites the password after checking the recovery
// secret. It never establishes a session.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.authService.ResetPassword(req.Username, req.DateOfBirth, req.NewPassword); err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// Me returns the session's user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "not logged in"})
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// setSessionCookie issues a signed session token for the username
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, r *http.Request, username string) error {
	token, err := security.SignSessionToken(username, h.sessionSecret, h.sessionDuration)
	if err != nil {
		return err
	}

	http.SetCookie(w, security.CreateSessionCookie(r, token, time.Now().Add(h.sessionDuration)))
	return nil
}
