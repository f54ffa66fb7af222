package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"minifeed/internal/models"
	"minifeed/internal/security"
	"minifeed/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// UserContextKey carries the authenticated user through the request context
const UserContextKey ContextKey = "user"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService   *service.AuthService
	sessionSecret string
	limiter       *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService, sessionSecret string, limiter *security.RateLimiter) *Middleware {
	return &Middleware{
		authService:   authService,
		sessionSecret: sessionSecret,
		limiter:       limiter,
	}
}

// RequireAuth is middleware that requires a valid session. The signed
// cookie must agree with the persisted current-user pointer, which stays
// authoritative.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(security.SessionCookieName)
		if err != nil {
			respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "not logged in"})
			return
		}

		username, err := security.ParseSessionToken(cookie.Value, m.sessionSecret)
		if err != nil {
			http.SetCookie(w, security.CreateDeleteCookie(r))
			respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session"})
			return
		}

		user, err := m.authService.CurrentUser()
		if err != nil {
			respondWithError(w, err)
			return
		}
		if user == nil || !strings.EqualFold(user.Username, username) {
			http.SetCookie(w, security.CreateDeleteCookie(r))
			respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "session expired"})
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// RateLimit is middleware that rejects clients exceeding the request budget
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(security.ClientAddr(r)) {
			respondJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetUserFromContext retrieves the user from the request context
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
