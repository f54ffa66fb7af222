package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minifeed/internal/config"
	"minifeed/internal/handlers"
	"minifeed/internal/kvstore"
	"minifeed/internal/repository"
	"minifeed/internal/security"
	"minifeed/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize store with config (supports sqlite, postgres, mysql)
	kv, err := kvstore.OpenWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer kv.Close()

	log.Printf("Store opened (type: %s)", cfg.DatabaseType)

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(kv)
	postRepo := repository.NewPostRepository(kv)
	followRepo := repository.NewFollowRepository(kv)

	// Initialize services
	authService := service.NewAuthService(accountRepo)
	feedService := service.NewFeedService(postRepo)
	followService := service.NewFollowService(followRepo)

	// Seed demo posts (idempotent via persisted sentinel)
	if cfg.SeedDemoData {
		if err := feedService.Seed(); err != nil {
			log.Printf("Warning: Failed to seed demo posts: %v", err)
		}
	}

	// Initialize handlers
	limiter := security.NewRateLimiter(10, time.Minute)
	middleware := handlers.NewMiddleware(authService, cfg.SessionSecret, limiter)
	authHandler := handlers.NewAuthHandler(authService, cfg.SessionSecret, cfg.SessionDuration)
	feedHandler := handlers.NewFeedHandler(feedService, followService)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/logout", authHandler.Logout)
	mux.HandleFunc("POST /api/reset-password", middleware.RateLimit(authHandler.ResetPassword))

	// Protected routes
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /api/posts", middleware.RequireAuth(feedHandler.ListPosts))
	mux.HandleFunc("POST /api/posts", middleware.RequireAuth(feedHandler.CreatePost))
	mux.HandleFunc("DELETE /api/posts/{id}", middleware.RequireAuth(feedHandler.DeletePost))
	mux.HandleFunc("POST /api/posts/{id}/like", middleware.RequireAuth(feedHandler.ToggleLike))
	mux.HandleFunc("POST /api/posts/{id}/comments", middleware.RequireAuth(feedHandler.AddComment))
	mux.HandleFunc("GET /api/following/{handle}", middleware.RequireAuth(feedHandler.IsFollowing))
	mux.HandleFunc("POST /api/following/{handle}/toggle", middleware.RequireAuth(feedHandler.ToggleFollow))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}
