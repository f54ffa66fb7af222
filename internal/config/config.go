package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	DatabaseType    string
	DatabasePath    string
	DatabaseURL     string
	SessionSecret   string
	SessionDuration time.Duration
	SeedDemoData    bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabaseType:    getEnv("DB_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./minifeed.db"),
		DatabaseURL:     getEnv("DB_URL", ""),
		SessionSecret:   getEnv("SESSION_SECRET", "minifeed-demo-secret"),
		SessionDuration: 24 * time.Hour,
		SeedDemoData:    getEnv("SEED_DEMO_DATA", "true") != "false",
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
