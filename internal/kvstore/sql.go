package kvstore

import (
	"database/sql"
	"fmt"
	"strings"

	"minifeed/internal/config"
)

// SQLStore persists key-value pairs in a single kv table, with dialect
// support for SQLite, PostgreSQL and MySQL.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// Open creates and configures a SQLite-backed store (default backend)
func Open(dbPath string) (*SQLStore, error) {
	dialect := NewSQLiteDialect()
	return open(dialect, DialectConfig{Path: dbPath})
}

// OpenWithConfig creates and configures the store backend based on config
func OpenWithConfig(cfg *config.Config) (*SQLStore, error) {
	var dialect Dialect
	var dialectConfig DialectConfig

	switch strings.ToLower(cfg.DatabaseType) {
	case "postgres", "postgresql":
		dialect = NewPostgresDialect()
		dialectConfig = DialectConfig{URL: cfg.DatabaseURL}
	case "mysql":
		dialect = NewMySQLDialect()
		dialectConfig = DialectConfig{URL: cfg.DatabaseURL}
	case "sqlite", "sqlite3", "":
		dialect = NewSQLiteDialect()
		dialectConfig = DialectConfig{Path: cfg.DatabasePath}
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DatabaseType)
	}

	return open(dialect, dialectConfig)
}

func open(dialect Dialect, dialectConfig DialectConfig) (*SQLStore, error) {
	db, err := sql.Open(dialect.DriverName(), dialect.DSN(dialectConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Apply dialect-specific configuration
	if err := dialect.ConfigureConnection(db); err != nil {
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	// Create the kv table if it doesn't exist
	if _, err := db.Exec(dialect.CreateTableQuery()); err != nil {
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &SQLStore{db: db, dialect: dialect}, nil
}

// Get returns the value for key and whether the key exists
func (s *SQLStore) Get(key string) (string, bool, error) {
	query := s.dialect.RewriteQuery(s.dialect.GetQuery())

	var value string
	err := s.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get key %s: %w", key, err)
	}

	return value, true, nil
}

// Set writes the value for key, creating or replacing it
func (s *SQLStore) Set(key, value string) error {
	query := s.dialect.RewriteQuery(s.dialect.UpsertQuery())

	if _, err := s.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes the key
func (s *SQLStore) Delete(key string) error {
	query := s.dialect.RewriteQuery(s.dialect.DeleteQuery())

	if _, err := s.db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection
func (s *SQLStore) Close() error {
	return s.db.Close()
}
