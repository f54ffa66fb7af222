package kvstore

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

func (d *MySQLDialect) DSN(config DialectConfig) string {
	return config.URL
}

func (d *MySQLDialect) RewriteQuery(query string) string {
	// MySQL uses ? placeholders like SQLite, no rewrite needed
	return query
}

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	// Configure connection pool for MySQL
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	return nil
}

// `key` is a reserved word in MySQL, so every query quotes it
func (d *MySQLDialect) CreateTableQuery() string {
	return "CREATE TABLE IF NOT EXISTS kv (" +
		"`key` VARCHAR(255) PRIMARY KEY, " +
		"`value` MEDIUMTEXT NOT NULL, " +
		"updated_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)" +
		");"
}

func (d *MySQLDialect) UpsertQuery() string {
	return "INSERT INTO kv (`key`, `value`) VALUES (?, ?) " +
		"ON DUPLICATE KEY UPDATE `value` = VALUES(`value`), updated_at = CURRENT_TIMESTAMP(6)"
}

func (d *MySQLDialect) GetQuery() string {
	return "SELECT `value` FROM kv WHERE `key` = ?"
}

func (d *MySQLDialect) DeleteQuery() string {
	return "DELETE FROM kv WHERE `key` = ?"
}
