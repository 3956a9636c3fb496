package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// ConnectionConfig holds database connection configuration
type ConnectionConfig struct {
	DatabaseURL     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Logger          *logrus.Logger
}

// DefaultConnectionConfig returns a default configuration. One open
// connection per process: each function invocation owns its own handle and
// nothing is shared across invocations.
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}
}

// withDefaults fills unset pool settings from DefaultConnectionConfig
func (c *ConnectionConfig) withDefaults() *ConnectionConfig {
	defaults := DefaultConnectionConfig()

	out := *c
	if out.MaxOpenConns <= 0 {
		out.MaxOpenConns = defaults.MaxOpenConns
	}
	if out.MaxIdleConns <= 0 {
		out.MaxIdleConns = defaults.MaxIdleConns
	}
	if out.ConnMaxLifetime <= 0 {
		out.ConnMaxLifetime = defaults.ConnMaxLifetime
	}

	return &out
}

// Connect opens a Postgres connection and verifies it with a ping. A missing
// or invalid DATABASE_URL surfaces here and propagates to the caller.
func Connect(config *ConnectionConfig) (*sql.DB, error) {
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("database connection string is empty")
	}
	config = config.withDefaults()

	db, err := sql.Open("postgres", config.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if config.Logger != nil {
		config.Logger.Info("Database connection established")
	}

	return db, nil
}

// HealthCheck performs a simple round-trip check on the connection
func HealthCheck(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database connection not established")
	}

	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("test query failed: %w", err)
	}

	if result != 1 {
		return fmt.Errorf("test query returned unexpected result: %d", result)
	}

	return nil
}
