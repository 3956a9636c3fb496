package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Database    DatabaseConfig
}

// DatabaseConfig holds database configuration. ConnectionString is the
// single source of database location and credentials; if it is absent or
// wrong, the connection failure propagates to the invoking runtime.
type DatabaseConfig struct {
	ConnectionString string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
	MigrationsPath   string
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	_ = godotenv.Load()

	// A function invocation owns exactly one connection; a server keeps a
	// small pool.
	maxOpen, maxIdle := 10, 5
	if IsServerlessMode() {
		maxOpen, maxIdle = 1, 1
	}

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_MAX_OPEN_CONNS", maxOpen)
	viper.SetDefault("DB_MAX_IDLE_CONNS", maxIdle)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "1h")
	viper.SetDefault("MIGRATIONS_PATH", "./migrations")

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Database: DatabaseConfig{
			ConnectionString: viper.GetString("DATABASE_URL"),
			MaxOpenConns:     viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:     viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime:  viper.GetDuration("DB_CONN_MAX_LIFETIME"),
			MigrationsPath:   viper.GetString("MIGRATIONS_PATH"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
