package server

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"vibestore-api/internal/config"
	"vibestore-api/internal/database"
	"vibestore-api/internal/repositories"
	"vibestore-api/internal/repositories/postgres"
	"vibestore-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	ContactService services.ContactService
	ProductService services.ProductService

	db *sql.DB
}

// NewContainer creates a new dependency injection container. Opening the
// container opens the database connection; Close releases it.
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	if logger == nil {
		logger = logrus.New()
	}

	db, err := database.Connect(&database.ConnectionConfig{
		DatabaseURL:     cfg.Database.ConnectionString,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repos := &repositories.RepositoryContainer{
		ContactRepo: postgres.NewContactRepository(db, logger),
		ProductRepo: postgres.NewProductRepository(db, logger),
	}

	serviceContainer, err := services.NewServiceContainer(repos)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return &Container{
		Config:         cfg,
		ContactService: serviceContainer.ContactService,
		ProductService: serviceContainer.ProductService,
		db:             db,
	}, nil
}

// DB returns the underlying database handle
func (c *Container) DB() *sql.DB {
	return c.db
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		c.db = nil
	}

	return nil
}
