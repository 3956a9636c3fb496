package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"vibestore-api/internal/config"
	"vibestore-api/internal/database"
)

func main() {
	var (
		migrationsPath = flag.String("migrations", "./migrations", "Migrations directory path")
		action         = flag.String("action", "up", "Migration action: up, down, status")
		verbose        = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := database.Connect(&database.ConnectionConfig{
		DatabaseURL:     cfg.Database.ConnectionString,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		Logger:          logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	manager := database.NewMigrationManager(db, *migrationsPath, logger)

	switch *action {
	case "up":
		if err := manager.RunMigrations(); err != nil {
			logger.WithError(err).Fatal("Migration failed")
		}
	case "down":
		if err := manager.RollbackMigration(); err != nil {
			logger.WithError(err).Fatal("Rollback failed")
		}
	case "status":
		version, dirty, err := manager.Status()
		if err != nil {
			logger.WithError(err).Fatal("Failed to get migration status")
		}
		logger.WithFields(logrus.Fields{
			"version": version,
			"dirty":   dirty,
		}).Info("Migration status")
	default:
		logger.Fatalf("Unknown action: %s", *action)
	}
}
