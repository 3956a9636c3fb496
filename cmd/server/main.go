package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"vibestore-api/internal/config"
	"vibestore-api/internal/handlers"
	"vibestore-api/internal/middleware"
	"vibestore-api/pkg/server"
)

// @title VibeStore API
// @version 1.0
// @description Storefront backend for contact information and the product catalog

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.WithField("mode", string(config.DetectRuntime().Mode)).Info("Starting in server mode")

	container, err := server.NewContainer(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Close()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.RateLimit(
		config.GetEnvAsInt("RATE_LIMIT_RPS", 50),
		config.GetEnvAsInt("RATE_LIMIT_BURST", 100),
	))
	router.Use(middleware.ErrorHandler())

	handlers.SetupRoutes(router, &handlers.RouterConfig{
		ContactService: container.ContactService,
		ProductService: container.ProductService,
		DB:             container.DB(),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
