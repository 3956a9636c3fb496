package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vibestore-api/internal/database"
	"vibestore-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	ContactService services.ContactService
	ProductService services.ProductService
	DB             *sql.DB
}

// SetupRoutes configures all API routes for server mode
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	contactHandler := NewContactHandler(config.ContactService)
	productHandler := NewProductHandler(config.ProductService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint with a database round-trip
	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(config.DB); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "vibestore-api",
			"version": "1.0.0",
		})
	})

	v1 := router.Group("/api/v1")
	{
		contact := v1.Group("/contact")
		{
			contact.GET("", contactHandler.GetContact)
			contact.PUT("", contactHandler.UpdateContact)
		}

		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}
	}
}
