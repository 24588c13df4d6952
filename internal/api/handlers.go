package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/healthyrecipehub/backend/config"
	"github.com/healthyrecipehub/backend/internal/database"
	"github.com/healthyrecipehub/backend/internal/middleware"
	"github.com/healthyrecipehub/backend/internal/service"
	"github.com/healthyrecipehub/backend/internal/store"
)

// HealthCheck returns the health status of the API and its handlers
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"message":   "HealthyRecipeHub API is running",
		"version":   "v1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"handlers": gin.H{
			"register":            "active",
			"login":               "active",
			"processRecipe":       "active",
			"recipeAnalytics":     "active",
			"recommendations":     "active",
			"userStats":           "active",
			"welcomeEmail":        "active",
			"bulkProcessRecipes":  "active",
			"updateUserRole":      "active",
			"deleteUser":          "active",
			"dailyActivityReport": "scheduled",
			"exportRecipes":       "active",
		},
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, db *gorm.DB, authService *service.AuthService, exportService service.IExportService, cfg *config.Config) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	// Initialize Redis for rate limiting
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
		// Continue without rate limiting if Redis is not available
		redisClient = nil
	}

	var processingLimiter *middleware.RateLimiter
	var bulkLimiter *middleware.RateLimiter
	if redisClient != nil {
		processingLimiter = middleware.NewRecipeProcessingRateLimiter(redisClient)
		bulkLimiter = middleware.NewBulkProcessingRateLimiter(redisClient)
	}

	recordStore := store.New(db)
	emailService := service.NewEmailService()

	authHandler := NewAuthHandler(authService)
	recipeHandler := NewRecipeHandler(
		service.NewRecipeService(db, recordStore),
		service.NewRecommendationService(db, recordStore, emailService),
		authService,
		processingLimiter,
	)
	userHandler := NewUserHandler(service.NewUserService(db, recordStore), emailService, authService)
	adminHandler := NewAdminHandler(
		service.NewBulkService(recordStore),
		service.NewUserService(db, recordStore),
		service.NewReportService(db),
		exportService,
		authService,
		bulkLimiter,
	)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	userHandler.RegisterRoutes(v1)
	adminHandler.RegisterRoutes(v1)
}
