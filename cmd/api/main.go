package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/modelproof/biasradar-api/docs"
	"github.com/modelproof/biasradar-api/internal/analyzer"
	"github.com/modelproof/biasradar-api/internal/api"
	"github.com/modelproof/biasradar-api/internal/config"
	"github.com/modelproof/biasradar-api/internal/domain"
	"github.com/modelproof/biasradar-api/internal/middleware"
	"github.com/modelproof/biasradar-api/internal/repository/postgres"
	"github.com/modelproof/biasradar-api/internal/service"
	"github.com/modelproof/biasradar-api/pkg/logger"
)

// @title           BiasRadar API
// @version         1.0
// @description     Bias detection and text fixing API gateway.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	if err := dbConnections.Writer.AutoMigrate(&domain.Organization{}); err != nil {
		appLogger.Fatal("Failed to migrate schema", err)
	}

	appLogger.Info("Database connections established - writer and reader connected")

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	repo := postgres.NewPostgresRepository(dbConnections)

	// Initialize services
	authService := service.NewAuthService(repo, cfg)
	quotaService := service.NewQuotaService(repo, cfg)
	organizationService := service.NewOrganizationService(repo)
	analyzerClient := analyzer.NewClient(cfg.AnalyzerBaseURL, cfg.ScanTimeout, cfg.FixTimeout, appLogger)
	analysisService := service.NewAnalysisService(quotaService, analyzerClient, cfg)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authService, quotaService, cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize server
	server := api.NewServer(
		organizationService,
		analysisService,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
	)

	// Initialize router
	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// Swagger documentation endpoint
	docs.SwaggerInfo.Title = "BiasRadar API"
	docs.SwaggerInfo.Description = "Bias detection and text fixing API gateway"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Schemes = []string{"http"}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup API routes
	apiGroup := router.Group("/api")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
