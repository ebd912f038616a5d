package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"expensia/internal/auth"
	"expensia/internal/config"
	"expensia/internal/database"
	"expensia/internal/handlers"
	"expensia/internal/logger"
	"expensia/internal/mailer"
	"expensia/internal/middleware"
	"expensia/internal/services"
	"expensia/internal/validator"

	_ "expensia/internal/docs" // Import swagger docs
)

// @title           Expensia API
// @version         1.0
// @description     Expensia is an expense tracker that lets users record income and expense transactions and see aggregated views of where their money goes.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Reset emails are optional; without SMTP credentials the forgot-password
	// endpoint reports the feature as unavailable.
	var resetMailer mailer.Mailer
	if appConfig.MailConfigured() {
		resetMailer = mailer.NewSMTP(appConfig)
	} else {
		log.Warn("SMTP credentials not set; password reset emails are disabled")
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	passwordResetService := services.NewPasswordResetService(db, userService, resetMailer, appConfig.FrontendBaseURL)
	transactionService := services.NewTransactionService(db)
	auditService := services.NewAuditService(db)

	tokenIssuer := auth.NewTokenIssuer(appConfig.JWTSecret, appConfig.JWTExpirationDur)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, passwordResetService, tokenIssuer, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"mail_configured": appConfig.MailConfigured(),
		})
	})

	// API group
	api := router.Group("/api")

	// Public routes
	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/forgot-password", authHandler.ForgotPassword)
	authRoutes.POST("/reset-password/:token", authHandler.ResetPassword)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.Auth(tokenIssuer, userService))

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/summary", transactionHandler.GetSummary)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	log.Infof("Starting Expensia backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
