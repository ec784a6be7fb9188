package main

import (
	"context"                            // context package is needed for Redis operations
	"log"                                // log package is needed for logging
	"binnacle_system/internal/api"        // Custom package for API handlers
	"binnacle_system/internal/auth"       // Custom package for hashing and tokens
	"binnacle_system/internal/config"     // Custom package for configuration
	"binnacle_system/internal/middleware" // Custom package for middleware
	"binnacle_system/internal/repository" // Custom package for persistence
	"binnacle_system/internal/service"    // Custom package for domain services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration, fatal if the signing secret is missing

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire stores, hasher/issuer and services by hand
	issuer := auth.NewIssuer(cfg.JWTSecret)       // Token issuer with the shared secret
	userRepo := repository.NewUserRepository(db)  // User store
	betRepo := repository.NewBetRepository(db)    // Bet store
	authService := service.NewAuthService(userRepo, issuer) // Auth service
	betService := service.NewBetService(betRepo)            // Bet settlement service

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	authGroup := r.Group("/auth")
	authGroup.POST("/signup", api.SignupHandler(authService))                                          // Registration endpoint
	authGroup.POST("/login", api.LoginHandler(authService))                                            // Login endpoint
	authGroup.GET("/profile", middleware.JWTAuthMiddleware(issuer), api.ProfileHandler(authService))   // Profile endpoint
	authGroup.POST("/logout", middleware.JWTAuthMiddleware(issuer), api.LogoutHandler(authService))    // Logout endpoint
	authGroup.POST("/refresh", middleware.RefreshAuthMiddleware(issuer), api.RefreshHandler(authService)) // Refresh endpoint

	// Bet routes (protected by JWT, owner taken from the verified token)
	betGroup := r.Group("/bets")
	betGroup.Use(middleware.JWTAuthMiddleware(issuer))
	betGroup.POST("", api.PlaceBetHandler(betService, redisClient))              // Place bet endpoint
	betGroup.PATCH("/:id/settle", api.SettleBetHandler(betService, redisClient)) // Settle bet endpoint
	betGroup.GET("", api.ListBetsHandler(betService, redisClient))               // List bets endpoint
	betGroup.GET("/stats", api.BetStatsHandler(betService, redisClient))         // Bankroll stats endpoint

	// Prediction routes (reads are public, ingestion is admin only)
	r.GET("/predictions", api.ListPredictionsHandler(db, redisClient)) // List predictions endpoint
	r.POST("/predictions", middleware.JWTAuthMiddleware(issuer), middleware.AdminOnlyMiddleware(userRepo), api.CreatePredictionHandler(db, redisClient)) // Ingest prediction endpoint

	// Pick routes (protected by JWT)
	pickGroup := r.Group("/picks")
	pickGroup.Use(middleware.JWTAuthMiddleware(issuer))
	pickGroup.POST("", api.SavePickHandler(db))         // Save pick endpoint
	pickGroup.GET("", api.ListPicksHandler(db))         // List picks endpoint
	pickGroup.DELETE("/:id", api.DeletePickHandler(db)) // Delete pick endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
