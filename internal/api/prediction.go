package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"binnacle_system/internal/domain"
	"binnacle_system/internal/utils"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// CreatePredictionRequest is the request body for ingesting a model prediction
type CreatePredictionRequest struct {
	League            string  `json:"league" binding:"required,oneof=NBA NFL"`      // NBA or NFL
	MatchID           string  `json:"match_id" binding:"required"`                  // External match reference
	MatchTitle        string  `json:"match_title"`                                  // Optional match title
	PredictedWinner   string  `json:"predicted_winner" binding:"required"`          // Team the model favors
	ConfidencePercent float64 `json:"confidence_percent" binding:"gte=0,lte=100"`   // Model confidence
	StartsAt          int64   `json:"starts_at" binding:"required"`                 // Scheduled start in milliseconds
}

// ListPredictionsHandler returns predictions, optionally filtered by league
func ListPredictionsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		league := c.DefaultQuery("league", "all") // Optional league filter
		ctx := context.Background()               // Context for Redis operations
		cacheKey := utils.PredictionsKey(league)
		var cached []domain.Prediction
		// Try to get cached predictions
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			// Return cached predictions
			c.JSON(http.StatusOK, gin.H{"predictions": cached, "cached": true})
			return
		}
		query := db.Model(&domain.Prediction{}) // Start building the query
		if league != "all" {
			query = query.Where("league = ?", league) // Filter by league
		}
		var predictions []domain.Prediction // Slice to hold predictions
		// Fetch predictions ordered by scheduled start
		if err := query.Order("starts_at asc").Find(&predictions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch predictions"})
			return
		}
		// Cache the result for 60 seconds
		_ = utils.SetCache(ctx, rdb, cacheKey, predictions, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"predictions": predictions, "cached": false})
	}
}

// CreatePredictionHandler ingests an offline-model prediction (admin only)
func CreatePredictionHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePredictionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		prediction := domain.Prediction{
			League:            domain.League(req.League), // NBA or NFL
			MatchID:           req.MatchID,               // External match reference
			MatchTitle:        req.MatchTitle,            // Optional match title
			PredictedWinner:   req.PredictedWinner,       // Team the model favors
			ConfidencePercent: req.ConfidencePercent,     // Model confidence
			StartsAt:          req.StartsAt,              // Scheduled start
		}
		// Save the prediction
		if err := db.Create(&prediction).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"match_id": req.MatchID, // External match reference
				"error":    err.Error(), // Error message
			}).Error("Failed to create prediction") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create prediction"})
			return
		}
		// Invalidate the league view and the combined view
		ctx := context.Background()
		_ = utils.DeleteCache(ctx, rdb, utils.PredictionsKey(req.League))
		_ = utils.DeleteCache(ctx, rdb, utils.PredictionsKey("all"))
		// Return the persisted prediction
		c.JSON(http.StatusCreated, prediction)
	}
}
