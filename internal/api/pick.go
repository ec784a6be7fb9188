package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"binnacle_system/internal/domain"

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// SavePickRequest is the request body for saving a pick
type SavePickRequest struct {
	PredictionID uint `json:"prediction_id" binding:"required"` // Prediction to save
}

// SavePickHandler saves a prediction as a pick for the authenticated user
func SavePickHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Set by the access guard
		var req SavePickRequest              // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// The pick must reference an existing prediction
		var prediction domain.Prediction
		if err := db.First(&prediction, req.PredictionID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prediction not found"})
			return
		}
		// Check if the pick already exists
		var existing domain.Pick
		if err := db.Where("user_id = ? AND prediction_id = ?", userID, req.PredictionID).First(&existing).Error; err == nil {
			// If it does, return conflict
			c.JSON(http.StatusConflict, gin.H{"error": "Pick already saved"})
			return
		}
		pick := domain.Pick{UserID: userID, PredictionID: req.PredictionID}
		// Save the pick
		if err := db.Create(&pick).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save pick"})
			return
		}
		// Return the persisted pick
		c.JSON(http.StatusCreated, pick)
	}
}

// ListPicksHandler returns the authenticated user's picks, newest first
func ListPicksHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Set by the access guard
		var picks []domain.Pick              // Slice to hold picks
		// Fetch picks scoped to the user
		if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&picks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch picks"})
			return
		}
		// Return the pick list
		c.JSON(http.StatusOK, gin.H{"picks": picks})
	}
}

// DeletePickHandler removes one of the authenticated user's picks
func DeletePickHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Set by the access guard
		// Parse the pick id from the path
		pickID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pick id"})
			return
		}
		// Delete only within the caller's ownership scope
		res := db.Where("id = ? AND user_id = ?", pickID, userID).Delete(&domain.Pick{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pick"})
			return
		}
		// Someone else's pick looks like a missing one
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pick not found"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Pick deleted"})
	}
}
