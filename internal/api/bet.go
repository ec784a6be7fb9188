package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"binnacle_system/internal/apperrors"
	"binnacle_system/internal/domain"
	"binnacle_system/internal/service"
	"binnacle_system/internal/utils"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// PlaceBetRequest is the request body for placing a bet
type PlaceBetRequest struct {
	Stake      float64  `json:"stake" binding:"required,gte=1"`          // Wagered amount, at least 1
	Odds       float64  `json:"odds" binding:"required,gte=1.01"`        // Decimal odds, at least 1.01
	MatchID    string   `json:"match_id" binding:"required"`             // External match reference
	League     string   `json:"league" binding:"required,oneof=NBA NFL"` // NBA or NFL
	EvPercent  *float64 `json:"ev_percent"`                              // Optional expected value percent
	MatchTitle string   `json:"match_title"`                             // Optional match title
}

// SettleBetRequest is the request body for settling a bet
type SettleBetRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING WON LOST PUSH"` // New settlement status
}

// PlaceBetHandler records a new PENDING bet for the authenticated user
func PlaceBetHandler(betService *service.BetService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Set by the access guard
		var req PlaceBetRequest              // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		bet, err := betService.PlaceBet(userID, req.Stake, req.Odds, req.MatchID, domain.League(req.League), req.EvPercent, req.MatchTitle)
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidBet) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bet parameters"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place bet"})
			return
		}
		// The user's bet list and stats views are stale now
		utils.InvalidateBetCaches(context.Background(), rdb, userID)
		c.JSON(http.StatusCreated, bet) // Return the persisted bet
	}
}

// SettleBetHandler resolves a bet's outcome for the authenticated user
func SettleBetHandler(betService *service.BetService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Set by the access guard
		// Parse the bet id from the path
		betID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bet id"})
			return
		}
		var req SettleBetRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		bet, err := betService.SettleBet(userID, uint(betID), domain.BetStatus(req.Status))
		if err != nil {
			// A bet outside the caller's scope looks like a missing one
			if errors.Is(err, apperrors.ErrBetNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Bet not found"})
				return
			}
			if errors.Is(err, apperrors.ErrInvalidBet) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bet parameters"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle bet"})
			return
		}
		// The user's bet list and stats views are stale now
		utils.InvalidateBetCaches(context.Background(), rdb, userID)
		c.JSON(http.StatusOK, bet) // Return the updated bet
	}
}

// ListBetsHandler returns all bets of the authenticated user, newest first
func ListBetsHandler(betService *service.BetService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Set by the access guard
		ctx := context.Background()          // Context for Redis operations
		cacheKey := utils.UserBetsKey(userID)
		var cached []domain.Bet
		// Try to get cached bets
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			// Return cached bet list
			c.JSON(http.StatusOK, gin.H{"bets": cached, "cached": true})
			return
		}
		bets, err := betService.GetMyBets(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bets"})
			return
		}
		// Cache the list for 60 seconds
		_ = utils.SetCache(ctx, rdb, cacheKey, bets, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"bets": bets, "cached": false}) // Return bet list
	}
}

// BetStatsHandler returns the authenticated user's bankroll stats over settled bets
func BetStatsHandler(betService *service.BetService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Set by the access guard
		ctx := context.Background()          // Context for Redis operations
		cacheKey := utils.UserStatsKey(userID)
		var cached service.BankrollStats
		// Try to get cached stats
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			// Return cached stats
			c.JSON(http.StatusOK, gin.H{"totalProfit": cached.TotalProfit, "totalBets": cached.TotalBets, "cached": true})
			return
		}
		stats, err := betService.GetBankrollStats(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		// Cache the stats for 60 seconds
		_ = utils.SetCache(ctx, rdb, cacheKey, stats, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"totalProfit": stats.TotalProfit, "totalBets": stats.TotalBets, "cached": false})
	}
}
