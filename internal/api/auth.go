package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes

	"binnacle_system/internal/apperrors"
	"binnacle_system/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// SignupRequest is the request body for registration
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`           // Email must be provided and well-formed
	Password string `json:"password" binding:"required,min=8,max=72"` // Password must be 8-72 characters
	Name     string `json:"name"`                                     // Optional display name
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// SignupHandler registers a new user and returns a token pair
func SignupHandler(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		pair, err := authService.Signup(req.Email, req.Password, req.Name)
		if err != nil {
			// An existing email is the only caller-visible failure
			if errors.Is(err, apperrors.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
				return
			}
			// Anything else is an internal failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
			return
		}
		// Return the token pair
		c.JSON(http.StatusCreated, pair)
	}
}

// LoginHandler authenticates a user and returns a fresh token pair
func LoginHandler(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		pair, err := authService.Login(req.Email, req.Password)
		if err != nil {
			// One generic message for every credential failure
			if errors.Is(err, apperrors.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		// Return the token pair
		c.JSON(http.StatusOK, pair)
	}
}

// ProfileHandler returns the authenticated caller's identity and public record
func ProfileHandler(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Set by the access guard
		user, err := authService.Profile(userID)
		if err != nil {
			// The token verified but the account is gone
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Return verified identity plus the public user record
		c.JSON(http.StatusOK, gin.H{
			"userId": userID,               // Verified user ID
			"email":  c.GetString("email"), // Verified email
			"user":   user,                 // Public record, secret fields excluded
		})
	}
}

// LogoutHandler clears the caller's active session
func LogoutHandler(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Set by the access guard
		if err := authService.Logout(userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
		// Logging out twice is fine, the hash is simply cleared again
		c.JSON(http.StatusOK, gin.H{})
	}
}

// RefreshHandler exchanges a valid refresh token for a new token pair,
// rotating the stored one
func RefreshHandler(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint)            // Set by the refresh guard
		presented := c.MustGet("bearerToken").(string)  // The raw refresh token
		pair, err := authService.Refresh(userID, presented)
		if err != nil {
			// Unknown user, no session and stale token all look the same
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access Denied"})
			return
		}
		// Return the new token pair
		c.JSON(http.StatusOK, pair)
	}
}
