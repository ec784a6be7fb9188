package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"binnacle_system/internal/auth" // Token verification

	"github.com/gin-gonic/gin" // Gin web framework
)

// JWTAuthMiddleware validates bearer access tokens and exposes the caller's
// identity to downstream handlers
func JWTAuthMiddleware(issuer *auth.Issuer) gin.HandlerFunc {
	return bearerGuard(issuer)
}

// RefreshAuthMiddleware accepts the refresh token in the same bearer slot.
// Signature and expiry checks are identical; matching against the stored
// rotating hash happens in the auth service.
func RefreshAuthMiddleware(issuer *auth.Issuer) gin.HandlerFunc {
	return bearerGuard(issuer)
}

// bearerGuard is the single verification primitive behind both guards
func bearerGuard(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := issuer.Parse(tokenStr)                 // Verify signature and expiry
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("userID", claims.UserID)  // Store userID in context
		c.Set("email", claims.Email)    // Store email in context
		c.Set("bearerToken", tokenStr)  // Raw token, needed by the refresh endpoint
		c.Next()                        // Proceed to the next handler
	}
}
