package auth

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"
)

// Token lifetimes
const (
	AccessTokenTTL  = 15 * time.Minute    // Access tokens are short-lived
	RefreshTokenTTL = 7 * 24 * time.Hour  // Refresh tokens live a week
)

// Claims carried by both access and refresh tokens
type Claims struct {
	UserID               uint   `json:"user_id"` // Custom claim for user ID
	Email                string `json:"email"`   // Custom claim for email
	jwt.RegisteredClaims        // Standard JWT claims
}

// TokenPair groups the tokens returned on every successful authentication
type TokenPair struct {
	AccessToken  string `json:"accessToken"`  // Short-lived bearer credential
	RefreshToken string `json:"refreshToken"` // Long-lived rotating credential
}

// Issuer signs and parses tokens with a shared HS256 secret
type Issuer struct {
	secret string
}

// NewIssuer creates a token issuer for the given signing secret
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: secret}
}

// IssuePair creates a signed access/refresh token pair for a user
func (i *Issuer) IssuePair(userID uint, email string) (*TokenPair, error) {
	access, err := i.sign(userID, email, AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := i.sign(userID, email, RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// sign creates one signed token expiring after ttl
func (i *Issuer) sign(userID uint, email string, ttl time.Duration) (string, error) {
	// Set token claims
	claims := Claims{
		UserID: userID, // Custom claim for user ID
		Email:  email,  // Custom claim for email
		// Standard claims; the random ID keeps tokens issued within the
		// same second distinct, so rotation always replaces the hash
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(i.secret))                // Sign the token with the secret
}

// Parse validates a token string (signature and expiry) and returns its claims
func (i *Issuer) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(i.secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
