package auth

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// HashSecret creates a bcrypt hash of a secret. The same primitive covers
// passwords and refresh tokens.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(digest(secret), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifySecret checks a secret against its stored hash
func VerifySecret(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), digest(secret)) == nil
}

// digest pre-hashes the secret with SHA-256. bcrypt only reads the first 72
// bytes of its input and refresh tokens are longer than that, with a
// near-constant prefix per user.
func digest(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
