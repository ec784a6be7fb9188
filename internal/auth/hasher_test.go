package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashSecret_Opacity(t *testing.T) {
	hash, err := HashSecret("hunter22")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, VerifySecret("hunter22", hash))
	assert.False(t, VerifySecret("hunter23", hash))
	assert.False(t, VerifySecret("", hash))
}

func TestHashSecret_SaltedPerCall(t *testing.T) {
	first, err := HashSecret("hunter22")
	assert.NoError(t, err)
	second, err := HashSecret("hunter22")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.True(t, VerifySecret("hunter22", second))
}

func TestVerifySecret_CoversFullLongInput(t *testing.T) {
	// Refresh tokens exceed bcrypt's 72-byte window and share a long common
	// prefix; a difference past that window must still fail verification
	base := strings.Repeat("a", 90)
	other := base[:80] + strings.Repeat("b", 10)

	hash, err := HashSecret(base)
	assert.NoError(t, err)
	assert.True(t, VerifySecret(base, hash))
	assert.False(t, VerifySecret(other, hash))
}
