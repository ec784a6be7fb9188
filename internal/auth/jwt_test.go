package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssuer_IssuePair(t *testing.T) {
	issuer := NewIssuer("test-secret")

	pair, err := issuer.IssuePair(7, "a@x.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	access, err := issuer.Parse(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), access.UserID)
	assert.Equal(t, "a@x.com", access.Email)

	refresh, err := issuer.Parse(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), refresh.UserID)

	// The refresh token outlives the access token
	assert.True(t, refresh.ExpiresAt.After(access.ExpiresAt.Time))
}

func TestIssuer_TokensDistinctWithinSameSecond(t *testing.T) {
	issuer := NewIssuer("test-secret")

	first, err := issuer.IssuePair(7, "a@x.com")
	assert.NoError(t, err)
	second, err := issuer.IssuePair(7, "a@x.com")
	assert.NoError(t, err)

	// Rotation depends on back-to-back pairs never colliding
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.NotEqual(t, first.AccessToken, second.AccessToken)
}

func TestIssuer_Parse_Expired(t *testing.T) {
	issuer := NewIssuer("test-secret")

	token, err := issuer.sign(7, "a@x.com", -time.Minute)
	assert.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}

func TestIssuer_Parse_WrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret")

	pair, err := issuer.IssuePair(7, "a@x.com")
	assert.NoError(t, err)

	_, err = NewIssuer("other-secret").Parse(pair.AccessToken)
	assert.Error(t, err)
}

func TestIssuer_Parse_Garbage(t *testing.T) {
	issuer := NewIssuer("test-secret")

	_, err := issuer.Parse("not-a-token")
	assert.Error(t, err)
}
