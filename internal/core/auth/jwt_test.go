package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTer(now *time.Time) *JWTer {
	return &JWTer{
		Secret:     []byte("test-secret"),
		Issuer:     "cat-cafe",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
		Now:        func() time.Time { return *now },
	}
}

func TestJWTer_RoundTrip(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	j := newJWTer(&now)

	pair, err := j.IssuePair("u-1", "alice")
	require.NoError(t, err)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	c, err := j.Parse(pair.AccessToken, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u-1", c.UID)
	assert.Equal(t, "alice", c.Username)
	assert.Equal(t, AccessToken, c.Type)
	assert.NotEmpty(t, c.ID)

	c, err = j.Parse(pair.RefreshToken, RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, c.Type)
}

func TestJWTer_WrongType(t *testing.T) {
	now := time.Now()
	j := newJWTer(&now)
	pair, err := j.IssuePair("u-1", "alice")
	require.NoError(t, err)

	_, err = j.Parse(pair.RefreshToken, AccessToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
	_, err = j.Parse(pair.AccessToken, RefreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestJWTer_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	j := newJWTer(&now)
	tok, err := j.Issue("u-1", "alice", AccessToken)
	require.NoError(t, err)

	// 一分钟容差内仍有效
	now = now.Add(15*time.Minute + 30*time.Second)
	_, err = j.Parse(tok, AccessToken)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = j.Parse(tok, AccessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTer_RejectsForeignTokens(t *testing.T) {
	now := time.Now()
	j := newJWTer(&now)
	tok, err := j.Issue("u-1", "alice", AccessToken)
	require.NoError(t, err)

	other := newJWTer(&now)
	other.Secret = []byte("another-secret")
	_, err = other.Parse(tok, AccessToken)
	assert.Error(t, err)

	other = newJWTer(&now)
	other.Issuer = "someone-else"
	_, err = other.Parse(tok, AccessToken)
	assert.Error(t, err)

	_, err = j.Parse("not.a.token", AccessToken)
	assert.Error(t, err)
}
