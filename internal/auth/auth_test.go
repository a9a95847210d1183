package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.NoError(t, CheckPassword(hash, "s3cret!"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), ErrPasswordMismatch)
}

func TestPassword_LongInput(t *testing.T) {
	long := strings.Repeat("a", 100)
	hash, err := HashPassword(long)
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, long))
	// differs only past bcrypt's 72 byte limit
	assert.ErrorIs(t, CheckPassword(hash, strings.Repeat("a", 99)+"b"), ErrPasswordMismatch)
}

func TestNewTokenManager(t *testing.T) {
	_, err := NewTokenManager("", "HS256", time.Minute)
	assert.Error(t, err)

	_, err = NewTokenManager("secret", "RS256", time.Minute)
	assert.Error(t, err)

	_, err = NewTokenManager("secret", "HS256", 0)
	assert.Error(t, err)

	m, err := NewTokenManager("secret", "HS512", 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, m.TTL())
}

func TestTokenRoundTrip(t *testing.T) {
	m, err := NewTokenManager("secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	token, err := m.Issue(7, "alice", true)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, int64(7), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.WithinDuration(t, claims.IssuedAt.Add(30*time.Minute), claims.ExpiresAt.Time, time.Second)
}

func TestParse_Rejects(t *testing.T) {
	m, err := NewTokenManager("secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		past, err := NewTokenManager("secret", "HS256", 30*time.Minute)
		require.NoError(t, err)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }

		token, err := past.Issue(1, "alice", false)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenManager("other", "HS256", time.Minute)
		require.NoError(t, err)
		token, err := other.Issue(1, "alice", false)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other algorithm", func(t *testing.T) {
		other, err := NewTokenManager("secret", "HS512", time.Minute)
		require.NoError(t, err)
		token, err := other.Issue(1, "alice", false)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice"}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
