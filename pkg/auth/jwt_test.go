package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("testsecret123", 15*time.Minute)

	t.Run("token carries username", func(t *testing.T) {
		token, err := manager.GenerateToken("alice")
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`, token)

		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		other := NewJWTManager("secret2", 15*time.Minute)
		token, _ := other.GenerateToken("alice")

		claims, err := manager.ValidateToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTManager("testsecret123", -time.Minute)
		token, _ := expired.GenerateToken("alice")

		_, err := manager.ValidateToken(token)

		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, token := range []string{"", "not.a.valid.token", "abc"} {
			claims, err := manager.ValidateToken(token)
			assert.Error(t, err, token)
			assert.Nil(t, claims)
		}
	})
}

func TestTokenExpiry(t *testing.T) {
	t.Run("reads exp from a signed token", func(t *testing.T) {
		manager := NewJWTManager("whatever", 2*time.Hour)
		token, err := manager.GenerateToken("bob")
		require.NoError(t, err)

		expiry, ok := TokenExpiry(token)

		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiry, 2*time.Second)
	})

	t.Run("reads exp from an already expired token", func(t *testing.T) {
		manager := NewJWTManager("whatever", -time.Hour)
		token, _ := manager.GenerateToken("bob")

		expiry, ok := TokenExpiry(token)

		require.True(t, ok)
		assert.True(t, expiry.Before(time.Now()))
	})

	t.Run("jwt without exp", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "bob"}).SignedString([]byte("k"))
		require.NoError(t, err)

		_, ok := TokenExpiry(token)

		assert.False(t, ok)
	})

	t.Run("opaque tokens", func(t *testing.T) {
		for _, token := range []string{"", "9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b"} {
			_, ok := TokenExpiry(token)
			assert.False(t, ok, token)
		}
	})
}

func BenchmarkJWTManager_ValidateToken(b *testing.B) {
	manager := NewJWTManager("benchmarksecret", 15*time.Minute)
	token, _ := manager.GenerateToken("user123")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = manager.ValidateToken(token)
	}
}
