package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	t.Run("missing file loads empty", func(t *testing.T) {
		s, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, &Session{}, s)
	})

	t.Run("save uses the storage key names", func(t *testing.T) {
		exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, store.Save(ctx, &Session{Token: "tok", URL: testURL, TokenExpiry: &exp}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"token-expiry"`)
		assert.Contains(t, string(data), `"url"`)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", loaded.Token)
		assert.True(t, exp.Equal(*loaded.TokenExpiry))
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx))
		require.NoError(t, store.Clear(ctx))

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

		_, err := store.Load(ctx)

		assert.Error(t, err)
	})
}

func TestKey(t *testing.T) {
	tests := []struct {
		profile  string
		expected string
	}{
		{"default", "session:default"},
		{"staging", "session:staging"},
		{"", "session:"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Key(tt.profile))
		})
	}
}

func TestTTL(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Duration(0), TTL(&Session{}, now))
	assert.Equal(t, time.Hour, TTL(&Session{TokenExpiry: timePtr(now.Add(time.Hour))}, now))
	assert.Equal(t, time.Second, TTL(&Session{TokenExpiry: timePtr(now.Add(-time.Hour))}, now))
}
