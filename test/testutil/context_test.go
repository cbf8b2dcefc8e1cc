package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext(t *testing.T) {
	t.Run("carries the default deadline", func(t *testing.T) {
		deadline, ok := Context(t).Deadline()

		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(DefaultTimeout), deadline, time.Second)
	})

	t.Run("cancelled when the test finishes", func(t *testing.T) {
		var ctx context.Context
		t.Run("inner", func(t *testing.T) {
			ctx = ContextWithTimeout(t, time.Minute)
			assert.NoError(t, ctx.Err())
		})

		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})
}
