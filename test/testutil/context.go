package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds the calls a single test makes against the fake API.
const DefaultTimeout = 10 * time.Second

// Context returns a context that is cancelled when the test finishes or
// after DefaultTimeout.
func Context(t *testing.T) context.Context {
	t.Helper()
	return ContextWithTimeout(t, DefaultTimeout)
}

// ContextWithTimeout is Context with a custom deadline.
func ContextWithTimeout(t *testing.T, d time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	t.Cleanup(cancel)
	return ctx
}
