package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrNotLoggedIn", ErrNotLoggedIn, "not logged in"},
		{"ErrSessionExpired", ErrSessionExpired, "session expired"},
		{"ErrURLMismatch", ErrURLMismatch, "session belongs to a different server"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestFlattenFieldErrors(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string][]string
		expected []string
	}{
		{
			name:     "nil mapping",
			fields:   nil,
			expected: nil,
		},
		{
			name:     "non field errors are not prefixed",
			fields:   map[string][]string{"non_field_errors": {"Passwords do not match.", "ignored"}},
			expected: []string{"Passwords do not match."},
		},
		{
			name: "field names are uppercased and sorted",
			fields: map[string][]string{
				"username": {"A user with that username already exists."},
				"email":    {"Enter a valid email address.", "second"},
			},
			expected: []string{
				"EMAIL: Enter a valid email address.",
				"USERNAME: A user with that username already exists.",
			},
		},
		{
			name: "non field errors come first and statusCode is skipped",
			fields: map[string][]string{
				"password1":        {"This password is too short."},
				"non_field_errors": {"Terms must be accepted."},
				"statusCode":       {"400"},
			},
			expected: []string{
				"Terms must be accepted.",
				"PASSWORD1: This password is too short.",
			},
		},
		{
			name:     "empty message lists are skipped",
			fields:   map[string][]string{"mobile": {}},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FlattenFieldErrors(tt.fields))
		})
	}
}

func TestAPIError(t *testing.T) {
	t.Run("matches sentinels by status", func(t *testing.T) {
		assert.True(t, errors.Is(&APIError{StatusCode: 401}, ErrUnauthorized))
		assert.True(t, errors.Is(&APIError{StatusCode: 403}, ErrForbidden))
		assert.True(t, errors.Is(&APIError{StatusCode: 404}, ErrNotFound))
		assert.False(t, errors.Is(&APIError{StatusCode: 500}, ErrNotFound))
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("get team: %w", &APIError{StatusCode: 404})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("error string prefers message", func(t *testing.T) {
		err := &APIError{StatusCode: 400, Message: "Team is full"}
		assert.Equal(t, "api error 400: Team is full", err.Error())
	})

	t.Run("error string falls back to fields", func(t *testing.T) {
		err := &APIError{StatusCode: 400, Fields: map[string][]string{"email": {"bad"}}}
		assert.Equal(t, "api error 400: EMAIL: bad", err.Error())
	})

	t.Run("messages fall back to generic", func(t *testing.T) {
		err := &APIError{StatusCode: 500}
		assert.Equal(t, []string{GenericMessage}, err.Messages())
	})
}

type fakeFieldErrors []string

func (f fakeFieldErrors) Error() string      { return "invalid" }
func (f fakeFieldErrors) Messages() []string { return f }

func TestUserMessages(t *testing.T) {
	assert.Nil(t, UserMessages(nil))
	assert.Equal(t, []string{GenericMessage}, UserMessages(errors.New("dial tcp: connection refused")))
	assert.Equal(t, []string{"Team is full"}, UserMessages(&APIError{StatusCode: 400, Message: "Team is full"}))
	assert.Equal(t, []string{"Email is required"}, UserMessages(fmt.Errorf("wrap: %w", fakeFieldErrors{"Email is required"})))
	assert.Equal(t, []string{"Only the team owner can change this setting"}, UserMessages(ErrNotTeamOwner))
	assert.Equal(t, []string{"Session expired"}, UserMessages(fmt.Errorf("load: %w", ErrSessionExpired)))
}

func TestExpected(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, true},
		{"network failure", errors.New("dial tcp: connection refused"), false},
		{"client error", &APIError{StatusCode: 400, Message: "Team is full"}, true},
		{"server error", fmt.Errorf("get team: %w", &APIError{StatusCode: 502}), false},
		{"validation", fakeFieldErrors{"Email is required"}, true},
		{"sentinel", fmt.Errorf("login: %w", ErrNotLoggedIn), true},
		{"unknown plan kind", fmt.Errorf("%w: %q", ErrUnknownPlanKind, "video"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expected(tt.err))
		})
	}
}
