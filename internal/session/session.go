// Package session persists the login session between CLI invocations and
// applies the session validity rule.
package session

import (
	"context"
	"errors"
	"time"

	apperrors "sdg-knowledge/internal/errors"
	"sdg-knowledge/internal/models"
	"sdg-knowledge/pkg/auth"
)

// Session holds the persisted keys. JSON names match the keys the web
// client kept in local storage.
type Session struct {
	Token       string              `json:"token,omitempty"`
	TokenExpiry *time.Time          `json:"token-expiry,omitempty"`
	URL         string              `json:"url,omitempty"`
	UserDetails *models.UserDetails `json:"userDetails,omitempty"`
}

// New builds a session for a freshly issued token. When expiry is zero it
// is read from the token's exp claim if the token is a JWT.
func New(token, url string, expiry time.Time, user *models.UserDetails) *Session {
	s := &Session{Token: token, URL: url, UserDetails: user}
	if expiry.IsZero() {
		if exp, ok := auth.TokenExpiry(token); ok {
			expiry = exp
		}
	}
	if !expiry.IsZero() {
		e := expiry.UTC()
		s.TokenExpiry = &e
	}
	return s
}

// Expired reports whether an expiry is recorded and now is past it.
func (s *Session) Expired(now time.Time) bool {
	return s.TokenExpiry != nil && now.After(*s.TokenExpiry)
}

// Check applies the validity rule: an expired session is reported as
// ErrSessionExpired; otherwise the session is valid only when a token is
// present, it was issued for configuredURL, and an expiry is recorded.
func (s *Session) Check(configuredURL string, now time.Time) error {
	if s.Expired(now) {
		return apperrors.ErrSessionExpired
	}
	if s.Token == "" || s.TokenExpiry == nil {
		return apperrors.ErrNotLoggedIn
	}
	if s.URL != configuredURL {
		return apperrors.ErrURLMismatch
	}
	return nil
}

// Store persists a single session.
type Store interface {
	// Load returns the stored session, or an empty one when none exists.
	Load(ctx context.Context) (*Session, error)
	// Save replaces the stored session.
	Save(ctx context.Context, s *Session) error
	// Clear removes every stored key.
	Clear(ctx context.Context) error
}

// Manager couples a Store with the configured server URL.
type Manager struct {
	store Store
	url   string
	now   func() time.Time
}

// NewManager creates a Manager.
func NewManager(store Store, configuredURL string) *Manager {
	return &Manager{store: store, url: configuredURL, now: time.Now}
}

// URL returns the configured server URL sessions are bound to.
func (m *Manager) URL() string {
	return m.url
}

// Current loads the session and validates it. An expired session is
// cleared from the store before ErrSessionExpired is returned.
func (m *Manager) Current(ctx context.Context) (*Session, error) {
	s, err := m.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.Check(m.url, m.now()); err != nil {
		if errors.Is(err, apperrors.ErrSessionExpired) {
			if clearErr := m.store.Clear(ctx); clearErr != nil {
				return nil, clearErr
			}
		}
		return nil, err
	}
	return s, nil
}

// LoggedIn reports whether a valid session exists.
func (m *Manager) LoggedIn(ctx context.Context) bool {
	_, err := m.Current(ctx)
	return err == nil
}

// Start stores a new session for token.
func (m *Manager) Start(ctx context.Context, token string, expiry time.Time, user *models.UserDetails) (*Session, error) {
	s := New(token, m.url, expiry, user)
	if err := m.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// End removes the stored session.
func (m *Manager) End(ctx context.Context) error {
	return m.store.Clear(ctx)
}

// TokenSource adapts the Manager to client.TokenSource. It yields the
// token of a valid session and "" otherwise.
func (m *Manager) TokenSource(ctx context.Context) *Tokens {
	return &Tokens{manager: m, ctx: ctx}
}

// Tokens is a TokenSource backed by a Manager.
type Tokens struct {
	manager *Manager
	ctx     context.Context
}

// Token returns the current token, or "" when not logged in.
func (t *Tokens) Token() string {
	s, err := t.manager.Current(t.ctx)
	if err != nil {
		return ""
	}
	return s.Token
}
