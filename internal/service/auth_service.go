package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	apperrors "sdg-knowledge/internal/errors"
	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/session"
	"sdg-knowledge/internal/validator"
)

// AuthService handles sign-up, login and logout.
type AuthService struct {
	api      AuthAPI
	sessions Sessions
}

// NewAuthService creates a new AuthService.
func NewAuthService(api AuthAPI, sessions Sessions) *AuthService {
	return &AuthService{
		api:      api,
		sessions: sessions,
	}
}

// SignUp registers a pending account. Nothing is sent unless the terms
// were agreed to.
func (s *AuthService) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error) {
	if err := validator.ValidateSignUp(req); err != nil {
		return nil, err
	}
	return s.api.PendingRegister(ctx, req)
}

// Login stores a session for token and fills in the user details from the
// profile. A zero expiry is read from the token itself. The session is
// removed again when the token is rejected.
func (s *AuthService) Login(ctx context.Context, token string, expiry time.Time) (*session.Session, error) {
	sess, err := s.sessions.Start(ctx, token, expiry, nil)
	if err != nil {
		return nil, err
	}
	if sess.TokenExpiry == nil {
		_ = s.sessions.End(ctx)
		return nil, fmt.Errorf("%w: token carries no expiry", apperrors.ErrNotLoggedIn)
	}

	profile, err := s.api.GetProfile(ctx, "")
	if err != nil {
		_ = s.sessions.End(ctx)
		return nil, err
	}

	user := &models.UserDetails{ID: profile.ID, Username: profile.Username, Email: profile.Email}
	sess, err = s.sessions.Start(ctx, token, *sess.TokenExpiry, user)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"username": user.Username,
		"expiry":   sess.TokenExpiry.Format(time.RFC3339),
	}).Info("Session started")
	return sess, nil
}

// Logout invalidates the token server-side and clears the local session
// once the server confirms with HTTP 200.
func (s *AuthService) Logout(ctx context.Context) error {
	status, err := s.api.Logout(ctx)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: status %d", apperrors.ErrLogoutFailed, status)
	}
	return s.sessions.End(ctx)
}

// IsAdmin reports whether the logged-in user is a site admin. Without a
// valid session the answer is false.
func (s *AuthService) IsAdmin(ctx context.Context) (bool, error) {
	if _, err := s.sessions.Current(ctx); err != nil {
		return false, nil
	}
	resp, err := s.api.AdminCheck(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrForbidden) {
			return false, nil
		}
		return false, err
	}
	return resp.IsAdmin, nil
}

// Status returns the current session.
func (s *AuthService) Status(ctx context.Context) (*session.Session, error) {
	return s.sessions.Current(ctx)
}
