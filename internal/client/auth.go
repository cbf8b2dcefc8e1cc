package client

import (
	"context"
	"fmt"
	"net/http"

	"sdg-knowledge/internal/models"
)

// PendingRegister submits a sign-up. The server answers 2xx with a token on
// success and field errors otherwise.
func (c *Client) PendingRegister(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error) {
	resp, err := c.Do(ctx, http.MethodPost, "api/auth/pending-register/", nil, req)
	if err != nil {
		return nil, fmt.Errorf("pending register: %w", err)
	}

	var result models.SignUpResponse
	if err := decode(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("pending register: %w", err)
	}
	if result.Token == "" {
		return nil, DecodeAPIError(resp.StatusCode, resp.Body)
	}
	return &result, nil
}

// Logout invalidates the token server-side. Only HTTP 200 counts as done.
func (c *Client) Logout(ctx context.Context) (int, error) {
	resp, err := c.Do(ctx, http.MethodPost, "api/auth/logout/", nil, struct{}{})
	if err != nil {
		return 0, fmt.Errorf("logout: %w", err)
	}
	return resp.StatusCode, nil
}

// AdminCheck reports whether the caller is a site admin.
func (c *Client) AdminCheck(ctx context.Context) (*models.AdminCheckResponse, error) {
	var result models.AdminCheckResponse
	if err := c.Get(ctx, "api/auth/admin-check/", nil, &result); err != nil {
		return nil, fmt.Errorf("admin check: %w", err)
	}
	return &result, nil
}

// GetProfile loads the caller's profile, or another user's when username
// is set.
func (c *Client) GetProfile(ctx context.Context, username string) (*models.Profile, error) {
	path := "api/auth/profile/"
	if username != "" {
		path += pathSegment(username) + "/"
	}

	var result models.Profile
	if err := c.Get(ctx, path, nil, &result); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &result, nil
}

// UpdateProfile replaces the caller's profile.
func (c *Client) UpdateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	var result models.Profile
	if err := c.Put(ctx, "api/auth/profile/", profile, &result); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if result.Username == "" {
		result = *profile
	}
	return &result, nil
}

// SendActivity posts one activity event.
func (c *Client) SendActivity(ctx context.Context, event *models.ActivityEvent) error {
	if err := c.Post(ctx, "api/auth/activity/", event, nil); err != nil {
		return fmt.Errorf("send activity: %w", err)
	}
	return nil
}
