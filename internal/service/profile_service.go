package service

import (
	"context"

	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/validator"
)

// ProfileService reads and updates user profiles.
type ProfileService struct {
	api AuthAPI
}

// NewProfileService creates a new ProfileService.
func NewProfileService(api AuthAPI) *ProfileService {
	return &ProfileService{api: api}
}

// GetProfile loads the caller's profile, or another user's when username
// is set.
func (s *ProfileService) GetProfile(ctx context.Context, username string) (*models.Profile, error) {
	return s.api.GetProfile(ctx, username)
}

// UpdateProfile validates the required fields before sending.
func (s *ProfileService) UpdateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if err := validator.ValidateProfile(profile); err != nil {
		return nil, err
	}
	return s.api.UpdateProfile(ctx, profile)
}

// Edit starts an edit session over profile.
func (s *ProfileService) Edit(profile *models.Profile) *ProfileEdit {
	return NewProfileEdit(profile)
}

// ProfileEdit holds a draft profile and the values it started from.
type ProfileEdit struct {
	initial models.Profile
	Draft   models.Profile
}

// NewProfileEdit snapshots profile as the initial state.
func NewProfileEdit(profile *models.Profile) *ProfileEdit {
	return &ProfileEdit{initial: *profile, Draft: *profile}
}

// Initial returns the values the edit started from.
func (e *ProfileEdit) Initial() models.Profile {
	return e.initial
}

// Changed reports whether the draft differs from the initial values.
func (e *ProfileEdit) Changed() bool {
	return e.Draft != e.initial
}

// Cancel restores the initial values.
func (e *ProfileEdit) Cancel() {
	e.Draft = e.initial
}

// Save sends the draft. On success the draft becomes the new initial
// state; on failure the draft is kept for correction.
func (e *ProfileEdit) Save(ctx context.Context, s ProfileServicer) (*models.Profile, error) {
	updated, err := s.UpdateProfile(ctx, &e.Draft)
	if err != nil {
		return nil, err
	}
	e.initial = *updated
	e.Draft = *updated
	return updated, nil
}
