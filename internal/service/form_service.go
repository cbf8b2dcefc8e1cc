package service

import (
	"context"

	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/permissions"
)

// FormService lists and opens action plans and edits their permissions.
type FormService struct {
	api     FormAPI
	tracker Tracker
}

// NewFormService creates a new FormService.
func NewFormService(api FormAPI, tracker Tracker) *FormService {
	return &FormService{
		api:     api,
		tracker: tracker,
	}
}

// ListForms returns the caller's action plans.
func (s *FormService) ListForms(ctx context.Context) (models.Listing[models.ActionPlan], error) {
	return s.api.ListForms(ctx)
}

// ViewForm loads a form and records the view.
func (s *FormService) ViewForm(ctx context.Context, formID int) (*models.ActionPlan, error) {
	form, err := s.api.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	s.tracker.TrackFormView(formID)
	return form, nil
}

// RecordEdit records an edit of a form's content.
func (s *FormService) RecordEdit(_ context.Context, formID int, content string) {
	s.tracker.TrackFormEdit(formID, content)
}

// OpenPermissions loads the permission editor for a form.
func (s *FormService) OpenPermissions(ctx context.Context, formID int) (*permissions.Editor, error) {
	return permissions.Load(ctx, s.api, formID)
}
