package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"sdg-knowledge/internal/authz"
	apperrors "sdg-knowledge/internal/errors"
	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/validator"
)

// TeamService handles team settings, roles and invitations.
type TeamService struct {
	api        TeamAPI
	authorizer authz.Authorizer
}

// NewTeamService creates a new TeamService. Roles are resolved through
// the team role endpoint.
func NewTeamService(api TeamAPI) *TeamService {
	return &TeamService{
		api:        api,
		authorizer: authz.NewLocalAuthorizer(api),
	}
}

// GetTeam loads a team.
func (s *TeamService) GetTeam(ctx context.Context, teamID int) (*models.Team, error) {
	return s.api.GetTeam(ctx, teamID)
}

// GetRole returns the caller's role in a team.
func (s *TeamService) GetRole(ctx context.Context, teamID int) (authz.Role, error) {
	return s.authorizer.GetRole(ctx, teamID)
}

// DefaultMaxMembers returns the admin-wide member limit, falling back to
// models.DefaultMaxMembers when it cannot be read.
func (s *TeamService) DefaultMaxMembers(ctx context.Context) int {
	settings, err := s.api.GetGlobalSettings(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to fetch global settings")
		return models.DefaultMaxMembers
	}
	if settings.DefaultMaxMembers <= 0 {
		return models.DefaultMaxMembers
	}
	return settings.DefaultMaxMembers
}

// UpdateMaxMembers parses input and sets the team's member limit. Only
// the team owner may change it.
func (s *TeamService) UpdateMaxMembers(ctx context.Context, teamID int, input string) (*models.MessageResponse, error) {
	maxMembers, err := validator.ParseMaxMembers(input)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.CanPerform(ctx, teamID, authz.CapUpdateMaxMembers)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrNotTeamOwner
	}

	resp, err := s.api.UpdateMaxMembers(ctx, teamID, maxMembers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrMaxMembersNotUpdated, err)
	}
	return resp, nil
}

// Invite sends email invitations for every address in list and empties
// the list on success.
func (s *TeamService) Invite(ctx context.Context, teamID int, list *validator.InviteList) (*models.EmailInviteResponse, error) {
	if err := list.Validate(); err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.CanPerform(ctx, teamID, authz.CapInviteMembers)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrCannotInvite
	}

	resp, err := s.api.EmailInvite(ctx, teamID, list.Emails())
	if err != nil {
		return nil, err
	}
	list.Reset()
	return resp, nil
}

// AcceptInvitation joins the team behind an invitation token.
func (s *TeamService) AcceptInvitation(ctx context.Context, token string) (*models.AcceptInvitationResponse, error) {
	if token == "" {
		return nil, apperrors.ErrInvitationNotUsable
	}
	resp, err := s.api.AcceptInvitation(ctx, token)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
