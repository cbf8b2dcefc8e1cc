package authz

import (
	"context"
	"errors"

	apperrors "sdg-knowledge/internal/errors"
	"sdg-knowledge/internal/models"
)

// TeamRoleFinder is the interface required by LocalAuthorizer to look up the
// caller's role. The API client satisfies it.
type TeamRoleFinder interface {
	GetTeamRole(ctx context.Context, teamID int) (*models.TeamRoleResponse, error)
}

// LocalAuthorizer implements Authorizer by asking the server for the
// caller's role and evaluating capabilities client-side.
type LocalAuthorizer struct {
	roleFinder TeamRoleFinder
}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer(roleFinder TeamRoleFinder) *LocalAuthorizer {
	return &LocalAuthorizer{
		roleFinder: roleFinder,
	}
}

// Ensure LocalAuthorizer implements Authorizer interface
var _ Authorizer = (*LocalAuthorizer)(nil)

// CanPerform checks if the current user holds a capability in a team.
func (a *LocalAuthorizer) CanPerform(ctx context.Context, teamID int, capability Capability) (bool, error) {
	role, err := a.GetRole(ctx, teamID)
	if err != nil {
		return false, err
	}
	return role.HasCapability(capability), nil
}

// GetRole returns the current user's role in a team. A 403/404 from the
// server means the caller is not a member and yields Member, which carries
// only view rights.
func (a *LocalAuthorizer) GetRole(ctx context.Context, teamID int) (Role, error) {
	resp, err := a.roleFinder.GetTeamRole(ctx, teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) || errors.Is(err, apperrors.ErrNotFound) {
			return TeamRoles.Member, nil // Expected: not a member
		}
		return TeamRoles.Member, err
	}
	return RoleFromString(resp.Role, resp.CanInvite, false), nil
}
