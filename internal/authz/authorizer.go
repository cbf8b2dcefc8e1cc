// Package authz derives team capabilities from the caller's role and
// evaluates form-level access rules.
package authz

import "context"

// Capability names a gated UI action.
type Capability string

// Capability constants define the gated actions.
const (
	CapTeamView         Capability = "team:view"
	CapManageMembers    Capability = "team:manage_members"
	CapUpdateMaxMembers Capability = "team:update_max_members"
	CapInviteMembers    Capability = "member:invite"
	CapFormEditAll      Capability = "form:edit_all"
)

// Authorizer defines the interface for capability checks against a team.
type Authorizer interface {
	// CanPerform checks if the current user holds a capability in a team.
	CanPerform(ctx context.Context, teamID int, capability Capability) (bool, error)

	// GetRole returns the current user's role in a team.
	GetRole(ctx context.Context, teamID int) (Role, error)
}
