package models

// DefaultMaxMembers is used when the global setting is unavailable.
const DefaultMaxMembers = 6

// Team represents a team as returned by api/teams/<id>/.
type Team struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxMembers  int    `json:"max_members"`
}

// TeamRoleResponse is the caller's role in a team.
type TeamRoleResponse struct {
	Role      string `json:"role"`
	CanInvite bool   `json:"can_invite"`
}

// GlobalSettings holds admin-wide team defaults.
type GlobalSettings struct {
	DefaultMaxMembers int `json:"default_max_members"`
}

// UpdateMaxMembersRequest is the payload for update-max-members.
type UpdateMaxMembersRequest struct {
	MaxMembers int `json:"max_members" validate:"min=1"`
}
