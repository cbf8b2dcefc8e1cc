package authz

import "sdg-knowledge/internal/models"

// Role is an immutable team role with its modifier flags.
type Role struct {
	// Title is the role name as the API spells it.
	Title string
	// Label is the display form of Title.
	Label string
	// CanInvite grants member:invite regardless of Title.
	CanInvite bool
	// Explicit grants form:edit_all regardless of Title.
	Explicit bool

	rank int
}

// TeamRoles is the closed set of recognized roles.
var TeamRoles = struct {
	Member    Role
	Admin     Role
	TeamOwner Role
}{
	Member:    Role{Title: models.RoleMember, Label: "Member", rank: 0},
	Admin:     Role{Title: models.RoleAdmin, Label: "Admin", rank: 1},
	TeamOwner: Role{Title: models.RoleOwner, Label: "Team Owner", rank: 2},
}

// rolePermissions maps capabilities to the role titles that hold them.
var rolePermissions = map[Capability][]string{
	CapTeamView:         {models.RoleOwner, models.RoleAdmin, models.RoleMember},
	CapUpdateMaxMembers: {models.RoleOwner},
	CapManageMembers:    {models.RoleOwner, models.RoleAdmin},
	CapInviteMembers:    {models.RoleOwner, models.RoleAdmin},
	CapFormEditAll:      {models.RoleOwner},
}

// RoleFromString maps an API role name to a Role. Matching is exact;
// anything unrecognized yields Member. The flags are attached as given.
func RoleFromString(roleName string, canInvite, isExplicit bool) Role {
	var r Role
	switch roleName {
	case models.RoleOwner:
		r = TeamRoles.TeamOwner
	case models.RoleAdmin:
		r = TeamRoles.Admin
	default:
		r = TeamRoles.Member
	}
	r.CanInvite = canInvite
	r.Explicit = isExplicit
	return r
}

// HasCapability reports whether the role holds a capability.
func (r Role) HasCapability(c Capability) bool {
	switch {
	case c == CapInviteMembers && r.CanInvite:
		return true
	case c == CapFormEditAll && r.Explicit:
		return true
	}

	for _, title := range rolePermissions[c] {
		if r.Title == title {
			return true
		}
	}
	return false
}

// HasCapability is the function form of Role.HasCapability.
func HasCapability(r Role, c Capability) bool {
	return r.HasCapability(c)
}

// CanManageMembers is derived from the title alone.
func (r Role) CanManageMembers() bool {
	return r.HasCapability(CapManageMembers)
}

// SameTitle reports whether two roles share a title, ignoring flags.
func (r Role) SameTitle(other Role) bool {
	return r.Title == other.Title
}

// AtLeast orders roles member < admin < owner.
func (r Role) AtLeast(other Role) bool {
	return r.rank >= other.rank
}

func (r Role) String() string {
	return r.Label
}
