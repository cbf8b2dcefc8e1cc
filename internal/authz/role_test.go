package authz

import (
	"testing"

	"sdg-knowledge/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRoleFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"owner", "owner"},
		{"admin", "admin"},
		{"member", "member"},
		{"Admin", "member"},
		{"superuser", "member"},
		{"", "member"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoleFromString(tt.input, false, false).Title)
		})
	}
}

func TestRoleFromString_AttachesFlags(t *testing.T) {
	r := RoleFromString("member", true, true)

	assert.True(t, r.CanInvite)
	assert.True(t, r.Explicit)
	assert.True(t, r.HasCapability(CapInviteMembers))
	assert.True(t, HasCapability(r, CapFormEditAll))
	assert.False(t, r.CanManageMembers())
	assert.False(t, RoleFromString("member", false, false).HasCapability(CapFormEditAll))

	// The shared role values are not mutated.
	assert.False(t, TeamRoles.Member.CanInvite)
}

func TestRole_CanManageMembers(t *testing.T) {
	assert.True(t, RoleFromString("owner", false, false).CanManageMembers())
	assert.True(t, RoleFromString("admin", false, false).CanManageMembers())
	assert.False(t, RoleFromString("member", true, false).CanManageMembers())
}

func TestRole_Ordering(t *testing.T) {
	owner := RoleFromString("owner", false, false)
	admin := RoleFromString("admin", true, false)
	member := RoleFromString("member", false, false)

	assert.True(t, owner.AtLeast(admin))
	assert.True(t, admin.AtLeast(member))
	assert.False(t, member.AtLeast(admin))
	assert.True(t, admin.SameTitle(TeamRoles.Admin))
	assert.Equal(t, "Team Owner", owner.String())
}

func TestFormAccess(t *testing.T) {
	const creator, owner, editor, viewer, other = 1, 2, 3, 4, 5

	base := FormAccess{
		CreatorID:   creator,
		TeamOwnerID: owner,
		EditorIDs:   []int{editor},
		ViewerIDs:   []int{viewer},
	}

	tests := []struct {
		name    string
		perms   models.FormPermissions
		userID  int
		canEdit bool
		canView bool
	}{
		{"creator always has access", models.FormPermissions{RequireExplicitPermissions: true}, creator, true, true},
		{"team owner always has access", models.FormPermissions{}, owner, true, true},
		{"team flags apply without explicit", models.FormPermissions{AllowTeamEdit: true, AllowTeamView: true}, other, true, true},
		{"view only team flag", models.FormPermissions{AllowTeamView: true}, other, false, true},
		{"no team flags", models.FormPermissions{}, other, false, false},
		{"explicit ignores team flags", models.FormPermissions{AllowTeamEdit: true, AllowTeamView: true, RequireExplicitPermissions: true}, other, false, false},
		{"explicit editor", models.FormPermissions{RequireExplicitPermissions: true}, editor, true, true},
		{"explicit viewer", models.FormPermissions{RequireExplicitPermissions: true}, viewer, false, true},
		{"anonymous user", models.FormPermissions{AllowTeamEdit: false}, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := base
			access.Permissions = tt.perms

			assert.Equal(t, tt.canEdit, access.CanEdit(tt.userID))
			assert.Equal(t, tt.canView, access.CanView(tt.userID))
		})
	}
}
