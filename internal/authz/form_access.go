package authz

import "sdg-knowledge/internal/models"

// FormAccess holds what is needed to decide whether a user may edit or
// view a team form.
type FormAccess struct {
	CreatorID   int
	TeamOwnerID int
	Permissions models.FormPermissions
	EditorIDs   []int
	ViewerIDs   []int
}

// CanEdit reports whether a team member may edit the form. The creator
// and the team owner always may. With explicit permissions on, only listed
// editors may; otherwise allow_team_edit decides for every member.
func (f FormAccess) CanEdit(userID int) bool {
	if f.isPrivileged(userID) {
		return true
	}
	if f.Permissions.RequireExplicitPermissions {
		return containsID(f.EditorIDs, userID)
	}
	return f.Permissions.AllowTeamEdit
}

// CanView follows CanEdit with the viewer list. Anyone who can edit can
// also view.
func (f FormAccess) CanView(userID int) bool {
	if f.CanEdit(userID) {
		return true
	}
	if f.Permissions.RequireExplicitPermissions {
		return containsID(f.ViewerIDs, userID)
	}
	return f.Permissions.AllowTeamView
}

func (f FormAccess) isPrivileged(userID int) bool {
	return userID != 0 && (userID == f.CreatorID || userID == f.TeamOwnerID)
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
