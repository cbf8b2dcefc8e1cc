package models

import (
	"encoding/json"
	"time"
)

// Action plan status values.
const (
	PlanStatusDraft = "draft"
	PlanStatusFinal = "final"
)

// FormPermissions is the form-level permission flag set.
type FormPermissions struct {
	AllowTeamEdit              bool `json:"allow_team_edit"`
	AllowTeamView              bool `json:"allow_team_view"`
	RequireExplicitPermissions bool `json:"require_explicit_permissions"`
}

// DefaultFormPermissions applies when the server omits the flags.
func DefaultFormPermissions() FormPermissions {
	return FormPermissions{AllowTeamEdit: true, AllowTeamView: true}
}

// NestedPermissions is the optional "permissions" object of an action plan.
// Flags it leaves out keep their defaults.
type NestedPermissions FormPermissions

func (n *NestedPermissions) UnmarshalJSON(data []byte) error {
	perms := DefaultFormPermissions()
	if err := json.Unmarshal(data, &perms); err != nil {
		return err
	}
	*n = NestedPermissions(perms)
	return nil
}

// TeamRef is the team field of an action plan, which the API serializes
// either as a bare id or as a nested object.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts a number or an object.
func (t *TeamRef) UnmarshalJSON(data []byte) error {
	var id int
	if err := json.Unmarshal(data, &id); err == nil {
		t.ID = id
		return nil
	}
	type plain TeamRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = TeamRef(p)
	return nil
}

// ActionPlan is an SDG action plan ("form").
type ActionPlan struct {
	ID                int                `json:"id"`
	User              int                `json:"user"`
	ImpactProjectName string             `json:"impact_project_name"`
	NameOfDesigners   string             `json:"name_of_designers"`
	Description       string             `json:"description"`
	Status            string             `json:"status"`
	Team              TeamRef            `json:"team"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	GoogleDocCreated  bool               `json:"google_doc_created"`
	GoogleDocURL      string             `json:"google_doc_url,omitempty"`
	CanEdit           bool               `json:"can_edit"`
	CanView           bool               `json:"can_view"`
	IsOwner           bool               `json:"is_owner"`
	AllowTeamEdit     *bool              `json:"allow_team_edit,omitempty"`
	AllowTeamView     *bool              `json:"allow_team_view,omitempty"`
	RequireExplicit   *bool              `json:"require_explicit_permissions,omitempty"`
	NestedPermissions *NestedPermissions `json:"permissions,omitempty"`
}

// Permissions resolves the flag set, preferring top-level fields and
// falling back to the nested permissions object and then the defaults.
func (p *ActionPlan) Permissions() FormPermissions {
	perms := DefaultFormPermissions()
	if p.NestedPermissions != nil {
		perms = FormPermissions(*p.NestedPermissions)
	}
	if p.AllowTeamEdit != nil {
		perms.AllowTeamEdit = *p.AllowTeamEdit
	}
	if p.AllowTeamView != nil {
		perms.AllowTeamView = *p.AllowTeamView
	}
	if p.RequireExplicit != nil {
		perms.RequireExplicitPermissions = *p.RequireExplicit
	}
	return perms
}

// EditorsResponse is returned by .../editors/.
type EditorsResponse struct {
	Editors []UserSummary `json:"editors"`
}

// ViewersResponse is returned by .../viewers/.
type ViewersResponse struct {
	Viewers []UserSummary `json:"viewers"`
}

// UserIDsRequest replaces an editor or viewer set.
type UserIDsRequest struct {
	UserIDs []int `json:"user_ids"`
}
