// Package permissions edits a form's permission flags and its explicit
// editor and viewer sets.
package permissions

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"sdg-knowledge/internal/authz"
	apperrors "sdg-knowledge/internal/errors"
	"sdg-knowledge/internal/models"
)

// FormsAPI is the subset of the API client the editor uses.
type FormsAPI interface {
	GetForm(ctx context.Context, formID int) (*models.ActionPlan, error)
	GetEditors(ctx context.Context, formID int) ([]models.UserSummary, error)
	GetViewers(ctx context.Context, formID int) ([]models.UserSummary, error)
	GetFormTeamMembers(ctx context.Context, formID int) ([]models.TeamMember, error)
	UpdatePermissions(ctx context.Context, formID int, perms models.FormPermissions) error
	SetEditors(ctx context.Context, formID int, userIDs []int) error
	SetViewers(ctx context.Context, formID int, userIDs []int) error
}

// Snapshot is the editable permission state of a form.
type Snapshot struct {
	Permissions models.FormPermissions
	EditorIDs   []int
	ViewerIDs   []int
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{
		Permissions: s.Permissions,
		EditorIDs:   append([]int{}, s.EditorIDs...),
		ViewerIDs:   append([]int{}, s.ViewerIDs...),
	}
}

// Checkbox is one member entry of the editor or viewer selection.
type Checkbox struct {
	UserID  int
	Label   string
	Checked bool
}

// Editor holds a loaded form and the pending changes to its permissions.
type Editor struct {
	api     FormsAPI
	formID  int
	form    *models.ActionPlan
	members []models.TeamMember
	loaded  Snapshot
	current Snapshot
}

// Load fetches the form, its editor and viewer sets and its team members.
func Load(ctx context.Context, api FormsAPI, formID int) (*Editor, error) {
	form, err := api.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	editors, err := api.GetEditors(ctx, formID)
	if err != nil {
		return nil, err
	}
	viewers, err := api.GetViewers(ctx, formID)
	if err != nil {
		return nil, err
	}
	members, err := api.GetFormTeamMembers(ctx, formID)
	if err != nil {
		return nil, err
	}

	loaded := Snapshot{
		Permissions: form.Permissions(),
		EditorIDs:   userIDs(editors),
		ViewerIDs:   userIDs(viewers),
	}
	return &Editor{
		api:     api,
		formID:  formID,
		form:    form,
		members: members,
		loaded:  loaded,
		current: loaded.clone(),
	}, nil
}

// Form returns the loaded form.
func (e *Editor) Form() *models.ActionPlan { return e.form }

// Members returns the form's team members.
func (e *Editor) Members() []models.TeamMember { return e.members }

// Current returns the pending state.
func (e *Editor) Current() Snapshot { return e.current.clone() }

// Loaded returns the state as last loaded or saved.
func (e *Editor) Loaded() Snapshot { return e.loaded.clone() }

// SetAllowTeamEdit sets the allow_team_edit flag.
func (e *Editor) SetAllowTeamEdit(v bool) { e.current.Permissions.AllowTeamEdit = v }

// SetAllowTeamView sets the allow_team_view flag.
func (e *Editor) SetAllowTeamView(v bool) { e.current.Permissions.AllowTeamView = v }

// SetRequireExplicit sets the require_explicit_permissions flag.
func (e *Editor) SetRequireExplicit(v bool) { e.current.Permissions.RequireExplicitPermissions = v }

// ToggleEditor adds or removes userID from the editor set.
func (e *Editor) ToggleEditor(userID int) { e.current.EditorIDs = toggle(e.current.EditorIDs, userID) }

// ToggleViewer adds or removes userID from the viewer set.
func (e *Editor) ToggleViewer(userID int) { e.current.ViewerIDs = toggle(e.current.ViewerIDs, userID) }

// ShowsMemberSelection reports whether editor and viewer checkboxes are
// offered. They only are with explicit permissions on.
func (e *Editor) ShowsMemberSelection() bool {
	return e.current.Permissions.RequireExplicitPermissions
}

// EditorCheckboxes returns one checkbox per team member, or nil when member
// selection is hidden.
func (e *Editor) EditorCheckboxes() []Checkbox {
	return e.checkboxes(e.current.EditorIDs)
}

// ViewerCheckboxes is EditorCheckboxes for the viewer set.
func (e *Editor) ViewerCheckboxes() []Checkbox {
	return e.checkboxes(e.current.ViewerIDs)
}

func (e *Editor) checkboxes(selected []int) []Checkbox {
	if !e.ShowsMemberSelection() {
		return nil
	}
	out := make([]Checkbox, 0, len(e.members))
	for _, m := range e.members {
		out = append(out, Checkbox{
			UserID:  m.ID,
			Label:   fmt.Sprintf("%s (%s)", m.Username, m.Role),
			Checked: contains(selected, m.ID),
		})
	}
	return out
}

// Access returns the access rules the pending state would produce.
func (e *Editor) Access() authz.FormAccess {
	access := authz.FormAccess{
		CreatorID:   e.form.User,
		Permissions: e.current.Permissions,
		EditorIDs:   append([]int{}, e.current.EditorIDs...),
		ViewerIDs:   append([]int{}, e.current.ViewerIDs...),
	}
	for _, m := range e.members {
		if m.Role == models.RoleOwner {
			access.TeamOwnerID = m.ID
			break
		}
	}
	return access
}

// step is one write of a save. apply posts the given state.
type step struct {
	name  string
	apply func(ctx context.Context, s Snapshot) error
}

func (e *Editor) steps(s Snapshot) []step {
	steps := []step{{"permissions", func(ctx context.Context, s Snapshot) error {
		return e.api.UpdatePermissions(ctx, e.formID, s.Permissions)
	}}}
	if !s.Permissions.RequireExplicitPermissions {
		return steps
	}
	return append(steps,
		step{"editors", func(ctx context.Context, s Snapshot) error {
			return e.api.SetEditors(ctx, e.formID, s.EditorIDs)
		}},
		step{"viewers", func(ctx context.Context, s Snapshot) error {
			return e.api.SetViewers(ctx, e.formID, s.ViewerIDs)
		}},
	)
}

// Save writes the flags, then the editor set, then the viewer set. The
// member sets are only written with explicit permissions on. When a write
// fails, the steps already applied are re-posted with the loaded state in
// reverse order. The result is a *SaveError.
func (e *Editor) Save(ctx context.Context) error {
	target := e.current.clone()
	steps := e.steps(target)

	for i, st := range steps {
		err := st.apply(ctx, target)
		if err == nil {
			continue
		}
		saveErr := &SaveError{Step: st.name, Err: err, Applied: i}
		saveErr.RollbackErr = e.rollback(ctx, steps[:i])
		if saveErr.RollbackErr != nil {
			logrus.WithFields(logrus.Fields{
				"form_id":  e.formID,
				"step":     st.name,
				"rollback": saveErr.RollbackErr.Error(),
			}).Warn("Permission save left partially applied")
		}
		return saveErr
	}

	if !target.Permissions.RequireExplicitPermissions {
		// Member sets were not written; the server still holds the loaded ones.
		target.EditorIDs = e.loaded.EditorIDs
		target.ViewerIDs = e.loaded.ViewerIDs
	}
	e.loaded = target
	return nil
}

// rollback re-applies the loaded state for applied steps, last first.
func (e *Editor) rollback(ctx context.Context, applied []step) error {
	var errs []error
	for i := len(applied) - 1; i >= 0; i-- {
		if err := applied[i].apply(ctx, e.loaded); err != nil {
			errs = append(errs, fmt.Errorf("restore %s: %w", applied[i].name, err))
		}
	}
	return errors.Join(errs...)
}

// SaveError reports a failed save. It matches ErrPermissionSave when the
// original state was restored and ErrPartialSave when it was not.
type SaveError struct {
	Step        string
	Err         error
	Applied     int
	RollbackErr error
}

// RolledBack reports whether the loaded state is back in place.
func (e *SaveError) RolledBack() bool { return e.RollbackErr == nil }

func (e *SaveError) Error() string {
	if e.RolledBack() {
		return fmt.Sprintf("save %s: %v; original permissions restored", e.Step, e.Err)
	}
	return fmt.Sprintf("save %s: %v; rollback failed: %v", e.Step, e.Err, e.RollbackErr)
}

// Messages returns the lines shown to the user.
func (e *SaveError) Messages() []string {
	out := []string{"Failed to update permissions"}
	out = append(out, apperrors.UserMessages(e.Err)...)
	if e.RolledBack() {
		return append(out, "The original permissions were restored.")
	}
	return append(out, "Some changes could not be undone. Reload the form to check its permissions.")
}

func (e *SaveError) Unwrap() []error {
	if e.RolledBack() {
		return []error{apperrors.ErrPermissionSave, e.Err}
	}
	return []error{apperrors.ErrPartialSave, e.Err, e.RollbackErr}
}

func userIDs(users []models.UserSummary) []int {
	ids := make([]int, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func toggle(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	ids = append(ids, id)
	sort.Ints(ids)
	return ids
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
