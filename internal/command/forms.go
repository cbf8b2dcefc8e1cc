package command

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/permissions"
	"sdg-knowledge/internal/render"
)

func (a *App) formsCommand() *Command {
	return &Command{
		Name:    "forms",
		Summary: "Action plan forms",
		Subcommands: []*Command{
			a.formsListCommand(),
			a.formsViewCommand(),
			a.formsEditCommand(),
			a.formsPermissionsCommand(),
			a.formsAccessCommand(),
		},
	}
}

func (a *App) formsListCommand() *Command {
	return &Command{
		Name:    "list",
		Summary: "List your action plans",
		Run: a.page("forms", func(ctx context.Context, args []string) error {
			listing, err := a.Forms.ListForms(ctx)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(listing.Items))
			for _, f := range listing.Items {
				rows = append(rows, []string{
					strconv.Itoa(f.ID),
					f.ImpactProjectName,
					f.Status,
					teamName(f.Team),
					a.formatTime(f.UpdatedAt),
				})
			}
			a.println(render.Table([]string{"ID", "Project", "Status", "Team", "Updated"}, rows, 0))
			if listing.Shape == models.ShapePaginated && listing.Count > len(listing.Items) {
				a.println(render.Muted(fmt.Sprintf("Showing %d of %d", len(listing.Items), listing.Count)))
			}
			return nil
		}),
	}
}

func (a *App) formsViewCommand() *Command {
	return &Command{
		Name:    "view",
		Summary: "Show an action plan",
		Usage:   "sdgks forms view FORM_ID",
		Run: a.page("form", func(ctx context.Context, args []string) error {
			formID, err := intArg(args, 0, "form id")
			if err != nil {
				return err
			}
			form, err := a.Forms.ViewForm(ctx, formID)
			if err != nil {
				return err
			}

			perms := form.Permissions()
			a.println(render.Heading(form.ImpactProjectName))
			if form.Description != "" {
				a.println(form.Description)
			}
			rows := [][]string{
				{"Designers", form.NameOfDesigners},
				{"Status", form.Status},
				{"Team", teamName(form.Team)},
				{"Team can edit", yesNo(perms.AllowTeamEdit)},
				{"Team can view", yesNo(perms.AllowTeamView)},
				{"Explicit permissions", yesNo(perms.RequireExplicitPermissions)},
				{"You can edit", yesNo(form.CanEdit)},
			}
			if form.GoogleDocURL != "" {
				rows = append(rows, []string{"Document", form.GoogleDocURL})
			}
			a.println(render.Table([]string{"Field", "Value"}, rows))
			return nil
		}),
	}
}

func (a *App) formsEditCommand() *Command {
	var content, contentFile string

	return &Command{
		Name:    "edit",
		Summary: "Record an edit of a form's content",
		Usage:   "sdgks forms edit FORM_ID (--content TEXT | --content-file PATH)",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("edit", pflag.ContinueOnError)
			fs.StringVar(&content, "content", "", "edited text")
			fs.StringVar(&contentFile, "content-file", "", "file holding the edited text")
			return fs
		},
		Run: a.page("form", func(ctx context.Context, args []string) error {
			formID, err := intArg(args, 0, "form id")
			if err != nil {
				return err
			}
			if contentFile != "" {
				data, err := os.ReadFile(contentFile)
				if err != nil {
					return usagef("cannot read %s: %v", contentFile, err)
				}
				content = string(data)
			}

			a.Forms.RecordEdit(ctx, formID, content)
			a.success("Edit recorded")
			return nil
		}),
	}
}

func (a *App) formsPermissionsCommand() *Command {
	var (
		fs                             *pflag.FlagSet
		allowEdit, allowView, explicit bool
		toggleEditors, toggleViewers   []int
	)

	return &Command{
		Name:    "permissions",
		Summary: "Show or change who may edit and view a form",
		Usage:   "sdgks forms permissions FORM_ID [--allow-team-edit=BOOL] [--allow-team-view=BOOL] [--explicit=BOOL] [--editor ID]... [--viewer ID]...",
		Flags: func() *pflag.FlagSet {
			if fs == nil {
				fs = pflag.NewFlagSet("permissions", pflag.ContinueOnError)
				fs.BoolVar(&allowEdit, "allow-team-edit", false, "let every team member edit")
				fs.BoolVar(&allowView, "allow-team-view", false, "let every team member view")
				fs.BoolVar(&explicit, "explicit", false, "require explicit editor and viewer lists")
				fs.IntSliceVar(&toggleEditors, "editor", nil, "toggle a member in the editor list")
				fs.IntSliceVar(&toggleViewers, "viewer", nil, "toggle a member in the viewer list")
			}
			return fs
		},
		Run: a.page("form_permissions", func(ctx context.Context, args []string) error {
			formID, err := intArg(args, 0, "form id")
			if err != nil {
				return err
			}
			editor, err := a.Forms.OpenPermissions(ctx, formID)
			if err != nil {
				return err
			}

			changed := false
			if fs.Changed("allow-team-edit") {
				editor.SetAllowTeamEdit(allowEdit)
				changed = true
			}
			if fs.Changed("allow-team-view") {
				editor.SetAllowTeamView(allowView)
				changed = true
			}
			if fs.Changed("explicit") {
				editor.SetRequireExplicit(explicit)
				changed = true
			}
			if len(toggleEditors)+len(toggleViewers) > 0 && !editor.ShowsMemberSelection() {
				return usagef("--editor and --viewer need explicit permissions; add --explicit")
			}
			for _, id := range toggleEditors {
				editor.ToggleEditor(id)
				changed = true
			}
			for _, id := range toggleViewers {
				editor.ToggleViewer(id)
				changed = true
			}

			if changed {
				if err := editor.Save(ctx); err != nil {
					return err
				}
				a.success("Permissions updated")
			}
			a.println(renderPermissions(editor))
			return nil
		}),
	}
}

func (a *App) formsAccessCommand() *Command {
	return &Command{
		Name:    "access",
		Summary: "Show which team members may edit or view a form",
		Usage:   "sdgks forms access FORM_ID",
		Run: a.page("form_permissions", func(ctx context.Context, args []string) error {
			formID, err := intArg(args, 0, "form id")
			if err != nil {
				return err
			}
			editor, err := a.Forms.OpenPermissions(ctx, formID)
			if err != nil {
				return err
			}

			access := editor.Access()
			rows := make([][]string, 0, len(editor.Members()))
			for _, m := range editor.Members() {
				rows = append(rows, []string{
					m.Username,
					m.Role,
					yesNo(access.CanEdit(m.ID)),
					yesNo(access.CanView(m.ID)),
				})
			}
			a.println(render.Table([]string{"Member", "Role", "Edit", "View"}, rows))
			return nil
		}),
	}
}

func renderPermissions(e *permissions.Editor) string {
	perms := e.Current().Permissions
	blocks := []string{
		render.Table([]string{"Permission", "Enabled"}, [][]string{
			{"Allow team edit", yesNo(perms.AllowTeamEdit)},
			{"Allow team view", yesNo(perms.AllowTeamView)},
			{"Require explicit permissions", yesNo(perms.RequireExplicitPermissions)},
		}),
	}
	if e.ShowsMemberSelection() {
		blocks = append(blocks,
			render.Subheading("Editors"), checkboxList(e.EditorCheckboxes()),
			render.Subheading("Viewers"), checkboxList(e.ViewerCheckboxes()),
		)
	}
	return render.Lines(blocks...)
}

func checkboxList(boxes []permissions.Checkbox) string {
	if len(boxes) == 0 {
		return render.Muted("No team members")
	}
	out := ""
	for i, b := range boxes {
		mark := "[ ]"
		if b.Checked {
			mark = "[x]"
		}
		if i > 0 {
			out += "\n"
		}
		out += fmt.Sprintf("%s %s  #%d", mark, b.Label, b.UserID)
	}
	return out
}

func teamName(t models.TeamRef) string {
	if t.Name != "" {
		return t.Name
	}
	if t.ID != 0 {
		return "#" + strconv.Itoa(t.ID)
	}
	return "-"
}
