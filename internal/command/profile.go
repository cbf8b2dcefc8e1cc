package command

import (
	"context"

	"github.com/spf13/pflag"

	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/render"
)

// profileField binds an editable profile field to its flag.
type profileField struct {
	flag  string
	label string
	field func(p *models.Profile) *string
}

var profileFields = []profileField{
	{"username", "Username", func(p *models.Profile) *string { return &p.Username }},
	{"first-name", "First name", func(p *models.Profile) *string { return &p.FirstName }},
	{"last-name", "Last name", func(p *models.Profile) *string { return &p.LastName }},
	{"email", "Email", func(p *models.Profile) *string { return &p.Email }},
	{"mobile", "Mobile", func(p *models.Profile) *string { return &p.Mobile }},
	{"organization", "Organisation", func(p *models.Profile) *string { return &p.Organization }},
	{"faculty-and-major", "Faculty & Major", func(p *models.Profile) *string { return &p.FacultyAndMajor }},
	{"gender", "Gender", func(p *models.Profile) *string { return &p.Gender }},
	{"language", "Language", func(p *models.Profile) *string { return &p.Language }},
	{"positions", "Positions", func(p *models.Profile) *string { return &p.Positions }},
}

func (a *App) profileCommand() *Command {
	return &Command{
		Name:    "profile",
		Summary: "Show or edit user profiles",
		Subcommands: []*Command{
			a.profileShowCommand(),
			a.profileEditCommand(),
		},
	}
}

func (a *App) profileShowCommand() *Command {
	return &Command{
		Name:    "show",
		Summary: "Show your profile or another user's",
		Usage:   "sdgks profile show [USERNAME]",
		Run: a.page("profile", func(ctx context.Context, args []string) error {
			if len(args) > 1 {
				return usagef("usage: sdgks profile show [USERNAME]")
			}
			username := ""
			if len(args) == 1 {
				username = args[0]
			}
			profile, err := a.Profiles.GetProfile(ctx, username)
			if err != nil {
				return err
			}
			a.println(renderProfile(profile))
			return nil
		}),
	}
}

func (a *App) profileEditCommand() *Command {
	values := make(map[string]*string, len(profileFields))
	var fs *pflag.FlagSet

	return &Command{
		Name:    "edit",
		Summary: "Change fields of your profile",
		Usage:   "sdgks profile edit [--first-name NAME] [--language LANG] ...",
		Flags: func() *pflag.FlagSet {
			if fs == nil {
				fs = pflag.NewFlagSet("edit", pflag.ContinueOnError)
				for _, f := range profileFields {
					values[f.flag] = fs.String(f.flag, "", "new "+f.label)
				}
			}
			return fs
		},
		Run: a.page("profile", func(ctx context.Context, args []string) error {
			if err := exactArgs(args, 0, "sdgks profile edit [flags]"); err != nil {
				return err
			}

			profile, err := a.Profiles.GetProfile(ctx, "")
			if err != nil {
				return err
			}

			edit := a.Profiles.Edit(profile)
			for _, f := range profileFields {
				if fs.Changed(f.flag) {
					*f.field(&edit.Draft) = *values[f.flag]
				}
			}
			if !edit.Changed() {
				a.println(render.Muted("Nothing to change"))
				return nil
			}

			updated, err := edit.Save(ctx, a.Profiles)
			if err != nil {
				return err
			}
			a.success("Profile updated")
			a.println(renderProfile(updated))
			return nil
		}),
	}
}

func renderProfile(p *models.Profile) string {
	rows := make([][]string, 0, len(profileFields))
	for _, f := range profileFields {
		rows = append(rows, []string{f.label, *f.field(p)})
	}
	return render.Table([]string{"Field", "Value"}, rows)
}
