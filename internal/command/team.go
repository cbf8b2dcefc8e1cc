package command

import (
	"context"
	"fmt"
	"strconv"

	"sdg-knowledge/internal/authz"
	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/render"
	"sdg-knowledge/internal/validator"
)

func (a *App) teamCommand() *Command {
	return &Command{
		Name:    "team",
		Summary: "Team settings and invitations",
		Subcommands: []*Command{
			a.teamShowCommand(),
			a.teamSetMaxCommand(),
			a.teamInviteCommand(),
			a.teamAcceptCommand(),
		},
	}
}

func (a *App) teamShowCommand() *Command {
	return &Command{
		Name:    "show",
		Summary: "Show a team and your role in it",
		Usage:   "sdgks team show TEAM_ID",
		Run: a.page("team", func(ctx context.Context, args []string) error {
			teamID, err := intArg(args, 0, "team id")
			if err != nil {
				return err
			}

			team, err := a.Teams.GetTeam(ctx, teamID)
			if err != nil {
				return err
			}
			role, err := a.Teams.GetRole(ctx, teamID)
			if err != nil {
				return err
			}
			defaultMax := a.Teams.DefaultMaxMembers(ctx)

			a.println(render.Heading(team.Name))
			if team.Description != "" {
				a.println(team.Description)
			}
			a.println(render.Table([]string{"Setting", "Value"}, [][]string{
				{"Your role", role.Label},
				{"Can invite", yesNo(role.HasCapability(authz.CapInviteMembers))},
				{"Max members", strconv.Itoa(team.MaxMembers)},
				{"Default max members", strconv.Itoa(defaultMax)},
			}))
			return nil
		}),
	}
}

func (a *App) teamSetMaxCommand() *Command {
	return &Command{
		Name:    "set-max",
		Summary: "Change a team's member limit (team owner only)",
		Usage:   "sdgks team set-max TEAM_ID MAX_MEMBERS",
		Run: a.page("team", func(ctx context.Context, args []string) error {
			teamID, err := intArg(args, 0, "team id")
			if err != nil {
				return err
			}
			input := ""
			if len(args) > 1 {
				input = args[1]
			}

			resp, err := a.Teams.UpdateMaxMembers(ctx, teamID, input)
			if err != nil {
				return err
			}
			a.success(resp.Message)
			return nil
		}),
	}
}

func (a *App) teamInviteCommand() *Command {
	return &Command{
		Name:    "invite",
		Summary: "Invite people to a team by email",
		Usage:   "sdgks team invite TEAM_ID EMAIL...",
		Run: a.page("team", func(ctx context.Context, args []string) error {
			teamID, err := intArg(args, 0, "team id")
			if err != nil {
				return err
			}

			var list validator.InviteList
			for _, email := range args[1:] {
				if err := list.Add(email); err != nil {
					return fmt.Errorf("%s: %w", email, err)
				}
			}

			resp, err := a.Teams.Invite(ctx, teamID, &list)
			if err != nil {
				return err
			}
			a.success(resp.Message)
			if len(resp.Invitations) > 0 {
				a.println(renderInvitations(resp.Invitations))
			}
			return nil
		}),
	}
}

func (a *App) teamAcceptCommand() *Command {
	return &Command{
		Name:    "accept",
		Summary: "Accept an email invitation",
		Usage:   "sdgks team accept TOKEN",
		Run: a.page("accept_invitation", func(ctx context.Context, args []string) error {
			if err := exactArgs(args, 1, "sdgks team accept TOKEN"); err != nil {
				return err
			}
			resp, err := a.Teams.AcceptInvitation(ctx, args[0])
			if err != nil {
				return err
			}
			a.success(resp.Message)
			a.println(render.Muted(fmt.Sprintf("Team %d", resp.TeamID)))
			return nil
		}),
	}
}

func renderInvitations(results []models.EmailInviteResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Email, r.Status, r.Message})
	}
	return render.Table([]string{"Email", "Status", "Message"}, rows)
}
