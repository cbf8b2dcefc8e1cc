package command

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"sdg-knowledge/internal/activity"
	"sdg-knowledge/internal/logging"
	"sdg-knowledge/internal/render"
	"sdg-knowledge/internal/service"
)

// PageTracker records time spent on a page.
type PageTracker interface {
	TrackPageView(sess *activity.PageSession, page string)
	TrackPageLeave(sess *activity.PageSession, page string)
}

// App carries what the commands need.
type App struct {
	Auth      service.AuthServicer
	Profiles  service.ProfileServicer
	Teams     service.TeamServicer
	Forms     service.FormServicer
	Search    service.SearchServicer
	Analytics service.AnalyticsServicer
	Pages     PageTracker
	Prompt    Prompter
	Out       io.Writer
	// Location is used for displayed dates.
	Location *time.Location
}

// Root builds the command tree.
func Root(a *App) *Command {
	return &Command{
		Name:    "sdgks",
		Summary: "Command line client for the SDG Knowledge System",
		Subcommands: []*Command{
			a.signupCommand(),
			a.loginCommand(),
			a.logoutCommand(),
			a.statusCommand(),
			a.profileCommand(),
			a.teamCommand(),
			a.formsCommand(),
			a.searchCommand(),
			a.analyticsCommand(),
		},
	}
}

// page wraps run so the time spent in it is recorded as a visit to name.
func (a *App) page(name string, run func(ctx context.Context, args []string) error) func(ctx context.Context, args []string) error {
	return func(ctx context.Context, args []string) error {
		logging.LogEvent("page", map[string]interface{}{"page": name, "args": len(args)})
		if a.Pages == nil {
			return run(ctx, args)
		}
		sess := activity.NewPageSession()
		a.Pages.TrackPageView(sess, name)
		defer a.Pages.TrackPageLeave(sess, name)
		return run(ctx, args)
	}
}

func (a *App) println(s string) {
	fmt.Fprintln(a.Out, s)
}

func (a *App) success(s string) {
	a.println(render.Success(s))
}

// intArg parses the positional argument at i as an id.
func intArg(args []string, i int, name string) (int, error) {
	if len(args) <= i {
		return 0, usagef("missing %s", name)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n < 1 {
		return 0, usagef("invalid %s %q", name, args[i])
	}
	return n, nil
}

// exactArgs fails when args does not hold exactly n values.
func exactArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return usagef("usage: %s", usage)
	}
	return nil
}
