package command

import (
	"context"

	"github.com/spf13/pflag"

	"sdg-knowledge/internal/analytics"
	"sdg-knowledge/internal/models"
)

func (a *App) analyticsCommand() *Command {
	var timeRange, tabName string

	return &Command{
		Name:    "analytics",
		Summary: "Show the user activity dashboard",
		Usage:   "sdgks analytics [--range all|week|month] [--tab pages|searches|forms]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("analytics", pflag.ContinueOnError)
			fs.StringVar(&timeRange, "range", models.TimeRangeAll, "time range: all, week or month")
			fs.StringVar(&tabName, "tab", "pages", "detail tab: pages, searches or forms")
			return fs
		},
		Run: a.page("analytics", func(ctx context.Context, args []string) error {
			tab, ok := analytics.ParseTab(tabName)
			if !ok {
				return usagef("unknown tab %q, use pages, searches or forms", tabName)
			}
			data, err := a.Analytics.Summary(ctx, timeRange)
			if err != nil {
				return err
			}
			a.println(analytics.Render(data, timeRange, tab))
			return nil
		}),
	}
}
