package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/render"
	"sdg-knowledge/internal/service"
)

func (a *App) searchCommand() *Command {
	return &Command{
		Name:    "search",
		Summary: "Search SDG keywords and plans",
		Subcommands: []*Command{
			a.searchKeywordsCommand(),
			a.searchPlansCommand(),
			a.searchTrendingCommand(),
			a.searchRecentCommand(),
			a.searchOpenCommand(),
		},
	}
}

func (a *App) searchKeywordsCommand() *Command {
	var page int

	return &Command{
		Name:    "keywords",
		Summary: "Search the SDG keyword table",
		Usage:   "sdgks search keywords [QUERY] [--page N]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("keywords", pflag.ContinueOnError)
			fs.IntVar(&page, "page", 1, "result page")
			return fs
		},
		Run: a.page(service.KeywordSearchPage, func(ctx context.Context, args []string) error {
			result, err := a.Search.Keywords(ctx, strings.Join(args, " "), page)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(result.Keywords))
			for _, k := range result.Keywords {
				rows = append(rows, []string{k.Keyword, k.SDGGoal, k.Target, k.Reference1, k.Note})
			}
			a.println(render.Table([]string{"Keyword", "SDG", "Target", "Reference", "Note"}, rows))
			a.println(render.Muted(fmt.Sprintf("Page %d of %d, %d keywords", result.Page, result.Pages, result.Count)))
			return nil
		}),
	}
}

func (a *App) searchPlansCommand() *Command {
	return &Command{
		Name:    "plans",
		Summary: "Search education and action plans",
		Usage:   "sdgks search plans QUERY",
		Run: a.page(service.PlanSearchPage, func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return usagef("usage: sdgks search plans QUERY")
			}
			results, err := a.Search.Suggestions(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			a.println(planTable(results))
			return nil
		}),
	}
}

func (a *App) searchTrendingCommand() *Command {
	return &Command{
		Name:    "trending",
		Summary: "Show the most viewed plans",
		Run: a.page(service.PlanSearchPage, func(ctx context.Context, args []string) error {
			results, err := a.Search.Trending(ctx)
			if err != nil {
				return err
			}
			a.println(render.Subheading("Trending"))
			a.println(planTable(results))
			return nil
		}),
	}
}

func (a *App) searchRecentCommand() *Command {
	return &Command{
		Name:    "recent",
		Summary: "Show plans you viewed recently",
		Run: a.page(service.PlanSearchPage, func(ctx context.Context, args []string) error {
			results, err := a.Search.Recent(ctx)
			if err != nil {
				return err
			}
			a.println(render.Subheading("Recent searches"))
			a.println(planTable(results))
			return nil
		}),
	}
}

func (a *App) searchOpenCommand() *Command {
	return &Command{
		Name:    "open",
		Summary: "Record that you opened a plan",
		Usage:   "sdgks search open education|action ID",
		Run: a.page(service.PlanSearchPage, func(ctx context.Context, args []string) error {
			if err := exactArgs(args, 2, "sdgks search open education|action ID"); err != nil {
				return err
			}
			kind := args[0]
			if kind != models.KindEducation && kind != models.KindAction {
				return usagef("unknown plan kind %q, use education or action", kind)
			}
			id, err := intArg(args, 1, "plan id")
			if err != nil {
				return err
			}
			if err := a.Search.LogView(ctx, kind, id); err != nil {
				return err
			}
			a.success(fmt.Sprintf("Opened %s plan %d", kind, id))
			return nil
		}),
	}
}

func planTable(results []models.PlanSearchResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{strconv.Itoa(r.ID), r.Kind, r.Title})
	}
	return render.Table([]string{"ID", "Kind", "Title"}, rows)
}
