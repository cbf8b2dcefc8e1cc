// Package command implements the sdgks command tree.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// helpOutput receives help text.
var helpOutput io.Writer = os.Stderr

// Command is a CLI command or a group of subcommands.
type Command struct {
	// Name is the command name as typed by the user.
	Name string
	// Summary is shown in the parent's help listing.
	Summary string
	// Usage is the usage line. It is synthesized when empty.
	Usage string
	// Flags returns the command's flag set. Nil means no flags.
	Flags func() *pflag.FlagSet
	// Subcommands are dispatched by the first positional argument.
	Subcommands []*Command
	// Run executes the command with the arguments left after flag parsing.
	Run func(ctx context.Context, args []string) error

	parent *Command
}

// Execute parses args and dispatches to a subcommand or Run.
func (c *Command) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(helpOutput)
		return nil
	}

	if len(c.Subcommands) > 0 && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		for _, sub := range c.Subcommands {
			if sub.Name == args[0] {
				sub.parent = c
				return sub.Execute(ctx, args[1:])
			}
		}
		return usagef("unknown command %q. Run '%s --help' for usage.", args[0], c.fullName())
	}

	if c.Run == nil {
		c.PrintHelp(helpOutput)
		return usagef("%s needs a subcommand", c.fullName())
	}

	if c.Flags != nil {
		flagSet := c.Flags()
		flagSet.SetOutput(io.Discard)
		if err := flagSet.Parse(args); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				c.PrintHelp(helpOutput)
				return nil
			}
			return usagef("%s. Run '%s --help' for usage.", err, c.fullName())
		}
		args = flagSet.Args()
	}

	return c.Run(ctx, args)
}

// PrintHelp writes the usage, subcommands and flags to w.
func (c *Command) PrintHelp(w io.Writer) {
	if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	switch {
	case c.Usage != "":
		fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	case len(c.Subcommands) > 0:
		fmt.Fprintf(w, "Usage:\n  %s <command> [flags]\n", c.fullName())
	default:
		fmt.Fprintf(w, "Usage:\n  %s [flags]\n", c.fullName())
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	if c.Flags != nil {
		var flagHelp strings.Builder
		flagSet := c.Flags()
		flagSet.SetOutput(&flagHelp)
		flagSet.PrintDefaults()
		if flagHelp.Len() > 0 {
			fmt.Fprintf(w, "\nFlags:\n%s", flagHelp.String())
		}
	}
}

func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

// usageError is a mistake in the command line. Its text is shown as is.
type usageError string

func (e usageError) Error() string      { return string(e) }
func (e usageError) Messages() []string { return []string{string(e)} }

func usagef(format string, args ...interface{}) error {
	return usageError(fmt.Sprintf(format, args...))
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
