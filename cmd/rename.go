package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	habit "github.com/mtscully16/habit-tracker"
)

// renameCmd holds the flags for the 'rename' subcommand.
type renameCmd struct {
	negative bool
}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "rename a habit" }
func (*renameCmd) Usage() string {
	return `habits rename [-not] <habit> <new label>

  Renames a habit. Its marks are untouched: history follows the habit's
  position in the list, not its label.

Usage Examples:
$ habits rename Exercise "Morning run"
$ habits rename -not 2 "Mindless scrolling"
`
}

func (c *renameCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.negative, "not", false, "rename in the \"Do Not\" list")
}

func (c *renameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "Error: expected a habit argument and a new label\n%s", c.Usage())
		return subcommands.ExitUsageError
	}
	label := strings.TrimSpace(strings.Join(f.Args()[1:], " "))
	list := habit.Positive
	if c.negative {
		list = habit.Negative
	}

	var before, after string
	var resolveErr error
	_, ok := editDocument(func(d *habit.Document) bool {
		i, err := resolveHabit(d, list, f.Arg(0))
		if err != nil {
			resolveErr = err
			return false
		}
		before = d.Settings.Labels(list)[i]
		if !d.RenameHabit(list, i, label) {
			return false
		}
		after = d.Settings.Labels(list)[i]
		return true
	})
	if resolveErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", resolveErr)
		return subcommands.ExitUsageError
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: could not rename to %q, the label is empty\n", label)
		return subcommands.ExitFailure
	}

	fmt.Printf("Renamed habit %q to %q.\n", before, after)
	return subcommands.ExitSuccess
}
