package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	habit "github.com/mtscully16/habit-tracker"
)

// removeCmd holds the flags for the 'remove' subcommand.
type removeCmd struct {
	negative bool
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a habit from a list" }
func (*removeCmd) Usage() string {
	return `habits remove [-not] <habit>

  Removes a habit and its marks from every day. The habit is its number
  in the checklist, its label, or an unambiguous label prefix. The last
  habit of a list cannot be removed.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.negative, "not", false, "remove from the \"Do Not\" list")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one habit argument\n%s", c.Usage())
		return subcommands.ExitUsageError
	}
	list := habit.Positive
	if c.negative {
		list = habit.Negative
	}

	var removed string
	var resolveErr error
	_, ok := editDocument(func(d *habit.Document) bool {
		i, err := resolveHabit(d, list, f.Arg(0))
		if err != nil {
			resolveErr = err
			return false
		}
		removed = d.Settings.Labels(list)[i]
		return d.RemoveHabit(list, i)
	})
	if resolveErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", resolveErr)
		return subcommands.ExitUsageError
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: cannot remove the last habit of the %s list\n", list)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed habit %q from the %s list, along with its marks.\n", removed, list)
	return subcommands.ExitSuccess
}
