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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	negative bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a habit to a list" }
func (*addCmd) Usage() string {
	return `habits add [-not] <label>

  Adds a habit to the "Do" list, or with -not to the "Do Not" list. The
  label is capped at 50 characters and every day starts it unchecked.

Usage Examples:
$ habits add "Morning run"
$ habits add -not "Snooze the alarm"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.negative, "not", false, "add to the \"Do Not\" list")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	label := strings.TrimSpace(strings.Join(f.Args(), " "))
	if label == "" {
		fmt.Fprintf(os.Stderr, "Error: expected a habit label\n%s", c.Usage())
		return subcommands.ExitUsageError
	}
	list := habit.Positive
	if c.negative {
		list = habit.Negative
	}

	doc, ok := editDocument(func(d *habit.Document) bool {
		return d.AddHabit(list, label)
	})
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: could not add %q, the %s list is full (%d habits)\n",
			label, list, habit.MaxHabits)
		return subcommands.ExitFailure
	}

	labels := doc.Settings.Labels(list)
	fmt.Printf("Added habit %d. %q to the %s list.\n", len(labels), labels[len(labels)-1], list)
	return subcommands.ExitSuccess
}
