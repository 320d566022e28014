package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	habit "github.com/mtscully16/habit-tracker"
	"github.com/mtscully16/habit-tracker/renderer"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	date     string
	negative bool
	// value is what the mark is set to: true for check, false for uncheck.
	value bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "mark a habit done for the day" }
func (*checkCmd) Usage() string {
	return `habits check [-d <date>] [-not] <habit>

  Marks a habit done on a day, today by default. The habit is its number
  in the checklist, its label, or an unambiguous label prefix. With -not
  the habit is taken from the "Do Not" list.

Usage Examples:
# Mark the first habit of the Do list done.
$ habits check 1

# Admit to doomscrolling yesterday.
$ habits check -not -d 2026-01-20 "Social media"
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	c.value = true
	f.StringVar(&c.date, "d", "", "date of the mark (YYYY-MM-DD, defaults to today)")
	f.BoolVar(&c.negative, "not", false, "pick the habit from the \"Do Not\" list")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one habit argument\n%s", c.Usage())
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	list := habit.Positive
	if c.negative {
		list = habit.Negative
	}

	// The habit argument resolves against the freshly pulled document, so
	// numbers stay aligned with what sync just adopted.
	var resolveErr error
	doc, ok := editDocument(func(d *habit.Document) bool {
		i, err := resolveHabit(d, list, f.Arg(0))
		if err != nil {
			resolveErr = err
			return false
		}
		d.SelectDate(on)
		return d.SetCheck(on, list, i, c.value)
	})
	if resolveErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", resolveErr)
		return subcommands.ExitUsageError
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: could not update the mark\n")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ChecklistMarkdown(doc, on))
	return subcommands.ExitSuccess
}
