package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	habit "github.com/mtscully16/habit-tracker"
	"github.com/mtscully16/habit-tracker/date"
	"github.com/mtscully16/habit-tracker/renderer"
)

// todayCmd holds the flags for the 'today' subcommand.
type todayCmd struct {
	date string
}

func (*todayCmd) Name() string     { return "today" }
func (*todayCmd) Synopsis() string { return "display a day's habit checklist" }
func (*todayCmd) Usage() string {
	return `habits today [-d <date>]

  Displays the checklist of a day, today by default, with the numbers
  the check and uncheck commands take.
`
}

func (c *todayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "date of the checklist (YYYY-MM-DD, defaults to today)")
}

func (c *todayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	tracker := openTracker()
	// Viewing a day selects it, like opening the app on that day.
	doc, _ := tracker.Update(func(d *habit.Document) bool {
		d.SelectDate(on)
		return true
	})

	printMarkdown(renderer.ChecklistMarkdown(doc, on))
	return subcommands.ExitSuccess
}

// parseDay parses the -d flag of the day commands: empty means today,
// anything else must be a valid YYYY-MM-DD day.
func parseDay(arg string) (date.Date, error) {
	if arg == "" {
		return date.Today(), nil
	}
	if !date.Valid(arg) {
		return date.Date{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", arg)
	}
	return date.ParseKey(arg), nil
}
