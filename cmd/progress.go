package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	habit "github.com/mtscully16/habit-tracker"
	"github.com/mtscully16/habit-tracker/date"
	"github.com/mtscully16/habit-tracker/renderer"
)

// progressCmd holds the flags for the 'progress' subcommand.
type progressCmd struct {
	period string
	month  int
	year   int
	watch  int
	// processed
	sel     habit.Selection
	tracker *habit.Tracker
}

func (*progressCmd) Name() string     { return "progress" }
func (*progressCmd) Synopsis() string { return "display the compounding progress report" }
func (*progressCmd) Usage() string {
	return `habits progress [-p <period>] [-m <month>] [-y <year>] [-w n]

  Displays the compounding score over a window: every day multiplies the
  score by 1% per net point. Without flags the report reopens the last
  viewed window.
`
}

func (c *progressCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "period of the report (week, month, year, all)")
	f.IntVar(&c.month, "m", 0, "month of the month window (1-12)")
	f.IntVar(&c.year, "y", 0, "year of the month and year windows")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *progressCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	for {
		c.render()
		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}

func (c *progressCmd) init() error {
	c.tracker = openTracker()
	c.sel = c.tracker.Document().Selection()

	if c.period != "" {
		p, err := date.ParsePeriod(c.period)
		if err != nil {
			return err
		}
		c.sel.Period = p
	}
	if c.month != 0 {
		if c.month < 1 || c.month > 12 {
			return fmt.Errorf("month %d out of range, want 1-12", c.month)
		}
		c.sel.Month = time.Month(c.month)
	}
	if c.year != 0 {
		c.sel.Year = c.year
	}

	// Remember the window, the next report reopens on it.
	c.tracker.Update(func(d *habit.Document) bool {
		d.SetMode(c.sel.Period)
		d.SetMonthYear(c.sel.Month, c.sel.Year)
		return true
	})
	return nil
}

func (c *progressCmd) render() {
	s := habit.NewSeries(c.tracker.Document(), c.sel, date.Today())
	if c.watch > 0 {
		fmt.Println("\033[2J")
	}
	printMarkdown(renderer.ProgressMarkdown(s))
}
