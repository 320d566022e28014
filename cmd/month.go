package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type monthCmd struct {
	progress progressCmd
}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "display a month's progress report" }
func (*monthCmd) Usage() string {
	return `habits month [-m <month>] [-y <year>] [-w n]

  Displays the compounding progress of a month, by default the last one
  viewed.
`
}

func (c *monthCmd) SetFlags(f *flag.FlagSet) {
	c.progress.period = "month"
	f.IntVar(&c.progress.month, "m", 0, "month of the report (1-12)")
	f.IntVar(&c.progress.year, "y", 0, "year of the report")
	f.IntVar(&c.progress.watch, "w", 0, "run every n seconds")
}

func (c *monthCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.progress.Execute(ctx, f, args...)
}
