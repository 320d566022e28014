package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type yearCmd struct {
	progress progressCmd
}

func (*yearCmd) Name() string     { return "year" }
func (*yearCmd) Synopsis() string { return "display a year's progress report" }
func (*yearCmd) Usage() string {
	return `habits year [-y <year>] [-w n]

  Displays the compounding progress of a year, by default the last one
  viewed.
`
}

func (c *yearCmd) SetFlags(f *flag.FlagSet) {
	c.progress.period = "year"
	f.IntVar(&c.progress.year, "y", 0, "year of the report")
	f.IntVar(&c.progress.watch, "w", 0, "run every n seconds")
}

func (c *yearCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.progress.Execute(ctx, f, args...)
}
