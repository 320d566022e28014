package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type weekCmd struct {
	progress progressCmd
}

func (*weekCmd) Name() string     { return "week" }
func (*weekCmd) Synopsis() string { return "display this week's progress report" }
func (*weekCmd) Usage() string {
	return `habits week [-w n]

  Displays the compounding progress of the current week.
`
}

func (c *weekCmd) SetFlags(f *flag.FlagSet) {
	c.progress.period = "week"
	f.IntVar(&c.progress.watch, "w", 0, "run every n seconds")
}

func (c *weekCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.progress.Execute(ctx, f, args...)
}
