package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type allCmd struct {
	progress progressCmd
}

func (*allCmd) Name() string     { return "all" }
func (*allCmd) Synopsis() string { return "display the all-time progress report" }
func (*allCmd) Usage() string {
	return `habits all [-w n]

  Displays the compounding progress from the first recorded day through
  today.
`
}

func (c *allCmd) SetFlags(f *flag.FlagSet) {
	c.progress.period = "all"
	f.IntVar(&c.progress.watch, "w", 0, "run every n seconds")
}

func (c *allCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.progress.Execute(ctx, f, args...)
}
