package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

// uncheckCmd is checkCmd clearing the mark instead of setting it.
type uncheckCmd struct {
	check checkCmd
}

func (*uncheckCmd) Name() string     { return "uncheck" }
func (*uncheckCmd) Synopsis() string { return "clear a habit mark for the day" }
func (*uncheckCmd) Usage() string {
	return `habits uncheck [-d <date>] [-not] <habit>

  Clears a habit mark on a day, today by default. Arguments work exactly
  like the check command.
`
}

func (c *uncheckCmd) SetFlags(f *flag.FlagSet) {
	c.check.SetFlags(f)
	c.check.value = false
}

func (c *uncheckCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.check.Execute(ctx, f, args...)
}
