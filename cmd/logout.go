package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mtscully16/habit-tracker/remote"
)

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "forget the sync credentials" }
func (*logoutCmd) Usage() string {
	return `habits logout

  Removes the stored sync session. The local document keeps working and
  nothing is deleted remotely.
`
}

func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := remote.ClearSession(homeDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Signed out. Edits stay on this machine until the next login.")
	return subcommands.ExitSuccess
}
