package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mtscully16/habit-tracker/remote"
)

// loginCmd holds the flags for the 'login' subcommand.
type loginCmd struct {
	token string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "store sync credentials and pull the remote document" }
func (*loginCmd) Usage() string {
	return `habits login [-token <token>] <user-id>

  Stores the sync session and pulls the account's document. A document
  already stored remotely replaces the local one whole; otherwise the
  local document becomes the account's first upload.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.token, "token", "", "bearer token of the sync service, sent with every request")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one user-id argument\n%s", c.Usage())
		return subcommands.ExitUsageError
	}

	session := remote.Session{UserID: f.Arg(0), Token: c.token}
	if err := remote.SaveSession(homeDir(), session); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	tracker := openTracker()
	syncer, _, err := openSyncer(tracker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := syncer.SetIdentity(ctx, session.UserID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Signed in as %q, documents in sync.\n", session.UserID)
	return subcommands.ExitSuccess
}
