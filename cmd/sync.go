package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type syncCmd struct{}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "synchronize the document with the account" }
func (*syncCmd) Usage() string {
	return `habits sync

  Pulls the account's document and pushes the local one when it changed.
  The most recent whole document wins on both sides.
`
}

func (*syncCmd) SetFlags(*flag.FlagSet) {}

func (c *syncCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker := openTracker()
	syncer, session, err := openSyncer(tracker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := syncer.SetIdentity(ctx, session.UserID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := syncer.Flush(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Synchronized with account %q (state %s", session.UserID, syncer.State())
	if at := syncer.UpdatedAt(); !at.IsZero() {
		fmt.Printf(", last remote write %s", at.Format("2006-01-02 15:04:05"))
	}
	fmt.Println(").")
	return subcommands.ExitSuccess
}
