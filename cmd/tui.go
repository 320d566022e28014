package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/subcommands"
	"github.com/mtscully16/habit-tracker/tui"
)

// tuiCmd opens the full-screen interactive interface.
type tuiCmd struct{}

func (*tuiCmd) Name() string     { return "tui" }
func (*tuiCmd) Synopsis() string { return "open the interactive interface" }
func (*tuiCmd) Usage() string {
	return `habits tui:
  Open the full-screen interactive interface.

  The checklist tab toggles the selected day's marks, the progress tab
  shows the compounding score. With a session attached, edits upload in
  the background while the interface is open.
`
}

func (*tuiCmd) SetFlags(_ *flag.FlagSet) {}

func (c *tuiCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	tracker := openTracker()

	syncer, userID := trySyncer(tracker)
	if syncer != nil {
		if err := syncer.SetIdentity(ctx, userID); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, edits stay local\n", err)
		}
	}

	p := tea.NewProgram(tui.New(tracker), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	// Push whatever the debounce still holds before the process ends.
	if syncer != nil {
		if err := syncer.Flush(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	return subcommands.ExitSuccess
}
