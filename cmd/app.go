// Package cmd implements the CLI application to track daily habits.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	habit "github.com/mtscully16/habit-tracker"
	"github.com/mtscully16/habit-tracker/remote"
)

// Environment variables overriding the application defaults.
const (
	// EnvHome points to the directory holding the habit document and the
	// session file. Defaults to ~/.habits.
	EnvHome = "HABITS_HOME"
	// EnvSyncURL points to the habit sync service. Sync commands refuse
	// to run without it.
	EnvSyncURL = "HABITS_SYNC_URL"
)

// Commands lists every subcommand of the habits tool, in help order.
// A main package registers them on its commander and executes the
// user-selected one.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&todayCmd{},
		&checkCmd{},
		&uncheckCmd{},
		&addCmd{},
		&removeCmd{},
		&renameCmd{},
		&progressCmd{},
		&weekCmd{},
		&monthCmd{},
		&yearCmd{},
		&allCmd{},
		&tuiCmd{},
		&loginCmd{},
		&logoutCmd{},
		&syncCmd{},
		&fmtCmd{},
		&assistCmd{},
		&topicCmd{},
	}
}

// as a CLI application it has a very short lived lifecycle, so it is ok
// to resolve the configuration through package level helpers.

// homeDir returns the directory holding the habit data.
func homeDir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	base, err := os.UserHomeDir()
	if err != nil {
		return ".habits"
	}
	return filepath.Join(base, ".habits")
}

// openTracker loads the habit document from the home directory.
func openTracker() *habit.Tracker {
	return habit.NewTracker(habit.NewDirStore(homeDir()), habit.StorageKey)
}

// openSyncer returns a coordinator attached to the configured sync
// service and the stored session. It fails when no service is configured
// or no session exists.
func openSyncer(tracker *habit.Tracker) (*habit.Syncer, remote.Session, error) {
	base := os.Getenv(EnvSyncURL)
	if base == "" {
		return nil, remote.Session{}, fmt.Errorf("no sync service configured. Set %s to the service base URL", EnvSyncURL)
	}
	session, err := remote.LoadSession(homeDir())
	if err != nil {
		return nil, remote.Session{}, err
	}
	store := remote.NewClient(base, session.Header())
	return habit.NewSyncer(tracker, store), session, nil
}

// trySyncer is openSyncer for commands where sync is optional: it returns
// a nil coordinator, silently, when sync is not set up.
func trySyncer(tracker *habit.Tracker) (*habit.Syncer, string) {
	syncer, session, err := openSyncer(tracker)
	if err != nil {
		return nil, ""
	}
	return syncer, session.UserID
}

// editDocument applies one edit to the habit document. With a session
// attached the edit is bracketed by a pull and a push, so every device
// converges on the most recent state. Remote failures are warnings, the
// edit always applies locally.
func editDocument(edit func(*habit.Document) bool) (*habit.Document, bool) {
	tracker := openTracker()
	syncer, userID := trySyncer(tracker)
	ctx := context.Background()

	if syncer != nil {
		if err := syncer.SetIdentity(ctx, userID); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, the edit stays local\n", err)
		}
	}
	doc, ok := tracker.Update(edit)
	if syncer != nil && ok {
		if err := syncer.Flush(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, the edit stays local\n", err)
		}
	}
	return doc, ok
}

// printMarkdown renders markdown for the terminal. When rendering fails
// the raw markdown is still readable, print it as is.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// parseList resolves the list argument of the editing commands: "do" is
// the positive list, "dont" the negative one.
func parseList(arg string) (habit.List, error) {
	switch strings.ToLower(arg) {
	case "do", "positive":
		return habit.Positive, nil
	case "dont", "don't", "negative":
		return habit.Negative, nil
	default:
		return habit.Positive, fmt.Errorf("unknown list %q, want 'do' or 'dont'", arg)
	}
}

// resolveHabit turns a habit argument into a list index: a 1-based
// number, an exact label, or an unambiguous label prefix.
func resolveHabit(doc *habit.Document, l habit.List, arg string) (int, error) {
	labels := doc.Settings.Labels(l)
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(labels) {
			return 0, fmt.Errorf("habit number %d out of range, the %s list has %d entries", n, l, len(labels))
		}
		return n - 1, nil
	}

	found := -1
	for i, label := range labels {
		if strings.EqualFold(label, arg) {
			return i, nil
		}
		if strings.HasPrefix(strings.ToLower(label), strings.ToLower(arg)) {
			if found >= 0 {
				return 0, fmt.Errorf("habit %q is ambiguous, matches %q and %q", arg, labels[found], label)
			}
			found = i
		}
	}
	if found < 0 {
		return 0, fmt.Errorf("no habit matching %q in the %s list", arg, l)
	}
	return found, nil
}
