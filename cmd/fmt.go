package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	habit "github.com/mtscully16/habit-tracker"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "normalizes and formats the habit document into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `habits fmt

  Reads the habit document, repairs whatever shape it is in (missing
  lists, misaligned day records, stale selection) and writes it back
  indented, with day keys sorted. Useful after a hand edit.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := habit.NewDirStore(homeDir())
	raw, _ := store.Get(habit.StorageKey)

	doc := habit.DecodeDocument([]byte(raw))
	data, err := habit.EncodeDocumentIndent(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store.Set(habit.StorageKey, string(data))

	fmt.Printf("Formatted %s.\n", filepath.Join(homeDir(), habit.StorageKey+".json"))
	return subcommands.ExitSuccess
}
