package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mtscully16/habit-tracker/agent"
	"google.golang.org/genai"
)

// assistCmd starts an interactive session with the AI habit coach.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with the AI habit coach" }
func (*assistCmd) Usage() string {
	return `habits assist [<prompt>]:
  Start an interactive session with the AI habit coach.

  The coach sees the current checklist and can pull up progress reports.
  Requires the GEMINI_API_KEY environment variable.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	tracker := openTracker()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	coach := agent.NewCoach(os.Stdout, os.Stdin, tracker.Document())
	if err := coach.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Coach failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
