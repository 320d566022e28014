// Command habits tracks daily habits from the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mtscully16/habit-tracker/cmd"
	"github.com/mtscully16/habit-tracker/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commands := cmd.Commands()
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range commands {
		commander.Register(c, "")
	}

	flag.Parse()

	// Unknown subcommands fall through to habits-<name> extensions.
	if args := flag.Args(); len(args) > 0 && !registered(commands, args[0]) {
		if ran, code := cmd.RunExtension(args[0], args[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func registered(commands []subcommands.Command, name string) bool {
	for _, c := range commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// completion serves shell completion requests and returns untouched on a
// normal run. Install it once with COMP_INSTALL=1 habits.
func completion() {
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands() {
		sub[c.Name()] = &complete.Command{}
	}

	if progress, ok := sub["progress"]; ok {
		progress.Flags = map[string]complete.Predictor{
			"p": predict.Set{"week", "month", "year", "all"},
		}
	}
	if topic, ok := sub["topic"]; ok {
		if topics, err := docs.GetAllTopics(); err == nil {
			topic.Args = predict.Set(append(topics, "readme"))
		}
	}

	(&complete.Command{Sub: sub}).Complete("habits")
}
