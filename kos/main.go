package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"keeporsell/cmd"
	"keeporsell/docs"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !builtin(commander, name) {
		if ran, code := cmd.RunExtension(name, flag.Args()[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func builtin(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

// completion wires shell completion. It takes over and exits the process
// when the shell asks for completions, and is inert otherwise.
func completion() {
	files := predict.Files("*")
	topics, err := docs.GetAllTopics()
	if err == nil {
		topics = append(topics, "readme", "*")
	}

	(&complete.Command{
		Flags: map[string]complete.Predictor{"config": files},
		Sub: map[string]*complete.Command{
			"analyze": {Flags: map[string]complete.Predictor{"budget": files, "liens": files, "export": files}},
			"matrix":  {Flags: map[string]complete.Predictor{"budget": files, "liens": files, "csv": files}},
			"budget":  {Args: files},
			"config":  {Flags: map[string]complete.Predictor{"init": files}},
			"topic":   {Args: predict.Set(topics)},
			"assist":  {},
		},
	}).Complete("kos")
}
