package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"
)

// configCmd holds the flags for the 'config' subcommand.
type configCmd struct {
	initFile string
}

func (*configCmd) Name() string { return "config" }
func (*configCmd) Synopsis() string {
	return "print the effective configuration"
}
func (*configCmd) Usage() string {
	return `kos config [-init <file>]

  Prints the effective configuration as YAML: the built-in defaults merged
  with the file given by -config, if any. With -init, writes it to a file
  instead, as a starting point to edit.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.initFile, "init", "", "Write the effective configuration to this file (YAML or JSON by extension).")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.initFile != "" {
		if err := cfg.SaveToFile(c.initFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config to %q: %v\n", c.initFile, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Config written to %s\n", c.initFile)
		return subcommands.ExitSuccess
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(string(data))
	return subcommands.ExitSuccess
}
