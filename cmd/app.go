// Package cmd implements the CLI application to compare keeping a home as a
// rental against selling it.
package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"keeporsell/config"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&matrixCmd{}, "analysis")

	c.Register(&budgetCmd{}, "inputs")
	c.Register(&configCmd{}, "inputs")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", "", "Path to the config file (YAML or JSON). Built-in defaults apply when empty.")

// loadConfig is the central function to resolve the effective configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, fmt.Errorf("could not load config %q: %w", *configPath, err)
	}
	return cfg, nil
}
