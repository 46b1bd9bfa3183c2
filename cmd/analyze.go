package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"keeporsell"
	"keeporsell/renderer"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	requestFlags
	jsonOut bool
	export  string
}

func (*analyzeCmd) Name() string { return "analyze" }
func (*analyzeCmd) Synopsis() string {
	return "compare keeping the current home as a rental against selling it"
}
func (*analyzeCmd) Usage() string {
	return `kos analyze -price <price> -rent <rent> -sale-price <price> [flags]

  Evaluates both strategies for the household, assesses the risk scenarios,
  and prints the full markdown report with a recommendation.

Usage Examples:
# The whole household on the command line.
$ kos analyze -income 20000 -expenses 15000 -price 865000 -tax 25000 \
    -insurance 10000 -liquid 353000 -bonus 30000 -rent 5000 \
    -sale-price 700000 -liens @liens.json -payoff

# Income, expenses and carrying costs from a budget statement.
$ kos analyze -budget statement.csv -price 865000 -rent 5000 -sale-price 700000
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	c.requestFlags.SetFlags(f)
	f.BoolVar(&c.jsonOut, "json", false, "Print the analysis as JSON instead of markdown.")
	f.StringVar(&c.export, "export", "", "Also write the raw markdown report to this file.")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	req, err := c.Request(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error assembling the request: %v\n", err)
		return subcommands.ExitUsageError
	}
	analysis, err := keeporsell.Run(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.jsonOut {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding analysis: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}

	md := renderer.AnalysisMarkdown(analysis)
	if c.export != "" {
		if err := os.WriteFile(c.export, []byte(md), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %q: %v\n", c.export, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", c.export)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
