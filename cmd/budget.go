package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"keeporsell/budget"
	"keeporsell/renderer"
)

// budgetCmd holds the flags for the 'budget' subcommand.
type budgetCmd struct {
	jsonOut bool
}

func (*budgetCmd) Name() string { return "budget" }
func (*budgetCmd) Synopsis() string {
	return "parse a budget statement and classify its expenses"
}
func (*budgetCmd) Usage() string {
	return `kos budget [-json] <statement>

  Reads a budget statement (CSV or JSON), classifies every expense into
  operating, utility or other buckets with the configured keywords, and
  prints the result. The statement can feed 'kos analyze' through -budget.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.jsonOut, "json", false, "Print the parsed statement as JSON instead of markdown.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one statement file, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	classifier := budget.NewClassifier(cfg.Budget.OperatingKeywords, cfg.Budget.UtilityKeywords)
	statement, err := budget.LoadFile(f.Arg(0), classifier, budget.JSONPaths{
		Income:   cfg.Budget.IncomePath,
		Expenses: cfg.Budget.ExpensesPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading statement %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	if c.jsonOut {
		data, err := json.MarshalIndent(statement, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding statement: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.BudgetMarkdown(statement))
	return subcommands.ExitSuccess
}
