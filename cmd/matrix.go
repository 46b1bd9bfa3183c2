package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"keeporsell"
	"keeporsell/renderer"
)

// matrixCmd holds the flags for the 'matrix' subcommand.
type matrixCmd struct {
	requestFlags
	csvFile string

	priceMin, priceMax, priceStep float64
	rateMin, rateMax, rateStep    float64
	rentMin, rentMax, rentStep    float64
}

func (*matrixCmd) Name() string { return "matrix" }
func (*matrixCmd) Synopsis() string {
	return "sweep price, rate and rent and grade every combination"
}
func (*matrixCmd) Usage() string {
	return `kos matrix [-csv <file>] [flags]

  Re-runs both strategy evaluations over the whole price x rate x rent grid,
  grades each cell with a traffic light on the monthly advantage of renting,
  and prints a summary. The grid ranges come from the config unless
  overridden; every range is half-open, min included and max excluded.

Usage Examples:
# Sweep the config ranges around one household and export the grid.
$ kos matrix -budget statement.csv -price 865000 -rent 5000 \
    -sale-price 700000 -csv matrix.csv
`
}

func (c *matrixCmd) SetFlags(f *flag.FlagSet) {
	c.requestFlags.SetFlags(f)
	f.StringVar(&c.csvFile, "csv", "", "Write the full grid as CSV to this file.")

	f.Float64Var(&c.priceMin, "price-min", -1, "Lowest purchase price in the sweep. Defaults to the config value.")
	f.Float64Var(&c.priceMax, "price-max", -1, "Price bound excluded from the sweep. Defaults to the config value.")
	f.Float64Var(&c.priceStep, "price-step", -1, "Price increment. Defaults to the config value.")
	f.Float64Var(&c.rateMin, "rate-min", -1, "Lowest rate in the sweep. Defaults to the config value.")
	f.Float64Var(&c.rateMax, "rate-max", -1, "Rate bound excluded from the sweep. Defaults to the config value.")
	f.Float64Var(&c.rateStep, "rate-step", -1, "Rate increment. Defaults to the config value.")
	f.Float64Var(&c.rentMin, "rent-min", -1, "Lowest rent in the sweep. Defaults to the config value.")
	f.Float64Var(&c.rentMax, "rent-max", -1, "Rent bound excluded from the sweep. Defaults to the config value.")
	f.Float64Var(&c.rentStep, "rent-step", -1, "Rent increment. Defaults to the config value.")
}

func (c *matrixCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	prices := sweepOverride(cfg.Matrix.Price, c.priceMin, c.priceMax, c.priceStep)
	rates := sweepOverride(cfg.Matrix.Rate, c.rateMin, c.rateMax, c.rateStep)
	rents := sweepOverride(cfg.Matrix.Rent, c.rentMin, c.rentMax, c.rentStep)

	m, err := keeporsell.GenerateMatrix(req, prices, rates, rents)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.csvFile != "" {
		if err := writeMatrixCSV(c.csvFile, m); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV to %q: %v\n", c.csvFile, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Grid written to %s\n", c.csvFile)
	}

	printMarkdown(renderer.MatrixMarkdown(m))
	return subcommands.ExitSuccess
}

// sweepOverride starts from the configured sweep and swaps in every member
// the user set on the command line.
func sweepOverride(s keeporsell.Sweep, min, max, step float64) keeporsell.Sweep {
	if min >= 0 {
		s.Min = min
	}
	if max >= 0 {
		s.Max = max
	}
	if step >= 0 {
		s.Step = step
	}
	return s
}

func writeMatrixCSV(path string, m *keeporsell.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := m.WriteCSV(f); err != nil {
		return err
	}
	return f.Close()
}
