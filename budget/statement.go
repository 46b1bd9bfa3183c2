// Package budget reads household statements, CSV or JSON, and classifies
// expense lines into operating, utility, and other buckets. The resulting
// statement bridges straight into the engine's financial baseline.
package budget

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"keeporsell"
)

// Kind buckets an expense line by what it pays for.
type Kind string

const (
	Operating Kind = "operating"
	Utility   Kind = "utility"
	Other     Kind = "other"
)

// Entry is one classified expense line.
type Entry struct {
	Label  string           `json:"label"`
	Amount keeporsell.Money `json:"amount"`
	Kind   Kind             `json:"kind"`
}

// Statement is a parsed, classified monthly budget.
type Statement struct {
	MonthlyIncome keeporsell.Money `json:"monthlyIncome"`
	Entries       []Entry          `json:"entries"`
}

// MonthlyExpenses sums every expense line.
func (s *Statement) MonthlyExpenses() keeporsell.Money {
	var total keeporsell.Money
	for _, e := range s.Entries {
		total = total.Add(e.Amount)
	}
	return total
}

func (s *Statement) total(k Kind) keeporsell.Money {
	var total keeporsell.Money
	for _, e := range s.Entries {
		if e.Kind == k {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// OperatingCosts sums the operating bucket: lawn, pool, upkeep.
func (s *Statement) OperatingCosts() keeporsell.Money { return s.total(Operating) }

// Utilities sums the utility bucket.
func (s *Statement) Utilities() keeporsell.Money { return s.total(Utility) }

// Baseline bridges the statement into the engine's baseline figures.
func (s *Statement) Baseline() keeporsell.FinancialBaseline {
	return keeporsell.FinancialBaseline{
		MonthlyIncome:   s.MonthlyIncome,
		MonthlyExpenses: s.MonthlyExpenses(),
	}
}

// LoadFile reads a statement file, JSON or CSV by extension.
func LoadFile(path string, c *Classifier, paths JSONPaths) (*Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open statement: %w", err)
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(f, c, paths)
	}
	return ParseCSV(f, c)
}
