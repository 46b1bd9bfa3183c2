package renderer

import (
	"strings"
	"testing"
	"time"

	"keeporsell"
	"keeporsell/budget"
)

const pinnedNow = "2025-05-01 10:00:00"

func referenceRequest() keeporsell.Request {
	liens := keeporsell.Liens{
		{Balance: keeporsell.M(330000), Rate: 2.875, Kind: "mortgage", Payment: keeporsell.M(2490)},
		{Balance: keeporsell.M(23000), Rate: 9, Kind: "heloc", Payment: keeporsell.M(317)},
	}
	home := keeporsell.NewHome{
		Price:           keeporsell.M(865000),
		Rate:            6.13,
		AnnualTax:       keeporsell.M(25000),
		AnnualInsurance: keeporsell.M(10000),
	}
	alreadyCounted := keeporsell.M(0)
	return keeporsell.Request{
		Baseline: keeporsell.FinancialBaseline{MonthlyIncome: keeporsell.M(20000), MonthlyExpenses: keeporsell.M(15000)},
		Rental: keeporsell.RentalInputs{
			NewHome:      home,
			CurrentHome:  keeporsell.CurrentHome{Liens: liens},
			RentalIncome: keeporsell.M(5000),
			LiquidCash:   keeporsell.M(353000),
			BonusCash:    keeporsell.M(30000),
			Payoff:       keeporsell.PayoffPolicy{Enabled: true, Threshold: 6},
		},
		Sell: keeporsell.SellInputs{
			NewHome:                home,
			CurrentHome:            keeporsell.CurrentHome{Liens: liens, Operating: keeporsell.M(390)},
			SalePrice:              keeporsell.M(700000),
			SellingCost:            7,
			LiquidCash:             keeporsell.M(353000),
			BonusCash:              keeporsell.M(30000),
			CurrentMortgagePayment: &alreadyCounted,
		},
	}
}

func TestAnalysisMarkdown(t *testing.T) {
	t.Setenv("KEEPORSELL_TESTING_NOW", pinnedNow)
	a, err := keeporsell.Run(referenceRequest())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got := AnalysisMarkdown(a)

	wants := []string{
		"# Keep or Sell Analysis",
		"*As of 2025-05-01 10:00:00*",
		"## Household Baseline",
		"$20,000.00",
		"## Strategy Comparison",
		"$360,000.00",  // rental down payment
		"$681,000.00",  // sell down payment
		"58.38%",       // rental loan to value
		"21.27%",       // sell loan to value
		"+$298,000.00", // net sale proceeds
		"## Debt Payoff",
		"heloc",
		"$317.00",
		"## Risk Scenarios",
		"6-month vacancy",
		"Moving costs ($8,000)",
		"Worst case",
		"## Recommendation",
		"Keep the home as a rental",
		"not robust to downside risk",
		"($16,256.82)",
		"## Long-Term Outlook",
		"5 years",
		"10 years",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("AnalysisMarkdown() missing %q\n%s", want, got)
		}
	}
}

// A run with no payoff policy and a comfortable margin must not carry the
// payoff section, the warning, or the low-confidence note.
func TestAnalysisMarkdownSkipsEmptySections(t *testing.T) {
	t.Setenv("KEEPORSELL_TESTING_NOW", pinnedNow)
	a := &keeporsell.Analysis{
		Baseline: keeporsell.FinancialBaseline{MonthlyIncome: keeporsell.M(10000), MonthlyExpenses: keeporsell.M(6000)},
		Rental: keeporsell.RentalResult{
			StrategyResult: keeporsell.StrategyResult{Strategy: keeporsell.Rental, NewAnnualSurplus: keeporsell.M(50000)},
		},
		Sell: keeporsell.SellResult{
			StrategyResult: keeporsell.StrategyResult{Strategy: keeporsell.Sell, NewAnnualSurplus: keeporsell.M(40000)},
		},
		RentalRisk: keeporsell.RiskAssessment{Strategy: keeporsell.Rental, WorstCase: keeporsell.M(45000)},
		SellRisk:   keeporsell.RiskAssessment{Strategy: keeporsell.Sell, WorstCase: keeporsell.M(38000)},
		Recommendation: keeporsell.Recommendation{
			Preferred:    keeporsell.Rental,
			MarginAnnual: keeporsell.M(10000),
		},
		Outlook: keeporsell.Project(keeporsell.M(50000), keeporsell.M(40000)),
	}
	got := AnalysisMarkdown(a)

	for _, absent := range []string{"## Debt Payoff", "Warning", "low-confidence"} {
		if strings.Contains(got, absent) {
			t.Errorf("AnalysisMarkdown() should not contain %q\n%s", absent, got)
		}
	}
	if !strings.Contains(got, "ahead by $10,000.00 per year") {
		t.Errorf("AnalysisMarkdown() missing the margin line\n%s", got)
	}
}

func TestAnalysisMarkdownLowConfidence(t *testing.T) {
	a := &keeporsell.Analysis{
		Recommendation: keeporsell.Recommendation{
			Preferred:     keeporsell.Rental,
			LowConfidence: true,
		},
	}
	if got := AnalysisMarkdown(a); !strings.Contains(got, "low-confidence") {
		t.Errorf("AnalysisMarkdown() missing the low-confidence note\n%s", got)
	}
}

func TestMatrixMarkdown(t *testing.T) {
	t.Setenv("KEEPORSELL_TESTING_NOW", pinnedNow)
	m, err := keeporsell.GenerateMatrix(referenceRequest(),
		keeporsell.Sweep{Min: 865000, Max: 870000, Step: 5000},
		keeporsell.Sweep{Min: 6.13, Max: 6.18, Step: 0.05},
		keeporsell.Sweep{Min: 5000, Max: 5100, Step: 50},
	)
	if err != nil {
		t.Fatalf("GenerateMatrix() error = %v", err)
	}
	got := MatrixMarkdown(m)

	wants := []string{
		"# Sensitivity Matrix",
		"*As of 2025-05-01 10:00:00*",
		"2 cells evaluated.",
		"| green | 2 | 100.0% |",
		"| yellow | 0 | 0.0% |",
		"| red | 0 | 0.0% |",
		"| Minimum | ",
		"Best cell:",
		"$865,000.00",
		"6.13%",
		"$5,050.00", // the higher rent wins
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("MatrixMarkdown() missing %q\n%s", want, got)
		}
	}
}

func TestMatrixMarkdownEmpty(t *testing.T) {
	got := MatrixMarkdown(&keeporsell.Matrix{})
	if !strings.Contains(got, "The sweep produced no cells.") {
		t.Errorf("MatrixMarkdown() = %q, want the empty notice", got)
	}
}

func TestBudgetMarkdown(t *testing.T) {
	t.Setenv("KEEPORSELL_TESTING_NOW", pinnedNow)
	s := &budget.Statement{
		MonthlyIncome: keeporsell.M(20000),
		Entries: []budget.Entry{
			{Label: "lawn service", Amount: keeporsell.M(250), Kind: budget.Operating},
			{Label: "pool service", Amount: keeporsell.M(140), Kind: budget.Operating},
			{Label: "groceries", Amount: keeporsell.M(1200), Kind: budget.Other},
		},
	}
	got := BudgetMarkdown(s)

	wants := []string{
		"# Budget Statement",
		"*As of 2025-05-01 10:00:00*",
		"| Monthly income | $20,000.00 |",
		"| Monthly expenses | $1,590.00 |",
		"| **Monthly surplus** | **$18,410.00** |",
		"## Operating Costs",
		"| lawn service | $250.00 |",
		"| **Total** | **$390.00** |",
		"## Everything Else",
		"| groceries | $1,200.00 |",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("BudgetMarkdown() missing %q\n%s", want, got)
		}
	}
	if strings.Contains(got, "## Utilities") {
		t.Errorf("BudgetMarkdown() should skip the empty utilities bucket\n%s", got)
	}
}

func TestNowPinned(t *testing.T) {
	t.Setenv("KEEPORSELL_TESTING_NOW", pinnedNow)
	want := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	if got := Now(); !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}
}
