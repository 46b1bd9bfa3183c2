package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"keeporsell"
	"keeporsell/budget"
)

// BudgetMarkdown renders a parsed statement: the income and expense totals,
// then one section per bucket that has entries.
func BudgetMarkdown(s *budget.Statement) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Budget Statement\n\n")
	fmt.Fprintf(&b, "*As of %s*\n\n", Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "| Metric | Amount |\n")
	fmt.Fprintf(&b, "|:---|---:|\n")
	fmt.Fprintf(&b, "| Monthly income | %s |\n", s.MonthlyIncome)
	fmt.Fprintf(&b, "| Monthly expenses | %s |\n", s.MonthlyExpenses())
	fmt.Fprintf(&b, "| **Monthly surplus** | **%s** |\n\n", s.Baseline().MonthlySurplus())

	for _, bucket := range []struct {
		kind  budget.Kind
		title string
	}{
		{budget.Operating, "Operating Costs"},
		{budget.Utility, "Utilities"},
		{budget.Other, "Everything Else"},
	} {
		conditionalBlock(&b, func(w io.Writer) bool {
			fmt.Fprintf(w, "## %s\n\n", bucket.title)
			fmt.Fprintf(w, "| Label | Amount |\n")
			fmt.Fprintf(w, "|:---|---:|\n")
			var total keeporsell.Money
			found := false
			for _, e := range s.Entries {
				if e.Kind != bucket.kind {
					continue
				}
				fmt.Fprintf(w, "| %s | %s |\n", e.Label, e.Amount)
				total = total.Add(e.Amount)
				found = true
			}
			fmt.Fprintf(w, "| **Total** | **%s** |\n\n", total)
			return found
		})
	}
	return b.String()
}

// conditionalBlock buffers everything the block writes and keeps it only when
// the block reports it has content.
func conditionalBlock(w io.Writer, block func(io.Writer) bool) {
	buf := &bytes.Buffer{}
	if block(buf) {
		io.Copy(w, buf)
	}
}
