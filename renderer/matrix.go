package renderer

import (
	"fmt"
	"strings"

	"keeporsell"
)

// matrixRenderer accumulates the markdown for a sweep summary.
type matrixRenderer struct {
	*strings.Builder
}

func (r *matrixRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// MatrixMarkdown renders the sweep summary: the light breakdown, the spread
// of the monthly advantage, and the strongest cell.
func MatrixMarkdown(m *keeporsell.Matrix) string {
	r := &matrixRenderer{Builder: &strings.Builder{}}
	s := m.Summarize()

	r.Printf("# Sensitivity Matrix\n\n")
	r.Printf("*As of %s*\n\n", Now().Format("2006-01-02 15:04:05"))
	if s.Cells == 0 {
		r.Printf("The sweep produced no cells.\n")
		return r.String()
	}
	r.Printf("%d cells evaluated.\n\n", s.Cells)

	r.Printf("| Light | Cells | Share |\n")
	r.Printf("|:---|---:|---:|\n")
	for _, row := range []struct {
		light keeporsell.Light
		count int
	}{
		{keeporsell.Green, s.Greens},
		{keeporsell.Yellow, s.Yellows},
		{keeporsell.Red, s.Reds},
	} {
		r.Printf("| %s | %d | %.1f%% |\n", row.light, row.count, 100*float64(row.count)/float64(s.Cells))
	}
	r.Printf("\n")

	r.Printf("| Monthly Advantage | Amount |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Minimum | %s |\n", s.MinAdvantage.SignedString())
	r.Printf("| Mean | %s |\n", s.MeanAdvantage.SignedString())
	r.Printf("| Maximum | %s |\n\n", s.MaxAdvantage.SignedString())

	b := s.Best
	r.Printf("Best cell: a %s purchase at %s with %s rent keeps the rental ahead by %s per month.\n",
		b.Price, b.Rate, b.Rent, b.MonthlyAdvantage.SignedString())
	return r.String()
}
