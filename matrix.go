package keeporsell

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
)

// Sweep is one axis of the sensitivity grid. Values cover the half-open
// range [Min, Max) in Step increments, so a 650000..905000 sweep at 5000
// ends on 900000.
type Sweep struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Step float64 `json:"step" yaml:"step"`
}

// Values expands the sweep. A degenerate sweep collapses to its minimum.
// The count is computed up front and each value multiplied out, so binary
// drift in Step can neither gain nor lose a grid line.
func (s Sweep) Values() []float64 {
	if s.Step <= 0 || s.Max <= s.Min {
		return []float64{s.Min}
	}
	n := int(math.Ceil((s.Max-s.Min)/s.Step - 1e-9))
	if n < 1 {
		n = 1
	}
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.Min+float64(i)*s.Step)
	}
	return out
}

// Light grades a cell by how much keeping the home costs per month compared
// to selling.
type Light string

const (
	Green  Light = "green"
	Yellow Light = "yellow"
	Red    Light = "red"
)

const (
	greenFloor  = -300 // monthly advantage at or above this is green
	yellowFloor = -600 // below greenFloor but at or above this is yellow
)

func grade(advantage Money) Light {
	switch {
	case advantage.GreaterThanOrEqual(M(greenFloor)):
		return Green
	case advantage.GreaterThanOrEqual(M(yellowFloor)):
		return Yellow
	default:
		return Red
	}
}

// MatrixCell is one point of the grid: both strategies evaluated at a price,
// rate, and rent, and the resulting monthly advantage of renting over
// selling.
type MatrixCell struct {
	Price            Money   `json:"price"`
	Rate             Percent `json:"rate"`
	Rent             Money   `json:"rent"`
	RentalAnnual     Money   `json:"rentalAnnualSurplus"`
	SellAnnual       Money   `json:"sellAnnualSurplus"`
	MonthlyAdvantage Money   `json:"monthlyAdvantage"`
	Light            Light   `json:"light"`
}

// Matrix is the full grid of one sweep run, in price-major, rate-then-rent
// order.
type Matrix struct {
	Cells []MatrixCell
}

// GenerateMatrix re-evaluates both strategies across the price, rate, and
// rent grid, starting from the request and overriding only the swept fields.
// Each cell runs the strategy evaluations alone; the stress catalogue stays
// out so a grid of a hundred thousand cells remains cheap.
func GenerateMatrix(req Request, prices, rates, rents Sweep) (*Matrix, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ps, qs, ts := prices.Values(), rates.Values(), rents.Values()
	m := &Matrix{Cells: make([]MatrixCell, 0, len(ps)*len(qs)*len(ts))}
	for _, price := range ps {
		for _, rate := range qs {
			for _, rent := range ts {
				m.Cells = append(m.Cells, evaluateCell(req, price, rate, rent))
			}
		}
	}
	return m, nil
}

func evaluateCell(req Request, price, rate, rent float64) MatrixCell {
	rin, sin := req.Rental, req.Sell
	rin.NewHome.Price = M(price)
	rin.NewHome.Rate = Percent(rate)
	rin.RentalIncome = M(rent)
	sin.NewHome.Price = M(price)
	sin.NewHome.Rate = Percent(rate)

	rental := EvaluateRental(req.Baseline, rin)
	sell := EvaluateSell(req.Baseline, sin)
	advantage := rental.NewAnnualSurplus.Sub(sell.NewAnnualSurplus).Div(12)
	return MatrixCell{
		Price:            M(price),
		Rate:             Percent(rate),
		Rent:             M(rent),
		RentalAnnual:     rental.NewAnnualSurplus,
		SellAnnual:       sell.NewAnnualSurplus,
		MonthlyAdvantage: advantage,
		Light:            grade(advantage),
	}
}

// MatrixSummary condenses a grid into the figures worth reading.
type MatrixSummary struct {
	Cells         int
	Greens        int
	Yellows       int
	Reds          int
	MinAdvantage  Money
	MaxAdvantage  Money
	MeanAdvantage Money
	// Best is the cell with the highest monthly advantage; the first such
	// cell wins a tie.
	Best MatrixCell
}

// Summarize scans the grid once.
func (m *Matrix) Summarize() MatrixSummary {
	s := MatrixSummary{Cells: len(m.Cells)}
	if s.Cells == 0 {
		return s
	}
	var total Money
	s.Best = m.Cells[0]
	s.MinAdvantage = m.Cells[0].MonthlyAdvantage
	s.MaxAdvantage = m.Cells[0].MonthlyAdvantage
	for _, c := range m.Cells {
		switch c.Light {
		case Green:
			s.Greens++
		case Yellow:
			s.Yellows++
		default:
			s.Reds++
		}
		total = total.Add(c.MonthlyAdvantage)
		if c.MonthlyAdvantage.LessThan(s.MinAdvantage) {
			s.MinAdvantage = c.MonthlyAdvantage
		}
		if c.MonthlyAdvantage.GreaterThan(s.MaxAdvantage) {
			s.MaxAdvantage = c.MonthlyAdvantage
			s.Best = c
		}
	}
	s.MeanAdvantage = total.Div(s.Cells)
	return s
}

// WriteCSV streams the grid, one row per cell, with plain unformatted
// numbers so the file loads straight into a spreadsheet.
func (m *Matrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"price", "rate", "rent", "rental_annual_surplus", "sell_annual_surplus", "monthly_advantage", "light"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write matrix header: %w", err)
	}
	for _, c := range m.Cells {
		row := []string{
			plain(c.Price),
			fmt.Sprintf("%.2f", float64(c.Rate)),
			plain(c.Rent),
			plain(c.RentalAnnual),
			plain(c.SellAnnual),
			plain(c.MonthlyAdvantage),
			string(c.Light),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write matrix row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// plain renders a money amount as a bare number, rounded to cents.
func plain(m Money) string {
	return m.value.Round(2).String()
}
