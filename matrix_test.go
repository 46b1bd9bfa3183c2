package keeporsell

import (
	"bytes"
	"encoding/csv"
	"math"
	"testing"
)

func TestSweepValues(t *testing.T) {
	cases := []struct {
		name  string
		sweep Sweep
		count int
		first float64
		last  float64
	}{
		{"prices", Sweep{650000, 905000, 5000}, 51, 650000, 900000},
		{"rates", Sweep{5.0, 8.05, 0.05}, 61, 5.0, 8.0},
		{"rents", Sweep{3500, 5300, 50}, 36, 3500, 5250},
		{"uneven step", Sweep{0, 10, 3}, 4, 0, 9},
		{"zero step", Sweep{100, 200, 0}, 1, 100, 100},
		{"inverted bounds", Sweep{200, 100, 10}, 1, 200, 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vs := tc.sweep.Values()
			if len(vs) != tc.count {
				t.Fatalf("got %d values, want %d", len(vs), tc.count)
			}
			if vs[0] != tc.first {
				t.Errorf("first = %v, want %v", vs[0], tc.first)
			}
			if got := vs[len(vs)-1]; math.Abs(got-tc.last) > 1e-9 {
				t.Errorf("last = %v, want %v", got, tc.last)
			}
		})
	}
}

func TestGrade(t *testing.T) {
	cases := []struct {
		advantage float64
		want      Light
	}{
		{250, Green},
		{0, Green},
		{-300, Green},
		{-300.01, Yellow},
		{-600, Yellow},
		{-600.01, Red},
		{-2000, Red},
	}
	for _, tc := range cases {
		if got := grade(M(tc.advantage)); got != tc.want {
			t.Errorf("grade(%v) = %q, want %q", tc.advantage, got, tc.want)
		}
	}
}

func TestGenerateMatrix(t *testing.T) {
	m, err := GenerateMatrix(referenceRequest(),
		Sweep{860000, 880000, 10000},
		Sweep{6.0, 6.2, 0.1},
		Sweep{4900, 5100, 100},
	)
	if err != nil {
		t.Fatalf("GenerateMatrix() error = %v", err)
	}
	if len(m.Cells) != 8 {
		t.Fatalf("got %d cells, want 8", len(m.Cells))
	}

	first, last := m.Cells[0], m.Cells[7]
	if !first.Price.Equal(M(860000)) || !first.Rate.Equal(6.0) || !first.Rent.Equal(M(4900)) {
		t.Errorf("first cell = (%s, %s, %s), want ($860,000.00, 6.00%%, $4,900.00)", first.Price, first.Rate, first.Rent)
	}
	if !last.Price.Equal(M(870000)) || !last.Rate.Equal(6.1) || !last.Rent.Equal(M(5000)) {
		t.Errorf("last cell = (%s, %s, %s), want ($870,000.00, 6.10%%, $5,000.00)", last.Price, last.Rate, last.Rent)
	}

	for i, c := range m.Cells {
		want := c.RentalAnnual.Sub(c.SellAnnual).Div(12)
		if !c.MonthlyAdvantage.Equal(want) {
			t.Errorf("cell %d advantage = %s, want %s", i, c.MonthlyAdvantage, want)
		}
		if c.Light != grade(c.MonthlyAdvantage) {
			t.Errorf("cell %d light = %q, want %q", i, c.Light, grade(c.MonthlyAdvantage))
		}
	}

	// Cells 0 and 1 differ only by rent; more rent must help the rental.
	if !m.Cells[1].RentalAnnual.GreaterThan(m.Cells[0].RentalAnnual) {
		t.Errorf("rent 5000 surplus %s not above rent 4900 surplus %s",
			m.Cells[1].RentalAnnual, m.Cells[0].RentalAnnual)
	}
}

func TestGenerateMatrixReferenceCell(t *testing.T) {
	// A degenerate grid pinned to the household's own figures must reproduce
	// the single-run evaluation.
	m, err := GenerateMatrix(referenceRequest(),
		Sweep{865000, 865000, 5000},
		Sweep{6.13, 6.13, 0.05},
		Sweep{5000, 5000, 50},
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Cells) != 1 {
		t.Fatalf("got %d cells, want 1", len(m.Cells))
	}
	c := m.Cells[0]
	if !approx(c.RentalAnnual, 18279.20, 0.05) {
		t.Errorf("RentalAnnual = %s, want about $18,279.20", c.RentalAnnual)
	}
	if !approx(c.SellAnnual, 16256.82, 0.05) {
		t.Errorf("SellAnnual = %s, want about $16,256.82", c.SellAnnual)
	}
	if !approx(c.MonthlyAdvantage, 168.53, 0.05) {
		t.Errorf("MonthlyAdvantage = %s, want about $168.53", c.MonthlyAdvantage)
	}
	if c.Light != Green {
		t.Errorf("Light = %q, want %q", c.Light, Green)
	}
}

func TestGenerateMatrixRejectsBadRequest(t *testing.T) {
	req := referenceRequest()
	req.Baseline.MonthlyIncome = M(-1)
	if _, err := GenerateMatrix(req, Sweep{}, Sweep{}, Sweep{}); err == nil {
		t.Fatal("GenerateMatrix() accepted a negative income")
	}
}

func TestMatrixSummarize(t *testing.T) {
	m := &Matrix{Cells: []MatrixCell{
		{Rent: M(4900), MonthlyAdvantage: M(100), Light: Green},
		{Rent: M(5000), MonthlyAdvantage: M(-400), Light: Yellow},
		{Rent: M(5100), MonthlyAdvantage: M(-700), Light: Red},
		{Rent: M(5200), MonthlyAdvantage: M(400), Light: Green},
	}}
	s := m.Summarize()

	if s.Cells != 4 {
		t.Errorf("Cells = %d, want 4", s.Cells)
	}
	if s.Greens != 2 || s.Yellows != 1 || s.Reds != 1 {
		t.Errorf("lights = %d/%d/%d, want 2/1/1", s.Greens, s.Yellows, s.Reds)
	}
	if !s.MinAdvantage.Equal(M(-700)) {
		t.Errorf("MinAdvantage = %s, want -$700.00", s.MinAdvantage)
	}
	if !s.MaxAdvantage.Equal(M(400)) {
		t.Errorf("MaxAdvantage = %s, want $400.00", s.MaxAdvantage)
	}
	if !s.MeanAdvantage.Equal(M(-150)) {
		t.Errorf("MeanAdvantage = %s, want -$150.00", s.MeanAdvantage)
	}
	if !s.Best.Rent.Equal(M(5200)) {
		t.Errorf("Best cell rent = %s, want $5,200.00", s.Best.Rent)
	}
}

func TestMatrixSummarizeEmpty(t *testing.T) {
	s := (&Matrix{}).Summarize()
	if s.Cells != 0 || !s.MeanAdvantage.IsZero() {
		t.Errorf("empty summary = %+v, want zeros", s)
	}
}

func TestMatrixWriteCSV(t *testing.T) {
	m, err := GenerateMatrix(referenceRequest(),
		Sweep{860000, 880000, 10000},
		Sweep{6.13, 6.13, 0.05},
		Sweep{5000, 5000, 50},
	)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := m.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output does not parse as CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2 cells", len(rows))
	}

	header := []string{"price", "rate", "rent", "rental_annual_surplus", "sell_annual_surplus", "monthly_advantage", "light"}
	for i, want := range header {
		if rows[0][i] != want {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], want)
		}
	}
	if rows[1][0] != "860000" || rows[1][1] != "6.13" || rows[1][2] != "5000" {
		t.Errorf("first row = %v, want price 860000, rate 6.13, rent 5000", rows[1])
	}
	if got := rows[1][6]; got != string(Green) && got != string(Yellow) && got != string(Red) {
		t.Errorf("light column = %q, want a traffic light", got)
	}
}
