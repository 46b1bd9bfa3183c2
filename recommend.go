package keeporsell

import "fmt"

// Recommendation is the engine's verdict on the two strategies.
type Recommendation struct {
	// Preferred is the strategy with the higher projected annual surplus.
	Preferred Strategy `json:"preferredStrategy"`
	// MarginAnnual is the absolute gap between the two annual surpluses.
	MarginAnnual Money `json:"marginAnnual"`
	// LowConfidence marks a dead tie, resolved in favor of the rental so
	// repeated runs always agree.
	LowConfidence bool `json:"lowConfidence,omitempty"`
	// Warning is set when the preferred strategy's worst case lands below
	// the other strategy's best estimate.
	Warning string `json:"warning,omitempty"`
}

// Recommend compares the two evaluations and picks the strategy with the
// higher annual surplus. The margin is always reported as a non-negative
// amount. A pick that does not survive its own worst case carries a warning
// naming both figures.
func Recommend(rental RentalResult, sell SellResult, rentalRisk, sellRisk RiskAssessment) Recommendation {
	r := Recommendation{
		Preferred:    Rental,
		MarginAnnual: rental.NewAnnualSurplus.Sub(sell.NewAnnualSurplus),
	}
	worst, rival := rentalRisk.WorstCase, sell.NewAnnualSurplus
	switch {
	case sell.NewAnnualSurplus.GreaterThan(rental.NewAnnualSurplus):
		r.Preferred = Sell
		r.MarginAnnual = sell.NewAnnualSurplus.Sub(rental.NewAnnualSurplus)
		worst, rival = sellRisk.WorstCase, rental.NewAnnualSurplus
	case sell.NewAnnualSurplus.Equal(rental.NewAnnualSurplus):
		r.LowConfidence = true
	}
	if worst.LessThan(rival) {
		other := Sell
		if r.Preferred == Sell {
			other = Rental
		}
		r.Warning = fmt.Sprintf("not robust to downside risk: the %s worst case (%s) falls below the %s best estimate (%s)",
			r.Preferred, worst, other, rival)
	}
	return r
}
