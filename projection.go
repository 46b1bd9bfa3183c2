package keeporsell

// Projection extends one strategy's annual surplus linearly to the five and
// ten year horizons.
type Projection struct {
	Strategy Strategy `json:"strategy"`
	FiveYear Money    `json:"fiveYearSurplus"`
	TenYear  Money    `json:"tenYearSurplus"`
}

// Outlook pairs the two projections with their cross-strategy differences.
// Differences are rental minus sell, so a positive figure favors keeping the
// home.
type Outlook struct {
	Rental       Projection `json:"rental"`
	Sell         Projection `json:"sell"`
	FiveYearDiff Money      `json:"fiveYearDifference"`
	TenYearDiff  Money      `json:"tenYearDifference"`
}

// Project builds the linear outlook for both strategies from their annual
// surpluses. No compounding or inflation adjustment is applied; the point is
// a readable order of magnitude, not a forecast.
func Project(rental, sell Money) Outlook {
	o := Outlook{
		Rental: Projection{Strategy: Rental, FiveYear: rental.Mul(5), TenYear: rental.Mul(10)},
		Sell:   Projection{Strategy: Sell, FiveYear: sell.Mul(5), TenYear: sell.Mul(10)},
	}
	o.FiveYearDiff = o.Rental.FiveYear.Sub(o.Sell.FiveYear)
	o.TenYearDiff = o.Rental.TenYear.Sub(o.Sell.TenYear)
	return o
}
