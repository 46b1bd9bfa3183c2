package keeporsell

import "fmt"

// Request bundles everything one comparison run consumes.
type Request struct {
	Baseline FinancialBaseline
	Rental   RentalInputs
	Sell     SellInputs
	// Stresses are extra fixed risk scenarios, typically from configuration,
	// applied on top of the built-in catalogues.
	Stresses []FixedStress
}

// Validate checks the whole request before any evaluation runs.
func (req Request) Validate() error {
	if err := req.Baseline.Validate(); err != nil {
		return err
	}
	if err := req.Rental.Validate(); err != nil {
		return fmt.Errorf("rental: %w", err)
	}
	if err := req.Sell.Validate(); err != nil {
		return fmt.Errorf("sell: %w", err)
	}
	return nil
}

// Analysis is the complete result of one comparison run.
type Analysis struct {
	Baseline       FinancialBaseline
	Rental         RentalResult
	Sell           SellResult
	RentalRisk     RiskAssessment
	SellRisk       RiskAssessment
	Recommendation Recommendation
	Outlook        Outlook
}

// Run validates the request, evaluates both strategies, stresses each, and
// assembles the verdict. It never returns a partial result: either the inputs
// are sound and every section is filled, or the error names the field that is
// not.
func Run(req Request) (*Analysis, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	a := &Analysis{Baseline: req.Baseline}
	a.Rental = EvaluateRental(req.Baseline, req.Rental)
	a.Sell = EvaluateSell(req.Baseline, req.Sell)
	a.RentalRisk = AssessRental(req.Baseline, req.Rental, a.Rental, req.Stresses...)
	a.SellRisk = AssessSell(req.Baseline, req.Sell, a.Sell, req.Stresses...)
	a.Recommendation = Recommend(a.Rental, a.Sell, a.RentalRisk, a.SellRisk)
	a.Outlook = Project(a.Rental.NewAnnualSurplus, a.Sell.NewAnnualSurplus)
	return a, nil
}

// MarshalJSON writes the sections in reading order.
func (a *Analysis) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("baseline", a.Baseline)
	w.Append("rental", a.Rental)
	w.Append("sell", a.Sell)
	w.Append("rentalRisk", a.RentalRisk)
	w.Append("sellRisk", a.SellRisk)
	w.Append("recommendation", a.Recommendation)
	w.Append("projection", a.Outlook)
	return w.MarshalJSON()
}
