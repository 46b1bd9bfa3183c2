package keeporsell

import "fmt"

// RiskScenario is one named stress applied to a strategy's base estimate.
type RiskScenario struct {
	Label string `json:"label"`
	// AnnualDelta is the hit (or, rarely, relief) the stress applies to the
	// strategy's new annual surplus.
	AnnualDelta Money `json:"annualDelta"`
	// AnnualSurplus is the surplus that remains once the stress lands.
	AnnualSurplus Money `json:"annualSurplus"`
}

// RiskAssessment is the full stress catalogue outcome for one strategy.
type RiskAssessment struct {
	Strategy  Strategy       `json:"strategy"`
	Scenarios []RiskScenario `json:"scenarios"`
	// WorstCase is the lowest annual surplus across the base estimate and
	// every scenario.
	WorstCase Money `json:"worstCase"`
}

// FixedStress is a caller-supplied scenario with a constant annual delta,
// appended after the built-in catalogue.
type FixedStress struct {
	Strategy    Strategy
	Label       string
	AnnualDelta Money
}

// Catalogue constants. Spread windows: a higher selling cost is felt over
// roughly a decade of ownership, a move over the five years before the
// next one.
const (
	repairSmall  = 5000
	repairMedium = 10000
	repairLarge  = 15000
	tenantDamage = 3000

	stressedSellingCost = Percent(10)
	sellCostSpreadYears = 10
	saleDelayMonths     = 6
	movingCost          = 8000
	movingSpreadYears   = 5
)

// rentalStresses is the declarative catalogue for the rental strategy. Every
// entry derives its annual delta from the inputs alone; adding a scenario is
// adding a row.
var rentalStresses = []struct {
	label string
	delta func(in RentalInputs) Money
}{
	{"1-month vacancy", func(in RentalInputs) Money { return in.RentalIncome.Neg() }},
	{"3-month vacancy", func(in RentalInputs) Money { return in.RentalIncome.Mul(3).Neg() }},
	{"6-month vacancy", func(in RentalInputs) Money { return in.RentalIncome.Mul(6).Neg() }},
	{"10% rent reduction", func(in RentalInputs) Money { return Percent(10).Of(in.RentalIncome.Mul(12)).Neg() }},
	{"20% rent reduction", func(in RentalInputs) Money { return Percent(20).Of(in.RentalIncome.Mul(12)).Neg() }},
	{"Major repair ($5,000)", func(RentalInputs) Money { return M(repairSmall).Neg() }},
	{"Major repair ($10,000)", func(RentalInputs) Money { return M(repairMedium).Neg() }},
	{"Major repair ($15,000)", func(RentalInputs) Money { return M(repairLarge).Neg() }},
	{"Property management (8%)", func(in RentalInputs) Money { return Percent(8).Of(in.RentalIncome.Mul(12)).Neg() }},
	{"Property management (12%)", func(in RentalInputs) Money { return Percent(12).Of(in.RentalIncome.Mul(12)).Neg() }},
	{"Tenant damage ($3,000)", func(RentalInputs) Money { return M(tenantDamage).Neg() }},
}

// sellStresses is the declarative catalogue for the sell strategy. Price
// drops re-run the evaluation and report the change; the rest are direct
// deltas.
var sellStresses = []struct {
	label string
	delta func(b FinancialBaseline, in SellInputs, base SellResult) Money
}{
	{"Sale price $25,000 lower", lowerSalePrice(25000)},
	{"Sale price $50,000 lower", lowerSalePrice(50000)},
	{"Sale price $100,000 lower", lowerSalePrice(100000)},
	{fmt.Sprintf("Selling costs at %s", stressedSellingCost), func(_ FinancialBaseline, in SellInputs, _ SellResult) Money {
		extra := Percent(float64(stressedSellingCost) - float64(in.SellingCost)).Of(in.SalePrice)
		return extra.Div(sellCostSpreadYears).Neg()
	}},
	{fmt.Sprintf("Market delay (%d months)", saleDelayMonths), func(_ FinancialBaseline, in SellInputs, _ SellResult) Money {
		return in.carryingCost().Mul(saleDelayMonths).Neg()
	}},
	{"Moving costs ($8,000)", func(FinancialBaseline, SellInputs, SellResult) Money {
		return M(movingCost).Div(movingSpreadYears).Neg()
	}},
}

// lowerSalePrice builds a stress that re-evaluates the sale with the price
// reduced by drop and reports the annualized change in net monthly impact.
func lowerSalePrice(drop int64) func(FinancialBaseline, SellInputs, SellResult) Money {
	return func(b FinancialBaseline, in SellInputs, base SellResult) Money {
		in.SalePrice = in.SalePrice.Sub(M(drop))
		perturbed := EvaluateSell(b, in)
		return base.NetMonthlyImpact.Sub(perturbed.NetMonthlyImpact).Mul(12)
	}
}

// AssessRental runs the rental stress catalogue, plus any extra fixed
// stresses, against the base evaluation.
func AssessRental(b FinancialBaseline, in RentalInputs, base RentalResult, extras ...FixedStress) RiskAssessment {
	scenarios := make([]RiskScenario, 0, len(rentalStresses)+len(extras))
	for _, s := range rentalStresses {
		scenarios = append(scenarios, scenario(s.label, s.delta(in), base.NewAnnualSurplus))
	}
	return assemble(Rental, base.NewAnnualSurplus, scenarios, extras)
}

// AssessSell runs the sell stress catalogue, plus any extra fixed stresses,
// against the base evaluation.
func AssessSell(b FinancialBaseline, in SellInputs, base SellResult, extras ...FixedStress) RiskAssessment {
	scenarios := make([]RiskScenario, 0, len(sellStresses)+len(extras))
	for _, s := range sellStresses {
		scenarios = append(scenarios, scenario(s.label, s.delta(b, in, base), base.NewAnnualSurplus))
	}
	return assemble(Sell, base.NewAnnualSurplus, scenarios, extras)
}

func scenario(label string, delta, base Money) RiskScenario {
	return RiskScenario{Label: label, AnnualDelta: delta, AnnualSurplus: base.Add(delta)}
}

func assemble(s Strategy, base Money, scenarios []RiskScenario, extras []FixedStress) RiskAssessment {
	for _, e := range extras {
		if e.Strategy != s {
			continue
		}
		scenarios = append(scenarios, scenario(e.Label, e.AnnualDelta, base))
	}
	worst := base
	for _, sc := range scenarios {
		if sc.AnnualSurplus.LessThan(worst) {
			worst = sc.AnnualSurplus
		}
	}
	return RiskAssessment{Strategy: s, Scenarios: scenarios, WorstCase: worst}
}
