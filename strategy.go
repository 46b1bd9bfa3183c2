package keeporsell

// Strategy names one of the two mutually exclusive paths.
type Strategy string

const (
	Rental Strategy = "rental"
	Sell   Strategy = "sell"
)

// NewHome describes the property being purchased and its carrying costs.
type NewHome struct {
	Price           Money
	Rate            Percent // annual mortgage rate
	AnnualTax       Money
	AnnualInsurance Money
	Operating       Money // monthly
	Utilities       Money // monthly
	TermMonths      int   // 0 means DefaultTermMonths
}

// CurrentHome carries what the household pays today on the home it owns.
type CurrentHome struct {
	Liens     Liens
	Operating Money // monthly
	Utilities Money // monthly
}

// RentalInputs parameterize the keep-and-rent evaluation.
type RentalInputs struct {
	NewHome      NewHome
	CurrentHome  CurrentHome
	RentalIncome Money // expected monthly rent
	LiquidCash   Money
	BonusCash    Money
	Payoff       PayoffPolicy
}

// SellInputs parameterize the sell evaluation.
type SellInputs struct {
	NewHome     NewHome
	CurrentHome CurrentHome
	SalePrice   Money
	SellingCost Percent // agent fees, closing, staging, as a cut of the sale
	LiquidCash  Money
	BonusCash   Money
	// LiquidSavings only joins the pool when the household sells; renting
	// keeps it as the safety reserve a landlord needs.
	LiquidSavings Money
	// CurrentMortgagePayment overrides the summed lien payments when set: the
	// monthly debt service a sale frees from the baseline expenses. An
	// explicit zero is meaningful: it says the baseline never carried the
	// payments, so the sale has nothing to free there.
	CurrentMortgagePayment *Money
}

// currentDebtService resolves the monthly payment the sale eliminates.
func (in SellInputs) currentDebtService() Money {
	if in.CurrentMortgagePayment != nil {
		return *in.CurrentMortgagePayment
	}
	return in.CurrentHome.Liens.TotalPayment()
}

// carryingCost is the full monthly cost of holding the current home: debt
// service plus operating plus utilities. Selling eliminates it; a slow sale
// keeps paying it.
func (in SellInputs) carryingCost() Money {
	return in.currentDebtService().Add(in.CurrentHome.Operating).Add(in.CurrentHome.Utilities)
}

// StrategyResult holds the figures shared by both evaluations.
type StrategyResult struct {
	Strategy       Strategy `json:"strategy"`
	DownPayment    Money    `json:"downPayment"`
	MortgageAmount Money    `json:"mortgageAmount"`
	LoanToValue    Percent  `json:"loanToValue"`
	MonthlyPayment Money    `json:"monthlyPayment"`
	MonthlyPITI    Money    `json:"monthlyPITI"`
	// NetMonthlyImpact is the change the strategy makes to the household's
	// monthly spending; positive means spending more than today.
	NetMonthlyImpact  Money `json:"netMonthlyImpact"`
	NewMonthlySurplus Money `json:"newMonthlySurplus"`
	NewAnnualSurplus  Money `json:"newAnnualSurplus"`
}

// RentalResult is the keep-and-rent evaluation.
type RentalResult struct {
	StrategyResult
	Payoff               PayoffPlan `json:"payoff"`
	RemainingDebtPayment Money      `json:"remainingDebtPayment"`
}

// SellResult is the sell evaluation.
type SellResult struct {
	StrategyResult
	SellingCosts Money `json:"sellingCosts"`
	NetProceeds  Money `json:"netProceeds"`
}

// EvaluateRental prices the keep-and-rent path. High-rate liens are retired
// first per the payoff policy; what is left of the liquid cash, plus the
// bonus, becomes the down payment. The current home's remaining debt service
// and carrying costs stay on the books and the expected rent offsets them.
//
// Inputs must have passed Validate.
func EvaluateRental(b FinancialBaseline, in RentalInputs) RentalResult {
	plan := ResolvePayoffs(in.CurrentHome.Liens, in.LiquidCash, in.Payoff)
	down := plan.CashRemaining.Add(in.BonusCash)
	res := RentalResult{
		StrategyResult:       financeNewHome(in.NewHome, down),
		Payoff:               plan,
		RemainingDebtPayment: plan.Remaining.TotalPayment(),
	}

	impact := res.MonthlyPITI.
		Add(in.NewHome.Operating).
		Add(in.NewHome.Utilities).
		Add(res.RemainingDebtPayment).
		Add(in.CurrentHome.Operating).
		Add(in.CurrentHome.Utilities).
		Sub(in.RentalIncome)
	res.StrategyResult.close(Rental, b, impact)
	return res
}

// EvaluateSell prices the sell path. All liens are paid off from the sale,
// selling costs come off the top, and the net proceeds join every cash
// source in the down payment. The current home's carrying cost disappears
// and is credited against the new home's cost.
//
// Negative net proceeds (an underwater sale) flow through and shrink the
// pool. Inputs must have passed Validate.
func EvaluateSell(b FinancialBaseline, in SellInputs) SellResult {
	costs := in.SellingCost.Of(in.SalePrice)
	proceeds := in.SalePrice.Sub(in.CurrentHome.Liens.TotalBalance()).Sub(costs)
	down := in.LiquidCash.Add(in.BonusCash).Add(in.LiquidSavings).Add(proceeds)
	res := SellResult{
		StrategyResult: financeNewHome(in.NewHome, down),
		SellingCosts:   costs,
		NetProceeds:    proceeds,
	}

	impact := res.MonthlyPITI.
		Add(in.NewHome.Operating).
		Add(in.NewHome.Utilities).
		Sub(in.carryingCost())
	res.StrategyResult.close(Sell, b, impact)
	return res
}

// financeNewHome derives the purchase figures common to both strategies. A
// down payment covering the full price clamps the mortgage at zero.
func financeNewHome(h NewHome, down Money) StrategyResult {
	mortgage := h.Price.Sub(down)
	if mortgage.IsNegative() {
		mortgage = Money{}
	}
	payment := MonthlyPayment(mortgage, h.Rate, h.TermMonths)
	piti := payment.Add(h.AnnualTax.Div(12)).Add(h.AnnualInsurance.Div(12))

	var ltv Percent
	if h.Price.IsPositive() {
		ltv = Percent(mortgage.value.Div(h.Price.value).Mul(oneHundred).InexactFloat64())
	}
	return StrategyResult{
		DownPayment:    down,
		MortgageAmount: mortgage,
		LoanToValue:    ltv,
		MonthlyPayment: payment,
		MonthlyPITI:    piti,
	}
}

// close fills the figures derived from the net monthly impact.
func (r *StrategyResult) close(s Strategy, b FinancialBaseline, impact Money) {
	r.Strategy = s
	r.NetMonthlyImpact = impact
	r.NewMonthlySurplus = b.MonthlySurplus().Sub(impact)
	r.NewAnnualSurplus = r.NewMonthlySurplus.Mul(12)
}
