package keeporsell

// FinancialBaseline is the household's cash flow before either strategy is
// applied. Expenses include everything the household pays today, current
// home costs included; the evaluators are careful not to double count them.
type FinancialBaseline struct {
	MonthlyIncome   Money `json:"monthlyIncome"`
	MonthlyExpenses Money `json:"monthlyExpenses"`
}

// MonthlySurplus is income minus expenses.
func (b FinancialBaseline) MonthlySurplus() Money {
	return b.MonthlyIncome.Sub(b.MonthlyExpenses)
}

// AnnualSurplus is the monthly surplus over a year.
func (b FinancialBaseline) AnnualSurplus() Money {
	return b.MonthlySurplus().Mul(12)
}
