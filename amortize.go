package keeporsell

import "github.com/shopspring/decimal"

// DefaultTermMonths is the amortization horizon assumed when none is given:
// a standard 30-year mortgage.
const DefaultTermMonths = 360

// MonthlyPayment returns the fixed monthly payment that amortizes principal
// at the given annual rate over termMonths. A non-positive principal costs
// nothing; a non-positive term is normalized to DefaultTermMonths; a zero
// rate degenerates to straight-line repayment.
//
// The standard annuity formula is used otherwise, with r the monthly rate:
//
//	payment = principal * r * (1+r)^n / ((1+r)^n - 1)
//
// The result keeps full decimal precision; callers round at display time.
func MonthlyPayment(principal Money, annualRate Percent, termMonths int) Money {
	if !principal.IsPositive() {
		return Money{}
	}
	if termMonths <= 0 {
		termMonths = DefaultTermMonths
	}
	months := decimal.NewFromInt(int64(termMonths))
	if annualRate <= 0 {
		return Money{value: principal.value.Div(months)}
	}

	r := annualRate.decimal().Div(monthsPerYear.Mul(oneHundred))
	compound, _ := decimal.NewFromInt(1).Add(r).PowInt32(int32(termMonths))
	payment := principal.value.Mul(r).Mul(compound).Div(compound.Sub(decimal.NewFromInt(1)))
	return Money{value: payment}
}

var monthsPerYear = decimal.NewFromInt(12)
