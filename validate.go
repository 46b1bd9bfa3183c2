package keeporsell

import (
	"errors"
	"fmt"
)

// ErrInvalidInput tags every input validation failure so callers can test
// with errors.Is regardless of which field the message names.
var ErrInvalidInput = errors.New("invalid input")

func notNegative(name string, m Money) error {
	if m.IsNegative() {
		return fmt.Errorf("%s cannot be negative, got %s: %w", name, m, ErrInvalidInput)
	}
	return nil
}

func notNegativePercent(name string, p Percent) error {
	if p < 0 {
		return fmt.Errorf("%s cannot be negative, got %s: %w", name, p, ErrInvalidInput)
	}
	return nil
}

func requirePositive(name string, m Money) error {
	if !m.IsPositive() {
		return fmt.Errorf("%s must be positive, got %s: %w", name, m, ErrInvalidInput)
	}
	return nil
}

// Validate rejects a baseline no household can have.
func (b FinancialBaseline) Validate() error {
	if err := notNegative("monthly income", b.MonthlyIncome); err != nil {
		return err
	}
	return notNegative("monthly expenses", b.MonthlyExpenses)
}

// Validate checks the purchase terms. The price must be strictly positive
// because the loan-to-value ratio is undefined without one.
func (h NewHome) Validate() error {
	if err := requirePositive("new home price", h.Price); err != nil {
		return err
	}
	if err := notNegativePercent("new home rate", h.Rate); err != nil {
		return err
	}
	fields := []struct {
		name string
		m    Money
	}{
		{"annual property tax", h.AnnualTax},
		{"annual insurance", h.AnnualInsurance},
		{"new home operating cost", h.Operating},
		{"new home utilities", h.Utilities},
	}
	for _, f := range fields {
		if err := notNegative(f.name, f.m); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the current home's liens and running costs.
func (h CurrentHome) Validate() error {
	if err := h.Liens.Validate(); err != nil {
		return err
	}
	if err := notNegative("current home operating cost", h.Operating); err != nil {
		return err
	}
	return notNegative("current home utilities", h.Utilities)
}

// Validate checks everything the rental evaluation consumes.
func (in RentalInputs) Validate() error {
	if err := in.NewHome.Validate(); err != nil {
		return err
	}
	if err := in.CurrentHome.Validate(); err != nil {
		return err
	}
	fields := []struct {
		name string
		m    Money
	}{
		{"rental income", in.RentalIncome},
		{"liquid cash", in.LiquidCash},
		{"bonus cash", in.BonusCash},
	}
	for _, f := range fields {
		if err := notNegative(f.name, f.m); err != nil {
			return err
		}
	}
	return notNegativePercent("payoff threshold", in.Payoff.Threshold)
}

// Validate checks everything the sell evaluation consumes. A sale price below
// the lien total is allowed, that is just an underwater sale; only negative
// figures are rejected.
func (in SellInputs) Validate() error {
	if err := in.NewHome.Validate(); err != nil {
		return err
	}
	if err := in.CurrentHome.Validate(); err != nil {
		return err
	}
	if err := notNegativePercent("selling cost", in.SellingCost); err != nil {
		return err
	}
	fields := []struct {
		name string
		m    Money
	}{
		{"sale price", in.SalePrice},
		{"liquid cash", in.LiquidCash},
		{"bonus cash", in.BonusCash},
		{"liquid savings", in.LiquidSavings},
	}
	for _, f := range fields {
		if err := notNegative(f.name, f.m); err != nil {
			return err
		}
	}
	if in.CurrentMortgagePayment != nil {
		return notNegative("current mortgage payment", *in.CurrentMortgagePayment)
	}
	return nil
}
