package keeporsell

import (
	"encoding/json"
	"fmt"
)

// Lien is a debt secured against the current home: the first mortgage, a
// HELOC, a second mortgage, and so on.
type Lien struct {
	Balance Money
	Rate    Percent // annual rate as a percentage figure, e.g. 2.875
	Kind    string  // free label: "mortgage", "heloc", ...
	// Payment is the actual monthly payment when the household knows it.
	// Zero derives a 30-year amortized payment from Balance and Rate, which
	// underestimates loans originated on a higher balance.
	Payment Money
}

// MonthlyPayment resolves the lien's monthly payment.
func (l Lien) MonthlyPayment() Money {
	if l.Payment.IsPositive() {
		return l.Payment
	}
	return MonthlyPayment(l.Balance, l.Rate, DefaultTermMonths)
}

// Validate rejects values no lien can have.
func (l Lien) Validate() error {
	if l.Balance.IsNegative() {
		return fmt.Errorf("lien %q balance cannot be negative, got %s: %w", l.label(), l.Balance, ErrInvalidInput)
	}
	if l.Rate < 0 {
		return fmt.Errorf("lien %q rate cannot be negative, got %s: %w", l.label(), l.Rate, ErrInvalidInput)
	}
	if l.Payment.IsNegative() {
		return fmt.Errorf("lien %q monthly payment cannot be negative, got %s: %w", l.label(), l.Payment, ErrInvalidInput)
	}
	return nil
}

func (l Lien) label() string {
	if l.Kind == "" {
		return "unnamed"
	}
	return l.Kind
}

// MarshalJSON writes the lien in the interchange form used by lien files.
func (l Lien) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("balance", l.Balance)
	w.Append("rate", l.Rate)
	w.Optional("type", l.Kind)
	w.Optional("monthly_payment", l.Payment)
	return w.MarshalJSON()
}

// Liens is the list of debts against the current home.
type Liens []Lien

// TotalBalance sums the outstanding balances.
func (ls Liens) TotalBalance() Money {
	var total Money
	for _, l := range ls {
		total = total.Add(l.Balance)
	}
	return total
}

// TotalPayment sums the resolved monthly payments.
func (ls Liens) TotalPayment() Money {
	var total Money
	for _, l := range ls {
		total = total.Add(l.MonthlyPayment())
	}
	return total
}

// Validate checks each lien in order.
func (ls Liens) Validate() error {
	for i, l := range ls {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("lien %d: %w", i+1, err)
		}
	}
	return nil
}

// jLien is the decoding shape for one lien. Pointers tell a missing key from
// an explicit zero, so malformed entries are rejected instead of silently
// defaulting.
type jLien struct {
	Balance *float64 `json:"balance"`
	Rate    *float64 `json:"rate"`
	Kind    string   `json:"type"`
	Payment *float64 `json:"monthly_payment"`
}

// ParseLiens decodes a JSON array of liens, e.g.
//
//	[{"balance": 330000, "rate": 2.875, "type": "mortgage", "monthly_payment": 2490}]
//
// Every entry must carry balance and rate; type and monthly_payment are
// optional.
func ParseLiens(data []byte) (Liens, error) {
	var raw []jLien
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("cannot parse lien list: %v: %w", err, ErrInvalidInput)
	}
	liens := make(Liens, 0, len(raw))
	for i, j := range raw {
		if j.Balance == nil {
			return nil, fmt.Errorf("lien %d is missing \"balance\": %w", i+1, ErrInvalidInput)
		}
		if j.Rate == nil {
			return nil, fmt.Errorf("lien %d is missing \"rate\": %w", i+1, ErrInvalidInput)
		}
		l := Lien{
			Balance: M(*j.Balance),
			Rate:    Percent(*j.Rate),
			Kind:    j.Kind,
		}
		if j.Payment != nil {
			l.Payment = M(*j.Payment)
		}
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("lien %d: %w", i+1, err)
		}
		liens = append(liens, l)
	}
	return liens, nil
}
