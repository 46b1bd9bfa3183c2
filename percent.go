package keeporsell

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage figure: 3.5 means 3.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Of returns p percent of the given amount.
func (p Percent) Of(m Money) Money {
	return Money{value: m.value.Mul(p.decimal()).Div(oneHundred)}
}

func (p Percent) decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(p))
}

var oneHundred = decimal.NewFromInt(100)
