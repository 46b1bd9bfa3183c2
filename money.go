package keeporsell

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// usd is the only currency this engine deals in. The original household the
// tool was written for is US based; figures are dollars throughout.
const usd = money.USD

// Money represents an exact amount of US dollars. The zero value is $0.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromInt(int64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	case decimal.Decimal:
		return v
	}
	panic("unreachable")
}

// currency returns the full USD currency definition.
func (m Money) currency() money.Currency {
	// the Money constructor is the one place that never returns a nil currency.
	return *money.New(0, usd).Currency()
}

// String returns the display form of the amount, rounded to cents.
func (m Money) String() string {
	cur := m.currency()
	cents := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(cents.IntPart())
}

// SignedString is like String but with an explicit sign for positive
// amounts. Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money        { return Money{value: m.value.Neg()} }

// Mul scales the amount by a whole number, e.g. months or years.
func (m Money) Mul(n int) Money { return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))} }

// Div splits the amount into n equal parts, e.g. an annual figure per month.
func (m Money) Div(n int) Money { return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))} }

// Float64 returns the nearest float64; exactness ends where floats do.
func (m Money) Float64() float64 { return m.value.InexactFloat64() }

// MarshalJSON writes the amount as a plain JSON number rounded to cents.
// JSON is a presentation boundary; internal math stays unrounded.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.Round(2).String()), nil
}

// UnmarshalJSON accepts both quoted and bare numbers.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}
