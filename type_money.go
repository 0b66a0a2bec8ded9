package payrec

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// unitScale is the number of scaled units per major unit (4 decimal digits).
const unitScale = 10_000

// MoneyAmount is a signed fixed-point monetary value with 4 decimal digits,
// stored as a scaled int64.
//
// int64 supports values up to 900 trillion major units, well above the
// estimated global wealth. All arithmetic on MoneyAmount is checked: an
// operation that would leave the representable range reports failure
// instead of wrapping.
type MoneyAmount struct {
	units int64
}

// M creates a MoneyAmount from a major-unit value, rounding to the nearest
// 1/10000 unit. It is a convenience for literals; parsed input should go
// through MoneyFromDecimal instead.
func M[T float32 | float64 | int | int32 | int64](value T) MoneyAmount {
	m, _ := MoneyFromDecimal(newDecimal(value))
	return m
}

// newDecimal is a convenient factory for decimal.Decimal.
func newDecimal[T float32 | float64 | int | int32 | int64](value T) decimal.Decimal {
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
	default:
		panic("unsupported type")
	}
}

// MoneyFromDecimal converts a major-unit decimal value into a MoneyAmount,
// rounding half away from zero to the nearest 1/10000 unit. ok is false when
// the rounded value does not fit the representable range.
func MoneyFromDecimal(d decimal.Decimal) (m MoneyAmount, ok bool) {
	scaled := d.Shift(4).Round(0).BigInt()
	if !scaled.IsInt64() {
		return MoneyAmount{}, false
	}
	return MoneyAmount{units: scaled.Int64()}, true
}

// TryChange adds (delta >= 0) or subtracts (delta < 0) the given amount.
// ok is false when the result would overflow or underflow int64; the
// receiver is unchanged in that case.
func (m MoneyAmount) TryChange(delta MoneyAmount) (MoneyAmount, bool) {
	sum := m.units + delta.units
	if (delta.units > 0 && sum < m.units) || (delta.units < 0 && sum > m.units) {
		return MoneyAmount{}, false
	}
	return MoneyAmount{units: sum}, true
}

// Neg returns the additive inverse.
func (m MoneyAmount) Neg() MoneyAmount { return MoneyAmount{units: -m.units} }

// Comparisons are exact on the scaled integer, no epsilon tolerance.

func (m MoneyAmount) Equal(n MoneyAmount) bool    { return m.units == n.units }
func (m MoneyAmount) LessThan(n MoneyAmount) bool { return m.units < n.units }
func (m MoneyAmount) IsZero() bool                { return m.units == 0 }
func (m MoneyAmount) IsNegative() bool            { return m.units < 0 }
func (m MoneyAmount) IsPositive() bool            { return m.units > 0 }

// Decimal returns the major-unit value as an exact decimal.
func (m MoneyAmount) Decimal() decimal.Decimal { return decimal.New(m.units, -4) }

// String renders the value as integer_part.fractional_part with exactly 4
// fractional digits, the fractional part as its absolute value, and a sign
// prefix only when negative.
func (m MoneyAmount) String() string {
	sign := ""
	if m.units < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%04d", sign, abs64(m.units/unitScale), abs64(m.units%unitScale))
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// MarshalJSON implements the json.Marshaler interface for MoneyAmount. The
// String rendering is already a valid JSON number, and emitting it directly
// keeps the exact 4-fractional-digit form in every output format.
func (m MoneyAmount) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}
