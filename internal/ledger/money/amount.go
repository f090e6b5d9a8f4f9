// Package money implements a non-negative, fixed-precision decimal with
// checked arithmetic, the Amount type used throughout the ledger.
package money

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// DecimalPlaces is the number of fractional digits every Amount carries.
const DecimalPlaces = 4

// Amount is a non-negative decimal scaled to DecimalPlaces fractional
// digits. The zero value is a valid zero amount.
type Amount struct {
	d decimal.Decimal
}

// Zero is the additive identity.
var Zero = Amount{d: decimal.Zero}

// Max is the largest representable Amount: a 96-bit mantissa scaled by
// 10^-4, i.e. (2^96-1) * 10^-4 ~= 7.92e24.
var Max = Amount{d: maxMantissaDecimal().Shift(-DecimalPlaces)}

func maxMantissaDecimal() decimal.Decimal {
	// 2^96 - 1, the largest value a 96-bit unsigned mantissa can hold.
	maxMantissa, err := decimal.NewFromString("79228162514264337593543950335")
	if err != nil {
		panic(fmt.Sprintf("money: invalid max mantissa literal: %v", err))
	}
	return maxMantissa
}

// FromInt builds an exact integer Amount. It fails if the value exceeds Max.
func FromInt(v uint64) (Amount, error) {
	d, err := decimal.NewFromString(strconv.FormatUint(v, 10))
	if err != nil {
		return Amount{}, ErrAmountOutOfBounds
	}
	if d.GreaterThan(Max.d) {
		return Amount{}, ErrAmountOutOfBounds
	}
	return Amount{d: d}, nil
}

// MustFromInt is FromInt but panics on error; only safe for compile-time
// constants such as test fixtures.
func MustFromInt(v uint64) Amount {
	a, err := FromInt(v)
	if err != nil {
		panic(err)
	}
	return a
}

// FromDecimalString parses a decimal string, rounds to DecimalPlaces
// fractional digits using banker's rounding (half-to-even), and rejects
// the result if it is negative or exceeds Max.
func FromDecimalString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrAmountOutOfBounds
	}
	return fromDecimal(d)
}

func fromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, ErrAmountOutOfBounds
	}
	rounded := d.RoundBank(DecimalPlaces)
	if rounded.GreaterThan(Max.d) {
		return Amount{}, ErrAmountOutOfBounds
	}
	return Amount{d: rounded}, nil
}

// CheckedAdd returns a+b, or (Amount{}, false) if the result would exceed
// Max. Operands are assumed already rounded to DecimalPlaces, so the sum
// never needs re-rounding.
func (a Amount) CheckedAdd(b Amount) (Amount, bool) {
	sum := a.d.Add(b.d)
	if sum.GreaterThan(Max.d) {
		return Amount{}, false
	}
	return Amount{d: sum}, true
}

// CheckedSub returns a-b, or (Amount{}, false) if the result would be
// negative.
func (a Amount) CheckedSub(b Amount) (Amount, bool) {
	diff := a.d.Sub(b.d)
	if diff.IsNegative() {
		return Amount{}, false
	}
	return Amount{d: diff}, true
}

// Cmp reports -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a Amount) Cmp(b Amount) int { return a.d.Cmp(b.d) }

// Equal reports whether a and b represent the same value.
func (a Amount) Equal(b Amount) bool { return a.d.Equal(b.d) }

// GreaterThanZero reports whether a is strictly positive.
func (a Amount) GreaterThanZero() bool { return a.d.GreaterThan(decimal.Zero) }

// String renders the amount with exactly DecimalPlaces fractional digits.
func (a Amount) String() string { return a.d.StringFixed(DecimalPlaces) }
