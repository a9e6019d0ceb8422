// Package money converts between minor-unit amounts and their decimal text form.
// All prices in the engine are int64 minor units (cents); decimals only appear
// at the edges, where amounts are typed in or shown to people.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol prefixes amounts shown to shoppers.
const Symbol = "₱"

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrTooPrecise     = errors.New("amount has more than two decimal places")
)

var hundred = decimal.NewFromInt(100)

// Parse turns "12.50" into 1250.
func Parse(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromDecimal(d)
}

// FromDecimal converts a decimal major-unit amount into minor units.
func FromDecimal(d decimal.Decimal) (int64, error) {
	if d.IsNegative() {
		return 0, ErrNegativeAmount
	}
	cents := d.Mul(hundred)
	if !cents.IsInteger() {
		return 0, ErrTooPrecise
	}
	return cents.IntPart(), nil
}

// ToDecimal converts minor units to a decimal major-unit amount.
func ToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Format renders 1250 as "12.50".
func Format(cents int64) string {
	return ToDecimal(cents).StringFixed(2)
}

// Display renders 1250 as "₱12.50".
func Display(cents int64) string {
	return Symbol + Format(cents)
}
