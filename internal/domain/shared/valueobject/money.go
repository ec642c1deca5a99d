// Package valueobject holds small immutable value types shared by the
// real-estate domains.
package valueobject

import (
	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the number of fraction digits kept for SAR amounts
const CurrencyPlaces int32 = 2

// CurrencySAR is the only currency the platform bills in
const CurrencySAR = "SAR"

var (
	hundred = decimal.NewFromInt(100)

	// MaxAmount is the largest value a numeric(12,2) money column holds
	MaxAmount = decimal.RequireFromString("9999999999.99")
	// MaxRate is the largest value a numeric(5,2) rate column holds
	MaxRate = decimal.RequireFromString("999.99")
)

// RoundCurrency rounds half away from zero to CurrencyPlaces
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// PercentOf returns rate percent of amount, rounded to currency precision
func PercentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return RoundCurrency(amount.Mul(rate).Div(hundred))
}

// IsNonNegative reports d >= 0
func IsNonNegative(d decimal.Decimal) bool {
	return !d.IsNegative()
}

// IsAmount reports 0 <= d <= MaxAmount once rounded to currency precision
func IsAmount(d decimal.Decimal) bool {
	d = RoundCurrency(d)
	return !d.IsNegative() && d.LessThanOrEqual(MaxAmount)
}

// IsRate reports 0 <= d <= MaxRate once rounded to two places
func IsRate(d decimal.Decimal) bool {
	d = d.Round(2)
	return !d.IsNegative() && d.LessThanOrEqual(MaxRate)
}

// FixedString renders d with exactly CurrencyPlaces fraction digits
func FixedString(d decimal.Decimal) string {
	return d.StringFixed(CurrencyPlaces)
}

// Fixed2 is a decimal that encodes as a JSON string with exactly two
// fraction digits, the way the money columns hold it.
type Fixed2 struct {
	decimal.Decimal
}

// NewFixed2 wraps d
func NewFixed2(d decimal.Decimal) Fixed2 {
	return Fixed2{Decimal: d}
}

// MarshalJSON implements json.Marshaler
func (f Fixed2) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.StringFixed(CurrencyPlaces) + `"`), nil
}
