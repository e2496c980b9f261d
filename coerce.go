package printsales

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file holds the single place where loosely-typed user input is turned
// into numbers. Every mutation boundary goes through these helpers so the
// coercion rule is uniform: empty or unparseable input becomes zero, and
// negative amounts are clamped to zero.

// parseNonNegativeDecimal parses raw as a decimal number. Empty or
// unparseable input yields zero, and negative values are floored at zero.
func parseNonNegativeDecimal(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseAmount coerces a raw monetary field into Money in the given currency.
func ParseAmount(raw, currency string) Money {
	return Money{value: parseNonNegativeDecimal(raw), cur: currency}
}

// parseSignedAmount is the lenient parse for derived fields that may
// legitimately be negative, like an imported profit.
func parseSignedAmount(raw, currency string) Money {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		d = decimal.Zero
	}
	return Money{value: d, cur: currency}
}

// ParseHours coerces a raw printing-time field into a Quantity of hours.
func ParseHours(raw string) Quantity {
	return Quantity{value: parseNonNegativeDecimal(raw)}
}

// ParsePercent coerces a raw tax-rate field into a Percent.
func ParsePercent(raw string) Percent {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return Percent(f)
}

// trimFloat formats a float with no trailing zeros ("20", "17.5").
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
