// Package coerce centralizes the engine's lenient boundary policy: negative
// quantities are clamped to zero and absent optional figures default to zero
// instead of failing.
package coerce

import "github.com/shopspring/decimal"

// NonNegative clamps a float to zero.
func NonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// NonNegativeDecimal clamps a decimal to zero.
func NonNegativeDecimal(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// DecimalValue dereferences an optional decimal, defaulting to zero.
func DecimalValue(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}
