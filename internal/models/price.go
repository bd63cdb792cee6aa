package models

import (
	"math"

	"github.com/shopspring/decimal"
)

const displayPrecision int32 = 2 // amounts render with cents

// AmountExceeds reports whether amount is strictly greater than price.
func AmountExceeds(amount, price float64) bool {
	return decimal.NewFromFloat(amount).GreaterThan(decimal.NewFromFloat(price))
}

// AmountMeets reports whether amount is at least floor.
func AmountMeets(amount, floor float64) bool {
	return decimal.NewFromFloat(amount).GreaterThanOrEqual(decimal.NewFromFloat(floor))
}

// FormatAmount renders an amount with two decimal places.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(displayPrecision)
}

// isFinite guards decimal conversion, which panics on NaN and infinities.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
