package utils

import "github.com/shopspring/decimal"

// ToCents converts a decimal currency amount to integer cents, rounding
// half away from zero. Conversion goes through a decimal value so a valid
// two-decimal input like 4.35 never loses a cent to float truncation.
func ToCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
}
