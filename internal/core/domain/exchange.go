package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ConvertedAmountScale is the number of fractional digits kept in a converted amount.
const ConvertedAmountScale = 2

// Input bounds. MaxAmountIntegerDigits + MaxRateIntegerDigits stays within the 18
// integer digits of the converted_amount NUMERIC(20,2) column.
const (
	MaxAmountIntegerDigits = 10
	MaxAmountScale         = 8
	MaxRateIntegerDigits   = 8
	MaxRateScale           = 12
)

// ConvertAmount multiplies amount by rate and rounds half-up to ConvertedAmountScale digits.
// decimal.Round rounds half away from zero, which is half-up for the positive operands
// accepted here.
func ConvertAmount(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(ConvertedAmountScale)
}

// CheckAmount returns an empty string for a usable source amount, otherwise the reason
// it is rejected.
func CheckAmount(amount decimal.Decimal) string {
	return checkBounds(amount, MaxAmountIntegerDigits, MaxAmountScale)
}

// CheckRate returns an empty string for a usable exchange rate, otherwise the reason it
// is rejected.
func CheckRate(rate decimal.Decimal) string {
	return checkBounds(rate, MaxRateIntegerDigits, MaxRateScale)
}

// checkBounds only inspects the exponent and coefficient size, so a value such as
// 1e10000000 is rejected without being expanded.
func checkBounds(d decimal.Decimal, maxIntegerDigits, maxScale int32) string {
	if !d.IsPositive() {
		return "must be greater than 0"
	}

	exp := d.Exponent()
	if exp < -maxScale {
		return fmt.Sprintf("must have at most %d decimal places", maxScale)
	}

	tooLarge := fmt.Sprintf("must be less than 1e%d", maxIntegerDigits)
	if exp >= maxIntegerDigits {
		return tooLarge
	}
	// More than 128 bits means more than 38 digits, which never fits once the scale
	// check has passed.
	if d.Coefficient().BitLen() > 128 {
		return tooLarge
	}
	if int32(d.NumDigits())+exp > maxIntegerDigits {
		return tooLarge
	}
	return ""
}
