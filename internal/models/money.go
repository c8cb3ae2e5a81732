package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary amount to two decimal places. Every addition or
// subtraction on debt/payment amounts goes through this to keep repeated
// allocation steps from drifting.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// ClampNonNegative floors a monetary amount at zero.
func ClampNonNegative(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// ParseAmount parses a user-supplied amount string into a decimal value.
func ParseAmount(s string) (decimal.Decimal, error) {
	dec, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", s, err)
	}
	return dec, nil
}

// FormatAmount renders a monetary amount with exactly two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
