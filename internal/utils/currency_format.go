package utils

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with exactly two fractional digits.
// Example: 10 returns "10.00", 25.555 returns "25.56".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(domain.AmountPlaces)
}

