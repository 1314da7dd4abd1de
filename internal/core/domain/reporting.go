package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one row of the per-category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int64           `json:"count"`
}

// ExpenseSummary aggregates the expenses that fall inside an optional date range.
type ExpenseSummary struct {
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ExpenseCount int64           `json:"expense_count"`
	StartDate    *time.Time      `json:"start_date"`
	EndDate      *time.Time      `json:"end_date"`
	Categories   []CategoryTotal `json:"categories"`
}
