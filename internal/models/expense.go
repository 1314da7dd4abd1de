package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the row shape of the expenses table.
// The SQLite adapter stores Amount as integer cents and converts on the way in and out.
type Expense struct {
	ExpenseID   int64           `db:"id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	Date        time.Time       `db:"date"`
	AuditFields
}

// CategoryTotal is one row of a GROUP BY category aggregation.
type CategoryTotal struct {
	Category string          `db:"category"`
	Amount   decimal.Decimal `db:"amount"`
	Count    int64           `db:"count"`
}
