package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedCategory is stored whenever an expense has no category.
const UncategorizedCategory = "Uncategorized"

const (
	// MaxDescriptionLength and MaxCategoryLength bound the text columns.
	MaxDescriptionLength = 255
	MaxCategoryLength    = 100
	// AmountPlaces is the number of fractional digits kept for stored amounts.
	AmountPlaces = 2
)

// Expense is a single spending record.
type Expense struct {
	ExpenseID   int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	AuditFields
}

// ExpenseFields are the validated and normalized values needed to create an expense.
type ExpenseFields struct {
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
}

// ExpensePatch carries the fields supplied by a partial update.
// A nil pointer means "leave unchanged".
type ExpensePatch struct {
	Amount      *decimal.Decimal
	Description *string
	Category    *string
	Date        *time.Time
}

// NewExpense builds an unsaved expense. The id is assigned by storage.
func NewExpense(fields ExpenseFields, now time.Time) Expense {
	return Expense{
		Amount:      fields.Amount,
		Description: fields.Description,
		Category:    fields.Category,
		Date:        NormalizeTime(fields.Date),
		AuditFields: NewAuditFields(now),
	}
}

// Apply copies every supplied patch field onto the expense and refreshes UpdatedAt.
func (e *Expense) Apply(patch ExpensePatch, now time.Time) {
	if patch.Amount != nil {
		e.Amount = *patch.Amount
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.Date != nil {
		e.Date = NormalizeTime(*patch.Date)
	}
	e.Touch(now)
}

// SortField names a column expenses can be ordered by.
type SortField string

const (
	SortByDate        SortField = "date"
	SortByAmount      SortField = "amount"
	SortByCategory    SortField = "category"
	SortByCreatedAt   SortField = "created_at"
	SortByDescription SortField = "description"
)

// SortFields lists the accepted sort keys in the order they are reported to clients.
var SortFields = []SortField{SortByDate, SortByAmount, SortByCategory, SortByCreatedAt, SortByDescription}

// IsValid reports whether f is one of SortFields.
func (f SortField) IsValid() bool {
	for _, field := range SortFields {
		if f == field {
			return true
		}
	}
	return false
}

// SortOrder is the direction of a listing.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// ExpenseFilter restricts a listing. Nil fields do not filter.
// Date bounds are inclusive.
type ExpenseFilter struct {
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
}

// ExpenseQuery describes one page of a filtered, sorted listing.
type ExpenseQuery struct {
	Filter    ExpenseFilter
	SortBy    SortField
	SortOrder SortOrder
	Page      int
	PerPage   int
}

// Offset is the number of rows skipped before the requested page.
func (q ExpenseQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}
