package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/SscSPs/expense_tracker/internal/utils/pagination"
)

// TimestampLayout is how every timestamp leaves the API: RFC 3339 in UTC.
const TimestampLayout = time.RFC3339Nano

// CreateExpenseRequest documents the creation payload. Handlers decode into a
// raw map so absent and null fields can be told apart; this type is for API docs.
type CreateExpenseRequest struct {
	Amount      string  `json:"amount" example:"25.50"`
	Description string  `json:"description" example:"Coffee and pastry"`
	Category    *string `json:"category,omitempty" example:"Food"`
	Date        *string `json:"date,omitempty" example:"2025-01-15T10:30:00Z"`
}

// UpdateExpenseRequest documents the partial update payload. Every field is optional.
type UpdateExpenseRequest struct {
	Amount      *string `json:"amount,omitempty" example:"30.00"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// ExpenseResponse is the wire form of an expense. Amounts are decimal strings.
type ExpenseResponse struct {
	ID          int64  `json:"id" example:"1"`
	Amount      string `json:"amount" example:"25.50"`
	Description string `json:"description" example:"Coffee and pastry"`
	Category    string `json:"category" example:"Food"`
	Date        string `json:"date" example:"2025-01-15T10:30:00Z"`
	CreatedAt   string `json:"created_at" example:"2025-01-15T10:31:02.123456Z"`
	UpdatedAt   string `json:"updated_at" example:"2025-01-15T10:31:02.123456Z"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ExpenseID,
		Amount:      utils.FormatAmount(e.Amount),
		Description: e.Description,
		Category:    e.Category,
		Date:        FormatTimestamp(e.Date),
		CreatedAt:   FormatTimestamp(e.CreatedAt),
		UpdatedAt:   FormatTimestamp(e.UpdatedAt),
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to ExpenseResponse DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}

// FormatTimestamp renders t in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ListExpensesParams holds the raw list query. Values stay strings so that
// malformed numbers can be reported separately from out-of-range ones.
type ListExpensesParams struct {
	Page      string `form:"page"`
	PerPage   string `form:"per_page"`
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

// ListExpensesResponse is one page of expenses with its pagination metadata.
type ListExpensesResponse struct {
	Expenses   []ExpenseResponse `json:"expenses"`
	Pagination pagination.Meta   `json:"pagination"`
}

// CategoriesResponse lists the known categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
