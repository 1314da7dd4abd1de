package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpense retrieves a single expense by id.
	GetExpense(ctx context.Context, expenseID int64) (*domain.Expense, error)

	// ListExpenses validates the query and returns the page plus the total match count.
	ListExpenses(ctx context.Context, query domain.ExpenseQuery) ([]domain.Expense, int64, error)

	// ListCategories returns every known category, sorted.
	ListCategories(ctx context.Context) ([]string, error)
}

// ExpenseWriterSvc defines write operations for expense data.
// Inputs are raw decoded JSON objects; validation happens in the service.
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, input map[string]any) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID int64, input map[string]any) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID int64) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
