package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense, or apperrors.ErrNotFound.
	FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)

	// ListExpenses returns one page of matching expenses plus the number of
	// matches before paging.
	ListExpenses(ctx context.Context, query domain.ExpenseQuery) ([]domain.Expense, int64, error)

	// ListCategories returns the distinct stored categories in no particular order.
	ListCategories(ctx context.Context) ([]string, error)

	// CountExpenses returns the number of stored expenses.
	CountExpenses(ctx context.Context) (int64, error)
}

// ExpenseWriter defines write operations for expense data.
// Each call runs in its own transaction.
type ExpenseWriter interface {
	// SaveExpense inserts a new expense and returns it with its assigned id.
	SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// UpdateExpense loads the expense, hands it to apply and persists the
	// result in the same transaction. An error from apply aborts the update.
	UpdateExpense(ctx context.Context, expenseID int64, apply func(*domain.Expense) error) (*domain.Expense, error)

	// DeleteExpense removes the expense, or returns apperrors.ErrNotFound.
	DeleteExpense(ctx context.Context, expenseID int64) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
