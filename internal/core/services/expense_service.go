package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/validation"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
	"github.com/SscSPs/expense_tracker/internal/utils/pagination"
)

// expenseService implements portssvc.ExpenseSvcFacade
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	validator   *validation.Validator
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithExpenseValidator replaces the default payload validator.
func WithExpenseValidator(v *validation.Validator) ExpenseServiceOption {
	return func(s *expenseService) {
		s.validator = v
	}
}

// WithExpenseClock sets the clock used for created_at/updated_at.
func WithExpenseClock(now func() time.Time) ExpenseServiceOption {
	return func(s *expenseService) {
		s.Now = now
	}
}

// NewExpenseService creates a new expense service with the provided options
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		expenseRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.validator == nil {
		svc.validator = validation.NewValidatorWithClock(svc.now)
	}
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func validateExpenseID(expenseID int64) error {
	if expenseID <= 0 {
		return apperrors.NewValidationError("Expense ID must be a positive integer")
	}
	return nil
}

func expenseNotFound(expenseID int64) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("Expense with ID %d not found", expenseID))
}

// CreateExpense validates, normalizes and stores a new expense.
func (s *expenseService) CreateExpense(ctx context.Context, input map[string]any) (*domain.Expense, error) {
	fields, err := s.validator.ValidateCreate(input)
	if err != nil {
		s.LogDebug(ctx, "Expense creation payload rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	expense := domain.NewExpense(validation.NormalizeFields(fields), s.now())
	saved, err := s.expenseRepo.SaveExpense(ctx, expense)
	if err != nil {
		s.LogError(ctx, err, "Failed to save expense in repository")
		return nil, apperrors.NewServiceError("Failed to create expense", err)
	}

	s.LogInfo(ctx, "Expense created successfully", slog.Int64("expense_id", saved.ExpenseID))
	return saved, nil
}

// GetExpense retrieves an expense by id.
func (s *expenseService) GetExpense(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	if err := validateExpenseID(expenseID); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, expenseNotFound(expenseID)
		}
		s.LogError(ctx, err, "Failed to find expense by ID in repository", slog.Int64("expense_id", expenseID))
		return nil, apperrors.NewServiceError("Failed to retrieve expense", err)
	}

	s.LogDebug(ctx, "Expense retrieved successfully", slog.Int64("expense_id", expenseID))
	return expense, nil
}

// ListExpenses validates paging, sorting and filter bounds before querying.
func (s *expenseService) ListExpenses(ctx context.Context, query domain.ExpenseQuery) ([]domain.Expense, int64, error) {
	if query.SortBy == "" {
		query.SortBy = domain.SortByDate
	}
	if query.SortOrder == "" {
		query.SortOrder = domain.SortDesc
	}
	if err := validateListQuery(query); err != nil {
		return nil, 0, err
	}
	if query.Filter.Category != nil {
		category := strings.TrimSpace(*query.Filter.Category)
		if category == "" {
			query.Filter.Category = nil
		} else {
			query.Filter.Category = &category
		}
	}

	expenses, total, err := s.expenseRepo.ListExpenses(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses from repository",
			slog.Int("page", query.Page), slog.Int("per_page", query.PerPage))
		return nil, 0, apperrors.NewServiceError("Failed to retrieve expenses", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}

	s.LogDebug(ctx, "Expenses listed successfully", slog.Int("count", len(expenses)), slog.Int64("total", total))
	return expenses, total, nil
}

func validateListQuery(query domain.ExpenseQuery) error {
	if !pagination.ValidPage(query.Page) {
		return apperrors.NewValidationError("Page number must be greater than 0")
	}
	if !pagination.ValidPerPage(query.PerPage) {
		return apperrors.NewValidationError(fmt.Sprintf("Per page must be between 1 and %d", pagination.MaxPerPage))
	}
	if !query.SortBy.IsValid() {
		names := make([]string, len(domain.SortFields))
		for i, f := range domain.SortFields {
			names[i] = string(f)
		}
		return apperrors.NewValidationError("Invalid sort field. Must be one of: " + strings.Join(names, ", "))
	}
	if !query.SortOrder.IsValid() {
		return apperrors.NewValidationError("Invalid sort order. Must be one of: asc, desc")
	}
	return validateDateRange(query.Filter.StartDate, query.Filter.EndDate)
}

func validateDateRange(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return apperrors.NewValidationError("Start date must be before or equal to end date")
	}
	return nil
}

// UpdateExpense applies a partial update inside a single repository transaction.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID int64, input map[string]any) (*domain.Expense, error) {
	if err := validateExpenseID(expenseID); err != nil {
		return nil, err
	}

	patch, err := s.validator.ValidateUpdate(input)
	if err != nil {
		s.LogDebug(ctx, "Expense update payload rejected", slog.Int64("expense_id", expenseID), slog.String("reason", err.Error()))
		return nil, err
	}
	patch = validation.NormalizePatch(patch)

	updated, err := s.expenseRepo.UpdateExpense(ctx, expenseID, func(e *domain.Expense) error {
		e.Apply(patch, s.now())
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, expenseNotFound(expenseID)
		}
		s.LogError(ctx, err, "Failed to update expense in repository", slog.Int64("expense_id", expenseID))
		return nil, apperrors.NewServiceError("Failed to update expense", err)
	}

	s.LogInfo(ctx, "Expense updated successfully", slog.Int64("expense_id", expenseID))
	return updated, nil
}

// DeleteExpense permanently removes an expense.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID int64) error {
	if err := validateExpenseID(expenseID); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return expenseNotFound(expenseID)
		}
		s.LogError(ctx, err, "Failed to delete expense in repository", slog.Int64("expense_id", expenseID))
		return apperrors.NewServiceError("Failed to delete expense", err)
	}

	s.LogInfo(ctx, "Expense deleted successfully", slog.Int64("expense_id", expenseID))
	return nil
}

// ListCategories returns the sorted category list. The default category is
// included whenever at least one expense exists.
func (s *expenseService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.expenseRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories from repository")
		return nil, apperrors.NewServiceError("Failed to retrieve categories", err)
	}
	return accounting.CategoryListing(categories, len(categories) > 0), nil
}
