package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/sqlbuild"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.Amount,
		&m.Description,
		&m.Category,
		&m.Date,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveExpense inserts a new expense and returns it with the generated id.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	m := mapping.ToModelExpense(expense)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO expenses (amount, description, category, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	if err := tx.QueryRow(ctx, query,
		m.Amount,
		m.Description,
		m.Category,
		m.Date,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&m.ExpenseID); err != nil {
		return nil, fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	saved := mapping.ToDomainExpense(m)
	return &saved, nil
}

// FindExpenseByID retrieves an expense by its id.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	query := `SELECT ` + sqlbuild.ExpenseColumns + ` FROM expenses WHERE id = $1;`

	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %d: %w", expenseID, err)
	}

	d := mapping.ToDomainExpense(m)
	return &d, nil
}

// ListExpenses returns one page of expenses matching the query and the total match count.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, q domain.ExpenseQuery) ([]domain.Expense, int64, error) {
	countBuilder := sqlbuild.New(sqlbuild.Dollar, nil).Filter(q.Filter)
	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM expenses"+countBuilder.Where(), countBuilder.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	b := sqlbuild.New(sqlbuild.Dollar, nil).Filter(q.Filter)
	where := b.Where()
	query := "SELECT " + sqlbuild.ExpenseColumns + " FROM expenses" + where +
		sqlbuild.OrderBy(q.SortBy, q.SortOrder) + b.Page(q.PerPage, q.Offset())

	rows, err := r.Pool.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	ms := []models.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating expense rows: %w", err)
	}

	return mapping.ToDomainExpenseSlice(ms), total, nil
}

// UpdateExpense locks the row, applies the change and writes it back in one transaction.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expenseID int64, apply func(*domain.Expense) error) (*domain.Expense, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	selectQuery := `SELECT ` + sqlbuild.ExpenseColumns + ` FROM expenses WHERE id = $1 FOR UPDATE;`
	m, err := scanExpense(tx.QueryRow(ctx, selectQuery, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load expense %d for update: %w", expenseID, err)
	}

	expense := mapping.ToDomainExpense(m)
	if err := apply(&expense); err != nil {
		return nil, err
	}
	m = mapping.ToModelExpense(expense)

	updateQuery := `
		UPDATE expenses
		SET amount = $1, description = $2, category = $3, date = $4, updated_at = $5
		WHERE id = $6;
	`
	if _, err := tx.Exec(ctx, updateQuery,
		m.Amount,
		m.Description,
		m.Category,
		m.Date,
		m.UpdatedAt,
		expenseID,
	); err != nil {
		return nil, fmt.Errorf("failed to update expense %d: %w", expenseID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes an expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	cmdTag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}

// ListCategories returns the distinct stored categories.
func (r *PgxExpenseRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT category FROM expenses;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return categories, nil
}

// CountExpenses returns the number of stored expenses.
func (r *PgxExpenseRepository) CountExpenses(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM expenses;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}
