package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/sqlbuild"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
)

type SQLiteExpenseRepository struct {
	BaseRepository
}

func newSQLiteExpenseRepository(db *sql.DB) *SQLiteExpenseRepository {
	return &SQLiteExpenseRepository{BaseRepository: BaseRepository{DB: db}}
}

// Ensure SQLiteExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*SQLiteExpenseRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (models.Expense, error) {
	var (
		m                          models.Expense
		cents                      int64
		date, createdAt, updatedAt string
	)
	if err := row.Scan(&m.ExpenseID, &cents, &m.Description, &m.Category, &date, &createdAt, &updatedAt); err != nil {
		return models.Expense{}, err
	}
	m.Amount = fromCents(cents)

	var err error
	if m.Date, err = decodeTime(date); err != nil {
		return models.Expense{}, err
	}
	if m.CreatedAt, err = decodeTime(createdAt); err != nil {
		return models.Expense{}, err
	}
	if m.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return models.Expense{}, err
	}
	return m, nil
}

func findExpense(ctx context.Context, q interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}, expenseID int64) (models.Expense, error) {
	query := `SELECT ` + sqlbuild.ExpenseColumns + ` FROM expenses WHERE id = ?;`
	m, err := scanExpense(q.QueryRowContext(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, apperrors.ErrNotFound
		}
		return models.Expense{}, fmt.Errorf("failed to find expense %d: %w", expenseID, err)
	}
	return m, nil
}

// SaveExpense inserts a new expense and returns it with the generated id.
func (r *SQLiteExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	m := mapping.ToModelExpense(expense)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(tx) }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO expenses (amount, description, category, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?);`,
		toCents(m.Amount),
		m.Description,
		m.Category,
		encodeTime(m.Date),
		encodeTime(m.CreatedAt),
		encodeTime(m.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert expense: %w", err)
	}
	if m.ExpenseID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("failed to read inserted expense id: %w", err)
	}

	if err := r.Commit(tx); err != nil {
		return nil, err
	}

	m.Amount = fromCents(toCents(m.Amount))
	saved := mapping.ToDomainExpense(m)
	return &saved, nil
}

// FindExpenseByID retrieves an expense by its id.
func (r *SQLiteExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	m, err := findExpense(ctx, r.DB, expenseID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainExpense(m)
	return &d, nil
}

// ListExpenses returns one page of expenses matching the query and the total match count.
func (r *SQLiteExpenseRepository) ListExpenses(ctx context.Context, q domain.ExpenseQuery) ([]domain.Expense, int64, error) {
	countBuilder := sqlbuild.New(sqlbuild.Question, encodeTime).Filter(q.Filter)
	var total int64
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM expenses"+countBuilder.Where(), countBuilder.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	b := sqlbuild.New(sqlbuild.Question, encodeTime).Filter(q.Filter)
	where := b.Where()
	query := "SELECT " + sqlbuild.ExpenseColumns + " FROM expenses" + where +
		sqlbuild.OrderBy(q.SortBy, q.SortOrder) + b.Page(q.PerPage, q.Offset())

	rows, err := r.DB.QueryContext(ctx, query, b.Args()...)
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

// UpdateExpense reads, applies and writes the change in one transaction.
// The handle is limited to a single connection, so the transaction is exclusive.
func (r *SQLiteExpenseRepository) UpdateExpense(ctx context.Context, expenseID int64, apply func(*domain.Expense) error) (*domain.Expense, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(tx) }()

	m, err := findExpense(ctx, tx, expenseID)
	if err != nil {
		return nil, err
	}

	expense := mapping.ToDomainExpense(m)
	if err := apply(&expense); err != nil {
		return nil, err
	}
	m = mapping.ToModelExpense(expense)

	if _, err := tx.ExecContext(ctx, `
		UPDATE expenses
		SET amount = ?, description = ?, category = ?, date = ?, updated_at = ?
		WHERE id = ?;`,
		toCents(m.Amount),
		m.Description,
		m.Category,
		encodeTime(m.Date),
		encodeTime(m.UpdatedAt),
		expenseID,
	); err != nil {
		return nil, fmt.Errorf("failed to update expense %d: %w", expenseID, err)
	}

	if err := r.Commit(tx); err != nil {
		return nil, err
	}
	expense.Amount = fromCents(toCents(expense.Amount))
	return &expense, nil
}

// DeleteExpense removes an expense.
func (r *SQLiteExpenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(tx) }()

	res, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(tx)
}

// ListCategories returns the distinct stored categories.
func (r *SQLiteExpenseRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT DISTINCT category FROM expenses;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CountExpenses returns the number of stored expenses.
func (r *SQLiteExpenseRepository) CountExpenses(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}
