package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/sqlbuild"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
)

type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *sql.DB) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{DB: db}}
}

// SummarizeByCategory sums amounts per category for expenses dated within the range.
func (r *reportingRepository) SummarizeByCategory(ctx context.Context, start, end *time.Time) ([]domain.CategoryTotal, error) {
	b := sqlbuild.New(sqlbuild.Question, encodeTime).DateRange(start, end)
	query := `
		SELECT category, COALESCE(SUM(amount), 0) AS amount, COUNT(*) AS count
		FROM expenses` + b.Where() + `
		GROUP BY category`

	rows, err := r.DB.QueryContext(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("error querying category totals: %w", err)
	}
	defer rows.Close()

	result := []models.CategoryTotal{}
	for rows.Next() {
		var (
			row   models.CategoryTotal
			cents int64
		)
		if err := rows.Scan(&row.Category, &cents, &row.Count); err != nil {
			return nil, fmt.Errorf("error scanning category total row: %w", err)
		}
		row.Amount = fromCents(cents)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category total rows: %w", err)
	}

	return mapping.ToDomainCategoryTotals(result), nil
}
