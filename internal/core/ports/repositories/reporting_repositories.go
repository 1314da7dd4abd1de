package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// ReportingRepository defines operations for retrieving summary data
type ReportingRepository interface {
	// SummarizeByCategory groups expenses dated within [start, end] by category.
	// Nil bounds are open.
	SummarizeByCategory(ctx context.Context, start, end *time.Time) ([]domain.CategoryTotal, error)
}
