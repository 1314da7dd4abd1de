package services

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// ReportingService defines operations for summarizing expenses
type ReportingService interface {
	// GetSummary aggregates expenses dated within the optional inclusive range.
	GetSummary(ctx context.Context, start, end *time.Time) (*domain.ExpenseSummary, error)
}
