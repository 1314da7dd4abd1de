package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// GetSummary aggregates the expenses dated within [start, end]. Only categories
// that actually occur in the range are reported.
func (s *reportingService) GetSummary(ctx context.Context, start, end *time.Time) (*domain.ExpenseSummary, error) {
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.SummarizeByCategory(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve category totals")
		return nil, apperrors.NewServiceError("Failed to generate expense summary", err)
	}

	summary := accounting.BuildSummary(rows, start, end)
	s.LogInfo(ctx, "Expense summary generated successfully",
		slog.Int("category_count", len(summary.Categories)),
		slog.Int64("expense_count", summary.ExpenseCount))
	return &summary, nil
}
