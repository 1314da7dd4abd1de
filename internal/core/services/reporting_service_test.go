package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SummarizeByCategory(ctx context.Context, start, end *time.Time) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestGetSummary_DerivesTotalsFromCategories(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.On("SummarizeByCategory", ctx, &start, (*time.Time)(nil)).Return([]domain.CategoryTotal{
		{Category: "Food", Amount: decimal.RequireFromString("12.345"), Count: 2},
		{Category: "Rent", Amount: decimal.RequireFromString("800"), Count: 1},
	}, nil).Once()

	summary, err := services.NewReportingService(repo).GetSummary(ctx, &start, nil)

	require.NoError(t, err)
	assert.Equal(t, "812.35", summary.TotalAmount.StringFixed(2))
	assert.Equal(t, int64(3), summary.ExpenseCount)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Rent", summary.Categories[0].Category)
	assert.Equal(t, "12.35", summary.Categories[1].Amount.StringFixed(2))
	repo.AssertExpectations(t)
}

func TestGetSummary_RejectsInvertedRange(t *testing.T) {
	repo := new(MockReportingRepository)
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := services.NewReportingService(repo).GetSummary(context.Background(), &start, &end)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.EqualError(t, err, "Start date must be before or equal to end date")
	repo.AssertNotCalled(t, "SummarizeByCategory", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetSummary_RepositoryFailure(t *testing.T) {
	repo := new(MockReportingRepository)
	repo.On("SummarizeByCategory", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	_, err := services.NewReportingService(repo).GetSummary(context.Background(), nil, nil)

	assert.ErrorIs(t, err, apperrors.ErrService)
}

func TestHealthService_CheckDatabase(t *testing.T) {
	checker := new(MockHealthChecker)
	checker.On("Ping", mock.Anything).Return(nil).Once()
	checker.On("Ping", mock.Anything).Return(assert.AnError).Once()
	svc := services.NewHealthService(checker)

	assert.NoError(t, svc.CheckDatabase(context.Background()))
	assert.ErrorIs(t, svc.CheckDatabase(context.Background()), assert.AnError)
	assert.Error(t, services.NewHealthService(nil).CheckDatabase(context.Background()))
	checker.AssertExpectations(t)
}
