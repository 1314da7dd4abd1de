package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10", "10.00"},
		{"10.5", "10.50"},
		{"10.123", "10.12"},
		{"10.999", "11.00"},
		{"25.555", "25.56"},
		{"0.005", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := RoundAmount(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestBuildSummary(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []domain.CategoryTotal{
		{Category: "Transport", Amount: decimal.RequireFromString("15.00"), Count: 1},
		{Category: "Food", Amount: decimal.RequireFromString("40.25"), Count: 3},
		{Category: "Bills", Amount: decimal.RequireFromString("15.00"), Count: 2},
	}

	summary := BuildSummary(rows, &start, nil)

	require.Len(t, summary.Categories, 3)
	assert.Equal(t, "Food", summary.Categories[0].Category)
	assert.Equal(t, "Bills", summary.Categories[1].Category, "ties sort by category name")
	assert.Equal(t, "Transport", summary.Categories[2].Category)
	assert.Equal(t, "70.25", summary.TotalAmount.StringFixed(2))
	assert.Equal(t, int64(6), summary.ExpenseCount)
	assert.Equal(t, &start, summary.StartDate)
	assert.Nil(t, summary.EndDate)

	sum := decimal.Zero
	var count int64
	for _, c := range summary.Categories {
		sum = sum.Add(c.Amount)
		count += c.Count
	}
	assert.True(t, sum.Equal(summary.TotalAmount))
	assert.Equal(t, summary.ExpenseCount, count)
}

func TestBuildSummaryEmpty(t *testing.T) {
	summary := BuildSummary(nil, nil, nil)

	assert.NotNil(t, summary.Categories)
	assert.Empty(t, summary.Categories)
	assert.True(t, summary.TotalAmount.IsZero())
	assert.Zero(t, summary.ExpenseCount)
}

func TestCategoryListing(t *testing.T) {
	assert.Equal(t, []string{"Food", "Transport", "Uncategorized"},
		CategoryListing([]string{"Transport", "Food"}, true))
	assert.Equal(t, []string{"Food", "Uncategorized"},
		CategoryListing([]string{"Uncategorized", "Food"}, true))
	assert.Equal(t, []string{}, CategoryListing(nil, false))
}
