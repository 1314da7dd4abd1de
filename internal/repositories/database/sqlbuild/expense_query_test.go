package sqlbuild

import (
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_NoConditions(t *testing.T) {
	b := New(Dollar, nil)

	assert.Equal(t, "", b.Where())
	assert.Empty(t, b.Args())
}

func TestBuilder_FilterDollar(t *testing.T) {
	category := "Food"
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	b := New(Dollar, nil).Filter(domain.ExpenseFilter{Category: &category, StartDate: &start, EndDate: &end})
	page := b.Page(20, 40)

	assert.Equal(t, " WHERE category = $1 AND date >= $2 AND date <= $3", b.Where())
	assert.Equal(t, " LIMIT $4 OFFSET $5", page)
	assert.Equal(t, []any{"Food", start, end, 20, 40}, b.Args())
}

func TestBuilder_QuestionWithEncoder(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	enc := func(t time.Time) any { return t.Format("2006-01-02") }

	b := New(Question, enc).DateRange(&start, nil)

	assert.Equal(t, " WHERE date >= ?", b.Where())
	assert.Equal(t, []any{"2025-01-01"}, b.Args())
}

func TestOrderBy(t *testing.T) {
	tests := []struct {
		field domain.SortField
		order domain.SortOrder
		want  string
	}{
		{domain.SortByDate, domain.SortDesc, " ORDER BY date DESC, id DESC"},
		{domain.SortByAmount, domain.SortAsc, " ORDER BY amount ASC, id ASC"},
		{domain.SortByDescription, domain.SortAsc, " ORDER BY description ASC, id ASC"},
		{"bogus; DROP TABLE expenses", domain.SortAsc, " ORDER BY date ASC, id ASC"},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			assert.Equal(t, tt.want, OrderBy(tt.field, tt.order))
		})
	}
}
