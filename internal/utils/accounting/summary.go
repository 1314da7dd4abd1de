package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RoundAmount quantizes an amount to two fractional digits, rounding half away
// from zero (half up for the positive amounts stored here).
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(domain.AmountPlaces)
}

// BuildSummary assembles a summary from per-category rows. The totals are
// derived from the rows so the category breakdown always adds up to them.
// Rows are ordered by amount descending, ties broken by category name.
func BuildSummary(rows []domain.CategoryTotal, start, end *time.Time) domain.ExpenseSummary {
	categories := make([]domain.CategoryTotal, 0, len(rows))
	total := decimal.Zero
	var count int64
	for _, row := range rows {
		row.Amount = RoundAmount(row.Amount)
		categories = append(categories, row)
		total = total.Add(row.Amount)
		count += row.Count
	}

	sort.SliceStable(categories, func(i, j int) bool {
		if c := categories[i].Amount.Cmp(categories[j].Amount); c != 0 {
			return c > 0
		}
		return categories[i].Category < categories[j].Category
	})

	return domain.ExpenseSummary{
		TotalAmount:  RoundAmount(total),
		ExpenseCount: count,
		StartDate:    start,
		EndDate:      end,
		Categories:   categories,
	}
}

// CategoryListing returns the distinct categories sorted lexicographically.
// When any expense exists the default category is always listed, even if no
// record currently carries it.
func CategoryListing(categories []string, hasExpenses bool) []string {
	seen := make(map[string]struct{}, len(categories)+1)
	out := make([]string, 0, len(categories)+1)
	add := func(c string) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	for _, c := range categories {
		add(c)
	}
	if hasExpenses {
		add(domain.UncategorizedCategory)
	}
	sort.Strings(out)
	return out
}
