package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainExpenseNormalizesZone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2025, 1, 15, 16, 0, 0, 0, ist)

	d := ToDomainExpense(models.Expense{
		ExpenseID:   3,
		Amount:      decimal.RequireFromString("12.34"),
		Description: "Taxi",
		Category:    "Transport",
		Date:        local,
		AuditFields: models.AuditFields{CreatedAt: local, UpdatedAt: local},
	})

	assert.Equal(t, int64(3), d.ExpenseID)
	assert.Equal(t, time.UTC, d.Date.Location())
	assert.True(t, local.Equal(d.Date))
	assert.Equal(t, time.UTC, d.CreatedAt.Location())
}

func TestExpenseRoundTrip(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	d := domain.NewExpense(domain.ExpenseFields{
		Amount:      decimal.RequireFromString("25.50"),
		Description: "Coffee",
		Category:    "Food",
		Date:        now,
	}, now)
	d.ExpenseID = 9

	assert.Equal(t, d, ToDomainExpense(ToModelExpense(d)))
}
