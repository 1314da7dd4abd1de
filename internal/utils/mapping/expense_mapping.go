package mapping

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		Amount:      d.Amount,
		Description: d.Description,
		Category:    d.Category,
		Date:        d.Date,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		Amount:      m.Amount,
		Description: m.Description,
		Category:    m.Category,
		Date:        m.Date.UTC(),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

// ToDomainCategoryTotals converts aggregation rows to domain rows
func ToDomainCategoryTotals(ms []models.CategoryTotal) []domain.CategoryTotal {
	ds := make([]domain.CategoryTotal, len(ms))
	for i, m := range ms {
		ds[i] = domain.CategoryTotal{Category: m.Category, Amount: m.Amount, Count: m.Count}
	}
	return ds
}
