package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	expenseRepo := newSQLiteExpenseRepository(db)

	return portsrepo.RepositoryProvider{
		ExpenseRepo:   expenseRepo,
		ReportingRepo: newReportingRepository(db),
		Health:        &expenseRepo.BaseRepository,
	}
}
