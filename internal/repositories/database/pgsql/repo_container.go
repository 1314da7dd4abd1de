package pgsql

import (
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	expenseRepo := newPgxExpenseRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ExpenseRepo:   expenseRepo,
		ReportingRepo: reportingRepo,
		Health:        &expenseRepo.BaseRepository,
	}
}
