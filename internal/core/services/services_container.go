package services

import (
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, expenseOpts ...ExpenseServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Expense:   NewExpenseService(repos.ExpenseRepo, expenseOpts...),
		Reporting: NewReportingService(repos.ReportingRepo),
		Health:    NewHealthService(repos.Health),
	}
}
