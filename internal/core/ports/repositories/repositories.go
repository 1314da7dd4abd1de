package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both storage backends build one of these so the service container does not
// care which database sits underneath.
type RepositoryProvider struct {
	ExpenseRepo   ExpenseRepositoryFacade
	ReportingRepo ReportingRepository
	Health        HealthChecker
}
