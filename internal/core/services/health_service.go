package services

import (
	"context"
	"errors"
	"time"

	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
)

const healthCheckTimeout = 2 * time.Second

type healthService struct {
	BaseService
	checker portsrepo.HealthChecker
}

// NewHealthService creates a health service backed by the repository's ping.
func NewHealthService(checker portsrepo.HealthChecker) portssvc.HealthService {
	return &healthService{checker: checker}
}

var _ portssvc.HealthService = (*healthService)(nil)

func (s *healthService) CheckDatabase(ctx context.Context) error {
	if s.checker == nil {
		return errors.New("no database configured")
	}
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := s.checker.Ping(ctx); err != nil {
		s.LogError(ctx, err, "Database health check failed")
		return err
	}
	return nil
}
