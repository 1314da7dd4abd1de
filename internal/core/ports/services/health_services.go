package services

import "context"

// HealthService reports on the readiness of the service's dependencies.
type HealthService interface {
	// CheckDatabase returns nil when the database answers.
	CheckDatabase(ctx context.Context) error
}
