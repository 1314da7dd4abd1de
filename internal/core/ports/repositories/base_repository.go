package repositories

import "context"

// HealthChecker reports whether the underlying store is reachable.
type HealthChecker interface {
	// Ping round-trips to the database and returns an error if it is unavailable.
	Ping(ctx context.Context) error
}
