package ports

import "context"

// HealthChecker is a dependency that readiness depends on, such as the
// database or the statistics cache.
type HealthChecker interface {
	// Name keys the check in the readiness response.
	Name() string
	// HealthCheck returns nil when the dependency is reachable within ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checks for GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll returns one entry per checker. A nil error means healthy.
	CheckAll(ctx context.Context) map[string]error
}
