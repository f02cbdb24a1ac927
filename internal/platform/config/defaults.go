package config

const (
	defaultServerPort = 8080

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 100

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultRetryMaxAttempts = 5
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                           "0.0.0.0",
		"server.port":                           defaultServerPort,
		"server.read_timeout":                   "5s",
		"server.write_timeout":                  "10s",
		"server.idle_timeout":                   "120s",
		"server.request_timeout":                "30s",
		"server.shutdown_timeout":               "15s",
		"server.rate_limit.enabled":             false,
		"server.rate_limit.requests_per_second": defaultRateLimitRPS,
		"server.rate_limit.burst":               defaultRateLimitBurst,

		"log.level":  "info",
		"log.format": "json",

		"database.driver":                         DriverSQLite,
		"database.dsn":                            "file:tasktracker.db?_foreign_keys=on",
		"database.max_open_conns":                 defaultMaxOpenConns,
		"database.max_idle_conns":                 defaultMaxIdleConns,
		"database.conn_max_lifetime":              "30m",
		"database.slow_threshold":                 "200ms",
		"database.connect_retry.max_attempts":     defaultRetryMaxAttempts,
		"database.connect_retry.initial_interval": "200ms",
		"database.connect_retry.max_interval":     "5s",
		"database.connect_retry.multiplier":       defaultRetryMultiplier,
		"database.auto_migrate":                   true,
		"database.seed":                           false,

		"cache.enabled":                         false,
		"cache.addr":                            "localhost:6379",
		"cache.password":                        "",
		"cache.db":                              0,
		"cache.prefix":                          "tasktracker:",
		"cache.ttl":                             "30s",
		"cache.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"cache.circuit_breaker.timeout":         "30s",
		"cache.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "task-tracker",
	}
}
