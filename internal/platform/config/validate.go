package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate reports every invalid setting at once, joined with errors.Join.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Database.validate(&p)
	c.Cache.validate(&p)
	c.Telemetry.validate(&p)
	return errors.Join(p...)
}

// problems collects validation failures keyed by their config path.
type problems []error

func (p *problems) check(ok bool, key, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf("%s %s", key, fmt.Sprintf(format, args...)))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.check(slices.Contains(allowed, got), key, "must be one of %v, got %q", allowed, got)
}

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port", "must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout", "must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout", "must be positive")
	p.check(s.RequestTimeout >= 0, "server.request_timeout", "must not be negative")
	if s.RateLimit.Enabled {
		p.check(s.RateLimit.RequestsPerSecond > 0, "server.rate_limit.requests_per_second",
			"must be positive, got %g", s.RateLimit.RequestsPerSecond)
		p.check(s.RateLimit.Burst >= 1, "server.rate_limit.burst", "must be at least 1, got %d", s.RateLimit.Burst)
	}
}

func (l *LogConfig) validate(p *problems) {
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
}

func (d *DatabaseConfig) validate(p *problems) {
	p.oneOf("database.driver", d.Driver, DriverSQLite, DriverPostgres)
	p.check(d.DSN != "", "database.dsn", "must not be empty")
	p.check(d.MaxOpenConns >= 0, "database.max_open_conns", "must not be negative")
	p.check(d.MaxIdleConns >= 0, "database.max_idle_conns", "must not be negative")
	p.check(d.ConnectRetry.MaxAttempts >= 1, "database.connect_retry.max_attempts",
		"must be at least 1, got %d", d.ConnectRetry.MaxAttempts)
	p.check(d.ConnectRetry.Multiplier > 0, "database.connect_retry.multiplier",
		"must be positive, got %g", d.ConnectRetry.Multiplier)
}

func (c *CacheConfig) validate(p *problems) {
	if !c.Enabled {
		return
	}
	p.check(c.Addr != "", "cache.addr", "must be set when the cache is enabled")
	p.check(c.TTL > 0, "cache.ttl", "must be positive")
	p.check(c.CircuitBreaker.MaxFailures >= 1, "cache.circuit_breaker.max_failures",
		"must be at least 1, got %d", c.CircuitBreaker.MaxFailures)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint", "must be set for the otlp exporter")
}
