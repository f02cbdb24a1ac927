// Package cache provides the Redis-backed task statistics cache. Every Redis
// call goes through a circuit breaker so an unavailable Redis costs one fast
// failure instead of a timeout per request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-task-tracker/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.StatisticsCache = (*StatisticsCache)(nil)
	_ ports.HealthChecker   = (*StatisticsCache)(nil)
)

const statisticsKey = "task_statistics"

// statisticsPayload is the JSON stored in Redis.
type statisticsPayload struct {
	Count       int64 `json:"count"`
	ActiveCount int64 `json:"active_count"`
}

// StatisticsCache implements ports.StatisticsCache on Redis.
type StatisticsCache struct {
	client  redis.UniversalClient
	cfg     config.CacheConfig
	breaker *gobreaker.CircuitBreaker[[]byte]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewClient creates a Redis client from the cache configuration.
func NewClient(cfg config.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// New creates a StatisticsCache. metrics may be nil.
func New(client redis.UniversalClient, cfg config.CacheConfig, metrics *telemetry.Metrics, logger *slog.Logger) *StatisticsCache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if metrics == nil {
		metrics = telemetry.NoopMetrics()
	}

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "redis",
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A miss is an answer, not a failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &StatisticsCache{
		client:  client,
		cfg:     cfg,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// Get returns the cached statistics. A miss is reported with ok=false.
func (c *StatisticsCache) Get(ctx context.Context) (task.Statistics, bool, error) {
	data, err := c.breaker.Execute(func() ([]byte, error) {
		return c.client.Get(ctx, c.key()).Bytes()
	})
	switch {
	case errors.Is(err, redis.Nil):
		c.record(ctx, "miss")
		return task.Statistics{}, false, nil
	case err != nil:
		c.record(ctx, "error")
		return task.Statistics{}, false, c.wrap("get", err)
	}

	var p statisticsPayload
	if err := json.Unmarshal(data, &p); err != nil {
		c.record(ctx, "error")
		return task.Statistics{}, false, fmt.Errorf("cache unmarshal error: %w", err)
	}

	c.record(ctx, "hit")
	return task.Statistics{Count: p.Count, ActiveCount: p.ActiveCount}, true, nil
}

// Set stores the statistics for the configured TTL.
func (c *StatisticsCache) Set(ctx context.Context, stats task.Statistics) error {
	data, err := json.Marshal(statisticsPayload{Count: stats.Count, ActiveCount: stats.ActiveCount})
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}
	_, err = c.breaker.Execute(func() ([]byte, error) {
		return nil, c.client.Set(ctx, c.key(), data, c.cfg.TTL).Err()
	})
	return c.wrap("set", err)
}

// Invalidate drops the cached statistics.
func (c *StatisticsCache) Invalidate(ctx context.Context) error {
	_, err := c.breaker.Execute(func() ([]byte, error) {
		return nil, c.client.Del(ctx, c.key()).Err()
	})
	return c.wrap("delete", err)
}

// Name implements ports.HealthChecker.
func (c *StatisticsCache) Name() string {
	return "redis"
}

// HealthCheck reports the cache state from the circuit breaker and, while
// the breaker is closed, pings Redis.
func (c *StatisticsCache) HealthCheck(ctx context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		if err := c.client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: ping failed: %w", err)
		}
		return nil
	case gobreaker.StateHalfOpen:
		return errors.New("redis: degraded (circuit breaker half-open)")
	case gobreaker.StateOpen:
		return errors.New("redis: failing (circuit breaker open)")
	default:
		return fmt.Errorf("redis: unknown circuit breaker state %v", state)
	}
}

// Close closes the Redis client.
func (c *StatisticsCache) Close() error {
	return c.client.Close()
}

func (c *StatisticsCache) key() string {
	return c.cfg.Prefix + statisticsKey
}

// wrap marks breaker rejections as unavailability.
func (c *StatisticsCache) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("cache %s: %w: %w", op, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("cache %s error: %w", op, err)
}

func (c *StatisticsCache) record(ctx context.Context, result string) {
	c.metrics.CacheLookupTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
