package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/config"
)

// testRedisAddr is where the integration tests expect a Redis server.
const testRedisAddr = "localhost:6379"

func testConfig(prefix string) config.CacheConfig {
	return config.CacheConfig{
		Enabled: true,
		Addr:    testRedisAddr,
		Prefix:  prefix,
		TTL:     time.Minute,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   2,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
	}
}

// setupTestCache connects to a local Redis or skips the test.
func setupTestCache(t *testing.T, prefix string) *StatisticsCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	c := New(client, testConfig(prefix), nil, nil)
	t.Cleanup(func() {
		_ = c.Invalidate(ctx)
		_ = c.Close()
	})
	return c
}

func TestStatisticsCache_RoundTrip(t *testing.T) {
	c := setupTestCache(t, "test:roundtrip:")
	ctx := context.Background()

	if _, ok, err := c.Get(ctx); err != nil || ok {
		t.Fatalf("Get() on empty cache = ok %v, err %v; want miss", ok, err)
	}

	want := task.Statistics{Count: 7, ActiveCount: 3}
	if err := c.Set(ctx, want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := c.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v; want hit", ok, err)
	}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}

	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx); ok {
		t.Error("Get() after Invalidate() should miss")
	}

	if err := c.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
}

// unreachableCache points at a port nothing listens on, with client retries
// disabled so every call fails fast.
func unreachableCache(t *testing.T) *StatisticsCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	c := New(client, testConfig("test:down:"), nil, nil)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestStatisticsCache_BreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	c := unreachableCache(t)
	ctx := context.Background()

	for i := range 2 {
		_, _, err := c.Get(ctx)
		if err == nil {
			t.Fatalf("Get() #%d succeeded against an unreachable server", i+1)
		}
		if errors.Is(err, domain.ErrUnavailable) {
			t.Fatalf("Get() #%d rejected by breaker before it tripped", i+1)
		}
	}

	_, _, err := c.Get(ctx)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("Get() after tripping = %v, want ErrUnavailable", err)
	}

	err = c.HealthCheck(ctx)
	if err == nil || !strings.Contains(err.Error(), "circuit breaker open") {
		t.Errorf("HealthCheck() = %v, want open breaker error", err)
	}
}

func TestStatisticsCache_HealthCheckPingsWhenClosed(t *testing.T) {
	t.Parallel()

	c := unreachableCache(t)
	if err := c.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() = nil for unreachable server")
	}
	if c.Name() != "redis" {
		t.Errorf("Name() = %q, want redis", c.Name())
	}
}

func TestToUint32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want uint32
	}{
		{in: -1, want: 0},
		{in: 0, want: 0},
		{in: 5, want: 5},
	}
	for _, tt := range tests {
		if got := toUint32(tt.in); got != tt.want {
			t.Errorf("toUint32(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
