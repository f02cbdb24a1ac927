package health_test

import (
	"context"
	"errors"
	"maps"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-task-tracker/internal/platform/health"
	"github.com/jsamuelsen11/go-task-tracker/mocks"
)

func TestRegistry_CheckAll(t *testing.T) {
	t.Parallel()

	errRefused := errors.New("dial tcp 127.0.0.1:6379: connection refused")

	type check struct {
		name string
		err  error
	}
	tests := []struct {
		name   string
		checks []check
		want   map[string]error
	}{
		{
			name: "nothing registered",
			want: map[string]error{},
		},
		{
			name:   "all healthy",
			checks: []check{{"database", nil}, {"redis", nil}},
			want:   map[string]error{"database": nil, "redis": nil},
		},
		{
			name:   "cache down",
			checks: []check{{"database", nil}, {"redis", errRefused}},
			want:   map[string]error{"database": nil, "redis": errRefused},
		},
		{
			name:   "duplicate name keeps the last registration",
			checks: []check{{"database", errRefused}, {"database", nil}},
			want:   map[string]error{"database": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checks {
				checker := mocks.NewMockHealthChecker(t)
				checker.EXPECT().Name().Return(c.name)
				checker.EXPECT().HealthCheck(mock.Anything).Return(c.err)
				r.Register(checker)
			}

			if got := r.CheckAll(context.Background()); !maps.Equal(got, tt.want) {
				t.Errorf("CheckAll() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistry_CheckTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		opts         []health.Option
		wantDeadline bool
	}{
		{name: "default", wantDeadline: true},
		{name: "custom", opts: []health.Option{health.WithCheckTimeout(time.Minute)}, wantDeadline: true},
		{name: "disabled", opts: []health.Option{health.WithCheckTimeout(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var hasDeadline bool
			checker := mocks.NewMockHealthChecker(t)
			checker.EXPECT().Name().Return("database")
			checker.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
				_, hasDeadline = ctx.Deadline()
				return nil
			})

			r := health.New(tt.opts...)
			r.Register(checker)
			r.CheckAll(context.Background())

			if hasDeadline != tt.wantDeadline {
				t.Errorf("check context has deadline = %v, want %v", hasDeadline, tt.wantDeadline)
			}
		})
	}
}

func TestRegistry_SlowCheckTimesOut(t *testing.T) {
	t.Parallel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("database")
	checker.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(10 * time.Millisecond))
	r.Register(checker)

	if err := r.CheckAll(context.Background())["database"]; !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("CheckAll()[database] = %v, want %v", err, context.DeadlineExceeded)
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			checker := mocks.NewMockHealthChecker(t)
			checker.EXPECT().Name().Return("database").Maybe()
			checker.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
			r.Register(checker)
			r.CheckAll(context.Background())
		})
	}
	wg.Wait()

	want := map[string]error{"database": nil}
	if got := r.CheckAll(context.Background()); !maps.Equal(got, want) {
		t.Errorf("CheckAll() = %v, want %v", got, want)
	}
}
