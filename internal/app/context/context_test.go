package appctx_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	appctx "github.com/jsamuelsen11/go-task-tracker/internal/app/context"
)

type status struct{ name string }

func counting[T any](calls *atomic.Int32, v T, err error) func(context.Context) (T, error) {
	return func(context.Context) (T, error) {
		calls.Add(1)
		return v, err
	}
}

func TestGetOrFetch_Memoizes(t *testing.T) {
	t.Parallel()

	errStore := errors.New("database is locked")

	tests := []struct {
		name  string
		value []status
		err   error
	}{
		{name: "value", value: []status{{"Regular task"}}},
		{name: "empty value"},
		{name: "error", err: errStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rc := appctx.New(context.Background())
			var calls atomic.Int32
			fetch := counting(&calls, tt.value, tt.err)

			for range 3 {
				got, err := appctx.GetOrFetch(rc, "task_statuses", fetch)
				if !errors.Is(err, tt.err) {
					t.Fatalf("GetOrFetch() error = %v, want %v", err, tt.err)
				}
				if tt.err == nil && !slices.Equal(got, tt.value) {
					t.Errorf("GetOrFetch() = %v, want %v", got, tt.value)
				}
			}
			if n := calls.Load(); n != 1 {
				t.Errorf("fetch called %d times, want 1", n)
			}
		})
	}
}

func TestGetOrFetch_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	a, err := appctx.GetOrFetch(rc, "task_status:1", func(context.Context) (int, error) { return 1, nil })
	if err != nil {
		t.Fatalf("GetOrFetch(1) error = %v", err)
	}
	b, err := appctx.GetOrFetch(rc, "task_status:2", func(context.Context) (int, error) { return 2, nil })
	if err != nil {
		t.Fatalf("GetOrFetch(2) error = %v", err)
	}

	if a != 1 || b != 2 {
		t.Errorf("GetOrFetch() = %d, %d; want 1, 2", a, b)
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	if _, err := appctx.GetOrFetch(rc, "key", func(context.Context) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("GetOrFetch() error = %v", err)
	}

	_, err := appctx.GetOrFetch(rc, "key", func(context.Context) (string, error) { return "x", nil })
	if !errors.Is(err, appctx.ErrTypeMismatch) {
		t.Errorf("GetOrFetch() error = %v, want %v", err, appctx.ErrTypeMismatch)
	}
}

func TestGetOrFetch_ConcurrentMissesShareFetch(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 7, nil
	}

	var wg sync.WaitGroup
	for range 4 {
		wg.Go(func() {
			v, err := appctx.GetOrFetch(rc, "stats", fetch)
			if err != nil || v != 7 {
				t.Errorf("GetOrFetch() = %d, %v; want 7, nil", v, err)
			}
		})
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("fetch called %d times, want 1", n)
	}
}

func TestForget(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	var calls atomic.Int32
	fetch := func(context.Context) (int32, error) { return calls.Add(1), nil }

	first, _ := appctx.GetOrFetch(rc, "task_statuses", fetch)
	rc.Forget("task_statuses", "unknown")
	second, _ := appctx.GetOrFetch(rc, "task_statuses", fetch)

	if first != 1 || second != 2 {
		t.Errorf("GetOrFetch() around Forget = %d, %d; want 1, 2", first, second)
	}
}

func TestDataProvider(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	p := appctx.NewDataProvider("task_statuses", counting(&calls, []status{{"Urgent task"}}, nil))
	if p.Key() != "task_statuses" {
		t.Errorf("Key() = %q, want task_statuses", p.Key())
	}

	ctx := appctx.WithRequestContext(context.Background(), appctx.New(context.Background()))
	for range 2 {
		got, err := p.Get(ctx)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if want := []status{{"Urgent task"}}; !slices.Equal(got, want) {
			t.Errorf("Get() = %v, want %v", got, want)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("fetch called %d times within a request, want 1", n)
	}

	// Without a RequestContext every call fetches.
	for range 2 {
		if _, err := p.Get(context.Background()); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("fetch called %d times, want 3", n)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if _, ok := appctx.FromContext(context.Background()); ok {
		t.Error("FromContext() found a RequestContext in a bare context")
	}

	rc := appctx.New(context.Background())
	got, ok := appctx.FromContext(appctx.WithRequestContext(context.Background(), rc))
	if !ok || got != rc {
		t.Errorf("FromContext() = %p, %v; want %p, true", got, ok, rc)
	}

	if _, ok := appctx.FromContext(appctx.WithRequestContext(context.Background(), nil)); ok {
		t.Error("FromContext() accepted a nil RequestContext")
	}
}
