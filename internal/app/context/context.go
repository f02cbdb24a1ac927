// Package appctx memoizes reference data for the lifetime of one request.
//
// The AppContext middleware puts a RequestContext into every request context.
// Services read through a DataProvider so that, for example, the status list
// behind a task page is loaded once per request however often it is needed:
//
//	statuses := appctx.NewDataProvider("task_statuses", repo.List)
//	all, err := statuses.Get(ctx)
//
// Writes call Forget for the keys they make stale.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrTypeMismatch means one key was used with two different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

type ctxKey struct{}

// RequestContext is a context.Context with a per-request memo. Entries never
// expire; the memo is discarded with the request.
type RequestContext struct {
	context.Context

	mu     sync.Mutex
	memo   map[string]result
	flight singleflight.Group
}

// result is a memoized fetch outcome. Errors are memoized too.
type result struct {
	value any
	err   error
}

// New returns an empty RequestContext around ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, memo: make(map[string]result)}
}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, if any.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(ctxKey{}).(*RequestContext)
	return rc, ok && rc != nil
}

// GetOrFetch returns the memoized result for key, calling fetch on a miss.
// Concurrent misses on the same key share one fetch.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	res, ok := rc.lookup(key)
	if !ok {
		v, err, _ := rc.flight.Do(key, func() (any, error) {
			if res, ok := rc.lookup(key); ok {
				return res.value, res.err
			}
			v, err := fetch(rc.Context)
			rc.store(key, result{value: v, err: err})
			return v, err
		})
		res = result{value: v, err: err}
	}

	var zero T
	if res.err != nil {
		return zero, res.err
	}
	if res.value == nil {
		return zero, nil
	}
	v, ok := res.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, res.value, zero)
	}
	return v, nil
}

func (rc *RequestContext) lookup(key string) (result, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	res, ok := rc.memo[key]
	return res, ok
}

func (rc *RequestContext) store(key string, res result) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.memo[key] = res
}

// Forget drops the memoized results for keys.
func (rc *RequestContext) Forget(keys ...string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	for _, key := range keys {
		delete(rc.memo, key)
	}
}

// DataProvider binds a memo key to the function that loads it.
type DataProvider[T any] struct {
	key   string
	fetch func(ctx context.Context) (T, error)
}

// NewDataProvider returns a provider for key backed by fetch.
func NewDataProvider[T any](key string, fetch func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetch: fetch}
}

// Key returns the memo key.
func (p *DataProvider[T]) Key() string {
	return p.key
}

// Get loads through the RequestContext carried by ctx, or calls fetch
// directly when there is none.
func (p *DataProvider[T]) Get(ctx context.Context) (T, error) {
	rc, ok := FromContext(ctx)
	if !ok {
		return p.fetch(ctx)
	}
	return GetOrFetch(rc, p.key, p.fetch)
}
