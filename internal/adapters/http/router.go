// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/http/handlers"
)

// Handlers groups the inbound handlers mounted by NewRouter.
type Handlers struct {
	Tasks    *handlers.TaskHandler
	Statuses *handlers.TaskStatusHandler
	Page     *handlers.PageHandler
	Health   *handlers.HealthHandler
}

// RouterOption configures NewRouter.
type RouterOption func(*routerOptions)

type routerOptions struct {
	global []func(http.Handler) http.Handler
	api    []func(http.Handler) http.Handler
}

// WithMiddleware applies middleware to every route, in the order given.
func WithMiddleware(mws ...func(http.Handler) http.Handler) RouterOption {
	return func(o *routerOptions) { o.global = append(o.global, mws...) }
}

// WithAPIMiddleware applies middleware to the /api routes only.
func WithAPIMiddleware(mws ...func(http.Handler) http.Handler) RouterOption {
	return func(o *routerOptions) { o.api = append(o.api, mws...) }
}

// taskPath matches numeric task identifiers only.
const taskPath = "/tasks/{" + handlers.TaskIDParam + ":[0-9]+}"

// NewRouter creates an HTTP handler with all application routes registered.
func NewRouter(h Handlers, opts ...RouterOption) http.Handler {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()
	for _, mw := range o.global {
		r.Use(mw)
	}

	// Health endpoints (outside /api prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Get("/", h.Page.Index)

	r.Route("/api", func(r chi.Router) {
		for _, mw := range o.api {
			r.Use(mw)
		}

		r.Get("/tasks", h.Tasks.List)
		r.Post("/tasks", h.Tasks.Create)
		r.Get("/tasks/statistics", h.Tasks.Statistics)
		r.Put(taskPath, h.Tasks.Update)
		r.Delete(taskPath, h.Tasks.Delete)
		r.Patch(taskPath+"/completed", h.Tasks.Complete)
		r.Patch(taskPath+"/not_completed", h.Tasks.Reopen)

		r.Get("/task-statuses", h.Statuses.List)
	})

	return r
}
