package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/jsamuelsen11/go-task-tracker/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server serves the router on the configured host and port.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
	// bound holds the listener address once Start has bound it.
	bound atomic.Pointer[string]
}

// NewServer builds a Server from cfg. net/http's own error log is routed to
// logger at error level; a nil logger discards everything.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
	return &Server{srv: srv, logger: logger}
}

// Start listens and serves until Shutdown is called, in which case it returns
// nil. Listen failures such as a busy port are returned immediately.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	addr := ln.Addr().String()
	s.bound.Store(&addr)
	s.logger.Info("http server listening", slog.String("addr", addr))

	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("serving http: %w", err)
}

// Shutdown stops accepting connections and waits for in-flight requests until
// ctx is done. Without a deadline on ctx it waits at most 10 seconds.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}
	s.logger.Info("http server shutting down")
	return s.srv.Shutdown(ctx)
}

// Addr is the configured host:port.
func (s *Server) Addr() string { return s.srv.Addr }

// BoundAddr is the listener address, which differs from Addr when port 0 is
// configured. Empty until Start has bound.
func (s *Server) BoundAddr() string {
	if addr := s.bound.Load(); addr != nil {
		return *addr
	}
	return ""
}
