// Package httpapi implements the inbound HTTP interface for task deliveries.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// MaxBodyBytes bounds the size of a task delivery.
	MaxBodyBytes = 1 << 20

	readHeaderTimeout = 10 * time.Second
)

// Intake decides what to do with an authenticated task delivery.
type Intake interface {
	Accept(ctx context.Context, req *domain.TaskRequest) (domain.Decision, error)
}

// Server serves the task intake endpoint and the liveness probes.
type Server struct {
	intake          Intake
	logger          ports.Logger
	addr            string
	shutdownTimeout time.Duration
}

// NewServer creates a new Server.
func NewServer(intake Intake, logger ports.Logger, s domain.ServerSettings) *Server {
	return &Server{
		intake:          intake,
		logger:          logger,
		addr:            s.Addr,
		shutdownTimeout: s.ShutdownTimeout,
	}
}

// Handler returns the routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/task", s.handleTask)
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// Serve listens on the configured address until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	lis, err := new(net.ListenConfig).Listen(ctx, "tcp", s.addr)
	if err != nil {
		return zerr.With(domain.WrapCause(domain.ErrServerFailed, err), "addr", s.addr)
	}
	return s.ServeListener(ctx, lis)
}

// ServeListener serves on lis until ctx is cancelled, then stops accepting
// connections and waits for in-flight requests up to the shutdown timeout.
func (s *Server) ServeListener(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()

	s.logger.Info("listening", "addr", lis.Addr().String())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, "http shutdown")
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return domain.WrapCause(domain.ErrServerFailed, err)
	}
}
