// Package app implements the application layer for courier.
package app

import (
	"context"
	"time"

	"go.trai.ch/courier/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Server serves task deliveries until ctx is cancelled.
type Server interface {
	Serve(ctx context.Context) error
}

// WorkerPool executes dispatched runs.
type WorkerPool interface {
	Run(ctx context.Context) error
	Close()
	Active() int
}

// Watcher reloads durable state changed by other processes.
type Watcher interface {
	Run(ctx context.Context) error
}

// App represents the main application logic.
type App struct {
	settings *domain.Settings
	logger   ports.Logger
	store    ports.KeyStore
	journal  ports.CompletionJournal
	tracer   ports.Tracer
	server   Server
	workers  WorkerPool
	watcher  Watcher
}

// New creates a new App instance.
func New(
	settings *domain.Settings,
	log ports.Logger,
	store ports.KeyStore,
	journal ports.CompletionJournal,
	tracer ports.Tracer,
	server Server,
	workers WorkerPool,
	watcher Watcher,
) *App {
	return &App{
		settings: settings,
		logger:   log,
		store:    store,
		journal:  journal,
		tracer:   tracer,
		server:   server,
		workers:  workers,
		watcher:  watcher,
	}
}

// Serve runs the HTTP listener, the worker pool and, when enabled, the key store watcher.
// Cancelling ctx stops the listener first; queued and running pipeline runs then get
// up to server.shutdown_timeout to finish before they are cancelled.
func (a *App) Serve(ctx context.Context) error {
	if err := config.ValidateIdentity(a.settings); err != nil {
		return err
	}

	// Workers outlive ctx so that runs can drain after the listener stops.
	workerCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorkers()

	drained := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(drained)
		return a.workers.Run(workerCtx)
	})

	g.Go(func() error {
		defer a.workers.Close()
		return a.server.Serve(gctx)
	})

	g.Go(func() error {
		select {
		case <-drained:
			return nil
		case <-gctx.Done():
		}

		a.workers.Close()
		if active := a.workers.Active(); active > 0 {
			a.logger.Info("waiting for runs to finish", "active", active)
		}

		timer := time.NewTimer(a.settings.Server.ShutdownTimeout)
		defer timer.Stop()
		select {
		case <-drained:
		case <-timer.C:
			a.logger.Warn("shutdown timeout reached, cancelling runs", "active", a.workers.Active())
			stopWorkers()
		}
		return nil
	})

	if a.settings.Store.WatchEnabled() {
		g.Go(func() error {
			return a.watcher.Run(gctx)
		})
	}

	err := g.Wait()
	if shutdownErr := a.tracer.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
		a.logger.Error(zerr.Wrap(shutdownErr, "flush telemetry"))
	}
	return err
}

// ListKeys returns the processed identity keys in lexical order.
// With pending set, keys whose runs reached the completed stage are left out.
func (a *App) ListKeys(pending bool) []string {
	keys := a.store.Keys()
	if !pending {
		return keys
	}

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if !a.journal.Completed(k) {
			out = append(out, k)
		}
	}
	return out
}

// ForgetKeys removes keys from the processed set so that a redelivery runs again.
// Nothing is removed when any key is unknown.
func (a *App) ForgetKeys(keys ...string) error {
	if err := a.store.Forget(keys...); err != nil {
		return err
	}
	if err := a.journal.Forget(keys...); err != nil {
		return zerr.Wrap(err, "forget completed keys")
	}
	for _, k := range keys {
		a.logger.Info("forgot key", "key", k)
	}
	return nil
}
