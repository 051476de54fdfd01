// Package intake implements the admission decision for task deliveries.
package intake

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/zerr"
)

// Gate authenticates deliveries and admits each task identity at most once.
type Gate struct {
	secret     []byte
	email      string
	store      ports.KeyStore
	dispatcher ports.Dispatcher
	logger     ports.Logger
	now        func() time.Time
}

// NewGate creates a gate for the configured identity.
func NewGate(
	identity domain.IdentitySettings,
	store ports.KeyStore,
	dispatcher ports.Dispatcher,
	logger ports.Logger,
) *Gate {
	return &Gate{
		secret:     []byte(identity.Secret),
		email:      identity.Email,
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Accept decides what to do with req. Rejections are returned as errors and leave no state behind.
// A new identity is marked in the key store before its run is dispatched; it stays marked even
// when dispatch fails.
func (g *Gate) Accept(ctx context.Context, req *domain.TaskRequest) (domain.Decision, error) {
	if subtle.ConstantTimeCompare([]byte(req.Secret), g.secret) != 1 {
		g.logger.Warn("task rejected", "reason", "invalid secret", "task", req.Task)
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidSecret, "check secret"), "task", req.Task)
	}
	if req.Email != g.email {
		g.logger.Warn("task rejected", "reason", "email mismatch", "task", req.Task)
		return "", zerr.With(zerr.Wrap(domain.ErrEmailMismatch, "check identity"), "email", req.Email)
	}
	if err := req.Validate(); err != nil {
		g.logger.Warn("task rejected", "reason", "invalid request", "task", req.Task)
		return "", err
	}

	key := req.Identity().Key()
	present, err := g.store.ContainsAndInsert(key)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "mark task identity"), "key", key)
	}
	if present {
		g.logger.Info("duplicate task ignored", "key", key)
		return domain.Duplicate, nil
	}

	run := domain.NewPipelineRun(*req, g.now())
	if err := g.dispatcher.Dispatch(ctx, run); err != nil {
		err = zerr.With(fmt.Errorf("%w: %w", domain.ErrDispatchFailed, err), "key", key)
		g.logger.Error(err)
		return "", err
	}

	g.logger.Info("task accepted", "key", key, "round", req.Round)
	return domain.Accepted, nil
}
