// Package evaluator implements the submission retrier that reports completions.
package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Submitter = (*Submitter)(nil)

// Submitter implements ports.Submitter with a fixed retry schedule.
type Submitter struct {
	httpClient  *http.Client
	logger      ports.Logger
	schedule    []time.Duration
	maxAttempts int
}

// NewSubmitter creates a Submitter making at most maxAttempts POSTs, waiting schedule[i] after failure i.
func NewSubmitter(logger ports.Logger, schedule []time.Duration, maxAttempts int, requestTimeout time.Duration) *Submitter {
	return newSubmitterWithClient(logger, schedule, maxAttempts, &http.Client{Timeout: requestTimeout})
}

func newSubmitterWithClient(
	logger ports.Logger, schedule []time.Duration, maxAttempts int, client *http.Client,
) *Submitter {
	return &Submitter{
		httpClient:  client,
		logger:      logger,
		schedule:    schedule,
		maxAttempts: maxAttempts,
	}
}

// Deliver posts payload to url until it is acknowledged with a 2xx or the attempts run out.
// Exhaustion and cancellation are logged and reported as domain.Exhausted.
func (s *Submitter) Deliver(ctx context.Context, url string, payload domain.SubmissionPayload) domain.DeliveryOutcome {
	key := domain.TaskIdentity{Task: payload.Task, Round: payload.Round, Nonce: payload.Nonce}.Key()

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error(zerr.Wrap(err, "failed to marshal submission"), "key", key)
		return domain.Exhausted
	}

	attempt := 0
	operation := func() error {
		attempt++
		err := s.post(ctx, url, body)
		if err == nil {
			s.logger.Info("submission delivered", "key", key, "attempt", attempt)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		s.logger.Warn("submission attempt failed",
			"key", key, "attempt", attempt, "retry_in", wait.String(), "error", err.Error())
	}

	b := backoff.WithContext(newScheduleBackOff(s.schedule, s.maxAttempts), ctx)
	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		s.logger.Error(zerr.With(zerr.With(domain.WrapCause(domain.ErrSubmissionExhausted, err),
			"key", key), "attempts", attempt))
		return domain.Exhausted
	}
	return domain.Delivered
}

func (s *Submitter) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(zerr.Wrap(err, "failed to build submission request"))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return zerr.Wrap(err, "submission request failed")
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zerr.With(zerr.New("evaluator rejected submission"), "status", resp.StatusCode)
	}
	return nil
}
