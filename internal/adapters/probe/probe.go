// Package probe implements the verification poller for published artifacts.
package probe

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Poller)(nil)

// Poller implements ports.Verifier by issuing GET requests at a fixed interval.
type Poller struct {
	httpClient *http.Client
	interval   time.Duration
}

// NewPoller creates a Poller probing every interval, each probe bounded by requestTimeout.
func NewPoller(interval, requestTimeout time.Duration) *Poller {
	return newPollerWithClient(interval, &http.Client{Timeout: requestTimeout})
}

func newPollerWithClient(interval time.Duration, client *http.Client) *Poller {
	return &Poller{httpClient: client, interval: interval}
}

// WaitUntilLive probes url until a 2xx answer or until timeout elapses.
// The first probe is immediate. Failures are never surfaced as errors.
func (p *Poller) WaitUntilLive(ctx context.Context, url string, timeout time.Duration) bool {
	if timeout <= 0 {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	operation := func() error {
		return p.probe(ctx, url)
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(p.interval), ctx)
	return backoff.Retry(operation, b) == nil
}

func (p *Poller) probe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		// A malformed URL will never become live.
		return backoff.Permanent(zerr.Wrap(err, "failed to build probe request"))
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return zerr.Wrap(err, "probe request failed")
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zerr.With(zerr.New("site not live"), "status", resp.StatusCode)
	}
	return nil
}
