package probe

import (
	"net/http"
	"time"
)

// NewPollerWithClient exposes the client injection used by tests.
func NewPollerWithClient(interval time.Duration, client *http.Client) *Poller {
	return newPollerWithClient(interval, client)
}
