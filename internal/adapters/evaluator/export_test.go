package evaluator

import (
	"net/http"
	"time"

	"go.trai.ch/courier/internal/core/ports"
)

// NewSubmitterWithClient exposes the client injection used by tests.
func NewSubmitterWithClient(
	logger ports.Logger, schedule []time.Duration, maxAttempts int, client *http.Client,
) *Submitter {
	return newSubmitterWithClient(logger, schedule, maxAttempts, client)
}
