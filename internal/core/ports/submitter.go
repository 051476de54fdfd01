package ports

import (
	"context"

	"go.trai.ch/courier/internal/core/domain"
)

// Submitter reports a completed deployment to the evaluator.
//
//go:generate go run go.uber.org/mock/mockgen -source=submitter.go -destination=mocks/mock_submitter.go -package=mocks
type Submitter interface {
	// Deliver posts payload to url, retrying on failure, and reports whether it was acknowledged.
	Deliver(ctx context.Context, url string, payload domain.SubmissionPayload) domain.DeliveryOutcome
}
