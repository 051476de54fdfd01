package ports

import (
	"context"
	"time"
)

// Verifier checks that a published artifact is being served.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// WaitUntilLive polls url until it answers with a 2xx status or timeout elapses.
	// It never returns an error; false means the artifact was not observed live.
	WaitUntilLive(ctx context.Context, url string, timeout time.Duration) bool
}
