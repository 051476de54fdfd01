package ports

import (
	"context"

	"go.trai.ch/courier/internal/core/domain"
)

// Dispatcher hands accepted runs to background execution.
//
//go:generate go run go.uber.org/mock/mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks
type Dispatcher interface {
	// Dispatch enqueues run and returns without waiting for it to execute.
	// It blocks only while the queue is full and returns an error if ctx ends first
	// or the dispatcher no longer accepts work.
	Dispatch(ctx context.Context, run domain.PipelineRun) error
}
