// Package scheduler implements the bounded worker pool that executes accepted pipeline runs.
package scheduler

import (
	"context"
	"sync"

	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Dispatcher = (*Scheduler)(nil)

// TaskStatus represents the position of a run inside the worker pool.
type TaskStatus string

const (
	// StatusPending indicates the run is queued and no worker has taken it yet.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates a worker is executing the run.
	StatusRunning TaskStatus = "Running"
)

// Runner executes one pipeline run to a terminal stage.
type Runner interface {
	Run(ctx context.Context, run domain.PipelineRun) domain.RunResult
}

// Scheduler owns a bounded queue of runs and the workers that drain it.
// Dispatch never waits for a run to execute; it blocks only while the queue is full.
type Scheduler struct {
	runner  Runner
	logger  ports.Logger
	workers int
	queue   chan domain.PipelineRun

	stop     chan struct{}
	stopOnce sync.Once

	// mu guards closed; Dispatch holds it shared while sending so Close never closes the queue under a sender.
	mu     sync.RWMutex
	closed bool

	statusMu   sync.Mutex
	taskStatus map[string]TaskStatus
}

// NewScheduler creates a scheduler with the given number of workers and queue capacity.
func NewScheduler(runner Runner, logger ports.Logger, workers, queueSize int) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Scheduler{
		runner:     runner,
		logger:     logger,
		workers:    workers,
		queue:      make(chan domain.PipelineRun, queueSize),
		stop:       make(chan struct{}),
		taskStatus: make(map[string]TaskStatus),
	}
}

// Dispatch enqueues run. It fails when the scheduler is closed or ctx ends while the queue is full.
func (s *Scheduler) Dispatch(ctx context.Context, run domain.PipelineRun) error {
	key := run.Identity.Key()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return dispatchErr(domain.ErrSchedulerClosed, key)
	}

	s.setStatus(key, StatusPending)
	select {
	case s.queue <- run:
		return nil
	case <-s.stop:
		s.clearStatus(key)
		return dispatchErr(domain.ErrSchedulerClosed, key)
	case <-ctx.Done():
		s.clearStatus(key)
		return dispatchErr(ctx.Err(), key)
	}
}

func dispatchErr(cause error, key string) error {
	return zerr.With(zerr.Wrap(cause, "enqueue run"), "key", key)
}

// Run starts the workers and blocks until the queue is closed and drained, or ctx ends.
// Runs still queued when ctx ends are dropped; their identities stay marked.
func (s *Scheduler) Run(ctx context.Context) error {
	var g errgroup.Group
	for i := range s.workers {
		g.Go(func() error {
			s.work(ctx, i)
			return nil
		})
	}
	err := g.Wait()

	for run := range s.drain() {
		s.logger.Warn("dropping queued run", "key", run.Identity.Key())
	}
	return err
}

// Close stops accepting runs. Workers finish the queued runs before Run returns.
func (s *Scheduler) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.closed = true
		close(s.queue)
	})
}

// Active returns the number of runs queued or executing.
func (s *Scheduler) Active() int {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	return len(s.taskStatus)
}

func (s *Scheduler) work(ctx context.Context, worker int) {
	for {
		select {
		case <-ctx.Done():
			return
		case run, ok := <-s.queue:
			if !ok {
				return
			}
			s.execute(ctx, worker, run)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, worker int, run domain.PipelineRun) {
	key := run.Identity.Key()
	s.setStatus(key, StatusRunning)
	defer s.clearStatus(key)
	defer zerr.Defer(func(err error) {
		s.logger.Error(err, "key", key, "worker", worker)
	})

	s.runner.Run(ctx, run)
}

// drain returns the runs left in a closed queue. An open queue yields nothing.
func (s *Scheduler) drain() func(yield func(domain.PipelineRun) bool) {
	return func(yield func(domain.PipelineRun) bool) {
		s.mu.RLock()
		closed := s.closed
		s.mu.RUnlock()
		if !closed {
			return
		}
		for run := range s.queue {
			s.clearStatus(run.Identity.Key())
			if !yield(run) {
				return
			}
		}
	}
}

func (s *Scheduler) setStatus(key string, status TaskStatus) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.taskStatus[key] = status
}

func (s *Scheduler) clearStatus(key string) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	delete(s.taskStatus, key)
}
