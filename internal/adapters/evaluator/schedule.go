package evaluator

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

var _ backoff.BackOff = (*scheduleBackOff)(nil)

// scheduleBackOff waits the listed durations in order and stops once maxAttempts attempts have been made.
type scheduleBackOff struct {
	waits       []time.Duration
	maxAttempts int
	retries     int
}

func newScheduleBackOff(waits []time.Duration, maxAttempts int) *scheduleBackOff {
	return &scheduleBackOff{waits: waits, maxAttempts: maxAttempts}
}

// NextBackOff returns the wait before the next attempt, or backoff.Stop.
func (b *scheduleBackOff) NextBackOff() time.Duration {
	if b.retries >= b.maxAttempts-1 || b.retries >= len(b.waits) {
		return backoff.Stop
	}
	wait := b.waits[b.retries]
	b.retries++
	return wait
}

// Reset starts the schedule over.
func (b *scheduleBackOff) Reset() {
	b.retries = 0
}
