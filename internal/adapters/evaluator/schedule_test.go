package evaluator

import (
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
)

func TestScheduleBackOff(t *testing.T) {
	waits := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}
	b := newScheduleBackOff(waits, 5)

	var got []time.Duration
	for d := b.NextBackOff(); d != backoff.Stop; d = b.NextBackOff() {
		got = append(got, d)
	}
	assert.Equal(t, waits[:4], got, "five attempts need four waits")

	b.Reset()
	assert.Equal(t, time.Second, b.NextBackOff())
}

func TestScheduleBackOff_ShortSchedule(t *testing.T) {
	b := newScheduleBackOff([]time.Duration{time.Second}, 5)

	assert.Equal(t, time.Second, b.NextBackOff())
	assert.Equal(t, backoff.Stop, b.NextBackOff())
}

func TestScheduleBackOff_SingleAttempt(t *testing.T) {
	b := newScheduleBackOff([]time.Duration{time.Second}, 1)
	assert.Equal(t, backoff.Stop, b.NextBackOff())
}
