package probe_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/courier/internal/adapters/probe"
)

// roundTripFunc serves requests without sockets so tests can run on the synctest clock.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func response(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("")),
		Header:     make(http.Header),
	}
}

type probeLog struct {
	mu    sync.Mutex
	times []time.Duration
}

func (l *probeLog) add(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.times = append(l.times, d)
}

func (l *probeLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.times)
}

func TestPoller_AlwaysFailing(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		start := time.Now()
		log := &probeLog{}
		client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			log.add(time.Since(start))
			return response(http.StatusNotFound), nil
		})}
		p := probe.NewPollerWithClient(5*time.Second, client)

		live := p.WaitUntilLive(t.Context(), "https://me.github.io/t-r1/", 28*time.Second)

		assert.False(t, live)
		assert.Equal(t, 28*time.Second, time.Since(start))
		// Probes at 0, 5, 10, 15, 20, 25 seconds.
		assert.Equal(t, 6, log.count())
	})
}

func TestPoller_BecomesLive(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		start := time.Now()
		calls := 0
		client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			calls++
			if calls < 3 {
				return response(http.StatusNotFound), nil
			}
			return response(http.StatusOK), nil
		})}
		p := probe.NewPollerWithClient(5*time.Second, client)

		live := p.WaitUntilLive(t.Context(), "https://me.github.io/t-r1/", time.Minute)

		assert.True(t, live)
		assert.Equal(t, 10*time.Second, time.Since(start))
	})
}

func TestPoller_TransportErrors(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})}
		p := probe.NewPollerWithClient(time.Second, client)

		assert.False(t, p.WaitUntilLive(t.Context(), "https://me.github.io/t-r1/", 3*time.Second))
	})
}

func TestPoller_Cancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		start := time.Now()
		client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return response(http.StatusServiceUnavailable), nil
		})}
		p := probe.NewPollerWithClient(time.Second, client)

		ctx, cancel := context.WithTimeout(t.Context(), 2500*time.Millisecond)
		defer cancel()

		assert.False(t, p.WaitUntilLive(ctx, "https://me.github.io/t-r1/", time.Hour))
		assert.Equal(t, 2500*time.Millisecond, time.Since(start))
	})
}

func TestPoller_InvalidInputs(t *testing.T) {
	p := probe.NewPoller(time.Second, time.Second)

	assert.False(t, p.WaitUntilLive(t.Context(), "https://me.github.io/", 0))
	assert.False(t, p.WaitUntilLive(t.Context(), "://bad", time.Minute))
}
