package keystore

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of file events into a single callback.
// An atomic rewrite produces several events (create, write, rename) for one logical change.
type debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	window   time.Duration
	callback func()
}

func newDebouncer(window time.Duration, callback func()) *debouncer {
	return &debouncer{window: window, callback: callback}
}

// Trigger schedules the callback, restarting the window if one is pending.
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		d.callback()
	}
}

// Stop cancels a pending callback.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
