// Package debounce provides a cancellable-timer primitive: each
// scheduled call cancels any previously scheduled one, so only the last
// call in a burst fires.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delays function calls until the caller has been quiet for
// the configured interval. Safe for concurrent use.
type Debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
}

// New creates a Debouncer with the given quiet interval
func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Schedule arms the timer for fn, cancelling any previously scheduled
// call that has not yet fired.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending call
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
