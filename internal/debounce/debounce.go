// Package debounce coalesces bursts of calls into one trailing invocation.
//
// A Debouncer owns an explicit cancelable timer: each Call resets it, and the
// wrapped function runs once with the most recent argument after the quiet
// window passes with no further calls. Nothing is returned to callers; the
// wrapped function handles its own completion.
package debounce

import (
	"sync"
	"time"
)

// DefaultQuiet is the quiet window used when a caller passes zero.
const DefaultQuiet = 500 * time.Millisecond

// Debouncer wraps a single-argument function so rapid calls collapse into
// one trailing invocation. Safe for concurrent use.
type Debouncer[T any] struct {
	fn    func(T)
	quiet time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending T
	armed   bool
}

// New returns a Debouncer around fn with the given quiet window.
func New[T any](fn func(T), quiet time.Duration) *Debouncer[T] {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Debouncer[T]{fn: fn, quiet: quiet}
}

// Call schedules fn(arg) after the quiet window. A call arriving before the
// pending timer fires cancels it and reschedules with the new argument, so a
// burst of N calls produces exactly one invocation, with the last argument.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = arg
	d.armed = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.gen
	d.timer = time.AfterFunc(d.quiet, func() { d.fire(gen) })
}

// Cancel drops any pending invocation.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.armed = false
}

// Flush runs any pending invocation immediately instead of waiting out the
// quiet window. Useful at shutdown and in tests.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	gen := d.gen
	d.mu.Unlock()
	d.fire(gen)
}

// fire runs the pending invocation if gen still identifies the latest Call.
// A timer that was superseded between its expiry and acquiring the lock is
// dropped here rather than running with a stale schedule.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if !d.armed || gen != d.gen {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	arg := d.pending
	var zero T
	d.pending = zero
	d.armed = false
	d.mu.Unlock()

	d.fn(arg)
}
