package search

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into one callback with
// cancel-and-restart semantics: every Trigger resets the timer and only
// the last pending invocation fires. Used to settle free-text input and
// change-broadcast storms.
type Debouncer struct {
	delay time.Duration
	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = 200 * time.Millisecond
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the settle delay, cancelling any pending
// invocation first.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
