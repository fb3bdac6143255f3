package util

import (
	"sync"
	"time"
)

// Debouncer delays running a function until its trigger has been quiet for the
// configured interval. Rapid successive triggers collapse to one run, which is
// how the interactive search prompt avoids a request per keystroke.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules fn after the quiet interval, cancelling any pending run.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
