package session

import (
	"context"
	"sync"
	"time"
)

// Debouncer coalesces rapid calls into one, the way the dashboard debounces
// autocomplete keystrokes. Each Do supersedes the previous one: its pending
// timer is stopped and its context cancelled, so a slow in-flight request
// can never overwrite the results of a newer one.
type Debouncer struct {
	delay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do schedules fn after the debounce delay, cancelling any earlier pending
// or in-flight invocation.
func (d *Debouncer) Do(ctx context.Context, fn func(ctx context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	if d.cancel != nil {
		d.cancel()
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.timer = time.AfterFunc(d.delay, func() {
		fn(runCtx)
	})
}

// Stop cancels any pending or in-flight invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.cancel != nil {
		d.cancel()
	}
}
