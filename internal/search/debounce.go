package search

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounceDelay is the quiet window applied when none is configured.
// 300ms tracks the cadence of an on-screen keyboard.
const DefaultDebounceDelay = 300 * time.Millisecond

// pendingCall tracks the scheduled execution for one key.
type pendingCall struct {
	timer  *time.Timer
	cancel context.CancelFunc
}

// Debouncer coalesces bursts of calls sharing a key so that only the last
// call within the quiet window executes. At most one scheduled execution
// exists per key at any time; scheduling a new call cancels and replaces the
// previous one under a single lock, and also cancels the context of an
// execution already in flight so superseded fetches can be abandoned.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[string]*pendingCall
}

// NewDebouncer creates a debouncer with the given quiet window.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{
		delay:   delay,
		pending: make(map[string]*pendingCall),
	}
}

// Call schedules fn to run after the quiet window, replacing any pending
// call under the same key. The context passed to fn is cancelled when a
// later Call for the same key supersedes it, or when Clear/ClearAll runs.
func (d *Debouncer) Call(key string, fn func(ctx context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.pending[key]; ok {
		prev.timer.Stop()
		prev.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	call := &pendingCall{cancel: cancel}
	call.timer = time.AfterFunc(d.delay, func() {
		fn(ctx)

		d.mu.Lock()
		if d.pending[key] == call {
			delete(d.pending, key)
			cancel()
		}
		d.mu.Unlock()
	})
	d.pending[key] = call
}

// Clear cancels the pending call for key, if any, without executing it.
func (d *Debouncer) Clear(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if call, ok := d.pending[key]; ok {
		call.timer.Stop()
		call.cancel()
		delete(d.pending, key)
	}
}

// ClearAll cancels every pending call without executing any of them.
func (d *Debouncer) ClearAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, call := range d.pending {
		call.timer.Stop()
		call.cancel()
		delete(d.pending, key)
	}
}

// Pending returns the number of keys with a scheduled call.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
