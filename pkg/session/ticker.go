package session

import (
	"context"
	"sync"
	"time"
)

// Poll interval bounds.
const (
	DefaultInterval = 100 * time.Millisecond
	MinInterval     = 16 * time.Millisecond
)

// ClampInterval applies the default to an unset interval and the floor to a
// too small one.
func ClampInterval(d time.Duration) time.Duration {
	switch {
	case d == 0:
		return DefaultInterval
	case d < MinInterval:
		return MinInterval
	default:
		return d
	}
}

// Ticker calls a function at a fixed interval from a single goroutine.
// Starting a running Ticker cancels the old loop and waits for it before the
// new one begins, so at most one loop exists and calls never overlap.
type Ticker struct {
	fn func(context.Context)

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	interval time.Duration
}

// NewTicker returns a stopped ticker that will call fn.
func NewTicker(fn func(context.Context)) *Ticker {
	return &Ticker{fn: fn}
}

// Start (re)arms the ticker and returns the interval actually used.
func (t *Ticker) Start(ctx context.Context, interval time.Duration) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()

	interval = ClampInterval(interval)
	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	t.cancel = cancel
	t.done = done
	t.interval = interval

	go t.run(loopCtx, interval, done)
	return interval
}

func (t *Ticker) run(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			t.fn(ctx)
		}
	}
}

// Stop cancels the loop and waits for it to exit. Safe to call repeatedly.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Ticker) stopLocked() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.cancel = nil
	t.done = nil
	t.interval = 0
}

// Running reports whether a loop is armed.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// Interval returns the interval of the armed loop, or zero when stopped.
func (t *Ticker) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// Done returns a channel closed when the current loop exits, or nil when
// stopped. The loop exits on Stop, on restart, or when the Start context ends.
func (t *Ticker) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}
