package session

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock reports the current playback position.
type Clock interface {
	PositionMs() int
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() int

// PositionMs calls f.
func (f ClockFunc) PositionMs() int { return f() }

// WallClock advances in real time from a starting offset and can be paused
// and seeked.
type WallClock struct {
	mu        sync.Mutex
	now       func() time.Time
	base      int
	startedAt time.Time
	paused    bool
}

// NewWallClock returns a running clock positioned at startMs.
func NewWallClock(startMs int) *WallClock {
	return newWallClock(startMs, time.Now)
}

func newWallClock(startMs int, now func() time.Time) *WallClock {
	if startMs < 0 {
		startMs = 0
	}
	return &WallClock{now: now, base: startMs, startedAt: now()}
}

// PositionMs returns the elapsed playback position.
func (c *WallClock) PositionMs() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position()
}

func (c *WallClock) position() int {
	if c.paused {
		return c.base
	}
	return c.base + int(c.now().Sub(c.startedAt)/time.Millisecond)
}

// Pause freezes the position. Pausing a paused clock does nothing.
func (c *WallClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.base = c.position()
	c.paused = true
}

// Resume restarts a paused clock.
func (c *WallClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.startedAt = c.now()
	c.paused = false
}

// Paused reports whether the clock is paused.
func (c *WallClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Seek moves the clock to ms, keeping its paused state.
func (c *WallClock) Seek(ms int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ms < 0 {
		ms = 0
	}
	c.base = ms
	c.startedAt = c.now()
}

// ManualClock only moves when told to. Useful for tests and scripted input.
type ManualClock struct {
	pos atomic.Int64
}

// Set moves the clock to ms.
func (c *ManualClock) Set(ms int) { c.pos.Store(int64(ms)) }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.pos.Add(int64(d / time.Millisecond))
}

// PositionMs returns the current position.
func (c *ManualClock) PositionMs() int { return int(c.pos.Load()) }
