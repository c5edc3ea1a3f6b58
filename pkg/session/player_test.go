package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/lyricsync/pkg/lrc"
)

type recordingSink struct {
	mu      sync.Mutex
	loads   [][]lrc.Line
	changes []Change
	err     error
}

func (s *recordingSink) Loaded(lines []lrc.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads = append(s.loads, lines)
	return s.err
}

func (s *recordingSink) Changed(c Change) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changes = append(s.changes, c)
	return s.err
}

func (s *recordingSink) changeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.changes)
}

func TestPlayer_LoadResolvesImmediately(t *testing.T) {
	var clock ManualClock
	clock.Set(2500)
	sink := &recordingSink{}
	p := NewPlayer(&clock, sink)

	p.Load(testLines())

	require.Len(t, sink.loads, 1)
	require.Len(t, sink.changes, 1)
	assert.Equal(t, "two", sink.changes[0].Line.Text)
}

func TestPlayer_Poll(t *testing.T) {
	var clock ManualClock
	sink := &recordingSink{}
	p := NewPlayer(&clock, sink)
	p.Load(testLines())
	assert.Empty(t, sink.changes)

	clock.Set(1000)
	p.Poll()
	clock.Set(1200)
	p.Poll()
	clock.Set(3000)
	p.Poll()

	require.Len(t, sink.changes, 2)
	assert.Equal(t, 0, sink.changes[0].Index)
	assert.Equal(t, 2, sink.changes[1].Index)
	assert.Equal(t, 2, p.Session().Snapshot().Active)
}

func TestPlayer_StartPolls(t *testing.T) {
	var clock ManualClock
	sink := &recordingSink{}
	p := NewPlayer(&clock, sink)
	p.Load(testLines())

	p.Start(context.Background(), MinInterval)
	defer p.Stop()

	clock.Set(1000)
	require.Eventually(t, func() bool { return sink.changeCount() == 1 }, 2*time.Second, 5*time.Millisecond)
	clock.Set(2000)
	require.Eventually(t, func() bool { return sink.changeCount() == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestPlayer_SinkErrors(t *testing.T) {
	var clock ManualClock
	clock.Set(1000)
	sink := &recordingSink{err: errors.New("closed pipe")}

	var got []error
	p := NewPlayer(&clock, sink, WithErrorHandler(func(err error) { got = append(got, err) }))
	p.Load(testLines())

	assert.Len(t, got, 2, "one error from Loaded, one from Changed")
}

func TestPlayer_WithSession(t *testing.T) {
	s := New()
	p := NewPlayer(&ManualClock{}, &recordingSink{}, WithSession(s))
	assert.Same(t, s, p.Session())
}

func TestSinks_FanOut(t *testing.T) {
	ok := &recordingSink{}
	failing := &recordingSink{err: errors.New("closed pipe")}
	last := &recordingSink{}
	sinks := Sinks{ok, failing, last}

	err := sinks.Loaded(testLines())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
	assert.Len(t, ok.loads, 1)
	assert.Len(t, last.loads, 1, "later sinks still run after a failure")

	require.NoError(t, Sinks{ok, last}.Changed(Change{Index: 0}))
	assert.Equal(t, 1, ok.changeCount())
	assert.Equal(t, 1, last.changeCount())
}
