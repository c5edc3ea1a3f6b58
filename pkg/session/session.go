// Package session tracks which lyric line is active as playback advances.
//
// A Session holds the current parsed sequence and active index. A Player
// polls a Clock on a single owned Ticker and reports index changes to a Sink.
package session

import (
	"sync"
	"sync/atomic"

	"github.com/ccollicutt/lyricsync/pkg/lrc"
)

// Snapshot is an immutable view of a session.
type Snapshot struct {
	// Lines is the current parsed sequence. It must not be modified.
	Lines []lrc.Line

	// Active is the index of the active line, or -1.
	Active int

	// Version increments on every Load.
	Version uint64
}

// Change describes the active line moving.
type Change struct {
	Index      int      `json:"index"`
	Previous   int      `json:"previous"`
	Line       lrc.Line `json:"line"`
	PositionMs int      `json:"position_ms"`
	Version    uint64   `json:"version"`
}

// Session is safe for concurrent use. Readers always see a complete
// sequence; Load replaces it wholesale.
type Session struct {
	mu   sync.Mutex // serializes writers
	snap atomic.Pointer[Snapshot]
}

// New returns an empty session.
func New() *Session {
	s := &Session{}
	s.snap.Store(&Snapshot{Active: -1})
	return s
}

// Load replaces the parsed sequence and clears the active index.
func (s *Session) Load(lines []lrc.Line) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := &Snapshot{
		Lines:   lines,
		Active:  -1,
		Version: s.snap.Load().Version + 1,
	}
	s.snap.Store(next)
	return *next
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return *s.snap.Load()
}

// Tick resolves the active line for positionMs. It returns false when the
// active index did not change.
func (s *Session) Tick(positionMs int) (Change, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snap.Load()
	i := lrc.ActiveIndex(cur.Lines, positionMs)
	if i == cur.Active {
		return Change{}, false
	}

	s.snap.Store(&Snapshot{Lines: cur.Lines, Active: i, Version: cur.Version})

	c := Change{
		Index:      i,
		Previous:   cur.Active,
		PositionMs: positionMs,
		Version:    cur.Version,
	}
	if i >= 0 {
		c.Line = cur.Lines[i]
	}
	return c, true
}
