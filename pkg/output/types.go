// Package output formats parsed lyrics, active line views and playback events.
package output

import (
	"github.com/ccollicutt/lyricsync/pkg/lrc"
	"github.com/ccollicutt/lyricsync/pkg/session"
	"github.com/ccollicutt/lyricsync/pkg/source"
)

// DocumentReport is a parsed lyrics file ready for rendering.
type DocumentReport struct {
	Path    string     `json:"path"`
	Mode    lrc.Mode   `json:"mode"`
	Summary Summary    `json:"summary"`
	Lines   []lrc.Line `json:"lines"`
}

// Summary provides aggregate statistics about a sequence.
type Summary struct {
	Total   int `json:"total"`
	Timed   int `json:"timed"`
	Untimed int `json:"untimed"`

	// FirstMs and LastMs bound the timed lines, -1 when there are none.
	FirstMs int `json:"first_ms"`
	LastMs  int `json:"last_ms"`
}

// Summarize counts the lines of a sorted sequence.
func Summarize(lines []lrc.Line) Summary {
	s := Summary{Total: len(lines), FirstMs: -1, LastMs: -1}
	for _, l := range lines {
		if !l.Timed() {
			s.Untimed++
			continue
		}
		if s.Timed == 0 {
			s.FirstMs = l.OffsetMs
		}
		s.LastMs = l.OffsetMs
		s.Timed++
	}
	return s
}

// NewDocumentReport wraps a loaded document.
func NewDocumentReport(doc *source.Document) *DocumentReport {
	return &DocumentReport{
		Path:    doc.Path,
		Mode:    doc.Mode,
		Summary: Summarize(doc.Lines),
		Lines:   doc.Lines,
	}
}

// WindowLine is one line in an active view.
type WindowLine struct {
	Index  int      `json:"index"`
	Line   lrc.Line `json:"line"`
	Active bool     `json:"active,omitempty"`
}

// ActiveView is the active line and up to Context lines on either side.
type ActiveView struct {
	Path       string       `json:"path,omitempty"`
	PositionMs int          `json:"position_ms"`
	Index      int          `json:"index"`
	Window     []WindowLine `json:"window"`
}

// Active returns the active window line, or nil when no line is active.
func (v *ActiveView) Active() *WindowLine {
	for i := range v.Window {
		if v.Window[i].Active {
			return &v.Window[i]
		}
	}
	return nil
}

// NewActiveView builds a view of lines around index. With no active line the
// window starts at the top of the sequence.
func NewActiveView(lines []lrc.Line, index, positionMs, context int) *ActiveView {
	v := &ActiveView{PositionMs: positionMs, Index: index, Window: []WindowLine{}}
	if len(lines) == 0 {
		return v
	}
	if context < 0 {
		context = 0
	}

	center := index
	if center < 0 {
		center = 0
	}
	lo := center - context
	if lo < 0 {
		lo = 0
	}
	hi := center + context
	if hi >= len(lines) {
		hi = len(lines) - 1
	}

	for i := lo; i <= hi; i++ {
		v.Window = append(v.Window, WindowLine{Index: i, Line: lines[i], Active: i == index})
	}
	return v
}

// EventType names a playback event.
type EventType string

const (
	EventLoad   EventType = "load"
	EventChange EventType = "change"
)

// Event is one entry of the playback stream.
type Event struct {
	Type EventType `json:"event"`

	// Version is the session version the event belongs to.
	Version uint64 `json:"version"`

	// Summary is set for load events.
	Summary *Summary `json:"summary,omitempty"`

	// View is set for change events.
	View *ActiveView `json:"view,omitempty"`
}

// NewChangeEvent builds a change event from a session change.
func NewChangeEvent(c session.Change, lines []lrc.Line, context int) *Event {
	return &Event{
		Type:    EventChange,
		Version: c.Version,
		View:    NewActiveView(lines, c.Index, c.PositionMs, context),
	}
}
