package output

import (
	"context"
	"io"

	"github.com/ccollicutt/lyricsync/pkg/lrc"
	"github.com/ccollicutt/lyricsync/pkg/session"
)

// StreamSink writes playback events to a writer. It implements session.Sink.
// Calls must not be concurrent; session.Player serializes them.
type StreamSink struct {
	ctx       context.Context
	formatter Formatter
	w         io.Writer
	context   int

	lines   []lrc.Line
	version uint64
}

var _ session.Sink = (*StreamSink)(nil)

// NewStreamSink creates a sink showing context lines around the active one.
func NewStreamSink(ctx context.Context, f Formatter, w io.Writer, contextLines int) *StreamSink {
	return &StreamSink{ctx: ctx, formatter: f, w: w, context: contextLines}
}

// Loaded records the new sequence and writes a load event.
func (s *StreamSink) Loaded(lines []lrc.Line) error {
	s.lines = lines
	s.version++
	summary := Summarize(lines)
	return s.formatter.FormatEvent(s.ctx, &Event{Type: EventLoad, Version: s.version, Summary: &summary}, s.w)
}

// Changed writes a change event for the current sequence.
func (s *StreamSink) Changed(c session.Change) error {
	return s.formatter.FormatEvent(s.ctx, NewChangeEvent(c, s.lines, s.context), s.w)
}
