package webhook

import (
	"context"
	"errors"
	"fmt"

	"github.com/ccollicutt/lyricsync/pkg/lrc"
	"github.com/ccollicutt/lyricsync/pkg/output"
	"github.com/ccollicutt/lyricsync/pkg/session"
)

// Target is an endpoint and the events it receives.
type Target struct {
	Name    string
	Options SendOptions

	// Loads also delivers load events, not just active line changes.
	Loads bool
}

// Sink posts playback events to webhook targets. It implements session.Sink.
// Requests are sent synchronously, one target after another.
type Sink struct {
	ctx     context.Context
	client  *Client
	targets []Target
	context int

	lines   []lrc.Line
	version uint64
}

var _ session.Sink = (*Sink)(nil)

// NewSink creates a sink whose change events carry contextLines lines around
// the active one.
func NewSink(ctx context.Context, client *Client, targets []Target, contextLines int) *Sink {
	return &Sink{ctx: ctx, client: client, targets: targets, context: contextLines}
}

// Loaded records the sequence and notifies targets that asked for loads.
func (s *Sink) Loaded(lines []lrc.Line) error {
	s.lines = lines
	s.version++
	summary := output.Summarize(lines)
	return s.send(&output.Event{Type: output.EventLoad, Version: s.version, Summary: &summary}, true)
}

// Changed notifies every target of the new active line.
func (s *Sink) Changed(c session.Change) error {
	return s.send(output.NewChangeEvent(c, s.lines, s.context), false)
}

func (s *Sink) send(ev *output.Event, load bool) error {
	var errs []error
	for _, t := range s.targets {
		if load && !t.Loads {
			continue
		}
		name := t.Name
		if name == "" {
			name = t.Options.URL
		}
		if resp := s.client.Send(s.ctx, ev, t.Options); resp.Error != nil {
			errs = append(errs, fmt.Errorf("webhook %s: %w", name, resp.Error))
		}
	}
	return errors.Join(errs...)
}
