package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ccollicutt/lyricsync/pkg/lrc"
	"github.com/ccollicutt/lyricsync/pkg/output"
	"github.com/ccollicutt/lyricsync/pkg/session"
)

// recorder is a test endpoint that keeps the decoded event of each request.
type recorder struct {
	mu     sync.Mutex
	events []output.Event
	status int
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var ev output.Event
	_ = json.NewDecoder(req.Body).Decode(&ev)

	r.mu.Lock()
	r.events = append(r.events, ev)
	status := r.status
	r.mu.Unlock()

	if status == 0 {
		status = http.StatusNoContent
	}
	w.WriteHeader(status)
}

func (r *recorder) received() []output.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]output.Event(nil), r.events...)
}

func TestSink_ChangeEvents(t *testing.T) {
	rec := &recorder{}
	server := httptest.NewServer(rec)
	defer server.Close()

	sink := NewSink(context.Background(), NewClient(), []Target{{Name: "overlay", Options: SendOptions{URL: server.URL}}}, 1)

	lines := []lrc.Line{{OffsetMs: 1000, Text: "a"}, {OffsetMs: 2000, Text: "b"}, {OffsetMs: 3000, Text: "c"}}
	if err := sink.Loaded(lines); err != nil {
		t.Fatalf("Loaded() error = %v", err)
	}
	if got := len(rec.received()); got != 0 {
		t.Fatalf("load events should not be sent without Loads, got %d", got)
	}

	c := session.Change{Index: 1, Previous: 0, Line: lines[1], PositionMs: 2000, Version: 1}
	if err := sink.Changed(c); err != nil {
		t.Fatalf("Changed() error = %v", err)
	}

	events := rec.received()
	if len(events) != 1 {
		t.Fatalf("received %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Type != output.EventChange || ev.View == nil {
		t.Fatalf("event = %+v", ev)
	}
	if ev.View.Index != 1 || len(ev.View.Window) != 3 {
		t.Errorf("view = %+v", ev.View)
	}
	if a := ev.View.Active(); a == nil || a.Line.Text != "b" {
		t.Errorf("active = %+v", a)
	}
}

func TestSink_LoadEvents(t *testing.T) {
	rec := &recorder{}
	server := httptest.NewServer(rec)
	defer server.Close()

	targets := []Target{
		{Name: "all", Options: SendOptions{URL: server.URL}, Loads: true},
		{Name: "changes", Options: SendOptions{URL: server.URL}},
	}
	sink := NewSink(context.Background(), NewClient(), targets, 0)

	if err := sink.Loaded([]lrc.Line{{OffsetMs: 0, Text: "x"}}); err != nil {
		t.Fatalf("Loaded() error = %v", err)
	}

	events := rec.received()
	if len(events) != 1 {
		t.Fatalf("received %d events, want 1", len(events))
	}
	if events[0].Type != output.EventLoad || events[0].Summary == nil || events[0].Summary.Total != 1 {
		t.Errorf("event = %+v", events[0])
	}
}

func TestSink_ErrorsNameTarget(t *testing.T) {
	rec := &recorder{status: http.StatusBadGateway}
	server := httptest.NewServer(rec)
	defer server.Close()

	sink := NewSink(context.Background(), NewClient(), []Target{{Options: SendOptions{URL: server.URL}}}, 0)
	lines := []lrc.Line{{OffsetMs: 0, Text: "x"}}
	_ = sink.Loaded(lines)

	err := sink.Changed(session.Change{Index: 0, Previous: -1, Line: lines[0], Version: 1})
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if !strings.Contains(err.Error(), server.URL) || !strings.Contains(err.Error(), "502") {
		t.Errorf("error = %q, want URL and status", err)
	}
}
