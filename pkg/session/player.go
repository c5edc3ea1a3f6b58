package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ccollicutt/lyricsync/pkg/lrc"
)

// Sink receives what a player renders.
type Sink interface {
	// Loaded is called with the full sequence after every Load.
	Loaded(lines []lrc.Line) error

	// Changed is called when the active line moves.
	Changed(c Change) error
}

// Sinks fans events out to several sinks in order. Every sink is called even
// when an earlier one fails; the errors are joined.
type Sinks []Sink

func (s Sinks) Loaded(lines []lrc.Line) error {
	var errs []error
	for _, sink := range s {
		errs = append(errs, sink.Loaded(lines))
	}
	return errors.Join(errs...)
}

func (s Sinks) Changed(c Change) error {
	var errs []error
	for _, sink := range s {
		errs = append(errs, sink.Changed(c))
	}
	return errors.Join(errs...)
}

// Player polls a clock and forwards active line changes to a sink.
type Player struct {
	mu      sync.Mutex // orders sink calls
	session *Session
	clock   Clock
	sink    Sink
	ticker  *Ticker
	onError func(error)
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithErrorHandler receives sink errors. By default they are ignored.
func WithErrorHandler(fn func(error)) PlayerOption {
	return func(p *Player) {
		p.onError = fn
	}
}

// WithSession uses an existing session instead of a new one.
func WithSession(s *Session) PlayerOption {
	return func(p *Player) {
		p.session = s
	}
}

// NewPlayer creates a stopped player.
func NewPlayer(clock Clock, sink Sink, opts ...PlayerOption) *Player {
	p := &Player{
		clock:   clock,
		sink:    sink,
		onError: func(error) {},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.session == nil {
		p.session = New()
	}
	p.ticker = NewTicker(func(context.Context) { p.Poll() })
	return p
}

// Session returns the player's session.
func (p *Player) Session() *Session {
	return p.session
}

// Load replaces the sequence, hands it to the sink and resolves the current
// position right away so a reload does not wait for the next tick.
func (p *Player) Load(lines []lrc.Line) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.session.Load(lines)
	if err := p.sink.Loaded(lines); err != nil {
		p.onError(err)
	}
	p.poll()
}

// Poll resolves the clock position once.
func (p *Player) Poll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.poll()
}

func (p *Player) poll() {
	c, ok := p.session.Tick(p.clock.PositionMs())
	if !ok {
		return
	}
	if err := p.sink.Changed(c); err != nil {
		p.onError(err)
	}
}

// Start begins polling, replacing any running poll loop.
func (p *Player) Start(ctx context.Context, interval time.Duration) time.Duration {
	return p.ticker.Start(ctx, interval)
}

// Stop ends polling.
func (p *Player) Stop() {
	p.ticker.Stop()
}

// Done is closed when the poll loop exits.
func (p *Player) Done() <-chan struct{} {
	return p.ticker.Done()
}
