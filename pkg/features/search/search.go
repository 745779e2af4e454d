// Package search debounces text input so that a query callback fires
// once per pause in typing instead of once per keystroke.
//
// Every matched input keeps its own debounce state. Each input event
// restarts the input's timer; the callback runs only after the window
// elapses with no further events, and it receives the value that was
// current when the timer fired.
package search

import (
	"time"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/schedule"
)

// DefaultWindow is the debounce window used when none is configured.
const DefaultWindow = 300 * time.Millisecond

// QueryFunc receives the settled value of a search input. The input
// node is passed along so callers with several search boxes can tell
// them apart.
type QueryFunc func(input *dom.Node, value string)

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithWindow sets the quiet period that must elapse after the last
// keystroke before the query fires.
func WithWindow(d time.Duration) Option {
	return func(s *Debouncer) {
		if d > 0 {
			s.window = d
		}
	}
}

// WithQuery sets the callback invoked with the settled input value.
func WithQuery(fn QueryFunc) Option {
	return func(s *Debouncer) {
		s.query = fn
	}
}

// Debouncer wires search inputs to a debounced query callback.
type Debouncer struct {
	window time.Duration
	query  QueryFunc

	sched   schedule.Scheduler
	pending map[*dom.Node]schedule.Timer
}

// New returns a Debouncer with the default window. A query callback
// must be supplied with WithQuery or the feature skips itself.
func New(opts ...Option) *Debouncer {
	s := &Debouncer{
		window:  DefaultWindow,
		pending: make(map[*dom.Node]schedule.Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the feature in mount reports.
func (s *Debouncer) Name() string { return "search" }

// Mount attaches debounced input handling to every matched input.
func (s *Debouncer) Mount(ctx *page.MountCtx, anchors []*dom.Node) error {
	if s.query == nil {
		return page.ErrSkip
	}
	s.sched = ctx.Page.Scheduler()
	for _, input := range anchors {
		ctx.Page.On(input, page.Input, func(ev *page.Event) {
			s.restart(input, ev.Value)
		})
	}
	ctx.Page.OnCleanup(s.stopAll)
	return nil
}

// restart supersedes any timer already pending for the input and arms
// a fresh one with the latest value.
func (s *Debouncer) restart(input *dom.Node, value string) {
	if t, ok := s.pending[input]; ok {
		t.Stop()
	}
	s.pending[input] = s.sched.AfterFunc(s.window, func() {
		delete(s.pending, input)
		s.query(input, value)
	})
}

func (s *Debouncer) stopAll() {
	for input, t := range s.pending {
		t.Stop()
		delete(s.pending, input)
	}
}
