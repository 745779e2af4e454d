package page

import (
	"errors"
	"log/slog"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/schedule"
)

// Location is the document's address, the part the navigation
// highlighter compares link targets against.
type Location struct {
	Path string
}

// String returns the path.
func (l Location) String() string {
	return l.Path
}

// Config carries the page's environment.
type Config struct {
	// Location is the document's path. Defaults to "/".
	Location Location

	// Viewport is the client viewport size. Defaults to 1280x800 and
	// is updated by Resize events.
	Viewport dom.Size

	// Scheduler drives timers. Defaults to a wall clock executing
	// callbacks inline; sessions install a clock routed through their
	// event loop, tests install a Manual scheduler.
	Scheduler schedule.Scheduler

	// Layout estimates node sizes. Defaults to TextMetrics.
	Layout Layout

	// Logger receives page lifecycle and dispatch logging. Defaults to
	// slog.Default.
	Logger *slog.Logger

	// Middleware wraps event delivery, outermost first.
	Middleware []Middleware
}

// Page is the runtime for one rendered document.
type Page struct {
	doc      *dom.Document
	log      *dom.MutationLog
	sched    schedule.Scheduler
	layout   Layout
	logger   *slog.Logger
	loc      Location
	viewport dom.Size

	handlers    map[*dom.Node]map[EventType][]Handler
	docHandlers map[EventType][]Handler
	deliver     Handler

	mounted  map[string]Mounter
	report   MountReport
	cleanups []func()
	seq      uint64
	closed   bool
}

// New mounts the binding list against doc and returns the running page.
//
// Mutations made during mounting (a toast container appended to body)
// are part of the initial document; they are flushed from the log so
// the first patch frame carries only post-render changes.
func New(doc *dom.Document, bindings []Binding, cfg *Config) (*Page, error) {
	if doc == nil {
		return nil, errors.New("page: nil document")
	}
	if cfg == nil {
		cfg = &Config{}
	}
	p := &Page{
		doc:         doc,
		log:         dom.NewMutationLog(),
		sched:       cfg.Scheduler,
		layout:      cfg.Layout,
		logger:      cfg.Logger,
		loc:         cfg.Location,
		viewport:    cfg.Viewport,
		handlers:    make(map[*dom.Node]map[EventType][]Handler),
		docHandlers: make(map[EventType][]Handler),
		mounted:     make(map[string]Mounter),
	}
	if p.sched == nil {
		p.sched = schedule.NewClock(nil)
	}
	if p.layout == nil {
		p.layout = DefaultTextMetrics()
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.loc.Path == "" {
		p.loc.Path = "/"
	}
	if p.viewport == (dom.Size{}) {
		p.viewport = dom.Size{W: 1280, H: 800}
	}

	doc.Observe(p.log)
	p.mountAll(bindings)
	p.log.Drain()

	p.deliver = p.bubble
	for i := len(cfg.Middleware) - 1; i >= 0; i-- {
		p.deliver = cfg.Middleware[i](p.deliver)
	}

	p.logger.Debug("page ready", "path", p.loc.Path, "report", p.report.String())
	return p, nil
}

// Doc returns the page's document.
func (p *Page) Doc() *dom.Document {
	return p.doc
}

// Location returns the page's address.
func (p *Page) Location() Location {
	return p.loc
}

// Viewport returns the last known client viewport size.
func (p *Page) Viewport() dom.Size {
	return p.viewport
}

// Scheduler returns the page's timer scheduler.
func (p *Page) Scheduler() schedule.Scheduler {
	return p.sched
}

// Layout returns the page's size estimator.
func (p *Page) Layout() Layout {
	return p.layout
}

// Logger returns the page's logger.
func (p *Page) Logger() *slog.Logger {
	return p.logger
}

// Report returns the mount outcomes for this page.
func (p *Page) Report() *MountReport {
	return &p.report
}

// Mounted returns a mounted feature by name.
func (p *Page) Mounted(name string) (Mounter, bool) {
	m, ok := p.mounted[name]
	return m, ok
}

// NodeByID resolves a wire node ID against the document.
func (p *Page) NodeByID(id string) *dom.Node {
	return p.doc.NodeByID(id)
}

// On registers a handler for an event type on a node. Handlers run in
// registration order during bubbling.
func (p *Page) On(n *dom.Node, t EventType, h Handler) {
	if n == nil || h == nil {
		return
	}
	byType := p.handlers[n]
	if byType == nil {
		byType = make(map[EventType][]Handler)
		p.handlers[n] = byType
	}
	byType[t] = append(byType[t], h)
}

// OnDocument registers a handler that runs after bubbling for every
// event of the given type, the document-level listener of the browser
// model.
func (p *Page) OnDocument(t EventType, h Handler) {
	if h == nil {
		return
	}
	p.docHandlers[t] = append(p.docHandlers[t], h)
}

// Dispatch delivers an event and reports whether the default action
// should proceed (false when a handler called PreventDefault).
//
// Input and Change events mirror their value onto the target before
// delivery, the way the browser updates an input before firing input
// events. Resize updates the page viewport.
func (p *Page) Dispatch(ev *Event) bool {
	if ev == nil {
		return true
	}
	if p.closed {
		p.logger.Debug("event dropped, page closed", "type", ev.Type.String())
		return true
	}
	switch ev.Type {
	case Input, Change:
		if ev.Target != nil {
			ev.Target.SetAttrQuiet("value", ev.Value)
		}
	case Resize:
		if ev.Size != (dom.Size{}) {
			p.viewport = ev.Size
		}
	}
	p.deliver(ev)
	return !ev.defaultPrevented
}

// bubble is the core delivery: target handlers, then each ancestor's,
// then document-level handlers.
func (p *Page) bubble(ev *Event) {
	for n := ev.Target; n != nil; n = n.Parent {
		if ev.propagationStopped {
			return
		}
		byType := p.handlers[n]
		if byType == nil {
			continue
		}
		hs := byType[ev.Type]
		for _, h := range append([]Handler(nil), hs...) {
			h(ev)
		}
	}
	if ev.propagationStopped {
		return
	}
	for _, h := range append([]Handler(nil), p.docHandlers[ev.Type]...) {
		h(ev)
	}
}

// OnCleanup registers a function to run when the page closes. Features
// use it to stop their timers.
func (p *Page) OnCleanup(fn func()) {
	if fn != nil {
		p.cleanups = append(p.cleanups, fn)
	}
}

// Close tears the page down: cleanups run in reverse registration
// order, further events are dropped. Closing twice is a no-op.
func (p *Page) Close() {
	if p.closed {
		return
	}
	p.closed = true
	for i := len(p.cleanups) - 1; i >= 0; i-- {
		p.cleanups[i]()
	}
	p.doc.Observe(nil)
	p.logger.Debug("page closed", "path", p.loc.Path)
}

// Closed reports whether Close has run.
func (p *Page) Closed() bool {
	return p.closed
}
