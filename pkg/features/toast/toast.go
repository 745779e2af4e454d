// Package toast renders transient notifications into a container the
// notifier appends to the document body.
//
// A toast moves through three phases. It is Created when appended,
// Visible after a short entrance delay (giving CSS a frame to
// transition from), and Dismissed when the display duration elapses or
// the user closes it. Both paths drive the same transition, so
// dismissing an already-dismissed toast is a no-op. The node leaves the
// document after the exit delay.
package toast

import (
	"time"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/schedule"
)

const (
	// EnterDelay separates append from the visible class so the
	// entrance transition has a starting frame.
	EnterDelay = 10 * time.Millisecond

	// DefaultDisplay is how long a toast stays visible before
	// auto-dismissing.
	DefaultDisplay = 4 * time.Second

	// ExitDelay keeps the node in the document while the exit
	// transition plays.
	ExitDelay = 300 * time.Millisecond
)

// ContainerClass marks the element the notifier appends toasts to.
const ContainerClass = "toast-container"

// Kind selects a toast's visual treatment.
type Kind uint8

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
	KindWarning
)

// String returns the kind's class suffix.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindWarning:
		return "warning"
	default:
		return "info"
	}
}

// ParseKind maps a kind name to its Kind. Unknown names fall back to
// info.
func ParseKind(s string) Kind {
	switch s {
	case "success":
		return KindSuccess
	case "error":
		return KindError
	case "warning":
		return KindWarning
	default:
		return KindInfo
	}
}

// Phase is a toast's lifecycle state.
type Phase uint8

const (
	PhaseCreated Phase = iota
	PhaseVisible
	PhaseDismissed
)

// String returns the phase label.
func (p Phase) String() string {
	switch p {
	case PhaseCreated:
		return "created"
	case PhaseVisible:
		return "visible"
	case PhaseDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Observer is notified as toasts enter and leave the document. The
// metrics layer uses it to keep a gauge of live toasts.
type Observer interface {
	ToastShown(kind string)
	ToastRemoved(kind string)
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithDisplay sets how long toasts stay visible before auto-dismissing.
func WithDisplay(d time.Duration) Option {
	return func(n *Notifier) {
		if d > 0 {
			n.display = d
		}
	}
}

// WithObserver registers a lifecycle observer.
func WithObserver(obs Observer) Option {
	return func(n *Notifier) {
		n.obs = obs
	}
}

// Notifier owns the toast container and the lifecycle of every toast
// in it. There is no queue limit; concurrent toasts stack in the
// container.
type Notifier struct {
	display time.Duration
	obs     Observer

	page      *page.Page
	sched     schedule.Scheduler
	container *dom.Node
	live      map[*Toast]struct{}
}

// New returns a Notifier with the default display duration.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		display: DefaultDisplay,
		live:    make(map[*Toast]struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name identifies the feature in mount reports.
func (n *Notifier) Name() string { return "toast" }

// Mount appends the toast container to the first anchor (the document
// body) and takes ownership of it.
func (n *Notifier) Mount(ctx *page.MountCtx, anchors []*dom.Node) error {
	n.page = ctx.Page
	n.sched = ctx.Page.Scheduler()
	n.container = dom.Div(dom.Class(ContainerClass))
	anchors[0].AppendChild(n.container)
	ctx.Page.OnCleanup(n.stopAll)
	return nil
}

// Active returns how many toasts are currently in the document.
func (n *Notifier) Active() int {
	return len(n.live)
}

// Notify appends a toast and starts its lifecycle. It cannot fail; the
// returned handle is nil only when the notifier never mounted.
func (n *Notifier) Notify(message string, kind Kind) *Toast {
	if n.container == nil {
		return nil
	}
	t := &Toast{
		owner: n,
		kind:  kind,
		node: dom.Div(
			dom.Class("toast", "toast-"+kind.String()),
			dom.Span(dom.Class("toast-message"), message),
		),
	}
	closeBtn := dom.Button(dom.Class("toast-close"), dom.Type("button"), "×")
	t.node.AppendChild(closeBtn)
	n.container.AppendChild(t.node)
	n.page.On(closeBtn, page.Click, func(*page.Event) { t.Dismiss() })

	n.live[t] = struct{}{}
	if n.obs != nil {
		n.obs.ToastShown(kind.String())
	}

	t.enter = n.sched.AfterFunc(EnterDelay, func() {
		if t.phase != PhaseCreated {
			return
		}
		t.phase = PhaseVisible
		t.node.AddClass("toast-visible")
		t.hide = n.sched.AfterFunc(n.display, t.Dismiss)
	})
	return t
}

// Success shows a success toast.
func (n *Notifier) Success(message string) *Toast { return n.Notify(message, KindSuccess) }

// Error shows an error toast.
func (n *Notifier) Error(message string) *Toast { return n.Notify(message, KindError) }

// Warning shows a warning toast.
func (n *Notifier) Warning(message string) *Toast { return n.Notify(message, KindWarning) }

// Info shows an info toast.
func (n *Notifier) Info(message string) *Toast { return n.Notify(message, KindInfo) }

func (n *Notifier) stopAll() {
	for t := range n.live {
		t.stopTimers()
		delete(n.live, t)
	}
}

// Toast is one live notification.
type Toast struct {
	owner *Notifier
	node  *dom.Node
	kind  Kind
	phase Phase

	enter schedule.Timer
	hide  schedule.Timer
	exit  schedule.Timer
}

// Node returns the toast's element.
func (t *Toast) Node() *dom.Node {
	if t == nil {
		return nil
	}
	return t.node
}

// Kind returns the toast's kind.
func (t *Toast) Kind() Kind {
	if t == nil {
		return KindInfo
	}
	return t.kind
}

// Phase returns the toast's lifecycle state.
func (t *Toast) Phase() Phase {
	if t == nil {
		return PhaseDismissed
	}
	return t.phase
}

// Dismiss drives the toast to Dismissed and schedules its removal. The
// auto-dismiss timer and the close button call the same method, and
// calling it again after either is a no-op.
func (t *Toast) Dismiss() {
	if t == nil || t.phase == PhaseDismissed {
		return
	}
	t.phase = PhaseDismissed
	t.stopTimers()
	t.node.RemoveClass("toast-visible")
	t.node.AddClass("toast-hiding")
	t.exit = t.owner.sched.AfterFunc(ExitDelay, func() {
		t.node.Remove()
		delete(t.owner.live, t)
		if t.owner.obs != nil {
			t.owner.obs.ToastRemoved(t.kind.String())
		}
	})
}

func (t *Toast) stopTimers() {
	if t.enter != nil {
		t.enter.Stop()
	}
	if t.hide != nil {
		t.hide.Stop()
	}
	if t.exit != nil {
		t.exit.Stop()
	}
}
