// Package alerts auto-dismisses server-rendered flash messages.
//
// Each marked alert waits out its data-auto-hide delay, gets the hide
// class for the exit transition, and leaves the document after the
// exit delay. A missing or malformed delay falls back to the default.
package alerts

import (
	"time"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/schedule"
)

// HideClass marks an alert playing its exit transition.
const HideClass = "alert-hiding"

// DefaultDelay is used when data-auto-hide has no usable value.
const DefaultDelay = 5 * time.Second

// ExitDelay keeps the node in the document while the exit transition
// plays.
const ExitDelay = 300 * time.Millisecond

// DelayAttr carries an alert's display time in milliseconds.
const DelayAttr = "data-auto-hide"

// Option configures an AutoHide.
type Option func(*AutoHide)

// WithDefaultDelay sets the fallback display time.
func WithDefaultDelay(d time.Duration) Option {
	return func(a *AutoHide) {
		if d > 0 {
			a.fallback = d
		}
	}
}

// AutoHide owns the dismissal timers of every marked alert.
type AutoHide struct {
	fallback time.Duration

	sched  schedule.Scheduler
	timers []schedule.Timer
}

// New returns an AutoHide with the default delay.
func New(opts ...Option) *AutoHide {
	a := &AutoHide{fallback: DefaultDelay}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name identifies the feature in mount reports.
func (a *AutoHide) Name() string { return "alerts" }

// Mount arms a dismissal timer per alert.
func (a *AutoHide) Mount(ctx *page.MountCtx, anchors []*dom.Node) error {
	a.sched = ctx.Page.Scheduler()
	for _, alert := range anchors {
		a.arm(alert)
	}
	ctx.Page.OnCleanup(a.stopAll)
	return nil
}

// arm schedules the alert's two-phase removal.
func (a *AutoHide) arm(alert *dom.Node) {
	delay := time.Duration(alert.IntAttr(DelayAttr, 0)) * time.Millisecond
	if delay <= 0 {
		delay = a.fallback
	}
	a.track(a.sched.AfterFunc(delay, func() {
		alert.AddClass(HideClass)
		a.track(a.sched.AfterFunc(ExitDelay, alert.Remove))
	}))
}

func (a *AutoHide) track(t schedule.Timer) {
	a.timers = append(a.timers, t)
}

func (a *AutoHide) stopAll() {
	for _, t := range a.timers {
		t.Stop()
	}
	a.timers = nil
}
