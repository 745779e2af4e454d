// Package tooltip floats a label over an annotated element while the
// pointer hovers it.
//
// The tooltip node is created on pointer enter from the anchor's
// data-tooltip text, appended to the document body, and positioned
// against the anchor bounds reported with the event: horizontally
// centered, above the anchor with a fixed gap. Each anchor has at most
// one live tooltip; pointer leave removes it, and a leave with nothing
// to remove is tolerated.
package tooltip

import (
	"fmt"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
)

// TipClass marks tooltip nodes.
const TipClass = "tooltip"

// DefaultGap is the vertical distance in pixels between the tooltip's
// bottom edge and the anchor's top edge.
const DefaultGap = 8

// Option configures an Engine.
type Option func(*Engine)

// WithGap sets the anchor-to-tooltip gap in pixels.
func WithGap(px int) Option {
	return func(e *Engine) {
		if px >= 0 {
			e.gap = px
		}
	}
}

// Engine owns every tooltip node in the document.
type Engine struct {
	gap int

	page *page.Page
	home *dom.Node

	// active maps an anchor to the tooltip it currently shows.
	active map[*dom.Node]*dom.Node
}

// New returns an Engine with the default gap.
func New(opts ...Option) *Engine {
	e := &Engine{
		gap:    DefaultGap,
		active: make(map[*dom.Node]*dom.Node),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name identifies the feature in mount reports.
func (e *Engine) Name() string { return "tooltip" }

// Mount attaches hover handlers to every annotated anchor.
func (e *Engine) Mount(ctx *page.MountCtx, anchors []*dom.Node) error {
	e.page = ctx.Page
	e.home = ctx.Page.Doc().Body()
	if e.home == nil {
		e.home = ctx.Page.Doc().Root()
	}
	for _, anchor := range anchors {
		ctx.Page.On(anchor, page.PointerEnter, func(ev *page.Event) {
			e.show(anchor, ev.Rect)
		})
		ctx.Page.On(anchor, page.PointerLeave, func(*page.Event) {
			e.hide(anchor)
		})
	}
	return nil
}

// Active returns how many tooltips are currently shown.
func (e *Engine) Active() int {
	return len(e.active)
}

// show creates the anchor's tooltip and positions it against the
// anchor bounds carried by the pointer event.
func (e *Engine) show(anchor *dom.Node, bounds dom.Rect) {
	if old := e.active[anchor]; old != nil {
		old.Remove()
		delete(e.active, anchor)
	}
	text := anchor.Attr("data-tooltip")
	if text == "" {
		return
	}
	tip := dom.Div(dom.Class(TipClass), text)
	e.home.AppendChild(tip)

	size := e.page.Layout().Measure(tip)
	left := bounds.CenterX() - size.W/2
	top := bounds.Y - size.H - e.gap
	tip.SetAttr("style", fmt.Sprintf("left: %dpx; top: %dpx", left, top))

	e.active[anchor] = tip
}

// hide removes the anchor's tooltip. Nothing to remove is a no-op.
func (e *Engine) hide(anchor *dom.Node) {
	tip := e.active[anchor]
	if tip == nil {
		return
	}
	tip.Remove()
	delete(e.active, anchor)
}
