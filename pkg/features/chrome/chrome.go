// Package chrome controls the dashboard sidebar.
//
// Toggle buttons flip the sidebar's visibility class. On narrow
// viewports a click anywhere outside both the sidebar and its toggles
// closes it; desktop widths leave it alone.
package chrome

import (
	"fmt"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
)

// OpenClass marks an open sidebar.
const OpenClass = "open"

// SidebarSelector locates the sidebar the toggles control.
const SidebarSelector = ".dashboard-sidebar"

// DefaultBreakpoint is the viewport width in pixels at and above which
// outside clicks stop closing the sidebar.
const DefaultBreakpoint = 1024

// Option configures a Controller.
type Option func(*Controller)

// WithBreakpoint sets the outside-click breakpoint in pixels.
func WithBreakpoint(px int) Option {
	return func(c *Controller) {
		if px > 0 {
			c.breakpoint = px
		}
	}
}

// Controller wires sidebar toggles and the outside-click close.
type Controller struct {
	breakpoint int

	page    *page.Page
	sidebar *dom.Node
	toggles []*dom.Node
}

// New returns a Controller with the default breakpoint.
func New(opts ...Option) *Controller {
	c := &Controller{breakpoint: DefaultBreakpoint}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name identifies the feature in mount reports.
func (c *Controller) Name() string { return "chrome" }

// Mount binds the toggles to the page's sidebar. A page with toggle
// buttons but no sidebar declines to mount.
func (c *Controller) Mount(ctx *page.MountCtx, anchors []*dom.Node) error {
	sidebars := ctx.Find(SidebarSelector)
	if len(sidebars) == 0 {
		return fmt.Errorf("chrome: no %s element: %w", SidebarSelector, page.ErrSkip)
	}
	c.page = ctx.Page
	c.sidebar = sidebars[0]
	c.toggles = anchors

	for _, toggle := range anchors {
		ctx.Page.On(toggle, page.Click, func(*page.Event) {
			c.sidebar.ToggleClass(OpenClass)
		})
	}
	ctx.Page.OnDocument(page.Click, c.autoClose)
	return nil
}

// autoClose closes the sidebar when a click lands outside it on a
// narrow viewport. Runs at document level, after the toggles' own
// handlers.
func (c *Controller) autoClose(ev *page.Event) {
	if c.page.Viewport().W >= c.breakpoint {
		return
	}
	if t := ev.Target; t != nil {
		if c.sidebar.Contains(t) {
			return
		}
		for _, toggle := range c.toggles {
			if toggle.Contains(t) {
				return
			}
		}
	}
	c.sidebar.RemoveClass(OpenClass)
}
