package gtest

import (
	"strings"
	"testing"
	"time"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/protocol"
	"github.com/glint-go/glint/pkg/schedule"
)

// PageBuilder allows fluent construction of test pages.
type PageBuilder struct {
	html     string
	doc      *dom.Document
	bindings []page.Binding
	cfg      page.Config
}

// NewPage creates a page builder from an HTML source.
//
// Example:
//
//	h := gtest.NewPage(`<body><input class="search"></body>`).
//	    WithBindings(searchBinding).
//	    Build(t)
func NewPage(html string) *PageBuilder {
	return &PageBuilder{html: html}
}

// NewPageDoc creates a page builder from an already assembled document.
//
// Example:
//
//	doc := dom.NewDocument(dom.Body(dom.Div(dom.Class("alert"), "Saved.")))
//	h := gtest.NewPageDoc(doc).Build(t)
func NewPageDoc(doc *dom.Document) *PageBuilder {
	return &PageBuilder{doc: doc}
}

// WithBindings appends feature bindings to mount when the page builds.
func (b *PageBuilder) WithBindings(bindings ...page.Binding) *PageBuilder {
	b.bindings = append(b.bindings, bindings...)
	return b
}

// WithLocation sets the document path seen by location-aware features.
//
// Example:
//
//	h := gtest.NewPage(html).WithLocation("/leads").Build(t)
func (b *PageBuilder) WithLocation(path string) *PageBuilder {
	b.cfg.Location = page.Location{Path: path}
	return b
}

// WithViewport sets the initial viewport size.
func (b *PageBuilder) WithViewport(w, h int) *PageBuilder {
	b.cfg.Viewport = dom.Size{W: w, H: h}
	return b
}

// WithLayout overrides the size estimator used for tooltip placement.
func (b *PageBuilder) WithLayout(l page.Layout) *PageBuilder {
	b.cfg.Layout = l
	return b
}

// WithMiddleware installs event middleware, outermost first.
func (b *PageBuilder) WithMiddleware(mw ...page.Middleware) *PageBuilder {
	b.cfg.Middleware = append(b.cfg.Middleware, mw...)
	return b
}

// Build parses the page, mounts the bindings against a manual clock and
// returns the harness. Build failures end the test. The page is closed
// when the test finishes.
func (b *PageBuilder) Build(t *testing.T) *Harness {
	t.Helper()
	doc := b.doc
	if doc == nil {
		parsed, err := dom.ParseString(b.html)
		if err != nil {
			t.Fatalf("gtest: parse page: %v", err)
		}
		doc = parsed
	}
	clock := schedule.NewManual()
	cfg := b.cfg
	cfg.Scheduler = clock
	p, err := page.New(doc, b.bindings, &cfg)
	if err != nil {
		t.Fatalf("gtest: build page: %v", err)
	}
	t.Cleanup(p.Close)
	return &Harness{T: t, Page: p, Clock: clock}
}

// Harness drives one mounted page in a test.
type Harness struct {
	T     *testing.T
	Page  *page.Page
	Clock *schedule.Manual
}

// Doc returns the page's document.
func (h *Harness) Doc() *dom.Document {
	return h.Page.Doc()
}

// Find returns the first node matching selector. It ends the test when
// nothing matches.
//
// Example:
//
//	toggle := h.Find(".dropdown-toggle")
func (h *Harness) Find(selector string) *dom.Node {
	h.T.Helper()
	n := h.Page.Doc().Find(selector)
	if n == nil {
		h.T.Fatalf("gtest: no element matches %q in:\n%s",
			selector, truncate(dom.RenderHTML(h.Page.Doc().Root()), 500))
	}
	return n
}

// FindAll returns every node matching selector, in document order.
func (h *Harness) FindAll(selector string) []*dom.Node {
	return h.Page.Doc().FindAll(selector)
}

// Click dispatches a click on n and reports whether the default action
// should proceed.
func (h *Harness) Click(n *dom.Node) bool {
	return h.Page.Dispatch(&page.Event{Type: page.Click, Target: n})
}

// Input dispatches an input event carrying the field's live value.
func (h *Harness) Input(n *dom.Node, value string) bool {
	return h.Page.Dispatch(&page.Event{Type: page.Input, Target: n, Value: value})
}

// Change dispatches a change event carrying the field's settled value.
func (h *Harness) Change(n *dom.Node, value string) bool {
	return h.Page.Dispatch(&page.Event{Type: page.Change, Target: n, Value: value})
}

// Submit dispatches a submit on the form n and reports whether the
// submission should proceed.
func (h *Harness) Submit(n *dom.Node) bool {
	return h.Page.Dispatch(&page.Event{Type: page.Submit, Target: n})
}

// PointerEnter dispatches a pointer entry with the target's measured
// bounding box.
func (h *Harness) PointerEnter(n *dom.Node, rect dom.Rect) bool {
	return h.Page.Dispatch(&page.Event{Type: page.PointerEnter, Target: n, Rect: rect})
}

// PointerLeave dispatches a pointer exit from n.
func (h *Harness) PointerLeave(n *dom.Node) bool {
	return h.Page.Dispatch(&page.Event{Type: page.PointerLeave, Target: n})
}

// Resize dispatches a viewport resize.
func (h *Harness) Resize(w, height int) bool {
	return h.Page.Dispatch(&page.Event{Type: page.Resize, Size: dom.Size{W: w, H: height}})
}

// Advance moves the manual clock forward, firing every timer that
// comes due in the window.
func (h *Harness) Advance(d time.Duration) {
	h.Clock.Advance(d)
}

// Flush drains the page's pending patches, exactly as a live session
// would after dispatching an event.
func (h *Harness) Flush() []protocol.Patch {
	return h.Page.FlushPatches()
}

// ExpectContains asserts that n's rendered HTML contains expected.
//
// Example:
//
//	gtest.ExpectContains(t, row, "Acme Corp")
func ExpectContains(t *testing.T, n *dom.Node, expected string) {
	t.Helper()
	html := dom.RenderHTML(n)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that n's rendered HTML does not contain
// the given substring.
//
// Example:
//
//	gtest.ExpectNotContains(t, form, "is required")
func ExpectNotContains(t *testing.T, n *dom.Node, unexpected string) {
	t.Helper()
	html := dom.RenderHTML(n)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectClass asserts that n carries the given class.
//
// Example:
//
//	gtest.ExpectClass(t, menu, dropdown.ShowClass)
func ExpectClass(t *testing.T, n *dom.Node, class string) {
	t.Helper()
	if !n.HasClass(class) {
		t.Errorf("expected <%s> to have class %q, class list is %q", n.Tag, class, n.Attr("class"))
	}
}

// ExpectNoClass asserts that n does not carry the given class.
func ExpectNoClass(t *testing.T, n *dom.Node, class string) {
	t.Helper()
	if n.HasClass(class) {
		t.Errorf("expected <%s> to NOT have class %q, class list is %q", n.Tag, class, n.Attr("class"))
	}
}

// ExpectAttr asserts an exact attribute value on n.
//
// Example:
//
//	gtest.ExpectAttr(t, field, "type", "password")
func ExpectAttr(t *testing.T, n *dom.Node, key, want string) {
	t.Helper()
	if got := n.Attr(key); got != want {
		t.Errorf("attribute %s = %q, want %q", key, got, want)
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
