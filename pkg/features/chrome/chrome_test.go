package chrome

import (
	"testing"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/schedule"
)

func dashboard() (body, toggle, sidebar, content *dom.Node) {
	toggle = dom.Button(dom.Class("sidebar-toggle"), dom.Span("☰"))
	sidebar = dom.Aside(dom.Class("dashboard-sidebar"),
		dom.Nav(dom.A(dom.Href("/leads"), dom.Class("nav-link"), "Leads")),
	)
	content = dom.Main(dom.P("Welcome back"))
	body = dom.Body(dom.Header(toggle), sidebar, content)
	return body, toggle, sidebar, content
}

func mountChrome(t *testing.T, body *dom.Node, width int, opts ...Option) *page.Page {
	t.Helper()
	p, err := page.New(dom.NewDocument(body), []page.Binding{
		{Selector: ".sidebar-toggle", New: func() page.Mounter { return New(opts...) }},
	}, &page.Config{
		Scheduler: schedule.NewManual(),
		Viewport:  dom.Size{W: width, H: 800},
	})
	if err != nil {
		t.Fatalf("page.New: %v", err)
	}
	return p
}

func click(p *page.Page, target *dom.Node) {
	p.Dispatch(&page.Event{Type: page.Click, Target: target})
}

func TestToggleOpensAndCloses(t *testing.T) {
	body, toggle, sidebar, _ := dashboard()
	p := mountChrome(t, body, 800)

	click(p, toggle)
	if !sidebar.HasClass(OpenClass) {
		t.Fatal("Expected the sidebar to open on toggle click")
	}
	click(p, toggle)
	if sidebar.HasClass(OpenClass) {
		t.Fatal("Expected the sidebar to close on the second toggle click")
	}
}

func TestOutsideClickClosesOnNarrowViewport(t *testing.T) {
	body, toggle, sidebar, content := dashboard()
	p := mountChrome(t, body, 800)

	click(p, toggle)
	click(p, content)
	if sidebar.HasClass(OpenClass) {
		t.Fatal("Expected an outside click to close the sidebar below the breakpoint")
	}
}

func TestOutsideClickIgnoredOnDesktop(t *testing.T) {
	body, toggle, sidebar, content := dashboard()
	p := mountChrome(t, body, 1280)

	click(p, toggle)
	click(p, content)
	if !sidebar.HasClass(OpenClass) {
		t.Fatal("Expected the sidebar to stay open at desktop width")
	}
}

func TestClickInsideSidebarKeepsItOpen(t *testing.T) {
	body, toggle, sidebar, _ := dashboard()
	p := mountChrome(t, body, 800)

	click(p, toggle)
	click(p, sidebar.Find(".nav-link"))
	if !sidebar.HasClass(OpenClass) {
		t.Fatal("Expected a click inside the sidebar to keep it open")
	}
}

func TestToggleClickDoesNotSelfClose(t *testing.T) {
	body, toggle, sidebar, _ := dashboard()
	p := mountChrome(t, body, 800)

	// The document-level listener runs after the toggle's handler and
	// must not treat the toggle itself as an outside click.
	click(p, toggle.Find("span"))
	if !sidebar.HasClass(OpenClass) {
		t.Fatal("Expected a click on the toggle's icon to open, not immediately close")
	}
}

func TestSkipsWithoutSidebar(t *testing.T) {
	toggle := dom.Button(dom.Class("sidebar-toggle"))
	p := mountChrome(t, dom.Body(toggle), 800)

	rec, ok := p.Report().Lookup("chrome")
	if !ok {
		t.Fatal("Expected a mount record for chrome")
	}
	if rec.Status != page.StatusSkipped {
		t.Errorf("status = %v, want skipped", rec.Status)
	}
}

func TestResizeMovesAcrossBreakpoint(t *testing.T) {
	body, toggle, sidebar, content := dashboard()
	p := mountChrome(t, body, 1280)

	click(p, toggle)
	click(p, content)
	if !sidebar.HasClass(OpenClass) {
		t.Fatal("Expected the sidebar open at desktop width")
	}

	p.Dispatch(&page.Event{Type: page.Resize, Size: dom.Size{W: 800, H: 600}})
	click(p, content)
	if sidebar.HasClass(OpenClass) {
		t.Fatal("Expected the outside click to close after shrinking the viewport")
	}
}

func TestWithBreakpoint(t *testing.T) {
	body, toggle, sidebar, content := dashboard()
	p := mountChrome(t, body, 800, WithBreakpoint(700))

	click(p, toggle)
	click(p, content)
	if !sidebar.HasClass(OpenClass) {
		t.Fatal("Expected 800px to count as desktop with a 700px breakpoint")
	}
}
