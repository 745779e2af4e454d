package dropdown

import (
	"testing"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/schedule"
)

func userDropdown(label string) (wrap, toggle, menu *dom.Node) {
	toggle = dom.A(dom.Class("dropdown-toggle"), dom.Href("#"), dom.Img(dom.Src("/avatar.png")), label)
	menu = dom.Div(dom.Class("dropdown-menu"),
		dom.A(dom.Href("/profile"), "Profile"),
		dom.A(dom.Href("/logout"), "Log out"),
	)
	wrap = dom.Div(dom.Class("dropdown"), toggle, menu)
	return wrap, toggle, menu
}

func mountDropdown(t *testing.T, body *dom.Node) *page.Page {
	t.Helper()
	p, err := page.New(dom.NewDocument(body), []page.Binding{
		{Selector: ".dropdown-toggle", New: func() page.Mounter { return New() }},
	}, &page.Config{Scheduler: schedule.NewManual()})
	if err != nil {
		t.Fatalf("page.New: %v", err)
	}
	return p
}

func click(p *page.Page, target *dom.Node) bool {
	return p.Dispatch(&page.Event{Type: page.Click, Target: target})
}

func TestToggleOpensOnlyItsOwnMenu(t *testing.T) {
	userWrap, userToggle, userMenu := userDropdown("user")
	bellWrap, _, bellMenu := userDropdown("alerts")
	p := mountDropdown(t, dom.Body(userWrap, bellWrap))

	click(p, userToggle)
	if !userMenu.HasClass(ShowClass) {
		t.Fatal("Expected the clicked toggle's menu to open")
	}
	if bellMenu.HasClass(ShowClass) {
		t.Fatal("Expected the other menu to stay closed")
	}
}

func TestSecondClickHides(t *testing.T) {
	wrap, toggle, menu := userDropdown("user")
	p := mountDropdown(t, dom.Body(wrap))

	click(p, toggle)
	click(p, toggle)
	if menu.HasClass(ShowClass) {
		t.Fatal("Expected the second toggle click to hide the menu")
	}
}

func TestOutsideClickClosesAll(t *testing.T) {
	userWrap, userToggle, userMenu := userDropdown("user")
	bellWrap, bellToggle, bellMenu := userDropdown("alerts")
	content := dom.Main(dom.P("dashboard"))
	p := mountDropdown(t, dom.Body(userWrap, bellWrap, content))

	click(p, userToggle)
	click(p, bellToggle)
	click(p, content.Find("p"))

	if userMenu.HasClass(ShowClass) || bellMenu.HasClass(ShowClass) {
		t.Fatal("Expected an outside click to close every open menu")
	}
}

func TestToggleClickSuppressesDefault(t *testing.T) {
	wrap, toggle, _ := userDropdown("user")
	p := mountDropdown(t, dom.Body(wrap))

	if click(p, toggle) {
		t.Fatal("Expected the toggle click's default action to be suppressed")
	}
}

func TestClickOnToggleChildCounts(t *testing.T) {
	wrap, toggle, menu := userDropdown("user")
	p := mountDropdown(t, dom.Body(wrap))

	avatar := toggle.Find("img")
	click(p, avatar)
	if !menu.HasClass(ShowClass) {
		t.Fatal("Expected a click on the toggle's avatar to open the menu")
	}
}

func TestMenuItemClickClosesMenus(t *testing.T) {
	wrap, toggle, menu := userDropdown("user")
	p := mountDropdown(t, dom.Body(wrap))

	click(p, toggle)
	click(p, menu.Find("a"))
	if menu.HasClass(ShowClass) {
		t.Fatal("Expected choosing a menu item to close the menu")
	}
}

func TestToggleWithoutMenuSkips(t *testing.T) {
	lone := dom.A(dom.Class("dropdown-toggle"), dom.Href("#"), "user")
	p := mountDropdown(t, dom.Body(dom.Div(lone)))

	rec, ok := p.Report().Lookup("dropdown")
	if !ok {
		t.Fatal("Expected a mount record for dropdown")
	}
	if rec.Status != page.StatusSkipped {
		t.Errorf("status = %v, want skipped", rec.Status)
	}
}

func TestOrphanToggleAmongWiredOnes(t *testing.T) {
	wrap, toggle, menu := userDropdown("user")
	lone := dom.A(dom.Class("dropdown-toggle"), dom.Href("#"), "broken")
	p := mountDropdown(t, dom.Body(wrap, dom.Div(lone)))

	rec, _ := p.Report().Lookup("dropdown")
	if rec.Status != page.StatusMounted {
		t.Fatalf("status = %v, want mounted", rec.Status)
	}
	click(p, lone)
	if menu.HasClass(ShowClass) {
		t.Fatal("Expected the orphan toggle to do nothing")
	}
	click(p, toggle)
	if !menu.HasClass(ShowClass) {
		t.Fatal("Expected the wired toggle to still work")
	}
}
