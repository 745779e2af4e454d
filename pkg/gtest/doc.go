// Package gtest provides testing helpers for Glint pages.
//
// The gtest package reduces boilerplate when testing mounted features
// by providing a fluent page builder, event drivers and render
// assertions. Pages built here run on a manual clock, so debounce
// windows and auto-hide delays elapse only when the test says so.
//
// # Quick Start
//
//	func TestSavedAlert_AutoHides(t *testing.T) {
//	    h := gtest.NewPage(`<body><div class="alert" data-auto-hide="100">Saved.</div></body>`).
//	        WithBindings(page.Binding{
//	            Selector: ".alert[data-auto-hide]",
//	            New:      func() page.Mounter { return alerts.New() },
//	        }).
//	        Build(t)
//
//	    h.Advance(100 * time.Millisecond)
//	    gtest.ExpectClass(t, h.Find(".alert"), alerts.HideClass)
//	}
//
// # Fluent Page Builder
//
// The page builder allows chaining multiple setup operations:
//
//	h := gtest.NewPage(html).
//	    WithBindings(bindings...).
//	    WithLocation("/leads").
//	    WithViewport(375, 667).
//	    Build(t)
//
// # Event Drivers
//
// Drivers dispatch events the way a connected client would:
//
//	h.Click(h.Find(".dropdown-toggle"))
//	h.Input(h.Find(".search-box input"), "ava")
//	h.Submit(h.Find("form"))
//
// # Manual Clock
//
// Timers never fire on their own. Advance moves the clock and runs
// whatever comes due, which keeps timing-dependent tests deterministic:
//
//	h.Advance(300 * time.Millisecond)
//
// # Render Assertions
//
// Assert on node state or rendered HTML output:
//
//	gtest.ExpectClass(t, menu, dropdown.ShowClass)
//	gtest.ExpectAttr(t, toggle, "type", "text")
//	gtest.ExpectContains(t, row, "Acme Corp")
package gtest
