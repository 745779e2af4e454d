// Package navmark marks the navigation link that points at the current
// location.
//
// Matching happens once, at mount: each link's href path is compared to
// the page location and exact matches get the active class. Later
// navigation replaces the whole page, so there is nothing to react to.
package navmark

import (
	"net/url"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
)

// ActiveClass marks the link for the current location.
const ActiveClass = "active"

// Highlighter marks nav links at mount.
type Highlighter struct{}

// New returns a Highlighter.
func New() *Highlighter {
	return &Highlighter{}
}

// Name identifies the feature in mount reports.
func (h *Highlighter) Name() string { return "navmark" }

// Mount compares every link against the page location. External links
// and links without an href never match.
func (h *Highlighter) Mount(ctx *page.MountCtx, anchors []*dom.Node) error {
	current := ctx.Page.Location().Path
	for _, link := range anchors {
		if path, ok := linkPath(link.Attr("href")); ok && path == current {
			link.AddClass(ActiveClass)
		}
	}
	return nil
}

// linkPath extracts the path a link targets. Query and fragment are
// ignored; absolute URLs to other hosts are not local targets.
func linkPath(href string) (string, bool) {
	if href == "" {
		return "", false
	}
	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	if u.Scheme != "" || u.Host != "" {
		return "", false
	}
	return u.Path, true
}
