// Package dropdown manages toggle-owned menus.
//
// A toggle owns exactly the element that follows it in the document.
// Clicking the toggle shows or hides that menu and suppresses the
// default action; a document-wide click anywhere that is not a toggle
// closes every open menu.
package dropdown

import (
	"fmt"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
)

// ShowClass marks an open menu.
const ShowClass = "show"

// Manager wires dropdown toggles to their next-sibling menus.
type Manager struct {
	// menus maps each toggle to the menu it owns.
	menus map[*dom.Node]*dom.Node
}

// New returns an empty Manager.
func New() *Manager {
	return &Manager{menus: make(map[*dom.Node]*dom.Node)}
}

// Name identifies the feature in mount reports.
func (m *Manager) Name() string { return "dropdown" }

// Mount pairs every toggle with its next sibling. Toggles without one
// are left inert; a page where none has a menu declines to mount.
func (m *Manager) Mount(ctx *page.MountCtx, anchors []*dom.Node) error {
	for _, toggle := range anchors {
		menu := toggle.NextElement()
		if menu == nil {
			ctx.Log.Debug("toggle has no menu sibling")
			continue
		}
		m.menus[toggle] = menu
		ctx.Page.On(toggle, page.Click, func(ev *page.Event) {
			ev.PreventDefault()
			menu.ToggleClass(ShowClass)
		})
	}
	if len(m.menus) == 0 {
		return fmt.Errorf("dropdown: no toggle has a menu: %w", page.ErrSkip)
	}
	ctx.Page.OnDocument(page.Click, m.closeAll)
	return nil
}

// Open returns how many menus are currently shown.
func (m *Manager) Open() int {
	open := 0
	for _, menu := range m.menus {
		if menu.HasClass(ShowClass) {
			open++
		}
	}
	return open
}

// closeAll closes every menu unless the click landed on a toggle, whose
// own handler already decided that menu's state.
func (m *Manager) closeAll(ev *page.Event) {
	if t := ev.Target; t != nil {
		for toggle := range m.menus {
			if toggle.Contains(t) {
				return
			}
		}
	}
	for _, menu := range m.menus {
		menu.RemoveClass(ShowClass)
	}
}
