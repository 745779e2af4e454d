// Package reveal flips a password input between hidden and plain text.
//
// A toggle owns the input element that precedes it. Clicking switches
// the input's type and mirrors the state onto the toggle with an
// active class, so the icon can follow.
package reveal

import (
	"fmt"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
)

// ActiveClass marks a toggle whose input is currently revealed.
const ActiveClass = "active"

// Toggle wires password visibility toggles.
type Toggle struct{}

// New returns a Toggle.
func New() *Toggle {
	return &Toggle{}
}

// Name identifies the feature in mount reports.
func (t *Toggle) Name() string { return "reveal" }

// Mount binds every toggle to its preceding input. Toggles without one
// are left inert; a page where none has an input declines to mount.
func (t *Toggle) Mount(ctx *page.MountCtx, anchors []*dom.Node) error {
	wired := 0
	for _, btn := range anchors {
		input := btn.PrevElement()
		if input == nil || input.Tag != "input" {
			ctx.Log.Debug("toggle has no preceding input")
			continue
		}
		wired++
		ctx.Page.On(btn, page.Click, func(*page.Event) {
			flip(btn, input)
		})
	}
	if wired == 0 {
		return fmt.Errorf("reveal: no toggle precedes an input: %w", page.ErrSkip)
	}
	return nil
}

func flip(btn, input *dom.Node) {
	if input.Attr("type") == "password" {
		input.SetAttr("type", "text")
		btn.AddClass(ActiveClass)
		return
	}
	input.SetAttr("type", "password")
	btn.RemoveClass(ActiveClass)
}
