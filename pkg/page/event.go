package page

import "github.com/glint-go/glint/pkg/dom"

// EventType identifies a user interaction delivered to the page.
type EventType uint8

const (
	Click EventType = iota + 1
	Input
	Change
	Submit
	PointerEnter
	PointerLeave
	Resize
)

// String returns the DOM-style event name.
func (t EventType) String() string {
	switch t {
	case Click:
		return "click"
	case Input:
		return "input"
	case Change:
		return "change"
	case Submit:
		return "submit"
	case PointerEnter:
		return "pointerenter"
	case PointerLeave:
		return "pointerleave"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is one interaction being dispatched through a page.
//
// Target is nil for document-level events such as Resize. Value carries
// the input's live value for Input and Change. Rect carries the
// target's bounding box for pointer events; the client measures it
// because the server has no layout engine. Size carries the viewport
// for Resize.
type Event struct {
	Type   EventType
	Target *dom.Node
	Value  string
	Rect   dom.Rect
	Size   dom.Size

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault suppresses the default action associated with the
// event. For Submit it blocks the submission; Dispatch reports the
// resulting decision.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation ends bubbling after the current node's handlers run.
// Document-level handlers are skipped too.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// Handler consumes an event.
type Handler func(*Event)

// Middleware wraps event delivery. Installed middleware observes every
// dispatched event around the bubbling phase.
type Middleware func(next Handler) Handler
