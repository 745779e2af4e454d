package protocol

import "fmt"

// EventKind identifies a client interaction on the wire.
type EventKind uint8

const (
	EvClick        EventKind = 0x01
	EvInput        EventKind = 0x10
	EvChange       EventKind = 0x11
	EvSubmit       EventKind = 0x12
	EvPointerEnter EventKind = 0x20
	EvPointerLeave EventKind = 0x21
	EvResize       EventKind = 0x30
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EvClick:
		return "Click"
	case EvInput:
		return "Input"
	case EvChange:
		return "Change"
	case EvSubmit:
		return "Submit"
	case EvPointerEnter:
		return "PointerEnter"
	case EvPointerLeave:
		return "PointerLeave"
	case EvResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Valid reports whether the kind is one this package defines.
func (k EventKind) Valid() bool {
	switch k {
	case EvClick, EvInput, EvChange, EvSubmit, EvPointerEnter, EvPointerLeave, EvResize:
		return true
	}
	return false
}

// Event is a client interaction payload.
//
// Target is the node ID the event fired on, empty for viewport events.
// Value carries the input's live value for Input/Change and Submit.
// Pointer events carry the target's bounding rect, measured client-side;
// Resize carries the viewport size in W/H.
type Event struct {
	Kind   EventKind
	Target string
	Value  string
	X, Y   int32
	W, H   int32
}

// hasRect reports whether the kind carries rect coordinates.
func (ev *Event) hasRect() bool {
	return ev.Kind == EvPointerEnter || ev.Kind == EvPointerLeave
}

// hasSize reports whether the kind carries a viewport size.
func (ev *Event) hasSize() bool {
	return ev.Kind == EvResize
}

// EncodeEvent serializes an event payload.
func EncodeEvent(ev *Event) []byte {
	e := NewEncoder()
	e.Byte(byte(ev.Kind))
	e.String(ev.Target)
	e.String(ev.Value)
	switch {
	case ev.hasRect():
		e.Svarint(int64(ev.X))
		e.Svarint(int64(ev.Y))
		e.Svarint(int64(ev.W))
		e.Svarint(int64(ev.H))
	case ev.hasSize():
		e.Svarint(int64(ev.W))
		e.Svarint(int64(ev.H))
	}
	return e.Bytes()
}

// DecodeEvent parses an event payload.
func DecodeEvent(data []byte) (*Event, error) {
	d := NewDecoder(data)
	kb, err := d.Byte()
	if err != nil {
		return nil, err
	}
	ev := &Event{Kind: EventKind(kb)}
	if !ev.Kind.Valid() {
		return nil, fmt.Errorf("protocol: unknown event kind 0x%02x", kb)
	}
	if ev.Target, err = d.String(); err != nil {
		return nil, err
	}
	if ev.Value, err = d.String(); err != nil {
		return nil, err
	}
	readI32 := func() (int32, error) {
		v, err := d.Svarint()
		return int32(v), err
	}
	switch {
	case ev.hasRect():
		if ev.X, err = readI32(); err != nil {
			return nil, err
		}
		if ev.Y, err = readI32(); err != nil {
			return nil, err
		}
		if ev.W, err = readI32(); err != nil {
			return nil, err
		}
		if ev.H, err = readI32(); err != nil {
			return nil, err
		}
	case ev.hasSize():
		if ev.W, err = readI32(); err != nil {
			return nil, err
		}
		if ev.H, err = readI32(); err != nil {
			return nil, err
		}
	}
	return ev, nil
}
