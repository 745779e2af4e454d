package protocol

import "fmt"

// ControlKind identifies a control message.
type ControlKind uint8

const (
	CtrlPing ControlKind = 0x01
	CtrlPong ControlKind = 0x02
	CtrlBye  ControlKind = 0x03
)

// String returns the control kind name.
func (k ControlKind) String() string {
	switch k {
	case CtrlPing:
		return "Ping"
	case CtrlPong:
		return "Pong"
	case CtrlBye:
		return "Bye"
	default:
		return "Unknown"
	}
}

// Control is a ping, pong, or orderly-shutdown message.
//
// Stamp is the sender's unix-milli clock on Ping and is echoed on Pong
// so either side can estimate round-trip time. Bye carries a reason.
type Control struct {
	Kind   ControlKind
	Stamp  int64
	Reason string
}

// EncodeControl serializes a control payload.
func EncodeControl(c *Control) []byte {
	e := NewEncoder()
	e.Byte(byte(c.Kind))
	switch c.Kind {
	case CtrlPing, CtrlPong:
		e.Svarint(c.Stamp)
	case CtrlBye:
		e.String(c.Reason)
	}
	return e.Bytes()
}

// DecodeControl parses a control payload.
func DecodeControl(data []byte) (*Control, error) {
	d := NewDecoder(data)
	kb, err := d.Byte()
	if err != nil {
		return nil, err
	}
	c := &Control{Kind: ControlKind(kb)}
	switch c.Kind {
	case CtrlPing, CtrlPong:
		if c.Stamp, err = d.Svarint(); err != nil {
			return nil, err
		}
	case CtrlBye:
		if c.Reason, err = d.String(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("protocol: unknown control kind 0x%02x", kb)
	}
	return c, nil
}
