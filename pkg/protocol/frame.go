package protocol

import (
	"errors"
	"io"
)

const (
	// FrameHeaderSize is the size of the frame header in bytes.
	FrameHeaderSize = 4

	// MaxPayloadSize is the largest payload a frame can carry, fixed
	// by the 16-bit length field.
	MaxPayloadSize = 65535
)

// FrameType identifies the kind of message a frame carries.
type FrameType uint8

const (
	FrameHello   FrameType = 0x01 // Server → client greeting
	FrameEvent   FrameType = 0x02 // Client → server interaction
	FramePatches FrameType = 0x03 // Server → client DOM patches
	FrameControl FrameType = 0x04 // Ping/pong, shutdown
	FrameError   FrameType = 0x05 // Server → client fault report
)

// String returns the frame type name.
func (ft FrameType) String() string {
	switch ft {
	case FrameHello:
		return "Hello"
	case FrameEvent:
		return "Event"
	case FramePatches:
		return "Patches"
	case FrameControl:
		return "Control"
	case FrameError:
		return "Error"
	default:
		return "Unknown"
	}
}

// FrameFlags carry per-frame options. None are defined yet; the byte is
// reserved so the header layout never changes.
type FrameFlags uint8

// Has reports whether all bits of flag are set.
func (ff FrameFlags) Has(flag FrameFlags) bool {
	return ff&flag == flag
}

// Frame errors.
var (
	ErrFrameTooLarge    = errors.New("protocol: frame payload too large")
	ErrInvalidFrameType = errors.New("protocol: invalid frame type")
)

// Frame is one length-delimited protocol message.
//
// Wire format: 1 byte type, 1 byte flags, 2 bytes big-endian payload
// length, then the payload.
type Frame struct {
	Type    FrameType
	Flags   FrameFlags
	Payload []byte
}

// Valid reports whether the frame type is one this package defines.
func (ft FrameType) Valid() bool {
	return ft >= FrameHello && ft <= FrameError
}

// Encode serializes the frame, header included.
func (f *Frame) Encode() ([]byte, error) {
	if len(f.Payload) > MaxPayloadSize {
		return nil, ErrFrameTooLarge
	}
	buf := make([]byte, FrameHeaderSize+len(f.Payload))
	buf[0] = byte(f.Type)
	buf[1] = byte(f.Flags)
	buf[2] = byte(len(f.Payload) >> 8)
	buf[3] = byte(len(f.Payload))
	copy(buf[FrameHeaderSize:], f.Payload)
	return buf, nil
}

// DecodeFrame parses a frame from a complete message buffer, the shape
// a websocket binary message arrives in.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) < FrameHeaderSize {
		return nil, io.ErrUnexpectedEOF
	}
	ft := FrameType(data[0])
	if !ft.Valid() {
		return nil, ErrInvalidFrameType
	}
	length := int(data[2])<<8 | int(data[3])
	if len(data) < FrameHeaderSize+length {
		return nil, io.ErrUnexpectedEOF
	}
	return &Frame{
		Type:    ft,
		Flags:   FrameFlags(data[1]),
		Payload: data[FrameHeaderSize : FrameHeaderSize+length],
	}, nil
}

// WriteFrame encodes the frame to w.
func WriteFrame(w io.Writer, f *Frame) error {
	buf, err := f.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// ReadFrame reads one frame from a byte stream.
func ReadFrame(r io.Reader) (*Frame, error) {
	var header [FrameHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}
	ft := FrameType(header[0])
	if !ft.Valid() {
		return nil, ErrInvalidFrameType
	}
	length := int(header[2])<<8 | int(header[3])
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return &Frame{Type: ft, Flags: FrameFlags(header[1]), Payload: payload}, nil
}
