package protocol

// Version is the protocol revision. A client seeing a higher version
// than it speaks should reconnect with a full page load.
const Version uint64 = 1

// Hello is the server's first frame on a new session.
type Hello struct {
	Version   uint64
	SessionID string
}

// EncodeHello serializes a hello payload.
func EncodeHello(h *Hello) []byte {
	e := NewEncoder()
	e.Uvarint(h.Version)
	e.String(h.SessionID)
	return e.Bytes()
}

// DecodeHello parses a hello payload.
func DecodeHello(data []byte) (*Hello, error) {
	d := NewDecoder(data)
	h := &Hello{}
	var err error
	if h.Version, err = d.Uvarint(); err != nil {
		return nil, err
	}
	if h.SessionID, err = d.String(); err != nil {
		return nil, err
	}
	return h, nil
}
