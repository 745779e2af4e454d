package protocol

// ErrCode classifies a server-reported fault.
type ErrCode uint16

const (
	CodeBadFrame      ErrCode = 1 // Frame could not be decoded
	CodeBadEvent      ErrCode = 2 // Event payload invalid
	CodeUnknownTarget ErrCode = 3 // Event addressed a node the server does not know
	CodeInternal      ErrCode = 4 // Handler panic or other server fault
)

// String returns the code name.
func (c ErrCode) String() string {
	switch c {
	case CodeBadFrame:
		return "BadFrame"
	case CodeBadEvent:
		return "BadEvent"
	case CodeUnknownTarget:
		return "UnknownTarget"
	case CodeInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// ErrorMsg is a fault report sent to the client. Detail is meant for
// developer consoles, not end users.
type ErrorMsg struct {
	Code   ErrCode
	Detail string
}

// EncodeError serializes an error payload.
func EncodeError(em *ErrorMsg) []byte {
	e := NewEncoder()
	e.Uvarint(uint64(em.Code))
	e.String(em.Detail)
	return e.Bytes()
}

// DecodeError parses an error payload.
func DecodeError(data []byte) (*ErrorMsg, error) {
	d := NewDecoder(data)
	code, err := d.Uvarint()
	if err != nil {
		return nil, err
	}
	detail, err := d.String()
	if err != nil {
		return nil, err
	}
	return &ErrorMsg{Code: ErrCode(code), Detail: detail}, nil
}
