package server

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/middleware"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/protocol"
)

// Session errors.
var (
	ErrSessionClosed  = errors.New("server: session closed")
	errUnknownTarget  = errors.New("server: unknown event target")
	errUnhandledEvent = errors.New("server: unhandled event kind")
)

// Session is one live WebSocket connection driving one page.
//
// Three goroutines per session: the read loop decodes frames off the
// socket, the write loop heartbeats, and the event loop is the sole
// executor of page code. Both dispatched events and scheduler callbacks
// funnel through the event loop, which keeps the page single-threaded.
type Session struct {
	id      string
	conn    *websocket.Conn
	config  *SessionConfig
	logger  *slog.Logger
	metrics *middleware.Metrics
	page    *page.Page

	events  chan *protocol.Event
	calls   chan func()
	done    chan struct{}
	closed  atomic.Bool
	writeMu sync.Mutex

	onClose func(*Session)
}

// generateSessionID generates a cryptographically random session ID.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return hex.EncodeToString(b)
}

func newSession(conn *websocket.Conn, config *SessionConfig, logger *slog.Logger, metrics *middleware.Metrics) *Session {
	id := generateSessionID()
	return &Session{
		id:      id,
		conn:    conn,
		config:  config,
		logger:  logger.With("session_id", id),
		metrics: metrics,
		events:  make(chan *protocol.Event, config.MaxEventQueue),
		calls:   make(chan func(), config.MaxEventQueue),
		done:    make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// start greets the client and begins the session loops.
func (s *Session) start() {
	s.sendHello()
	go s.readLoop()
	go s.writeLoop()
	go s.eventLoop()
}

// enqueue posts fn onto the event loop. It is the executor behind the
// page's scheduler, so timer callbacks run serialized with events.
func (s *Session) enqueue(fn func()) {
	select {
	case s.calls <- fn:
	case <-s.done:
	}
}

// Close tears the session down. Safe to call from any goroutine and
// more than once; the page itself is closed by the event loop.
func (s *Session) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	close(s.done)
	s.conn.Close()
	if s.onClose != nil {
		s.onClose(s)
	}
	s.logger.Info("session closed")
}

// readLoop continuously reads frames from the socket until the
// connection closes.
func (s *Session) readLoop() {
	defer s.Close()

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		frame, err := protocol.DecodeFrame(msg)
		if err != nil {
			s.logger.Error("frame decode error", "error", err)
			s.sendError(protocol.CodeBadFrame, "invalid frame")
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			s.handleEventFrame(frame.Payload)
		case protocol.FrameControl:
			s.handleControlFrame(frame.Payload)
		default:
			s.logger.Warn("unexpected frame type", "type", frame.Type.String())
		}
	}
}

// handleEventFrame decodes and queues an event from the client.
func (s *Session) handleEventFrame(payload []byte) {
	ev, err := protocol.DecodeEvent(payload)
	if err != nil {
		s.logger.Error("event decode error", "error", err)
		s.sendError(protocol.CodeBadEvent, "invalid event")
		return
	}
	select {
	case s.events <- ev:
	default:
		s.logger.Warn("event queue full, dropping", "kind", ev.Kind.String())
	}
}

// handleControlFrame answers pings and honors client shutdown.
func (s *Session) handleControlFrame(payload []byte) {
	c, err := protocol.DecodeControl(payload)
	if err != nil {
		s.logger.Error("control decode error", "error", err)
		return
	}
	switch c.Kind {
	case protocol.CtrlPing:
		s.sendPong(c.Stamp)
	case protocol.CtrlPong:
		s.logger.Debug("received pong")
	case protocol.CtrlBye:
		s.logger.Info("client closing", "reason", c.Reason)
		s.Close()
	}
}

// writeLoop heartbeats until the session closes.
func (s *Session) writeLoop() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.sendPing(); err != nil {
				s.Close()
				return
			}
		case <-s.done:
			return
		}
	}
}

// eventLoop is the page's executor. It owns the page: all dispatches
// and timer callbacks run here, and the page is closed here when the
// session ends.
func (s *Session) eventLoop() {
	defer s.page.Close()

	for {
		select {
		case ev := <-s.events:
			s.protect(func() { s.dispatchWire(ev) })
			s.flush()
		case fn := <-s.calls:
			s.protect(fn)
			s.flush()
		case <-s.done:
			return
		}
	}
}

// protect runs page code with panic recovery; a handler panic is logged
// with its stack and the session survives.
func (s *Session) protect(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("dispatch panic",
				"panic", r,
				"stack", string(debug.Stack()))
			s.sendError(protocol.CodeInternal, "internal error")
		}
	}()
	fn()
}

// dispatchWire translates a wire event and dispatches it into the page.
func (s *Session) dispatchWire(ev *protocol.Event) {
	pe, err := s.translate(ev)
	if err != nil {
		s.logger.Debug("event dropped", "kind", ev.Kind.String(), "error", err)
		if errors.Is(err, errUnknownTarget) {
			s.sendError(protocol.CodeUnknownTarget, err.Error())
		} else {
			s.sendError(protocol.CodeBadEvent, err.Error())
		}
		return
	}
	s.page.Dispatch(pe)
}

var kindToType = map[protocol.EventKind]page.EventType{
	protocol.EvClick:        page.Click,
	protocol.EvInput:        page.Input,
	protocol.EvChange:       page.Change,
	protocol.EvSubmit:       page.Submit,
	protocol.EvPointerEnter: page.PointerEnter,
	protocol.EvPointerLeave: page.PointerLeave,
	protocol.EvResize:       page.Resize,
}

// translate resolves a wire event against the page document. A stale
// target (node removed since the client measured it) is reported, not
// fatal.
func (s *Session) translate(ev *protocol.Event) (*page.Event, error) {
	t, ok := kindToType[ev.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", errUnhandledEvent, byte(ev.Kind))
	}
	pe := &page.Event{Type: t, Value: ev.Value}
	switch t {
	case page.Resize:
		pe.Size = dom.Size{W: int(ev.W), H: int(ev.H)}
		return pe, nil
	case page.PointerEnter, page.PointerLeave:
		pe.Rect = dom.Rect{X: int(ev.X), Y: int(ev.Y), W: int(ev.W), H: int(ev.H)}
	}
	pe.Target = s.page.NodeByID(ev.Target)
	if pe.Target == nil {
		return nil, fmt.Errorf("%w: %q", errUnknownTarget, ev.Target)
	}
	return pe, nil
}

// flush drains the page's pending mutations into a patch frame.
func (s *Session) flush() {
	batch := s.page.Batch()
	if batch == nil {
		return
	}
	if err := s.send(protocol.FramePatches, protocol.EncodeBatch(batch)); err != nil {
		if !errors.Is(err, ErrSessionClosed) {
			s.logger.Error("patch send failed", "error", err)
		}
		s.Close()
		return
	}
	if s.metrics != nil {
		s.metrics.RecordPatches(len(batch.Patches))
	}
}

// send writes one frame to the socket.
func (s *Session) send(t protocol.FrameType, payload []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.closed.Load() {
		return ErrSessionClosed
	}
	frame := &protocol.Frame{Type: t, Payload: payload}
	data, err := frame.Encode()
	if err != nil {
		return err
	}
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	return s.conn.WriteMessage(websocket.BinaryMessage, data)
}

func (s *Session) sendHello() {
	payload := protocol.EncodeHello(&protocol.Hello{
		Version:   protocol.Version,
		SessionID: s.id,
	})
	if err := s.send(protocol.FrameHello, payload); err != nil {
		s.logger.Error("hello send failed", "error", err)
	}
}

func (s *Session) sendPing() error {
	payload := protocol.EncodeControl(&protocol.Control{
		Kind:  protocol.CtrlPing,
		Stamp: time.Now().UnixMilli(),
	})
	return s.send(protocol.FrameControl, payload)
}

func (s *Session) sendPong(stamp int64) {
	payload := protocol.EncodeControl(&protocol.Control{
		Kind:  protocol.CtrlPong,
		Stamp: stamp,
	})
	if err := s.send(protocol.FrameControl, payload); err != nil && !errors.Is(err, ErrSessionClosed) {
		s.logger.Error("pong send failed", "error", err)
	}
}

func (s *Session) sendBye(reason string) {
	payload := protocol.EncodeControl(&protocol.Control{
		Kind:   protocol.CtrlBye,
		Reason: reason,
	})
	s.send(protocol.FrameControl, payload)
}

func (s *Session) sendError(code protocol.ErrCode, detail string) {
	payload := protocol.EncodeError(&protocol.ErrorMsg{Code: code, Detail: detail})
	if err := s.send(protocol.FrameError, payload); err != nil && !errors.Is(err, ErrSessionClosed) {
		s.logger.Error("error send failed", "error", err)
	}
}
