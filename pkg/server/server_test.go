package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/features/alerts"
	"github.com/glint-go/glint/pkg/features/dropdown"
	"github.com/glint-go/glint/pkg/middleware"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/protocol"
)

// inboxDoc is the page under test: a user dropdown whose toggle owns
// the next-sibling menu.
func inboxDoc(loc page.Location) (*dom.Document, error) {
	root := dom.Html(
		dom.Head(dom.Title("Inbox")),
		dom.Body(
			dom.Div(dom.Class("dropdown"),
				dom.A(dom.Class("dropdown-toggle"), dom.Href("#"), "Jess"),
				dom.Div(dom.Class("dropdown-menu"),
					dom.A(dom.Class("dropdown-item"), dom.Href("/profile"), "Profile"),
				),
			),
		),
	)
	return dom.NewDocument(root), nil
}

func inboxBindings() []page.Binding {
	return []page.Binding{
		{Selector: ".dropdown-toggle", New: func() page.Mounter { return dropdown.New() }},
	}
}

// inboxIDs rebuilds the document the way the server does and returns
// the toggle and menu node IDs, which are deterministic.
func inboxIDs(t *testing.T) (toggleID, menuID string) {
	t.Helper()
	doc, err := inboxDoc(page.Location{Path: "/"})
	if err != nil {
		t.Fatalf("inboxDoc() error: %v", err)
	}
	toggles := doc.FindAll(".dropdown-toggle")
	menus := doc.FindAll(".dropdown-menu")
	if len(toggles) != 1 || len(menus) != 1 {
		t.Fatalf("fixture query: %d toggles, %d menus, want 1 each", len(toggles), len(menus))
	}
	return toggles[0].ID, menus[0].ID
}

func newInboxServer() *Server {
	s := New(nil)
	s.SetBindings(inboxBindings())
	s.Handle("/", inboxDoc)
	return s
}

func dialLive(t *testing.T, ts *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + LivePath + "?path=" + url.QueryEscape(path)
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial(%s) error: %v", wsURL, err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) *protocol.Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error: %v", err)
	}
	f, err := protocol.DecodeFrame(msg)
	if err != nil {
		t.Fatalf("DecodeFrame() error: %v", err)
	}
	return f
}

func writeFrame(t *testing.T, conn *websocket.Conn, ft protocol.FrameType, payload []byte) {
	t.Helper()
	f := &protocol.Frame{Type: ft, Payload: payload}
	data, err := f.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		t.Fatalf("WriteMessage() error: %v", err)
	}
}

func readHello(t *testing.T, conn *websocket.Conn) *protocol.Hello {
	t.Helper()
	f := readFrame(t, conn)
	if f.Type != protocol.FrameHello {
		t.Fatalf("first frame type = %s, want Hello", f.Type)
	}
	h, err := protocol.DecodeHello(f.Payload)
	if err != nil {
		t.Fatalf("DecodeHello() error: %v", err)
	}
	return h
}

func TestHealthz(t *testing.T) {
	ts := httptest.NewServer(newInboxServer().Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body, _ := io.ReadAll(resp.Body)
	if got := strings.TrimSpace(string(body)); got != "ok" {
		t.Fatalf("body = %q, want %q", got, "ok")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := httptest.NewServer(newInboxServer().Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestPageRendersWithNodeIDs(t *testing.T) {
	ts := httptest.NewServer(newInboxServer().Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET / error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("Content-Type = %q, want text/html", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	html := string(body)
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Fatal("expected rendered page to start with a doctype")
	}
	if !strings.Contains(html, dom.IDAttrName+`="`) {
		t.Fatal("expected rendered page to carry node IDs")
	}
	if !strings.Contains(html, "dropdown-toggle") {
		t.Fatal("expected rendered page to contain the dropdown toggle")
	}
}

func TestUnknownPageNotFound(t *testing.T) {
	ts := httptest.NewServer(newInboxServer().Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/missing")
	if err != nil {
		t.Fatalf("GET /missing error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestLiveSessionDispatchesAndPatches(t *testing.T) {
	srv := newInboxServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	toggleID, menuID := inboxIDs(t)

	conn := dialLive(t, ts, "/")
	defer conn.Close()

	hello := readHello(t, conn)
	if hello.Version != protocol.Version {
		t.Fatalf("hello version = %d, want %d", hello.Version, protocol.Version)
	}
	if len(hello.SessionID) != 32 {
		t.Fatalf("session ID %q, want 32 hex chars", hello.SessionID)
	}
	if got := srv.SessionCount(); got != 1 {
		t.Fatalf("SessionCount() = %d, want 1", got)
	}

	// First click opens the menu.
	writeFrame(t, conn, protocol.FrameEvent, protocol.EncodeEvent(&protocol.Event{
		Kind:   protocol.EvClick,
		Target: toggleID,
	}))
	f := readFrame(t, conn)
	if f.Type != protocol.FramePatches {
		t.Fatalf("frame type = %s, want Patches", f.Type)
	}
	batch, err := protocol.DecodeBatch(f.Payload)
	if err != nil {
		t.Fatalf("DecodeBatch() error: %v", err)
	}
	if batch.Seq != 1 {
		t.Fatalf("batch seq = %d, want 1", batch.Seq)
	}
	if len(batch.Patches) != 1 {
		t.Fatalf("got %d patches, want 1", len(batch.Patches))
	}
	p := batch.Patches[0]
	if p.Op != protocol.PatchAddClass || p.Target != menuID || p.Key != dropdown.ShowClass {
		t.Fatalf("patch = %+v, want AddClass %q on %s", p, dropdown.ShowClass, menuID)
	}

	// Second click closes it.
	writeFrame(t, conn, protocol.FrameEvent, protocol.EncodeEvent(&protocol.Event{
		Kind:   protocol.EvClick,
		Target: toggleID,
	}))
	f = readFrame(t, conn)
	batch, err = protocol.DecodeBatch(f.Payload)
	if err != nil {
		t.Fatalf("DecodeBatch() error: %v", err)
	}
	if batch.Seq != 2 {
		t.Fatalf("batch seq = %d, want 2", batch.Seq)
	}
	p = batch.Patches[0]
	if p.Op != protocol.PatchRemoveClass || p.Target != menuID {
		t.Fatalf("patch = %+v, want RemoveClass on %s", p, menuID)
	}
}

func TestLiveSessionClosesOnDisconnect(t *testing.T) {
	srv := newInboxServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dialLive(t, ts, "/")
	readHello(t, conn)
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for srv.SessionCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("SessionCount() = %d after disconnect, want 0", srv.SessionCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestLiveUnknownPageRejected(t *testing.T) {
	ts := httptest.NewServer(newInboxServer().Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + LivePath + "?path=/missing"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		conn.Close()
		t.Fatal("expected dial to fail for unknown page")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 handshake response, got %+v", resp)
	}
	resp.Body.Close()
}

func TestLivePingPong(t *testing.T) {
	ts := httptest.NewServer(newInboxServer().Handler())
	defer ts.Close()

	conn := dialLive(t, ts, "/")
	defer conn.Close()
	readHello(t, conn)

	writeFrame(t, conn, protocol.FrameControl, protocol.EncodeControl(&protocol.Control{
		Kind:  protocol.CtrlPing,
		Stamp: 12345,
	}))
	f := readFrame(t, conn)
	if f.Type != protocol.FrameControl {
		t.Fatalf("frame type = %s, want Control", f.Type)
	}
	c, err := protocol.DecodeControl(f.Payload)
	if err != nil {
		t.Fatalf("DecodeControl() error: %v", err)
	}
	if c.Kind != protocol.CtrlPong {
		t.Fatalf("control kind = %s, want Pong", c.Kind)
	}
	if c.Stamp != 12345 {
		t.Fatalf("pong stamp = %d, want 12345", c.Stamp)
	}
}

func TestLiveUnknownTargetReportsError(t *testing.T) {
	ts := httptest.NewServer(newInboxServer().Handler())
	defer ts.Close()

	conn := dialLive(t, ts, "/")
	defer conn.Close()
	readHello(t, conn)

	writeFrame(t, conn, protocol.FrameEvent, protocol.EncodeEvent(&protocol.Event{
		Kind:   protocol.EvClick,
		Target: "g999",
	}))
	f := readFrame(t, conn)
	if f.Type != protocol.FrameError {
		t.Fatalf("frame type = %s, want Error", f.Type)
	}
	em, err := protocol.DecodeError(f.Payload)
	if err != nil {
		t.Fatalf("DecodeError() error: %v", err)
	}
	if em.Code != protocol.CodeUnknownTarget {
		t.Fatalf("error code = %s, want UnknownTarget", em.Code)
	}
}

func TestLiveBadFrameReportsError(t *testing.T) {
	ts := httptest.NewServer(newInboxServer().Handler())
	defer ts.Close()

	conn := dialLive(t, ts, "/")
	defer conn.Close()
	readHello(t, conn)

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{0xFF, 0x00, 0x00, 0x00}); err != nil {
		t.Fatalf("WriteMessage() error: %v", err)
	}
	f := readFrame(t, conn)
	if f.Type != protocol.FrameError {
		t.Fatalf("frame type = %s, want Error", f.Type)
	}
	em, err := protocol.DecodeError(f.Payload)
	if err != nil {
		t.Fatalf("DecodeError() error: %v", err)
	}
	if em.Code != protocol.CodeBadFrame {
		t.Fatalf("error code = %s, want BadFrame", em.Code)
	}
}

func TestShutdownSaysGoodbye(t *testing.T) {
	srv := newInboxServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dialLive(t, ts, "/")
	defer conn.Close()
	readHello(t, conn)

	done := make(chan error, 1)
	go func() {
		done <- srv.Shutdown(context.Background())
	}()

	f := readFrame(t, conn)
	if f.Type != protocol.FrameControl {
		t.Fatalf("frame type = %s, want Control", f.Type)
	}
	c, err := protocol.DecodeControl(f.Payload)
	if err != nil {
		t.Fatalf("DecodeControl() error: %v", err)
	}
	if c.Kind != protocol.CtrlBye {
		t.Fatalf("control kind = %s, want Bye", c.Kind)
	}
	if err := <-done; err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if got := srv.SessionCount(); got != 0 {
		t.Fatalf("SessionCount() = %d after shutdown, want 0", got)
	}
}

func TestSessionMetricsRecorded(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(middleware.WithRegistry(reg))

	srv := newInboxServer()
	srv.SetMetrics(m)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dialLive(t, ts, "/")
	defer conn.Close()
	readHello(t, conn)

	if got := gatherValue(t, reg, "glint_active_sessions"); got != 1 {
		t.Fatalf("glint_active_sessions = %v, want 1", got)
	}
	if got := gatherValue(t, reg, "glint_feature_mounts_total"); got != 1 {
		t.Fatalf("glint_feature_mounts_total = %v, want 1", got)
	}

	toggleID, _ := inboxIDs(t)
	writeFrame(t, conn, protocol.FrameEvent, protocol.EncodeEvent(&protocol.Event{
		Kind:   protocol.EvClick,
		Target: toggleID,
	}))
	readFrame(t, conn)

	if got := gatherValue(t, reg, "glint_patches_sent_total"); got != 1 {
		t.Fatalf("glint_patches_sent_total = %v, want 1", got)
	}
}

// gatherValue sums the samples of a metric family across label sets.
func gatherValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	var sum float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			switch {
			case m.Gauge != nil:
				sum += m.GetGauge().GetValue()
			case m.Counter != nil:
				sum += m.GetCounter().GetValue()
			}
		}
	}
	return sum
}

// trapFeature panics on every click so dispatch recovery can be
// observed from the client side.
type trapFeature struct{}

func (trapFeature) Name() string { return "trap" }

func (trapFeature) Mount(ctx *page.MountCtx, anchors []*dom.Node) error {
	for _, a := range anchors {
		ctx.Page.On(a, page.Click, func(*page.Event) { panic("boom") })
	}
	return nil
}

func TestLiveHandlerPanicReportsAndSurvives(t *testing.T) {
	srv := New(nil)
	srv.SetBindings([]page.Binding{
		{Selector: ".dropdown-toggle", New: func() page.Mounter { return trapFeature{} }},
	})
	srv.Handle("/", inboxDoc)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	toggleID, _ := inboxIDs(t)
	conn := dialLive(t, ts, "/")
	defer conn.Close()
	readHello(t, conn)

	writeFrame(t, conn, protocol.FrameEvent, protocol.EncodeEvent(&protocol.Event{
		Kind:   protocol.EvClick,
		Target: toggleID,
	}))
	f := readFrame(t, conn)
	if f.Type != protocol.FrameError {
		t.Fatalf("frame type = %s, want Error", f.Type)
	}
	em, err := protocol.DecodeError(f.Payload)
	if err != nil {
		t.Fatalf("DecodeError() error: %v", err)
	}
	if em.Code != protocol.CodeInternal {
		t.Fatalf("error code = %s, want Internal", em.Code)
	}

	// The event loop survived the panic: a second event still reaches
	// the handler and is reported the same way.
	writeFrame(t, conn, protocol.FrameEvent, protocol.EncodeEvent(&protocol.Event{
		Kind:   protocol.EvClick,
		Target: toggleID,
	}))
	f = readFrame(t, conn)
	if f.Type != protocol.FrameError {
		t.Fatalf("frame type after recovery = %s, want Error", f.Type)
	}
}

// flashDoc carries one auto-hiding alert so timer callbacks flow
// through the session's event loop.
func flashDoc(loc page.Location) (*dom.Document, error) {
	root := dom.Html(
		dom.Head(dom.Title("Flash")),
		dom.Body(
			dom.Div(dom.Class("alert", "alert-success"), dom.Data("auto-hide", "100"), "Saved."),
		),
	)
	return dom.NewDocument(root), nil
}

func TestLiveTimerDrivenPatches(t *testing.T) {
	srv := New(nil)
	srv.SetBindings([]page.Binding{
		{Selector: ".alert[data-auto-hide]", New: func() page.Mounter { return alerts.New() }},
	})
	srv.Handle("/flash", flashDoc)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dialLive(t, ts, "/flash")
	defer conn.Close()
	readHello(t, conn)

	// No client event: the hide class arrives from the auto-hide timer,
	// the removal from the exit timer.
	f := readFrame(t, conn)
	batch, err := protocol.DecodeBatch(f.Payload)
	if err != nil {
		t.Fatalf("DecodeBatch() error: %v", err)
	}
	if len(batch.Patches) != 1 || batch.Patches[0].Op != protocol.PatchAddClass || batch.Patches[0].Key != alerts.HideClass {
		t.Fatalf("first timer batch = %+v, want AddClass %q", batch.Patches, alerts.HideClass)
	}

	f = readFrame(t, conn)
	batch, err = protocol.DecodeBatch(f.Payload)
	if err != nil {
		t.Fatalf("DecodeBatch() error: %v", err)
	}
	if len(batch.Patches) != 1 || batch.Patches[0].Op != protocol.PatchRemove {
		t.Fatalf("second timer batch = %+v, want Remove", batch.Patches)
	}
}
