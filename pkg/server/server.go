package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/middleware"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/schedule"
)

// LivePath is the WebSocket endpoint. The ?path= query parameter names
// the registered page the session runs.
const LivePath = "/_glint/live"

// PageFunc builds a fresh document for one page. It runs once per HTTP
// request and once per live session; it must be deterministic for a
// given location so the session's node IDs line up with the HTML the
// client already holds.
type PageFunc func(loc page.Location) (*dom.Document, error)

// Server hosts pages over HTTP and runs their live sessions.
type Server struct {
	config   *Config
	router   chi.Router
	upgrader websocket.Upgrader
	logger   *slog.Logger

	pages    map[string]PageFunc
	bindings []page.Binding
	eventMW  []page.Middleware
	metrics  *middleware.Metrics

	mu       sync.Mutex
	sessions map[string]*Session

	httpServer *http.Server
}

// New creates a Server. A nil config uses DefaultConfig; unset fields
// are filled with defaults.
func New(config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	} else {
		config = config.Clone()
		defaults := DefaultConfig()
		if config.Address == "" {
			config.Address = defaults.Address
		}
		if config.ReadBufferSize == 0 {
			config.ReadBufferSize = defaults.ReadBufferSize
		}
		if config.WriteBufferSize == 0 {
			config.WriteBufferSize = defaults.WriteBufferSize
		}
		if config.CheckOrigin == nil {
			config.CheckOrigin = defaults.CheckOrigin
		}
		if config.Session == nil {
			config.Session = defaults.Session
		}
		if config.ReadHeaderTimeout == 0 {
			config.ReadHeaderTimeout = defaults.ReadHeaderTimeout
		}
		if config.IdleTimeout == 0 {
			config.IdleTimeout = defaults.IdleTimeout
		}
		if config.ShutdownTimeout == 0 {
			config.ShutdownTimeout = defaults.ShutdownTimeout
		}
	}

	s := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		logger:   slog.Default().With("component", "server"),
		pages:    make(map[string]PageFunc),
		sessions: make(map[string]*Session),
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get(LivePath, s.handleLive)
	s.router = r
	return s
}

// SetLogger sets the server logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// SetBindings sets the feature binding list applied to every page.
func (s *Server) SetBindings(bindings []page.Binding) {
	s.bindings = bindings
}

// SetMetrics installs the engine collectors. Sessions and mount reports
// record into them; nil disables recording.
func (s *Server) SetMetrics(m *middleware.Metrics) {
	s.metrics = m
}

// Use appends event middleware applied to every page's dispatch path,
// outermost first.
func (s *Server) Use(mw page.Middleware) {
	s.eventMW = append(s.eventMW, mw)
}

// Handle registers a page at path. The path doubles as the chi route
// pattern and the key live sessions look up, so it must be a literal
// path. Registering the same path twice panics, as with any mux.
func (s *Server) Handle(path string, fn PageFunc) {
	s.pages[path] = fn
	s.router.Get(path, s.handlePage(path, fn))
}

// Handler returns the server's HTTP handler for mounting in an outer
// router or test server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Config returns the server configuration.
func (s *Server) Config() *Config {
	return s.config
}

// buildPage runs the page builder and mounts the binding list.
func (s *Server) buildPage(fn PageFunc, cfg *page.Config) (*page.Page, error) {
	doc, err := fn(cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("server: page build %s: %w", cfg.Location.Path, err)
	}
	cfg.Middleware = s.eventMW
	p, err := page.New(doc, s.bindings, cfg)
	if err != nil {
		return nil, fmt.Errorf("server: page mount %s: %w", cfg.Location.Path, err)
	}
	if s.metrics != nil {
		s.metrics.RecordMounts(p.Report())
	}
	return p, nil
}

// handlePage serves the full rendered document. Mount-time mutations
// (the toast container, nav marking) are part of the HTML, so what the
// browser shows matches what a later session rebuilds.
func (s *Server) handlePage(path string, fn PageFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := s.buildPage(fn, &page.Config{
			Location: page.Location{Path: path},
			Logger:   s.logger,
		})
		if err != nil {
			s.logger.Error("page render failed", "path", path, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		defer p.Close()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, dom.RenderDocument(p.Doc()))
	}
}

// handleLive upgrades to WebSocket and runs a session for the page
// named by ?path= (default "/").
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}
	fn, ok := s.pages[path]
	if !ok {
		http.Error(w, "Unknown page", http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(s.config.Session.MaxMessageSize)

	sess := newSession(conn, s.config.Session, s.logger, s.metrics)
	sess.onClose = s.dropSession

	p, err := s.buildPage(fn, &page.Config{
		Location:  page.Location{Path: path},
		Scheduler: schedule.NewClock(sess.enqueue),
		Logger:    s.logger.With("session_id", sess.id),
	})
	if err != nil {
		s.logger.Error("session page build failed", "path", path, "error", err)
		conn.Close()
		return
	}
	sess.page = p

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	if s.metrics != nil {
		s.metrics.SessionStarted()
	}

	s.logger.Info("session started", "session_id", sess.id, "path", path)
	sess.start()
}

func (s *Server) dropSession(sess *Session) {
	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()
	if s.metrics != nil {
		s.metrics.SessionEnded()
	}
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// Run starts the server and blocks until a shutdown signal or a listen
// error.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-shutdown:
		s.logger.Info("shutting down")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes all sessions and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	open := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		open = append(open, sess)
	}
	s.mu.Unlock()
	for _, sess := range open {
		sess.sendBye("server shutdown")
		sess.Close()
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}
