// Package glint is the interaction engine for server-rendered
// dashboards. Pages are plain HTML documents; feature modules bind to
// marker classes and attributes (sortable headers, search boxes,
// dropdowns, tooltips) and run server-side, mirroring their DOM
// mutations to the browser as patches over a live session.
//
// This is the recommended import for most applications:
//
//	import "github.com/glint-go/glint"
//
// Usage:
//
//	app := glint.New(glint.Config{
//	    Language:   language.AmericanEnglish,
//	    Breakpoint: 768,
//	    OnQuery:    func(input *dom.Node, q string) { /* filter rows */ },
//	})
//	app.Handle("/", dashboardPage)
//	log.Fatal(app.Run())
package glint

import (
	"context"
	"net/http"

	"log/slog"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/features/alerts"
	"github.com/glint-go/glint/pkg/features/charts"
	"github.com/glint-go/glint/pkg/features/chrome"
	"github.com/glint-go/glint/pkg/features/dropdown"
	"github.com/glint-go/glint/pkg/features/navmark"
	"github.com/glint-go/glint/pkg/features/reveal"
	"github.com/glint-go/glint/pkg/features/search"
	"github.com/glint-go/glint/pkg/features/sortable"
	"github.com/glint-go/glint/pkg/features/toast"
	"github.com/glint-go/glint/pkg/features/tooltip"
	"github.com/glint-go/glint/pkg/features/validate"
	"github.com/glint-go/glint/pkg/format"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/server"
	"github.com/glint-go/glint/pkg/ui"
	"golang.org/x/text/language"
)

// =============================================================================
// Re-exports
// =============================================================================

// Binding maps a selector to a feature constructor.
type Binding = page.Binding

// Page is the runtime for one rendered document.
type Page = page.Page

// Event is one interaction dispatched through a page.
type Event = page.Event

// PageFunc builds the document served at a path.
type PageFunc = server.PageFunc

// Services is the handle page logic works through.
type Services = ui.Services

// Confirmer decides whether a gated action may run.
type Confirmer = ui.Confirmer

// =============================================================================
// App Type
// =============================================================================

// App is the main Glint application entry point.
// It wraps the server, the feature bindings, and the metrics wiring
// into a single http.Handler.
//
// Create an App with glint.New():
//
//	app := glint.New(glint.Config{})
//	app.Handle("/", pageFn)
//	http.ListenAndServe(":8080", app)
type App struct {
	config Config
	server *server.Server
	logger *slog.Logger
}

// New creates a new Glint application with the given configuration.
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := server.New(cfg.Server)
	s.SetLogger(logger)

	bindings := cfg.Bindings
	if bindings == nil {
		bindings = DefaultBindings(&cfg)
	}
	s.SetBindings(bindings)

	if cfg.Metrics != nil {
		s.SetMetrics(cfg.Metrics)
		s.Use(cfg.Metrics.EventMiddleware())
	}
	for _, mw := range cfg.Middleware {
		s.Use(mw)
	}

	return &App{config: cfg, server: s, logger: logger}
}

// Handle registers the page served at path.
func (a *App) Handle(path string, fn PageFunc) {
	a.server.Handle(path, fn)
}

// HandlePages registers a page map, path by path.
func (a *App) HandlePages(pages map[string]PageFunc) {
	for path, fn := range pages {
		a.server.Handle(path, fn)
	}
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.server.Handler().ServeHTTP(w, r)
}

// Handler returns the underlying router: registered pages, the live
// session endpoint, /healthz, and /metrics.
func (a *App) Handler() http.Handler {
	return a.server.Handler()
}

// Server returns the underlying server for direct access.
func (a *App) Server() *server.Server {
	return a.server
}

// Run starts the listener and blocks until shutdown or failure.
func (a *App) Run() error {
	return a.server.Run()
}

// Shutdown closes live sessions and stops the listener.
func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// =============================================================================
// Bindings
// =============================================================================

// DefaultBindings reproduces the standard HTML contract: one binding
// per feature, each with its marker selector. Selectors that match
// nothing are declared skips, so a page carries only the features its
// markup asks for.
func DefaultBindings(cfg *Config) []page.Binding {
	if cfg == nil {
		cfg = &Config{}
	}

	sortOpts := []sortable.Option{}
	if cfg.Language != language.Und {
		sortOpts = append(sortOpts, sortable.WithLanguage(cfg.Language))
	}
	toastOpts := []toast.Option{}
	validateOpts := []validate.Option{}
	if cfg.Metrics != nil {
		m := cfg.Metrics
		sortOpts = append(sortOpts, sortable.WithOnSort(m.SortApplied))
		toastOpts = append(toastOpts, toast.WithObserver(m))
		validateOpts = append(validateOpts, validate.WithOnInvalid(m.ValidationBlocked))
	}
	chartOpts := []charts.Option{}
	for name, r := range cfg.Charts {
		chartOpts = append(chartOpts, charts.WithRenderer(name, r))
	}

	bindings := []page.Binding{
		{Selector: "body", New: func() page.Mounter {
			return toast.New(toastOpts...)
		}},
		{Selector: "th.sortable", New: func() page.Mounter {
			return sortable.New(sortOpts...)
		}},
		{Selector: ".search-box input", New: func() page.Mounter {
			return search.New(search.WithWindow(cfg.SearchWindow), search.WithQuery(cfg.OnQuery))
		}},
		{Selector: "form[data-validate]", New: func() page.Mounter {
			return validate.New(validateOpts...)
		}},
		{Selector: "[data-tooltip]", New: func() page.Mounter {
			return tooltip.New()
		}},
		{Selector: ".sidebar-toggle", New: func() page.Mounter {
			return chrome.New(chrome.WithBreakpoint(cfg.Breakpoint))
		}},
		{Selector: ".dropdown-toggle", New: func() page.Mounter {
			return dropdown.New()
		}},
		{Selector: ".nav-link", New: func() page.Mounter {
			return navmark.New()
		}},
		{Selector: ".alert[data-auto-hide]", New: func() page.Mounter {
			return alerts.New(alerts.WithDefaultDelay(cfg.AutoHide))
		}},
		{Selector: ".password-toggle", New: func() page.Mounter {
			return reveal.New()
		}},
		{Selector: "[data-chart]", New: func() page.Mounter {
			return charts.New(chartOpts...)
		}},
	}

	if cfg.OnMount != nil {
		bindings = append(bindings, page.Binding{
			Selector: "body",
			New: func() page.Mounter {
				return &appMounter{cfg: cfg}
			},
		})
	}

	return bindings
}

// NewPage builds a headless page from doc with the default bindings.
// Sessions are not involved; tests and embedding code drive the page
// directly.
func NewPage(doc *dom.Document, cfg *Config) (*page.Page, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	return page.New(doc, DefaultBindings(cfg), &page.Config{Logger: cfg.Logger})
}

// ServicesFor builds the services handle for a mounted page: the
// page's toast notifier (when mounted), the configured confirmer, a
// formatter for the configured locale, and the page's scheduler for
// debounce.
func ServicesFor(p *page.Page, cfg *Config) *ui.Services {
	if cfg == nil {
		cfg = &Config{}
	}
	uiCfg := &ui.Config{
		Confirmer: cfg.Confirmer,
		Formatter: cfg.formatter(),
		Scheduler: p.Scheduler(),
		Logger:    p.Logger(),
	}
	if m, ok := p.Mounted("toast"); ok {
		if n, ok := m.(*toast.Notifier); ok {
			uiCfg.Notifier = toastNotifier{n}
		}
	}
	return ui.NewServices(uiCfg)
}

// formatter builds the locale formatter for this config.
func (c *Config) formatter() *format.Formatter {
	opts := []format.Option{format.WithDateLayout(c.DateLayout)}
	if c.Language != language.Und {
		opts = append(opts, format.WithLanguage(c.Language))
	}
	return format.NewFormatter(opts...)
}

// toastNotifier adapts the toast feature to the ui.Notifier interface.
type toastNotifier struct {
	n *toast.Notifier
}

func (t toastNotifier) Notify(message, kind string) {
	t.n.Notify(message, toast.ParseKind(kind))
}

// appMounter runs the configured OnMount hook as the last binding, so
// the standard features (the toast container in particular) are in
// place before page logic starts.
type appMounter struct {
	cfg *Config
}

func (a *appMounter) Name() string { return "app" }

func (a *appMounter) Mount(ctx *page.MountCtx, anchors []*dom.Node) error {
	return a.cfg.OnMount(ctx.Page, ServicesFor(ctx.Page, a.cfg))
}
