package glint

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"github.com/glint-go/glint/pkg/features/charts"
	"github.com/glint-go/glint/pkg/features/search"
	"github.com/glint-go/glint/pkg/middleware"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/server"
	"github.com/glint-go/glint/pkg/ui"
)

// Config is the main application configuration.
// This is the user-friendly entry point for configuring a Glint app.
type Config struct {
	// Language is the locale used for table collation and currency
	// formatting. Defaults to English.
	Language language.Tag

	// DateLayout is the reference-time layout FormatDate renders with.
	// Defaults to "Jan 2, 2006".
	DateLayout string

	// SearchWindow is the search debounce window. Defaults to 300ms.
	SearchWindow time.Duration

	// OnQuery receives each settled search query. When nil the search
	// binding declares a skip.
	OnQuery search.QueryFunc

	// Breakpoint is the viewport width in pixels below which an
	// outside click closes the sidebar. Defaults to 1024.
	Breakpoint int

	// AutoHide is the default alert dismiss delay for alerts whose
	// data-auto-hide attribute carries no value. Defaults to 5s.
	AutoHide time.Duration

	// Confirmer gates Services.Confirm actions. Nil approves
	// everything, which suits server-side logic that has already asked
	// the user.
	Confirmer ui.Confirmer

	// Charts maps chart names to renderers for [data-chart]
	// containers. Containers naming no registered renderer are skipped.
	Charts map[string]charts.Renderer

	// Bindings replaces DefaultBindings entirely when non-nil.
	Bindings []page.Binding

	// Middleware wraps event delivery on every page, outermost first.
	Middleware []page.Middleware

	// Metrics records Prometheus series for events, patches, sessions,
	// mounts, toasts, sorts, and validation failures when non-nil.
	Metrics *middleware.Metrics

	// OnMount runs once per page after the standard features mount,
	// with the page and its services handle. Page logic such as flash
	// toasts or chart data wiring starts here. An error fails the
	// page's app binding, not the page.
	OnMount func(p *page.Page, svc *ui.Services) error

	// Server tunes the HTTP listener and live sessions. Nil gets
	// DefaultConfig.
	Server *server.Config

	// Logger is the structured logger for the application.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}
