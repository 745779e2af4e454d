// Package ui is the services handle page logic works through: notify,
// confirm-then-run, formatting, and debounce, behind one explicitly
// constructed object. Nothing here reaches for globals; embedding code
// builds a Services per page and passes it to whatever needs it.
package ui

import (
	"log/slog"
	"time"

	"github.com/glint-go/glint/pkg/format"
	"github.com/glint-go/glint/pkg/schedule"
)

// Notifier shows a transient message of a named kind. The toast
// feature is the usual implementation.
type Notifier interface {
	Notify(message, kind string)
}

// Confirmer decides whether a gated action may run. Sessions prompt
// the user; tests and headless pages plug in a fixed answer.
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(message string) bool

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(message string) bool {
	return f(message)
}

// Always approves every confirmation.
func Always() Confirmer {
	return ConfirmerFunc(func(string) bool { return true })
}

// Never declines every confirmation.
func Never() Confirmer {
	return ConfirmerFunc(func(string) bool { return false })
}

// Config wires a Services handle.
type Config struct {
	// Notifier receives Notify calls. Nil drops them with a debug log.
	Notifier Notifier

	// Confirmer gates Confirm calls. Nil approves everything.
	Confirmer Confirmer

	// Formatter renders currency and dates. Nil gets the defaults.
	Formatter *format.Formatter

	// Scheduler drives Debounce. Nil gets a wall clock.
	Scheduler schedule.Scheduler

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Services is the handle handed to page logic.
type Services struct {
	notifier  Notifier
	confirmer Confirmer
	formatter *format.Formatter
	sched     schedule.Scheduler
	log       *slog.Logger
}

// NewServices builds a Services from cfg, filling in defaults.
func NewServices(cfg *Config) *Services {
	if cfg == nil {
		cfg = &Config{}
	}
	s := &Services{
		notifier:  cfg.Notifier,
		confirmer: cfg.Confirmer,
		formatter: cfg.Formatter,
		sched:     cfg.Scheduler,
		log:       cfg.Logger,
	}
	if s.confirmer == nil {
		s.confirmer = Always()
	}
	if s.formatter == nil {
		s.formatter = format.NewFormatter()
	}
	if s.sched == nil {
		s.sched = schedule.NewClock(nil)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// Notify shows a transient message. Unknown kinds are the notifier's
// problem; the toast implementation falls back to info.
func (s *Services) Notify(message, kind string) {
	if s.notifier == nil {
		s.log.Debug("notification dropped, no notifier", "kind", kind, "message", message)
		return
	}
	s.notifier.Notify(message, kind)
}

// Success shows a success message.
func (s *Services) Success(message string) { s.Notify(message, "success") }

// Error shows an error message.
func (s *Services) Error(message string) { s.Notify(message, "error") }

// Warning shows a warning message.
func (s *Services) Warning(message string) { s.Notify(message, "warning") }

// Info shows an info message.
func (s *Services) Info(message string) { s.Notify(message, "info") }

// Confirm runs fn only if the confirmer approves the message.
func (s *Services) Confirm(message string, fn func()) {
	if !s.confirmer.Confirm(message) {
		s.log.Debug("action declined", "message", message)
		return
	}
	if fn != nil {
		fn()
	}
}

// FormatCurrency renders an amount in a currency.
func (s *Services) FormatCurrency(amount float64, code string) string {
	return s.formatter.Currency(amount, code)
}

// FormatDate renders a date.
func (s *Services) FormatDate(t time.Time) string {
	return s.formatter.Date(t)
}

// Debounce wraps fn so repeated calls within d collapse into one.
func (s *Services) Debounce(d time.Duration, fn func()) func() {
	return format.DebounceFunc(s.sched, d, fn)
}
