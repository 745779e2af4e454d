// Package middleware provides observability middleware for the page
// dispatch path.
//
// This package includes:
//   - Prometheus metrics for events, patches, sessions, and features
//   - OpenTelemetry tracing with a span per dispatched event
//
// # Prometheus Metrics
//
// NewMetrics builds a Metrics instance and registers its collectors;
// EventMiddleware plugs it into a page:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("myapp"))
//	p, err := page.New(doc, bindings, &page.Config{
//	    Middleware: []page.Middleware{m.EventMiddleware()},
//	})
//
// The session layer calls the recording methods (RecordPatches,
// SessionStarted, SessionEnded, RecordMounts); feature hooks feed the
// toast gauge and the sort and validation counters. Expose the
// registry with promhttp:
//
//	http.Handle("/metrics", promhttp.Handler())
//
// # OpenTelemetry
//
// Tracing creates a span per event from the global tracer provider:
//
//	p, err := page.New(doc, bindings, &page.Config{
//	    Middleware: []page.Middleware{middleware.Tracing()},
//	})
//
// Configure the provider in main() before serving.
package middleware
