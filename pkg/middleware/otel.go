package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/glint-go/glint/pkg/page"
)

// Default tracer name for the engine.
const defaultTracerName = "glint"

// TracingConfig configures the OpenTelemetry middleware.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "glint").
	TracerName string

	// Path is recorded on every span so traces from different pages
	// can be told apart. Empty omits the attribute.
	Path string

	// IncludeValue includes the event's input value in traces.
	// May contain what the user typed - disabled by default.
	IncludeValue bool

	// Filter determines which events to trace.
	// Return true to trace the event, false to skip.
	// If nil, all events are traced.
	Filter func(ev *page.Event) bool

	// AttributeExtractor extracts custom attributes per event.
	AttributeExtractor func(ev *page.Event) []attribute.KeyValue
}

// TracingOption configures the OpenTelemetry middleware.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithPath sets the page path recorded on spans.
func WithPath(path string) TracingOption {
	return func(c *TracingConfig) {
		c.Path = path
	}
}

// WithIncludeValue enables recording input values on spans.
func WithIncludeValue(include bool) TracingOption {
	return func(c *TracingConfig) {
		c.IncludeValue = include
	}
}

// WithEventFilter sets a filter function for events.
func WithEventFilter(filter func(ev *page.Event) bool) TracingOption {
	return func(c *TracingConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(ev *page.Event) []attribute.KeyValue) TracingOption {
	return func(c *TracingConfig) {
		c.AttributeExtractor = extractor
	}
}

func defaultTracingConfig() TracingConfig {
	return TracingConfig{
		TracerName: defaultTracerName,
	}
}

// Tracing returns page middleware that creates a span per dispatched
// event, with the event type and target recorded as attributes.
//
// The tracer comes from the global OpenTelemetry tracer provider.
// Configure it in main() before serving:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
func Tracing(opts ...TracingOption) page.Middleware {
	config := defaultTracingConfig()
	for _, opt := range opts {
		opt(&config)
	}
	tracer := otel.Tracer(config.TracerName)

	return func(next page.Handler) page.Handler {
		return func(ev *page.Event) {
			if config.Filter != nil && !config.Filter(ev) {
				next(ev)
				return
			}

			attrs := []attribute.KeyValue{
				attribute.String("glint.event_type", ev.Type.String()),
			}
			if ev.Target != nil {
				attrs = append(attrs, attribute.String("glint.event_target", ev.Target.ID))
			}
			if config.Path != "" {
				attrs = append(attrs, attribute.String("glint.path", config.Path))
			}
			if config.IncludeValue && ev.Value != "" {
				attrs = append(attrs, attribute.String("glint.event_value", ev.Value))
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(ev)...)
			}

			_, span := tracer.Start(
				context.Background(),
				"glint."+ev.Type.String(),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			next(ev)

			span.SetAttributes(attribute.Bool("glint.default_prevented", ev.DefaultPrevented()))
			span.SetStatus(codes.Ok, "")
		}
	}
}
