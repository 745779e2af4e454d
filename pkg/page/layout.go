package page

import "github.com/glint-go/glint/pkg/dom"

// Layout estimates the rendered size of a node. The server has no real
// layout engine, so tooltip placement and similar geometry rely on an
// estimate; the client-reported anchor rect supplies the other half of
// the math.
type Layout interface {
	Measure(n *dom.Node) dom.Size
}

// LayoutFunc adapts a function to the Layout interface.
type LayoutFunc func(n *dom.Node) dom.Size

// Measure implements Layout.
func (f LayoutFunc) Measure(n *dom.Node) dom.Size {
	return f(n)
}

// TextMetrics is the default layout: a single-line text measurement
// from average glyph width plus padding. Good enough for tooltips and
// toasts, which is all the runtime measures.
type TextMetrics struct {
	// CharWidth is the assumed average glyph width in pixels.
	CharWidth int
	// PadX and PadY are the assumed horizontal and vertical padding.
	PadX int
	PadY int
	// LineHeight is the assumed text line height in pixels.
	LineHeight int
	// MaxWidth caps the estimated width; text beyond it wraps onto
	// additional lines.
	MaxWidth int
}

// DefaultTextMetrics returns the measurement defaults.
func DefaultTextMetrics() *TextMetrics {
	return &TextMetrics{
		CharWidth:  8,
		PadX:       16,
		PadY:       12,
		LineHeight: 20,
		MaxWidth:   320,
	}
}

// Measure implements Layout.
func (tm *TextMetrics) Measure(n *dom.Node) dom.Size {
	text := n.TextContent()
	w := len([]rune(text))*tm.CharWidth + tm.PadX
	lines := 1
	if tm.MaxWidth > 0 && w > tm.MaxWidth {
		usable := tm.MaxWidth - tm.PadX
		if usable < tm.CharWidth {
			usable = tm.CharWidth
		}
		perLine := usable / tm.CharWidth
		runes := len([]rune(text))
		lines = (runes + perLine - 1) / perLine
		if lines < 1 {
			lines = 1
		}
		w = tm.MaxWidth
	}
	return dom.Size{W: w, H: lines*tm.LineHeight + tm.PadY}
}
