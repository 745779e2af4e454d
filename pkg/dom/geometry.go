package dom

import "fmt"

// Rect is an axis-aligned box in viewport coordinates, pixels.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// CenterX returns the horizontal center of the rect.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// String formats the rect for logs.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Size is a width/height pair in pixels.
type Size struct {
	W int
	H int
}

// String formats the size for logs.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}
