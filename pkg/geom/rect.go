// Package geom provides the screen-space geometry shared by the document tree
// and the drag widgets.
//
// Coordinates are viewport coordinates: the origin is the top-left corner of the
// viewport, x grows to the right and y grows downward. In the terminal host one
// unit is one cell, but nothing here assumes integral values.
package geom

import "fmt"

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Rect is an axis-aligned rectangle described by its edges, in the same shape as a
// bounding client rect.
type Rect struct {
	Left, Top     float64
	Right, Bottom float64
}

// XYWH builds a Rect from an origin and a size.
func XYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point { return Point{X: r.Left, Y: r.Top} }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool { return r.Right <= r.Left || r.Bottom <= r.Top }

// ContainsStrict reports whether p lies strictly inside r. Points on any edge
// are outside.
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.Left && p.X < r.Right && p.Y > r.Top && p.Y < r.Bottom
}

// Contains reports whether p lies in the half-open rectangle [Left, Right) x [Top, Bottom).
// This is the hit-testing rule: a cell at the left/top edge belongs to the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Left: r.Left + d.X, Top: r.Top + d.Y, Right: r.Right + d.X, Bottom: r.Bottom + d.Y}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.Left, r.Top, r.Width(), r.Height())
}
