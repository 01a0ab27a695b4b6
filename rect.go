package chartview

import (
	"fmt"
)

// Rect is an axis-aligned rectangle. In pixel space (X0, Y0) is the top left
// and (X1, Y1) the bottom right corner, because pixel y grows downwards.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]", r.X0, r.Y0, r.X1, r.Y1)
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

// Origin returns the top left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X0, Y: r.Y0}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// IsEmpty reports whether the rectangle lacks a positive width or height.
func (r Rect) IsEmpty() bool {
	return r.Size().IsEmpty()
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Inset shrinks the rectangle by the given offsets on each side.
func (r Rect) Inset(o Offsets) Rect {
	return Rect{
		X0: r.X0 + o.Left,
		Y0: r.Y0 + o.Top,
		X1: r.X1 - o.Right,
		Y1: r.Y1 - o.Bottom,
	}
}
