package segbar

import "math"

// Point represents a 2D point in device pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Lerp performs linear interpolation between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rect is an axis-aligned rectangle given by its edges.
// Left may exceed Right for collapsed segments; see Empty.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// R is shorthand for Rect{left, top, right, bottom}.
func R(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns Right-Left. It is negative for inverted rectangles.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom-Top.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside r, including the top-left edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, s.Left),
		Top:    math.Min(r.Top, s.Top),
		Right:  math.Max(r.Right, s.Right),
		Bottom: math.Max(r.Bottom, s.Bottom),
	}
}

// Size is a resolved view size in whole device pixels.
type Size struct {
	Width, Height int
}

// Insets holds view padding in device pixels.
// Start and End are the leading and trailing horizontal edges.
type Insets struct {
	Start, Top, End, Bottom int
}

// Horizontal returns Start+End.
func (in Insets) Horizontal() int {
	return in.Start + in.End
}

// Vertical returns Top+Bottom.
func (in Insets) Vertical() int {
	return in.Top + in.Bottom
}
