// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package segbar

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector outline built from straight lines and
// quadratic curves.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// Points flattens the path into a polyline. Each quadratic curve is
// replaced by steps line segments; Close repeats the subpath start.
func (p *Path) Points(steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	pts := make([]Point, 0, len(p.elements)+steps)
	var start, cur Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start, cur = e.Point, e.Point
			pts = append(pts, cur)
		case LineTo:
			cur = e.Point
			pts = append(pts, cur)
		case QuadTo:
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				a := cur.Lerp(e.Control, t)
				b := e.Control.Lerp(e.Point, t)
				pts = append(pts, a.Lerp(b, t))
			}
			cur = e.Point
		case Close:
			cur = start
			pts = append(pts, cur)
		}
	}
	return pts
}

// Bounds returns the bounding box of all points and control points.
func (p *Path) Bounds() Rect {
	b := Rect{
		Left: math.Inf(1), Top: math.Inf(1),
		Right: math.Inf(-1), Bottom: math.Inf(-1),
	}
	add := func(pt Point) {
		b = b.Union(Rect{Left: pt.X, Top: pt.Y, Right: pt.X, Bottom: pt.Y})
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		}
	}
	if len(p.elements) == 0 {
		return Rect{}
	}
	return b
}

// Corners selects which corners of a rectangle are rounded.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft bool
}

// Corner sets.
var (
	AllCorners   = Corners{TopLeft: true, TopRight: true, BottomRight: true, BottomLeft: true}
	NoCorners    = Corners{}
	LeftCorners  = Corners{TopLeft: true, BottomLeft: true}
	RightCorners = Corners{TopRight: true, BottomRight: true}
)

// Union returns the corners rounded in either c or o.
func (c Corners) Union(o Corners) Corners {
	return Corners{
		TopLeft:     c.TopLeft || o.TopLeft,
		TopRight:    c.TopRight || o.TopRight,
		BottomRight: c.BottomRight || o.BottomRight,
		BottomLeft:  c.BottomLeft || o.BottomLeft,
	}
}

// RoundedRectPath builds a closed outline of r whose corners are either
// rounded with radii (rx, ry) or square, independently.
//
// The radii are clamped to [0, width/2] and [0, height/2]. The outline
// starts on the top edge just right of the top-left corner and winds
// clockwise in screen coordinates. A rounded corner is a single quadratic
// curve whose control point is the corner itself; a square corner is two
// axis-aligned lines that meet at the corner.
func RoundedRectPath(r Rect, rx, ry float64, corners Corners) *Path {
	rx = math.Max(rx, 0)
	ry = math.Max(ry, 0)
	rx = math.Min(rx, r.Width()/2)
	ry = math.Min(ry, r.Height()/2)
	// Inverted rectangles push the radii negative.
	rx = math.Max(rx, 0)
	ry = math.Max(ry, 0)

	p := NewPath()
	if rx == 0 && ry == 0 {
		p.MoveTo(r.Left, r.Top)
		p.LineTo(r.Right, r.Top)
		p.LineTo(r.Right, r.Bottom)
		p.LineTo(r.Left, r.Bottom)
		p.Close()
		return p
	}

	l, t, rt, b := r.Left, r.Top, r.Right, r.Bottom

	p.MoveTo(l+rx, t)
	p.LineTo(rt-rx, t)
	corner(p, corners.TopRight, rt, t, rt, t+ry)
	p.LineTo(rt, b-ry)
	corner(p, corners.BottomRight, rt, b, rt-rx, b)
	p.LineTo(l+rx, b)
	corner(p, corners.BottomLeft, l, b, l, b-ry)
	p.LineTo(l, t+ry)
	corner(p, corners.TopLeft, l, t, l+rx, t)
	p.Close()
	return p
}

// corner turns around the corner point (cx, cy) and ends at (x, y).
func corner(p *Path, rounded bool, cx, cy, x, y float64) {
	if rounded {
		p.QuadraticTo(cx, cy, x, y)
		return
	}
	p.LineTo(cx, cy)
	p.LineTo(x, y)
}
