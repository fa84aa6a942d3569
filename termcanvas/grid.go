// Package termcanvas draws segbar widgets on character-cell terminals.
//
// Terminals have no pixels, so each cell stands for a CellWidth x
// CellHeight block of widget pixels. A cell takes the color of the last
// shape covering its center. Paths are filled with the even-odd rule, so
// nested subpaths leave holes where a non-zero fill would not. Grid keeps
// the result in memory; Canvas paints it onto a tcell.Screen as
// full-block runes with a true-color foreground.
package termcanvas

import "github.com/gogpu/segbar"

// Default cell dimensions in pixels. Most terminal fonts are about twice
// as tall as they are wide.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// curveSteps is the number of segments each quadratic curve is flattened
// into for coverage tests.
const curveSteps = 8

// cells maps pixel coordinates onto a cols x rows cell grid.
type cells struct {
	cols, rows            int
	cellWidth, cellHeight float64
}

// PixelSize returns the size of the grid in widget pixels.
func (g cells) PixelSize() segbar.Size {
	return segbar.Size{
		Width:  int(float64(g.cols) * g.cellWidth),
		Height: int(float64(g.rows) * g.cellHeight),
	}
}

func (g cells) center(col, row int) segbar.Point {
	return segbar.Pt((float64(col)+0.5)*g.cellWidth, (float64(row)+0.5)*g.cellHeight)
}

// span returns the half-open range of cells whose centers may fall inside
// [lo, hi) along one axis.
func span(lo, hi, size float64, n int) (int, int) {
	first := int(lo/size - 0.5)
	if first < 0 {
		first = 0
	}
	last := int(hi/size+0.5) + 1
	if last > n {
		last = n
	}
	return first, last
}

// coverRect calls fn for every cell whose center lies inside r.
func (g cells) coverRect(r segbar.Rect, fn func(col, row int)) {
	if r.Empty() || g.cellWidth <= 0 || g.cellHeight <= 0 {
		return
	}
	c0, c1 := span(r.Left, r.Right, g.cellWidth, g.cols)
	r0, r1 := span(r.Top, r.Bottom, g.cellHeight, g.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if r.Contains(g.center(col, row)) {
				fn(col, row)
			}
		}
	}
}

// coverPath calls fn for every cell whose center lies inside p, using the
// even-odd rule on the flattened outline.
func (g cells) coverPath(p *segbar.Path, fn func(col, row int)) {
	poly := p.Points(curveSteps)
	if len(poly) < 3 {
		return
	}
	g.coverRect(p.Bounds(), func(col, row int) {
		if inside(poly, g.center(col, row)) {
			fn(col, row)
		}
	})
}

func inside(poly []segbar.Point, pt segbar.Point) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// Grid is an in-memory cell canvas. The zero color with ok == false from
// At marks an unpainted cell.
type Grid struct {
	cells
	colors  []segbar.RGBA
	painted []bool
}

var _ segbar.Canvas = (*Grid)(nil)

// NewGrid creates an unpainted grid of cols x rows cells.
func NewGrid(cols, rows int, cellWidth, cellHeight float64) *Grid {
	cols, rows = max(cols, 0), max(rows, 0)
	return &Grid{
		cells:   cells{cols: cols, rows: rows, cellWidth: cellWidth, cellHeight: cellHeight},
		colors:  make([]segbar.RGBA, cols*rows),
		painted: make([]bool, cols*rows),
	}
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// At returns the color of a cell and whether anything painted it.
func (g *Grid) At(col, row int) (segbar.RGBA, bool) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return segbar.RGBA{}, false
	}
	i := row*g.cols + col
	return g.colors[i], g.painted[i]
}

// Reset marks every cell unpainted.
func (g *Grid) Reset() {
	clear(g.colors)
	clear(g.painted)
}

// FillRect implements segbar.Canvas.
func (g *Grid) FillRect(r segbar.Rect, c segbar.RGBA) {
	if c.A == 0 {
		return
	}
	g.coverRect(r, g.setter(c))
}

// FillPath implements segbar.Canvas.
func (g *Grid) FillPath(p *segbar.Path, c segbar.RGBA) {
	if c.A == 0 {
		return
	}
	g.coverPath(p, g.setter(c))
}

func (g *Grid) setter(c segbar.RGBA) func(col, row int) {
	return func(col, row int) {
		i := row*g.cols + col
		g.colors[i] = c
		g.painted[i] = true
	}
}

// RenderGrid measures w for the grid, resizes it, and renders it.
func RenderGrid(g *Grid, w *segbar.Widget) {
	size := g.PixelSize()
	w.OnResize(w.Measure(segbar.ExactSpec(size.Width), segbar.ExactSpec(size.Height)))
	w.Render(g)
}
