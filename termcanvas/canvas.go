// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package termcanvas

import (
	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/segbar"
)

// Block is the rune painted into covered cells.
const Block = '█'

// Canvas paints onto a rectangular region of a tcell.Screen.
//
// Canvas does not call Show; the caller decides when to flush the screen.
type Canvas struct {
	cells
	screen tcell.Screen
	x, y   int
	base   tcell.Style
}

var _ segbar.Canvas = (*Canvas)(nil)

// New creates a canvas covering cols x rows cells of screen, starting at
// cell (x, y).
func New(screen tcell.Screen, x, y, cols, rows int) *Canvas {
	return &Canvas{
		cells: cells{
			cols:       max(cols, 0),
			rows:       max(rows, 0),
			cellWidth:  DefaultCellWidth,
			cellHeight: DefaultCellHeight,
		},
		screen: screen,
		x:      x,
		y:      y,
		base:   tcell.StyleDefault,
	}
}

// SetCellSize changes how many pixels a cell stands for.
func (c *Canvas) SetCellSize(width, height float64) {
	c.cellWidth, c.cellHeight = width, height
}

// SetStyle sets the style that painted cells start from. Only the
// foreground color is replaced.
func (c *Canvas) SetStyle(style tcell.Style) {
	c.base = style
}

// Clear blanks the canvas region with the base style.
func (c *Canvas) Clear() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			c.screen.SetContent(c.x+col, c.y+row, ' ', nil, c.base)
		}
	}
}

// FillRect implements segbar.Canvas.
func (c *Canvas) FillRect(r segbar.Rect, col segbar.RGBA) {
	if col.A == 0 {
		return
	}
	c.coverRect(r, c.painter(col))
}

// FillPath implements segbar.Canvas.
func (c *Canvas) FillPath(p *segbar.Path, col segbar.RGBA) {
	if col.A == 0 {
		return
	}
	c.coverPath(p, c.painter(col))
}

func (c *Canvas) painter(col segbar.RGBA) func(x, y int) {
	style := c.base.Foreground(Color(col))
	return func(x, y int) {
		c.screen.SetContent(c.x+x, c.y+y, Block, nil, style)
	}
}

// Color converts a segbar color to a tcell true color. Alpha is dropped.
func Color(c segbar.RGBA) tcell.Color {
	n := c.Color()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// Render clears the canvas region, then measures, resizes and renders w
// into it.
func Render(c *Canvas, w *segbar.Widget) {
	size := c.PixelSize()
	w.OnResize(w.Measure(segbar.ExactSpec(size.Width), segbar.ExactSpec(size.Height)))
	c.Clear()
	w.Render(c)
}
