// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster renders segbar widgets into in-memory images.
//
// Canvas implements segbar.Canvas on top of an *image.RGBA using the
// anti-aliasing scanline rasterizer from golang.org/x/image/vector.
// Quadratic curves are rasterized directly, without flattening.
//
//	c := raster.New(400, 40)
//	w.OnResize(segbar.Size{Width: 400, Height: 40})
//	w.Render(c)
//	err := c.SavePNG("bar.png")
//
// Canvas is NOT safe for concurrent use.
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/segbar"
	"golang.org/x/image/vector"
)

// Canvas is a CPU drawing target backed by an *image.RGBA.
type Canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

var _ segbar.Canvas = (*Canvas)(nil)

// New creates a transparent canvas with the given dimensions.
func New(width, height int) *Canvas {
	return NewForImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewForImage creates a canvas drawing onto img. Paths are in the
// coordinate space of img.Bounds().Min.
func NewForImage(img *image.RGBA) *Canvas {
	b := img.Bounds()
	return &Canvas{
		img: img,
		ras: vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear replaces every pixel with col.
func (c *Canvas) Clear(col segbar.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// At returns the color of the pixel at (x, y) relative to the canvas origin.
func (c *Canvas) At(x, y int) segbar.RGBA {
	o := c.img.Bounds().Min
	return segbar.FromColor(c.img.At(o.X+x, o.Y+y))
}

// FillRect implements segbar.Canvas.
func (c *Canvas) FillRect(r segbar.Rect, col segbar.RGBA) {
	if r.Empty() {
		return
	}
	z := c.reset()
	z.MoveTo(float32(r.Left), float32(r.Top))
	z.LineTo(float32(r.Right), float32(r.Top))
	z.LineTo(float32(r.Right), float32(r.Bottom))
	z.LineTo(float32(r.Left), float32(r.Bottom))
	z.ClosePath()
	c.draw(col)
}

// FillPath implements segbar.Canvas.
func (c *Canvas) FillPath(p *segbar.Path, col segbar.RGBA) {
	z := c.reset()
	open := false
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case segbar.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(e.Point.X), float32(e.Point.Y))
			open = true
		case segbar.LineTo:
			z.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case segbar.QuadTo:
			z.QuadTo(float32(e.Control.X), float32(e.Control.Y), float32(e.Point.X), float32(e.Point.Y))
		case segbar.Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	c.draw(col)
}

func (c *Canvas) reset() *vector.Rasterizer {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over
	return c.ras
}

func (c *Canvas) draw(col segbar.RGBA) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{})
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Render measures w for the canvas size, resizes it, and renders it.
func Render(c *Canvas, w *segbar.Widget) {
	size := w.Measure(segbar.ExactSpec(c.Width()), segbar.ExactSpec(c.Height()))
	w.OnResize(size)
	w.Render(c)
}
