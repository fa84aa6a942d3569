// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fynebar wraps a segbar widget as a Fyne widget.
//
// Fyne sizes are treated as dp: a widget created at density d lays out
// at size*d/160 pixels, and the raster image is drawn at whatever pixel
// size Fyne requests for the current canvas scale.
package fynebar

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/segbar"
	"github.com/gogpu/segbar/raster"
)

// SegmentedProgressBar is a Fyne widget showing a segbar.Widget.
type SegmentedProgressBar struct {
	widget.BaseWidget

	// OnChanged, if set, is called after every refresh caused by a
	// change to the wrapped widget.
	OnChanged func()

	bar *segbar.Widget
}

var _ fyne.Widget = (*SegmentedProgressBar)(nil)

// New wraps w. Every change to w refreshes the Fyne widget.
func New(w *segbar.Widget) *SegmentedProgressBar {
	b := &SegmentedProgressBar{bar: w}
	b.ExtendBaseWidget(b)
	w.SetInvalidate(b.changed)
	return b
}

func (b *SegmentedProgressBar) changed() {
	b.Refresh()
	if b.OnChanged != nil {
		b.OnChanged()
	}
}

// Widget returns the wrapped widget.
func (b *SegmentedProgressBar) Widget() *segbar.Widget {
	return b.bar
}

// SetProgress sets the wrapped widget's progress.
func (b *SegmentedProgressBar) SetProgress(progress int) error {
	return b.bar.SetProgress(progress)
}

// CreateRenderer implements fyne.Widget.
func (b *SegmentedProgressBar) CreateRenderer() fyne.WidgetRenderer {
	r := &barRenderer{bar: b}
	r.image = canvas.NewRaster(r.draw)
	return r
}

type barRenderer struct {
	bar   *SegmentedProgressBar
	image *canvas.Raster
}

// MinSize is the widget's unconstrained measurement in Fyne units.
func (r *barRenderer) MinSize() fyne.Size {
	w := r.bar.bar
	size := w.Measure(segbar.UnspecifiedSpec(), segbar.UnspecifiedSpec())
	d := w.Density()
	return fyne.NewSize(float32(d.ToDp(float64(size.Width))), float32(d.ToDp(float64(size.Height))))
}

func (r *barRenderer) Layout(size fyne.Size) {
	r.image.Resize(size)
	r.image.Move(fyne.NewPos(0, 0))
	w := r.bar.bar
	d := w.Density()
	w.OnResize(w.Measure(
		segbar.ExactSpec(int(d.ToPixels(float64(size.Width)))),
		segbar.ExactSpec(int(d.ToPixels(float64(size.Height)))),
	))
}

func (r *barRenderer) Refresh() {
	canvas.Refresh(r.image)
}

func (r *barRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

func (r *barRenderer) Destroy() {}

// draw renders the widget at the pixel size requested by Fyne.
func (r *barRenderer) draw(width, height int) image.Image {
	w := r.bar.bar
	if l := w.Layout(); l.Size.Width != width || l.Size.Height != height {
		w.OnResize(segbar.Size{Width: width, Height: height})
	}
	c := raster.New(width, height)
	w.Render(c)
	return c.Image()
}
