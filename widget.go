// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package segbar

import (
	"fmt"
	"image/color"
)

// Widget is a horizontal segmented progress indicator.
//
// The zero value is not usable; create widgets with New. A Widget is owned
// by the host's UI loop and is NOT safe for concurrent use.
type Widget struct {
	density    Density
	padding    Insets
	cfg        Config
	size       Size
	layout     Layout
	invalidate func()
}

var _ View = (*Widget)(nil)

// New creates a widget with the default configuration, then applies the
// declarative attributes and patch carried by opts.
func New(opts ...Option) (*Widget, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg := DefaultConfig(o.density)
	if o.attrs != nil {
		p, err := o.attrs.Patch(o.density)
		if err != nil {
			return nil, err
		}
		cfg = p.Apply(cfg)
	}
	cfg = o.patch.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &Widget{
		density:    o.density,
		padding:    o.padding,
		invalidate: o.invalidate,
	}
	w.apply(cfg)
	return w, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Widget {
	w, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("segbar: %v", err))
	}
	return w
}

// Config returns a copy of the current configuration.
func (w *Widget) Config() Config {
	return w.cfg
}

// Layout returns the derived layout for the last resolved size.
func (w *Widget) Layout() Layout {
	return w.layout
}

// Density returns the display density used for dp conversions.
func (w *Widget) Density() Density {
	return w.density
}

// Padding returns the view padding.
func (w *Widget) Padding() Insets {
	return w.padding
}

// SetPadding changes the view padding and recomputes the layout.
func (w *Widget) SetPadding(in Insets) {
	w.padding = in
	w.relayout()
	w.requestRedraw()
}

// SetInvalidate replaces the redraw request callback.
func (w *Widget) SetInvalidate(fn func()) {
	w.invalidate = fn
}

// Update validates and applies p atomically. On error the widget keeps
// its previous configuration and no redraw is requested.
func (w *Widget) Update(p Patch) error {
	next := p.Apply(w.cfg)
	if err := next.Validate(); err != nil {
		return err
	}
	w.apply(next)
	w.requestRedraw()
	return nil
}

// Progress returns the number of filled segments.
func (w *Widget) Progress() int {
	return w.cfg.Progress
}

// SetProgress sets the number of filled segments. Values outside
// [0, SegmentCount] fail with ErrNegativeProgress or ErrProgressOutOfBounds.
func (w *Widget) SetProgress(progress int) error {
	return w.Update(Patch{Progress: &progress})
}

// SetSegmentCount sets the total number of segments. It fails with
// ErrProgressOutOfBounds when count drops below the current progress.
func (w *Widget) SetSegmentCount(count int) error {
	return w.Update(Patch{SegmentCount: &count})
}

// SetSpacing sets the gap between segments in dp.
func (w *Widget) SetSpacing(dp float64) {
	w.mustUpdate(Patch{Spacing: Ptr(w.density.ToPixels(dp))})
}

// SetStrokeWidth sets the segment thickness in dp.
func (w *Widget) SetStrokeWidth(dp float64) {
	w.mustUpdate(Patch{StrokeWidth: Ptr(w.density.ToPixels(dp))})
}

// SetEmptyColor sets the fill of segments past the progress.
func (w *Widget) SetEmptyColor(c color.Color) {
	w.mustUpdate(Patch{EmptyColor: Ptr(FromColor(c))})
}

// SetFilledColor sets the fill of segments up to the progress.
func (w *Widget) SetFilledColor(c color.Color) {
	w.mustUpdate(Patch{FilledColor: Ptr(FromColor(c))})
}

// SetStyle sets the corner treatment.
func (w *Widget) SetStyle(s Style) {
	w.mustUpdate(Patch{Style: &s})
}

// mustUpdate applies a patch that cannot touch the progress invariant.
func (w *Widget) mustUpdate(p Patch) {
	if err := w.Update(p); err != nil {
		panic(fmt.Sprintf("segbar: unexpected update failure: %v", err))
	}
}

func (w *Widget) apply(cfg Config) {
	w.cfg = cfg
	w.relayout()
	Logger().Debug("segbar: config updated",
		"segments", cfg.SegmentCount,
		"progress", cfg.Progress,
		"style", cfg.Style.String(),
	)
}

func (w *Widget) relayout() {
	w.layout = computeLayout(w.cfg, w.size, w.padding)
	Logger().Debug("segbar: layout recomputed",
		"width", w.size.Width,
		"height", w.size.Height,
		"segment_width", w.layout.SegmentWidth,
		"total_spacing", w.layout.TotalSpacing,
	)
}

func (w *Widget) requestRedraw() {
	if w.invalidate != nil {
		w.invalidate()
	}
}

// DesiredSize returns the intrinsic size in device pixels.
func (w *Widget) DesiredSize() (width, height float64) {
	width = w.density.ToPixels(DesiredWidthDp) + float64(w.padding.Horizontal())
	height = w.cfg.StrokeWidth + float64(w.padding.Vertical())
	return width, height
}

// Measure resolves the view size under the host's constraints.
func (w *Widget) Measure(width, height MeasureSpec) Size {
	dw, dh := w.DesiredSize()
	return Size{
		Width:  width.Resolve(dw),
		Height: height.Resolve(dh),
	}
}

// OnResize records the size the host assigned and recomputes the layout.
func (w *Widget) OnResize(size Size) {
	if size == w.size {
		return
	}
	w.size = size
	w.relayout()
}

// Segment is one drawable segment of the bar.
type Segment struct {
	Index   int
	Rect    Rect
	Corners Corners
	Filled  bool
}

// Color returns the fill color of s under cfg.
func (s Segment) Color(cfg Config) RGBA {
	if s.Filled {
		return cfg.FilledColor
	}
	return cfg.EmptyColor
}

// Segments returns the segments Render draws, left to right.
func (w *Widget) Segments() []Segment {
	n := w.cfg.SegmentCount
	if n <= 0 {
		return nil
	}
	segs := make([]Segment, 0, n)
	x := w.appendSegments(&segs, float64(w.padding.Start), 0, w.cfg.Progress, true)
	w.appendSegments(&segs, x, w.cfg.Progress, n, false)
	return segs
}

// appendSegments lays out segments [from, to) starting at x and returns
// the position after the last one, trailing spacing included.
func (w *Widget) appendSegments(dst *[]Segment, x float64, from, to int, filled bool) float64 {
	half := w.cfg.StrokeWidth / 2
	top := w.layout.MidHeight - half
	bottom := w.layout.MidHeight + half
	for i := from; i < to; i++ {
		*dst = append(*dst, Segment{
			Index:   i,
			Rect:    R(x, top, x+w.layout.SegmentWidth, bottom),
			Corners: w.cfg.Style.corners(i, w.cfg.SegmentCount),
			Filled:  filled,
		})
		x += w.layout.SegmentWidth + w.cfg.Spacing
	}
	return x
}

// Render draws the filled segments, then the empty ones.
// Collapsed segments (zero or negative width) are skipped.
func (w *Widget) Render(c Canvas) {
	for _, s := range w.Segments() {
		if s.Rect.Empty() {
			continue
		}
		col := s.Color(w.cfg)
		if w.cfg.Style == StyleSquared {
			c.FillRect(s.Rect, col)
			continue
		}
		r := w.cfg.StrokeWidth
		c.FillPath(RoundedRectPath(s.Rect, r, r, s.Corners), col)
	}
}
