// Package segbar provides a segmented progress indicator: a horizontal bar
// made of a fixed number of discrete segments, filled left to right to
// reflect an integer progress value.
//
// # Overview
//
// The widget is host-agnostic. A host (a GUI toolkit, a terminal, an image
// exporter) drives it through the three calls of the View interface:
//
//	w, err := segbar.New(segbar.WithDensity(320))
//	if err != nil {
//	    return err
//	}
//	size := w.Measure(segbar.ExactSpec(400), segbar.UnspecifiedSpec())
//	w.OnResize(size)
//	w.Render(canvas) // any segbar.Canvas
//
// Canvas needs only FillRect and FillPath. The sub-packages provide
// ready-made targets:
//
//   - raster: anti-aliased rendering into an *image.RGBA
//   - recording: command capture and SVG export
//   - termcanvas: tcell terminal screens
//
// and hosts:
//
//   - tui: a bubbletea model
//   - fynebar: a Fyne widget
//
// # Configuration
//
// Configuration starts from defaults (3 segments, 2dp spacing, 10dp
// stroke, progress 0, StyleRoundedEdges), may be overridden by declarative
// Attributes at construction, and is then mutated with the setters or
// Update. Every mutation recomputes the derived Layout before returning and
// asks the host to redraw.
//
// Progress must stay within [0, SegmentCount]. Violations are returned as
// *ProgressError wrapping ErrNegativeProgress or ErrProgressOutOfBounds,
// and leave the widget unchanged.
//
// # Coordinate System
//
// Device pixels, origin at the top-left, X increases right, Y increases
// down. Lengths given in dp are converted with Density (dots per inch,
// baseline 160).
package segbar
