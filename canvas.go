package segbar

// Canvas is the drawing context a host hands to Render.
// Implementations only need to fill shapes with a solid color.
type Canvas interface {
	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c RGBA)

	// FillPath fills a path made of simple closed outlines. The fill rule
	// for self-intersecting or nested subpaths is up to the
	// implementation. The path is not modified or retained.
	FillPath(p *Path, c RGBA)
}

// View is the lifecycle a host drives: measure, then resize, then render
// on every redraw.
type View interface {
	Measure(width, height MeasureSpec) Size
	OnResize(size Size)
	Render(c Canvas)
}
