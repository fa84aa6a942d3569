package segbar

// Default configuration values. Lengths are in dp.
const (
	DefaultSegmentCount  = 3
	DefaultSpacingDp     = 2.0
	DefaultStrokeWidthDp = 10.0
	DefaultProgress      = 0
	DefaultStyle         = StyleRoundedEdges

	// DesiredWidthDp is the intrinsic width of the bar without padding.
	DesiredWidthDp = 100.0
)

// Config is the widget configuration. Lengths are in device pixels.
type Config struct {
	SegmentCount int
	Progress     int
	Spacing      float64
	StrokeWidth  float64
	Style        Style
	EmptyColor   RGBA
	FilledColor  RGBA
}

// DefaultConfig returns the default configuration at density d.
func DefaultConfig(d Density) Config {
	return Config{
		SegmentCount: DefaultSegmentCount,
		Progress:     DefaultProgress,
		Spacing:      d.ToPixels(DefaultSpacingDp),
		StrokeWidth:  d.ToPixels(DefaultStrokeWidthDp),
		Style:        DefaultStyle,
		EmptyColor:   DefaultEmptyColor,
		FilledColor:  DefaultFilledColor,
	}
}

// Validate checks the progress invariant. Other fields are accepted as is.
func (c Config) Validate() error {
	return checkProgress(c.Progress, c.SegmentCount)
}

// Patch is a partial configuration change. Nil fields are left untouched.
// Lengths are in device pixels.
type Patch struct {
	SegmentCount *int
	Progress     *int
	Spacing      *float64
	StrokeWidth  *float64
	Style        *Style
	EmptyColor   *RGBA
	FilledColor  *RGBA
}

// Apply returns c with the non-nil fields of p applied.
func (p Patch) Apply(c Config) Config {
	if p.SegmentCount != nil {
		c.SegmentCount = *p.SegmentCount
	}
	if p.Progress != nil {
		c.Progress = *p.Progress
	}
	if p.Spacing != nil {
		c.Spacing = *p.Spacing
	}
	if p.StrokeWidth != nil {
		c.StrokeWidth = *p.StrokeWidth
	}
	if p.Style != nil {
		c.Style = *p.Style
	}
	if p.EmptyColor != nil {
		c.EmptyColor = *p.EmptyColor
	}
	if p.FilledColor != nil {
		c.FilledColor = *p.FilledColor
	}
	return c
}

// Merge returns a patch carrying the fields of p overridden by o.
func (p Patch) Merge(o Patch) Patch {
	if o.SegmentCount != nil {
		p.SegmentCount = o.SegmentCount
	}
	if o.Progress != nil {
		p.Progress = o.Progress
	}
	if o.Spacing != nil {
		p.Spacing = o.Spacing
	}
	if o.StrokeWidth != nil {
		p.StrokeWidth = o.StrokeWidth
	}
	if o.Style != nil {
		p.Style = o.Style
	}
	if o.EmptyColor != nil {
		p.EmptyColor = o.EmptyColor
	}
	if o.FilledColor != nil {
		p.FilledColor = o.FilledColor
	}
	return p
}

// Layout holds values derived from the configuration and resolved size.
type Layout struct {
	Size         Size
	Available    float64 // width inside horizontal padding
	TotalSpacing float64
	SegmentWidth float64 // may be zero or negative
	MidHeight    float64
}

// computeLayout derives the layout. A non-positive segment count
// yields a zero segment width.
func computeLayout(c Config, size Size, pad Insets) Layout {
	l := Layout{
		Size:         size,
		Available:    float64(size.Width - pad.Horizontal()),
		TotalSpacing: c.Spacing * float64(c.SegmentCount-1),
		MidHeight:    float64(size.Height) / 2,
	}
	if c.SegmentCount > 0 {
		l.SegmentWidth = (l.Available - l.TotalSpacing) / float64(c.SegmentCount)
	}
	return l
}

// Ptr returns a pointer to v, for building patches.
func Ptr[T any](v T) *T {
	return &v
}
