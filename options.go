package segbar

// Option configures a Widget during creation.
//
// Example:
//
//	w, err := segbar.New(
//	    segbar.WithDensity(320),
//	    segbar.WithAttributes(segbar.Attributes{"segment_count": "5"}),
//	)
type Option func(*options)

type options struct {
	density    Density
	padding    Insets
	attrs      Attributes
	patch      Patch
	invalidate func()
}

func defaultOptions() options {
	return options{
		density: DefaultDensity,
	}
}

// WithDensity sets the display density used for every dp conversion.
func WithDensity(d Density) Option {
	return func(o *options) {
		o.density = d
	}
}

// WithPadding sets the view padding in device pixels.
func WithPadding(in Insets) Option {
	return func(o *options) {
		o.padding = in
	}
}

// WithAttributes applies declarative attributes on top of the defaults.
// Attributes from repeated options are merged, later keys winning.
func WithAttributes(attrs Attributes) Option {
	return func(o *options) {
		if o.attrs == nil {
			o.attrs = make(Attributes, len(attrs))
		}
		for k, v := range attrs {
			o.attrs[k] = v
		}
	}
}

// WithPatch applies a configuration patch after any attributes.
func WithPatch(p Patch) Option {
	return func(o *options) {
		o.patch = o.patch.Merge(p)
	}
}

// WithInvalidate registers the host's redraw request callback.
// It is called once after every successful mutation.
func WithInvalidate(fn func()) Option {
	return func(o *options) {
		o.invalidate = fn
	}
}
