package segbar

import (
	"errors"
	"testing"
)

func TestAttributesPatch(t *testing.T) {
	attrs := Attributes{
		AttrEmptyColor:   "lightgray",
		AttrFilledColor:  "#3f51b5",
		AttrSegmentCount: "5",
		AttrProgress:     "2",
		AttrSpacing:      "3dp",
		AttrStrokeWidth:  "12px",
		AttrStyle:        "squared",
		"layout_width":   "match_parent",
	}
	w, err := New(WithDensity(320), WithAttributes(attrs))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	cfg := w.Config()
	if cfg.SegmentCount != 5 || cfg.Progress != 2 {
		t.Errorf("count, progress = %d, %d, want 5, 2", cfg.SegmentCount, cfg.Progress)
	}
	if cfg.Spacing != 6 || cfg.StrokeWidth != 12 {
		t.Errorf("spacing, stroke = %v, %v, want 6, 12", cfg.Spacing, cfg.StrokeWidth)
	}
	if cfg.Style != StyleSquared {
		t.Errorf("style = %v, want squared", cfg.Style)
	}
	if cfg.EmptyColor.String() != "#d3d3d3" || cfg.FilledColor.String() != "#3f51b5" {
		t.Errorf("colors = %v, %v", cfg.EmptyColor, cfg.FilledColor)
	}
}

func TestAttributesMissingKeysKeepDefaults(t *testing.T) {
	w, err := New(WithAttributes(Attributes{AttrProgress: "1"}))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	want := DefaultConfig(DefaultDensity)
	want.Progress = 1
	if got := w.Config(); got != want {
		t.Errorf("Config() = %+v, want %+v", got, want)
	}
}

func TestAttributesErrors(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attributes
		want  error
	}{
		{"bad count", Attributes{AttrSegmentCount: "three"}, ErrInvalidAttribute},
		{"bad color", Attributes{AttrFilledColor: "#zzz"}, ErrInvalidAttribute},
		{"bad length", Attributes{AttrSpacing: "2em"}, ErrInvalidAttribute},
		{"bad style", Attributes{AttrStyle: "oval"}, ErrInvalidAttribute},
		{"negative progress", Attributes{AttrProgress: "-1"}, ErrNegativeProgress},
		{"progress above count", Attributes{AttrSegmentCount: "2", AttrProgress: "3"}, ErrProgressOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(WithAttributes(tt.attrs)); !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConfigAttributesRoundTrip(t *testing.T) {
	const d = Density(320)
	cfg := DefaultConfig(d)
	cfg.Progress = 2
	cfg.Style = StyleRounded

	p, err := cfg.Attributes(d).Patch(d)
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}
	if got := p.Apply(Config{}); got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestWithAttributesMerges(t *testing.T) {
	w, err := New(
		WithAttributes(Attributes{AttrSegmentCount: "6", AttrProgress: "1"}),
		WithAttributes(Attributes{AttrProgress: "4"}),
		WithPatch(Patch{Style: Ptr(StyleRounded)}),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if c := w.Config(); c.SegmentCount != 6 || c.Progress != 4 || c.Style != StyleRounded {
		t.Errorf("Config() = %+v", c)
	}
}
