package segbar

import (
	"errors"
	"math"
	"testing"
)

func TestDensityToPixels(t *testing.T) {
	tests := []struct {
		density Density
		dp      float64
		want    float64
	}{
		{160, 10, 10},
		{320, 10, 20},
		{480, 2, 6},
		{120, 100, 75},
		{0, 10, 0},
	}
	for _, tt := range tests {
		if got := tt.density.ToPixels(tt.dp); got != tt.want {
			t.Errorf("Density(%v).ToPixels(%v) = %v, want %v", tt.density, tt.dp, got, tt.want)
		}
	}
}

func TestDpToPx(t *testing.T) {
	if got := DpToPx(10, 320); got != 20 {
		t.Errorf("DpToPx(10, 320) = %v, want 20", got)
	}
}

func TestDensityToDp(t *testing.T) {
	d := Density(320)
	if got := d.ToDp(d.ToPixels(7)); math.Abs(got-7) > 1e-9 {
		t.Errorf("ToDp(ToPixels(7)) = %v, want 7", got)
	}
	if got := Density(0).ToDp(10); got != 0 {
		t.Errorf("Density(0).ToDp(10) = %v, want 0", got)
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2dp", 4},
		{"2dip", 4},
		{"2", 4},
		{" 3.5 DP ", 7},
		{"4px", 4},
		{"-1dp", -2},
	}
	for _, tt := range tests {
		got, err := ParseLength(tt.in, 320)
		if err != nil {
			t.Errorf("ParseLength(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLength(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "dp", "abc", "1em"} {
		if _, err := ParseLength(bad, 160); !errors.Is(err, ErrInvalidAttribute) {
			t.Errorf("ParseLength(%q) error = %v, want ErrInvalidAttribute", bad, err)
		}
	}
}
