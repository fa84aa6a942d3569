package segbar

import (
	"errors"
	"testing"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{"squared", StyleSquared},
		{"Rounded", StyleRounded},
		{"rounded_edges", StyleRoundedEdges},
		{"rounded-edges", StyleRoundedEdges},
		{"roundedEdges", StyleRoundedEdges},
		{"0", StyleSquared},
		{"1", StyleRounded},
		{" 2 ", StyleRoundedEdges},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if err != nil {
			t.Errorf("ParseStyle(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStyle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "3", "oval"} {
		if _, err := ParseStyle(bad); !errors.Is(err, ErrInvalidAttribute) {
			t.Errorf("ParseStyle(%q) error = %v, want ErrInvalidAttribute", bad, err)
		}
	}
}

func TestStyleString(t *testing.T) {
	if got := StyleRoundedEdges.String(); got != "rounded_edges" {
		t.Errorf("String() = %q, want rounded_edges", got)
	}
	if got := Style(7).String(); got != "Style(7)" {
		t.Errorf("String() = %q, want Style(7)", got)
	}
}

func TestStyleNext(t *testing.T) {
	if got := StyleRoundedEdges.Next(); got != StyleSquared {
		t.Errorf("Next() = %v, want squared", got)
	}
	if got := StyleSquared.Next(); got != StyleRounded {
		t.Errorf("Next() = %v, want rounded", got)
	}
}

func TestStyleCorners(t *testing.T) {
	tests := []struct {
		style        Style
		index, count int
		want         Corners
	}{
		{StyleSquared, 0, 1, NoCorners},
		{StyleRounded, 2, 5, AllCorners},
		{StyleRoundedEdges, 0, 1, AllCorners},
		{StyleRoundedEdges, 0, 4, LeftCorners},
		{StyleRoundedEdges, 1, 4, NoCorners},
		{StyleRoundedEdges, 2, 4, NoCorners},
		{StyleRoundedEdges, 3, 4, RightCorners},
	}
	for _, tt := range tests {
		if got := tt.style.corners(tt.index, tt.count); got != tt.want {
			t.Errorf("%v.corners(%d, %d) = %+v, want %+v", tt.style, tt.index, tt.count, got, tt.want)
		}
	}
}
