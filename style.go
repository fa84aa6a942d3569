package segbar

import (
	"fmt"
	"strconv"
	"strings"
)

// Style selects the corner treatment of segments.
type Style int

const (
	// StyleSquared draws plain rectangles.
	StyleSquared Style = iota

	// StyleRounded draws every segment as a pill.
	StyleRounded

	// StyleRoundedEdges rounds only the outer ends of the whole bar, so the
	// segments read as one continuous track.
	StyleRoundedEdges
)

var styleNames = [...]string{
	StyleSquared:      "squared",
	StyleRounded:      "rounded",
	StyleRoundedEdges: "rounded_edges",
}

// String returns the declarative name of the style.
func (s Style) String() string {
	if s >= 0 && int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "Style(" + strconv.Itoa(int(s)) + ")"
}

// Next returns the style following s, wrapping around.
func (s Style) Next() Style {
	return Style((int(s) + 1) % len(styleNames))
}

// ParseStyle accepts a style name ("rounded_edges", "rounded-edges",
// "roundedEdges") or its ordinal ("0", "1", "2").
func ParseStyle(s string) (Style, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "_")
	if key == "roundededges" {
		key = "rounded_edges"
	}
	for i, name := range styleNames {
		if key == name || key == strconv.Itoa(i) {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown segment style %q", ErrInvalidAttribute, s)
}

// corners returns the rounded corners of segment index out of count.
func (s Style) corners(index, count int) Corners {
	switch s {
	case StyleRounded:
		return AllCorners
	case StyleRoundedEdges:
		c := NoCorners
		if index == 0 {
			c = c.Union(LeftCorners)
		}
		if index == count-1 {
			c = c.Union(RightCorners)
		}
		return c
	default:
		return NoCorners
	}
}
