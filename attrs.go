package segbar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Declarative attribute keys.
const (
	AttrEmptyColor   = "segment_empty_color"
	AttrFilledColor  = "segment_filled_color"
	AttrSegmentCount = "segment_count"
	AttrProgress     = "progress"
	AttrSpacing      = "segment_spacing"
	AttrStrokeWidth  = "segment_stroke_width"
	AttrStyle        = "segment_style"
)

// AttributeKeys lists every recognized attribute key.
var AttributeKeys = []string{
	AttrEmptyColor,
	AttrFilledColor,
	AttrSegmentCount,
	AttrProgress,
	AttrSpacing,
	AttrStrokeWidth,
	AttrStyle,
}

// Attributes is the declarative configuration of a widget, as found in
// markup or configuration files. Values are strings:
//
//	segment_empty_color:  "#E0E0E0" or "lightgray"
//	segment_filled_color: "#3F51B5"
//	segment_count:        "5"
//	progress:             "2"
//	segment_spacing:      "2dp" (also "px", or a bare dp number)
//	segment_stroke_width: "10dp"
//	segment_style:        "squared", "rounded", "rounded_edges" or 0..2
type Attributes map[string]string

// Patch parses the attributes into a configuration patch at density d.
// Missing keys are left nil; unknown keys are logged and ignored.
// Range checks are left to Config.Validate.
func (a Attributes) Patch(d Density) (Patch, error) {
	var p Patch

	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := a[k]
		switch strings.ToLower(k) {
		case AttrEmptyColor:
			c, err := ParseColor(v)
			if err != nil {
				return Patch{}, attrError(k, err)
			}
			p.EmptyColor = &c
		case AttrFilledColor:
			c, err := ParseColor(v)
			if err != nil {
				return Patch{}, attrError(k, err)
			}
			p.FilledColor = &c
		case AttrSegmentCount:
			n, err := parseInt(v)
			if err != nil {
				return Patch{}, attrError(k, err)
			}
			p.SegmentCount = &n
		case AttrProgress:
			n, err := parseInt(v)
			if err != nil {
				return Patch{}, attrError(k, err)
			}
			p.Progress = &n
		case AttrSpacing:
			px, err := ParseLength(v, d)
			if err != nil {
				return Patch{}, attrError(k, err)
			}
			p.Spacing = &px
		case AttrStrokeWidth:
			px, err := ParseLength(v, d)
			if err != nil {
				return Patch{}, attrError(k, err)
			}
			p.StrokeWidth = &px
		case AttrStyle:
			s, err := ParseStyle(v)
			if err != nil {
				return Patch{}, attrError(k, err)
			}
			p.Style = &s
		default:
			Logger().Warn("segbar: ignoring unknown attribute", "key", k)
		}
	}
	return p, nil
}

// Attributes renders the configuration back into declarative form at
// density d. Lengths are written in dp.
func (c Config) Attributes(d Density) Attributes {
	return Attributes{
		AttrEmptyColor:   c.EmptyColor.String(),
		AttrFilledColor:  c.FilledColor.String(),
		AttrSegmentCount: strconv.Itoa(c.SegmentCount),
		AttrProgress:     strconv.Itoa(c.Progress),
		AttrSpacing:      formatDp(d.ToDp(c.Spacing)),
		AttrStrokeWidth:  formatDp(d.ToDp(c.StrokeWidth)),
		AttrStyle:        c.Style.String(),
	}
}

func formatDp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "dp"
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: bad integer %q", ErrInvalidAttribute, s)
	}
	return n, nil
}

func attrError(key string, err error) error {
	return fmt.Errorf("%s: %w", key, err)
}
