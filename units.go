package segbar

import (
	"fmt"
	"strconv"
	"strings"
)

// BaselineDPI is the density at which one density-independent pixel
// equals one device pixel.
const BaselineDPI = 160

// Density is a display density in dots per inch.
type Density float64

// DefaultDensity maps dp to px one to one.
const DefaultDensity Density = BaselineDPI

// ToPixels converts a density-independent length to device pixels.
func (d Density) ToPixels(dp float64) float64 {
	return dp * (float64(d) / BaselineDPI)
}

// ToDp converts device pixels back to density-independent pixels.
// A zero density yields zero.
func (d Density) ToDp(px float64) float64 {
	if d == 0 {
		return 0
	}
	return px * (BaselineDPI / float64(d))
}

// DpToPx converts dp to device pixels at the given dpi.
func DpToPx(dp float64, dpi float64) float64 {
	return Density(dpi).ToPixels(dp)
}

// ParseLength parses a declarative length such as "2dp", "4px", "1.5dip"
// or a bare number, which is read as dp. The result is in device pixels.
func ParseLength(s string, d Density) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	unit := "dp"
	for _, u := range []string{"dip", "dp", "px"} {
		if strings.HasSuffix(s, u) {
			unit = u
			s = strings.TrimSpace(strings.TrimSuffix(s, u))
			break
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad length %q", ErrInvalidAttribute, s)
	}
	if unit == "px" {
		return v, nil
	}
	return d.ToPixels(v), nil
}
