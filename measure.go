package segbar

import (
	"fmt"
	"math"
)

// MeasureMode is the kind of constraint a host places on one axis.
type MeasureMode int

const (
	// Unspecified lets the view choose its desired size.
	Unspecified MeasureMode = iota
	// Exactly forces the given size.
	Exactly
	// AtMost caps the desired size at the given size.
	AtMost
)

func (m MeasureMode) String() string {
	switch m {
	case Unspecified:
		return "unspecified"
	case Exactly:
		return "exactly"
	case AtMost:
		return "at-most"
	default:
		return fmt.Sprintf("MeasureMode(%d)", int(m))
	}
}

// MeasureSpec is a host constraint for one axis, in device pixels.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// ExactSpec returns an Exactly constraint.
func ExactSpec(size int) MeasureSpec { return MeasureSpec{Mode: Exactly, Size: size} }

// AtMostSpec returns an AtMost constraint.
func AtMostSpec(size int) MeasureSpec { return MeasureSpec{Mode: AtMost, Size: size} }

// UnspecifiedSpec returns an unconstrained spec.
func UnspecifiedSpec() MeasureSpec { return MeasureSpec{Mode: Unspecified} }

// Resolve picks the final size for desired under the constraint.
// The result is truncated to whole pixels and never negative.
func (s MeasureSpec) Resolve(desired float64) int {
	v := desired
	switch s.Mode {
	case Exactly:
		v = float64(s.Size)
	case AtMost:
		v = math.Min(desired, float64(s.Size))
	}
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return int(v)
}
