package chartview

import (
	"fmt"
	"math"
)

// Size is the pixel size of a chart view.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// IsEmpty reports whether either side is not positive. NaN sides count as
// empty.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0) || !(sz.Height > 0)
}

// IsInf reports whether at least one of width and height is infinite.
func (sz Size) IsInf() bool {
	return math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}
