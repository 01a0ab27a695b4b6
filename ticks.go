package chartview

import (
	"math"
)

// TickOptions control how [ComputeTicks] divides a range.
type TickOptions struct {
	// LabelCount is the desired number of ticks. Without ForceLabelCount it is
	// only a hint.
	LabelCount int
	// Granularity is the smallest permitted interval. Zero disables the floor.
	Granularity float64
	// ForceLabelCount produces exactly LabelCount evenly spaced ticks that
	// include both ends of the range, at the cost of round numbers.
	ForceLabelCount bool
	// CenterLabels additionally produces the midpoints between consecutive
	// ticks, for labels that sit between grid lines.
	CenterLabels bool
}

// Ticks are the axis tick positions computed for a value range.
type Ticks struct {
	// Values are the tick positions in ascending order.
	Values []float64
	// Centered holds Values shifted by half an interval. It is only populated
	// when centering was requested.
	Centered []float64
	// Interval is the distance between consecutive ticks.
	Interval float64
	// Decimals is the number of fractional digits needed to tell
	// consecutive ticks apart.
	Decimals int
}

// ComputeTicks divides [min, max] into ticks at "nice" intervals.
//
// The interval is (max-min)/LabelCount rounded to 1, 2 or 5 times a power of
// ten, raised to Granularity if it falls below it, and bumped to the next
// power of ten if its leading digit exceeds 5. Ticks are the multiples of the
// interval within the range. A range that is empty or not finite, or a
// LabelCount of zero, yields no ticks.
func ComputeTicks(min, max float64, opts TickOptions) Ticks {
	var t Ticks
	t.Compute(min, max, opts)
	return t
}

// Compute is like [ComputeTicks] but stores the result in t, reusing the
// memory of its slices.
func (t *Ticks) Compute(min, max float64, opts TickOptions) {
	t.Values = t.Values[:0]
	t.Centered = t.Centered[:0]
	t.Interval = 0
	t.Decimals = 0

	count := opts.LabelCount
	span := math.Abs(max - min)
	if count <= 0 || span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return
	}

	interval := niceInterval(span / float64(count))
	if opts.Granularity > 0 && interval < opts.Granularity {
		interval = opts.Granularity
	}
	interval = bumpInterval(interval)

	if opts.ForceLabelCount {
		if count < 2 {
			interval = span
			t.Values = append(t.Values, min)
		} else {
			interval = span / float64(count-1)
			for i := 0; i < count; i++ {
				t.push(min + float64(i)*interval)
			}
		}
	} else {
		if interval <= 0 || math.IsNaN(interval) || math.IsInf(interval, 0) {
			return
		}
		first := math.Ceil(min/interval) * interval
		if opts.CenterLabels {
			first -= interval
		}
		// Without the nudge, a tick that should land exactly on max is
		// sometimes lost to rounding.
		last := math.Nextafter(math.Floor(max/interval)*interval, math.Inf(1))
		for i := 0; ; i++ {
			v := first + float64(i)*interval
			if v > last {
				break
			}
			t.push(v)
		}
	}

	t.Interval = interval
	t.Decimals = decimalsFor(interval)

	if opts.CenterLabels {
		offset := interval / 2
		for _, v := range t.Values {
			t.Centered = append(t.Centered, v+offset)
		}
	}
}

// push appends v unless it doesn't exceed the previous tick, which happens
// once the interval drops below the spacing of floats around the values.
func (t *Ticks) push(v float64) {
	if n := len(t.Values); n > 0 && !(v > t.Values[n-1]) {
		return
	}
	t.Values = append(t.Values, normalizeZero(v))
}

// niceInterval rounds v to the nearest of 1, 2, 5 and 10 times its power of
// ten.
func niceInterval(v float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(math.Abs(v))))
	mantissa := math.Abs(v) / magnitude
	var nice float64
	switch {
	case mantissa < 1.5:
		nice = 1
	case mantissa < 3.5:
		nice = 2
	case mantissa < 7.5:
		nice = 5
	default:
		nice = 10
	}
	return math.Copysign(nice*magnitude, v)
}

// bumpInterval replaces intervals whose leading digit exceeds 5, such as 0.9
// or 70, with the next power of ten.
func bumpInterval(interval float64) float64 {
	if interval <= 0 || math.IsNaN(interval) || math.IsInf(interval, 0) {
		return interval
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(interval)))
	// The epsilon keeps 0.6/0.1 = 5.999... from truncating to 5.
	if sigDigit := int(interval/magnitude + 1e-9); sigDigit > 5 {
		return 10 * magnitude
	}
	return interval
}

func decimalsFor(interval float64) int {
	if interval <= 0 || interval >= 1 || math.IsNaN(interval) {
		return 0
	}
	return int(math.Ceil(-math.Log10(interval)))
}

func normalizeZero(v float64) float64 {
	if v == 0 {
		// Turns -0 into +0.
		return 0
	}
	return v
}
