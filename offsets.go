package chartview

// Offsets are the margins between the chart view's edges and its content rect,
// taken up by axis labels, legends and descriptions.
type Offsets struct {
	Left, Top, Right, Bottom float64
}

// An OffsetCalculator decides how much room a chart of the given size reserves
// around its content rect. Chart types with different axis placement plug in
// different calculators.
type OffsetCalculator interface {
	Offsets(chart Size) Offsets
}

// OffsetFunc adapts a function to an [OffsetCalculator].
type OffsetFunc func(chart Size) Offsets

func (fn OffsetFunc) Offsets(chart Size) Offsets { return fn(chart) }

// FixedOffsets reserves the same margins regardless of chart size.
type FixedOffsets Offsets

func (o FixedOffsets) Offsets(Size) Offsets { return Offsets(o) }

// LabelOffsets reserves room for axis labels on the sides that have them, plus
// an extra minimum margin on every side.
type LabelOffsets struct {
	// Label sizes in pixels. A zero value means the side has no labels.
	LeftAxisWidth  float64
	RightAxisWidth float64
	XAxisHeight    float64
	XAxisAtTop     bool
	ExtraOffsets   Offsets
	MinOffset      float64
}

func (lo LabelOffsets) Offsets(Size) Offsets {
	o := lo.ExtraOffsets
	o.Left += lo.LeftAxisWidth
	o.Right += lo.RightAxisWidth
	if lo.XAxisAtTop {
		o.Top += lo.XAxisHeight
	} else {
		o.Bottom += lo.XAxisHeight
	}
	o.Left += lo.MinOffset
	o.Top += lo.MinOffset
	o.Right += lo.MinOffset
	o.Bottom += lo.MinOffset
	return o
}
