package chartview

import (
	"fmt"
	"math"
)

const (
	minLabelCount     = 2
	maxLabelCount     = 25
	defaultLabelCount = 6

	// minAxisPixels is the content length below which reading the visible
	// range back through the transformer is not worth it.
	minAxisPixels = 10
)

// AxisDependency names the y axis a data set is plotted against.
type AxisDependency int

const (
	Left AxisDependency = iota
	Right
)

func (dep AxisDependency) String() string {
	switch dep {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("AxisDependency(%d)", int(dep))
	}
}

type axisKind int

const (
	xAxis axisKind = iota
	yAxis
)

// An Axis holds the range and tick configuration of one chart axis and the
// ticks most recently computed for it.
type Axis struct {
	kind       axisKind
	dependency AxisDependency

	labelCount      int
	forceLabelCount bool
	granularity     float64
	granularityOn   bool

	// CenterLabels places labels between grid lines instead of on them.
	CenterLabels bool

	// Inverted flips a y axis so that its minimum is at the top.
	Inverted bool

	// SpaceMin and SpaceMax widen an x axis by absolute amounts.
	SpaceMin, SpaceMax float64
	// SpaceBottom and SpaceTop widen a y axis by a percentage of its range.
	SpaceBottom, SpaceTop float64

	customMin, customMax bool

	// Min, Max and Range are the axis extents computed by Calculate.
	Min, Max, Range float64

	// Ticks holds the result of the last ComputeVisible.
	Ticks Ticks
}

// NewXAxis returns the shared x axis.
func NewXAxis() *Axis {
	return &Axis{
		kind:        xAxis,
		labelCount:  defaultLabelCount,
		granularity: 1,
	}
}

// NewYAxis returns a y axis for the given side.
func NewYAxis(dep AxisDependency) *Axis {
	return &Axis{
		kind:        yAxis,
		dependency:  dep,
		labelCount:  defaultLabelCount,
		granularity: 1,
		SpaceBottom: 10,
		SpaceTop:    10,
	}
}

func (a *Axis) Dependency() AxisDependency { return a.dependency }
func (a *Axis) LabelCount() int            { return a.labelCount }
func (a *Axis) IsForceLabelCount() bool    { return a.forceLabelCount }

// SetLabelCount sets the desired number of labels, clamped to [2, 25]. If
// force is set, exactly that many labels are produced.
func (a *Axis) SetLabelCount(count int, force bool) {
	a.labelCount = min(max(count, minLabelCount), maxLabelCount)
	a.forceLabelCount = force
}

// SetGranularity sets and enables the smallest interval between ticks.
func (a *Axis) SetGranularity(g float64) {
	a.granularity = g
	a.granularityOn = true
}

// SetGranularityEnabled toggles the granularity floor without changing its
// value.
func (a *Axis) SetGranularityEnabled(on bool) { a.granularityOn = on }

func (a *Axis) Granularity() float64 { return a.granularity }

// SetAxisMinimum fixes the axis minimum instead of deriving it from data.
func (a *Axis) SetAxisMinimum(v float64) {
	a.customMin = true
	a.Min = v
	a.Range = math.Abs(a.Max - a.Min)
}

// SetAxisMaximum fixes the axis maximum instead of deriving it from data.
func (a *Axis) SetAxisMaximum(v float64) {
	a.customMax = true
	a.Max = v
	a.Range = math.Abs(a.Max - a.Min)
}

func (a *Axis) ResetAxisMinimum() { a.customMin = false }
func (a *Axis) ResetAxisMaximum() { a.customMax = false }

// TickOptions returns the options ComputeVisible passes to ComputeTicks.
func (a *Axis) TickOptions() TickOptions {
	opts := TickOptions{
		LabelCount:      a.labelCount,
		ForceLabelCount: a.forceLabelCount,
		CenterLabels:    a.CenterLabels,
	}
	if a.granularityOn {
		opts.Granularity = a.granularity
	}
	return opts
}

// Calculate derives Min, Max and Range from the data extents, honoring custom
// bounds and spacing. A range of zero is widened by one in both directions.
func (a *Axis) Calculate(dataMin, dataMax float64) {
	if a.kind == yAxis {
		a.calculateY(dataMin, dataMax)
		return
	}

	lo := dataMin - a.SpaceMin
	if a.customMin {
		lo = a.Min
	}
	hi := dataMax + a.SpaceMax
	if a.customMax {
		hi = a.Max
	}
	if hi-lo == 0 {
		hi++
		lo--
	}
	a.Min, a.Max = lo, hi
	a.Range = math.Abs(hi - lo)
}

func (a *Axis) calculateY(dataMin, dataMax float64) {
	lo, hi := dataMin, dataMax
	if a.customMin {
		lo = a.Min
	}
	if a.customMax {
		hi = a.Max
	}

	if lo > hi {
		switch {
		case a.customMin && a.customMax:
			lo, hi = hi, lo
		case a.customMax:
			if hi < 0 {
				lo = hi * 1.5
			} else {
				lo = hi * 0.5
			}
		case a.customMin:
			if lo < 0 {
				hi = lo * 0.5
			} else {
				hi = lo * 1.5
			}
		}
	}

	if hi-lo == 0 {
		hi++
		lo--
	}
	span := math.Abs(hi - lo)

	if !a.customMin {
		lo -= span / 100 * a.SpaceBottom
	}
	if !a.customMax {
		hi += span / 100 * a.SpaceTop
	}
	a.Min, a.Max = lo, hi
	a.Range = math.Abs(hi - lo)
}

// ComputeVisible recomputes Ticks for the part of the axis that is visible
// through tr. When the viewport is zoomed out along this axis, the full
// Min..Max range is used.
func (a *Axis) ComputeVisible(tr *Transformer) {
	lo, hi := a.visibleRange(tr)
	a.Ticks.Compute(lo, hi, a.TickOptions())
}

func (a *Axis) visibleRange(tr *Transformer) (float64, float64) {
	vp := tr.vp
	if !vp.HasContentRect() {
		return a.Min, a.Max
	}
	content := vp.ContentRect()

	// The axis runs horizontally for x axes of normal charts and y axes of
	// swapped charts.
	horizontal := (a.kind == xAxis) == (tr.orientation == Normal)

	var p1, p2 Point
	if horizontal {
		if content.Width() <= minAxisPixels || vp.IsFullyZoomedOutX() {
			return a.Min, a.Max
		}
		p1 = tr.ValuesByTouchPoint(content.X0, content.Y0)
		p2 = tr.ValuesByTouchPoint(content.X1, content.Y0)
	} else {
		if content.Height() <= minAxisPixels || vp.IsFullyZoomedOutY() {
			return a.Min, a.Max
		}
		p1 = tr.ValuesByTouchPoint(content.X0, content.Y0)
		p2 = tr.ValuesByTouchPoint(content.X0, content.Y1)
	}

	v1, v2 := p1.Y, p2.Y
	if a.kind == xAxis {
		v1, v2 = p1.X, p2.X
	}
	return min(v1, v2), max(v1, v2)
}
