package chartview

import (
	"testing"
)

func TestAxisLabelCount(t *testing.T) {
	a := NewXAxis()
	diff(t, defaultLabelCount, a.LabelCount())

	a.SetLabelCount(1, true)
	diff(t, minLabelCount, a.LabelCount())
	if !a.IsForceLabelCount() {
		t.Error("expected forced label count")
	}
	a.SetLabelCount(30, false)
	diff(t, maxLabelCount, a.LabelCount())
}

func TestAxisTickOptions(t *testing.T) {
	a := NewYAxis(Right)
	diff(t, Right, a.Dependency())
	diff(t, TickOptions{LabelCount: defaultLabelCount}, a.TickOptions())

	a.SetGranularity(5)
	a.CenterLabels = true
	diff(t, TickOptions{LabelCount: defaultLabelCount, Granularity: 5, CenterLabels: true}, a.TickOptions())

	a.SetGranularityEnabled(false)
	diff(t, 0.0, a.TickOptions().Granularity)
	diff(t, 5.0, a.Granularity())
}

func TestAxisCalculate(t *testing.T) {
	type extent struct{ Min, Max, Range float64 }
	get := func(a *Axis) extent { return extent{a.Min, a.Max, a.Range} }

	tests := []struct {
		name     string
		axis     func() *Axis
		min, max float64
		want     extent
	}{
		{
			name: "x spacing",
			axis: func() *Axis {
				a := NewXAxis()
				a.SpaceMin, a.SpaceMax = 0.5, 0.5
				return a
			},
			min:  0,
			max:  10,
			want: extent{-0.5, 10.5, 11},
		},
		{
			name: "x zero range",
			axis: NewXAxis,
			min:  5,
			max:  5,
			want: extent{4, 6, 2},
		},
		{
			name: "x custom bounds",
			axis: func() *Axis {
				a := NewXAxis()
				a.SetAxisMinimum(-2)
				a.SetAxisMaximum(20)
				return a
			},
			min:  0,
			max:  10,
			want: extent{-2, 20, 22},
		},
		{
			name: "y percent spacing",
			axis: func() *Axis { return NewYAxis(Left) },
			min:  0,
			max:  100,
			want: extent{-10, 110, 120},
		},
		{
			name: "y custom minimum",
			axis: func() *Axis {
				a := NewYAxis(Left)
				a.SetAxisMinimum(0)
				return a
			},
			min:  20,
			max:  100,
			want: extent{0, 110, 110},
		},
		{
			name: "y custom maximum below data",
			axis: func() *Axis {
				a := NewYAxis(Left)
				a.SetAxisMaximum(-10)
				return a
			},
			min:  0,
			max:  100,
			want: extent{-15.5, -10, 5.5},
		},
		{
			name: "y reversed custom bounds",
			axis: func() *Axis {
				a := NewYAxis(Left)
				a.SetAxisMinimum(50)
				a.SetAxisMaximum(10)
				return a
			},
			min:  0,
			max:  100,
			want: extent{10, 50, 40},
		},
		{
			name: "y zero range",
			axis: func() *Axis {
				a := NewYAxis(Left)
				a.SpaceBottom, a.SpaceTop = 0, 0
				return a
			},
			min:  3,
			max:  3,
			want: extent{2, 4, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.axis()
			a.Calculate(tt.min, tt.max)
			diff(t, tt.want, get(a), approx)
		})
	}
}

func TestAxisResetCustomBounds(t *testing.T) {
	a := NewXAxis()
	a.SetAxisMinimum(-100)
	a.Calculate(0, 10)
	diff(t, -100.0, a.Min)

	a.ResetAxisMinimum()
	a.Calculate(0, 10)
	diff(t, 0.0, a.Min)
}

func TestAxisComputeVisibleWithoutContent(t *testing.T) {
	tr := NewTransformer(NewViewport(), Normal)
	a := NewYAxis(Left)
	a.Calculate(0, 100)
	a.ComputeVisible(tr)
	diff(t, ComputeTicks(a.Min, a.Max, a.TickOptions()), a.Ticks, approx)
}

func TestAxisComputeVisibleZoomed(t *testing.T) {
	tr := newTestTransformer(t, Normal)
	vp := tr.Viewport()
	a := NewXAxis()
	a.Calculate(0, 10)

	a.ComputeVisible(tr)
	diff(t, []float64{0, 2, 4, 6, 8, 10}, a.Ticks.Values, approx)

	// Halve the visible x range.
	vp.Refresh(vp.Zoom(2, 1, vp.ContentCenter()), nil)
	a.ComputeVisible(tr)
	diff(t, []float64{3, 4, 5, 6, 7}, a.Ticks.Values, approx)
}
