package chartview

import (
	"github.com/sirupsen/logrus"
)

// DataRange is the extent of the data plotted in a chart, as reported by the
// data set layer. The left and right y axes share the x range.
type DataRange struct {
	XMin, XMax         float64
	LeftMin, LeftMax   float64
	RightMin, RightMax float64
}

// A Chart ties a [Viewport] to the axes and the two transformers of a
// bar/line style chart. It is the entry point for the gesture, data set and
// hit-testing layers.
//
// A Chart is not safe for concurrent use.
type Chart struct {
	Viewport  *Viewport
	XAxis     *Axis
	LeftAxis  *Axis
	RightAxis *Axis

	orientation Orientation
	left, right *Transformer
	offsets     OffsetCalculator
	view        Invalidator
	log         logrus.FieldLogger

	hasData bool
	pending []Job
}

// NewChart returns a chart without size or data.
func NewChart(o Orientation, opts ...Option) *Chart {
	cfg := newConfig(opts)
	vp := newViewport(cfg)
	return &Chart{
		Viewport:    vp,
		XAxis:       NewXAxis(),
		LeftAxis:    NewYAxis(Left),
		RightAxis:   NewYAxis(Right),
		orientation: o,
		left:        NewTransformer(vp, o),
		right:       NewTransformer(vp, o),
		offsets:     cfg.offsets,
		view:        cfg.view,
		log:         cfg.log,
	}
}

func (c *Chart) Orientation() Orientation { return c.orientation }

// Transformer returns the transformer for values plotted against dep.
func (c *Chart) Transformer(dep AxisDependency) *Transformer {
	if dep == Right {
		return c.right
	}
	return c.left
}

// Axis returns the y axis for dep.
func (c *Chart) Axis(dep AxisDependency) *Axis {
	if dep == Right {
		return c.RightAxis
	}
	return c.LeftAxis
}

// SetSize lays out the content rect for a chart view of the given size.
func (c *Chart) SetSize(width, height float64) error {
	if err := c.Viewport.Layout(Sz(width, height), c.offsets); err != nil {
		return err
	}
	c.prepare()
	return nil
}

// SetData recalculates the axes from new data extents.
func (c *Chart) SetData(r DataRange) {
	c.XAxis.Calculate(r.XMin, r.XMax)
	c.LeftAxis.Calculate(r.LeftMin, r.LeftMax)
	c.RightAxis.Calculate(r.RightMin, r.RightMax)
	c.hasData = true
	c.prepare()
}

func (c *Chart) prepare() {
	if !c.hasData || !c.Viewport.HasContentRect() {
		return
	}
	c.prepareValuePx(Left)
	c.prepareValuePx(Right)
	c.ComputeAxes()
	c.log.WithFields(logrus.Fields{
		"content":     c.Viewport.ContentRect(),
		"orientation": c.orientation,
		"xRange":      c.XAxis.Range,
	}).Debug("prepared value matrices")

	jobs := c.pending
	c.pending = nil
	for _, j := range jobs {
		j.Run(c)
	}
}

func (c *Chart) ready() bool {
	return c.hasData && c.Viewport.HasContentRect()
}

// AddJob runs j if the chart has a size and data, and otherwise queues it
// until it has both.
func (c *Chart) AddJob(j Job) {
	if !c.ready() {
		c.pending = append(c.pending, j)
		return
	}
	j.Run(c)
}

func (c *Chart) prepareValuePx(dep AxisDependency) {
	x, y := c.XAxis, c.Axis(dep)
	content := c.Viewport.ContentRect()
	if c.orientation == Normal {
		c.Transformer(dep).Rebuild(x.Min, x.Range, y.Min, y.Range, content, y.Inverted)
		return
	}
	// The y axis runs horizontally; inverting it flips the horizontal
	// mapping.
	hMin, hRange := y.Min, y.Range
	if y.Inverted {
		hMin, hRange = y.Max, -y.Range
	}
	c.Transformer(dep).Rebuild(hMin, hRange, x.Min, x.Range, content, false)
}

// ComputeAxes recomputes the ticks of all axes for the visible ranges.
func (c *Chart) ComputeAxes() {
	c.XAxis.ComputeVisible(c.left)
	c.LeftAxis.ComputeVisible(c.left)
	c.RightAxis.ComputeVisible(c.right)
}

// commit refreshes the viewport with m, recomputes ticks for the new visible
// ranges and invalidates the view.
func (c *Chart) commit(m Affine) {
	c.Viewport.Refresh(m, nil)
	c.ComputeAxes()
	if c.view != nil {
		c.view.Invalidate()
	}
}

// Zoom zooms by (scaleX, scaleY) about the pixel pivot.
func (c *Chart) Zoom(scaleX, scaleY float64, pivot Point) {
	c.commit(c.Viewport.Zoom(scaleX, scaleY, pivot))
}

// ZoomIn zooms in by a fixed step about the content center.
func (c *Chart) ZoomIn() {
	c.commit(c.Viewport.ZoomIn(c.Viewport.ContentCenter()))
}

// ZoomOut zooms out by a fixed step about the content center.
func (c *Chart) ZoomOut() {
	c.commit(c.Viewport.ZoomOut(c.Viewport.ContentCenter()))
}

// ResetZoom undoes all zooming.
func (c *Chart) ResetZoom() {
	c.commit(c.Viewport.ResetZoom())
}

// FitScreen undoes all zooming and panning and resets the minimum scales.
func (c *Chart) FitScreen() {
	c.commit(c.Viewport.FitScreen())
}

// Drag pans the content by (dx, dy) pixels.
func (c *Chart) Drag(dx, dy float64) {
	c.commit(c.Viewport.Drag(dx, dy))
}

// ValuesByTouchPoint returns the data value at pixel position (x, y) for
// values plotted against dep.
func (c *Chart) ValuesByTouchPoint(x, y float64, dep AxisDependency) Point {
	return c.Transformer(dep).ValuesByTouchPoint(x, y)
}

// PixelForValues returns the pixel position of the data value (x, y) plotted
// against dep.
func (c *Chart) PixelForValues(x, y float64, dep AxisDependency) Point {
	return c.Transformer(dep).PixelForValues(x, y)
}

// LowestVisibleX returns the smallest x value inside the content rect.
func (c *Chart) LowestVisibleX() float64 {
	lo, _ := c.XAxis.visibleRange(c.left)
	return max(c.XAxis.Min, lo)
}

// HighestVisibleX returns the largest x value inside the content rect.
func (c *Chart) HighestVisibleX() float64 {
	_, hi := c.XAxis.visibleRange(c.left)
	return min(c.XAxis.Max, hi)
}

// anchorOffset returns the position of a within the content rect, relative
// to its origin.
func (c *Chart) anchorOffset(a Anchor) Vec2 {
	w, h := c.Viewport.ContentWidth(), c.Viewport.ContentHeight()
	switch a {
	case AnchorLeftCenter:
		return Vec(0, h/2)
	case AnchorCenter:
		return Vec(w/2, h/2)
	case AnchorBottomLeft:
		return Vec(0, h)
	default:
		return Vec2{}
	}
}

// MoveViewTo pans so that the value (x, y) sits on the left edge of the
// content rect, vertically centered.
func (c *Chart) MoveViewTo(x, y float64, dep AxisDependency) {
	c.AddJob(MoveViewJob{Value: Pt(x, y), Dependency: dep, Anchor: AnchorLeftCenter})
}

// MoveViewToX pans along the x axis only, so that x becomes the lowest
// visible x value.
func (c *Chart) MoveViewToX(x float64) {
	anchor := AnchorTopLeft
	if c.orientation == Swapped {
		anchor = AnchorBottomLeft
	}
	c.AddJob(MoveViewJob{Value: Pt(x, 0), Dependency: Left, Anchor: anchor, XOnly: true})
}

// CenterViewTo pans so that the value (x, y) sits at the center of the
// content rect.
func (c *Chart) CenterViewTo(x, y float64, dep AxisDependency) {
	c.AddJob(MoveViewJob{Value: Pt(x, y), Dependency: dep, Anchor: AnchorCenter})
}

// ZoomAndCenter zooms by (scaleX, scaleY) and centers the view on the value
// (x, y).
func (c *Chart) ZoomAndCenter(scaleX, scaleY, x, y float64, dep AxisDependency) {
	c.AddJob(ZoomJob{ScaleX: scaleX, ScaleY: scaleY, Value: Pt(x, y), Dependency: dep})
}

// AnimatedCenterViewTo returns a job that, stepped from phase 0 to 1, pans
// from the current view to one centered on the value (x, y). The chart must
// have a size and data.
func (c *Chart) AnimatedCenterViewTo(x, y float64, dep AxisDependency) *AnimatedMoveViewJob {
	content := c.Viewport.ContentRect()
	tr := c.Transformer(dep)
	to := tr.PixelForValues(x, y).Translate(c.anchorOffset(AnchorCenter).Negate())
	return &AnimatedMoveViewJob{
		From:       c.ValuesByTouchPoint(content.X0, content.Y0, dep),
		To:         tr.ValuesByTouchPoint(to.X, to.Y),
		Dependency: dep,
	}
}

// AnimatedZoomAndCenter returns a job that, stepped from phase 0 to 1, zooms
// by (scaleX, scaleY) relative to the current zoom while moving the view's
// center to the value (x, y). The chart must have a size and data.
func (c *Chart) AnimatedZoomAndCenter(scaleX, scaleY, x, y float64, dep AxisDependency) *AnimatedZoomJob {
	center := c.Viewport.ContentCenter()
	vp := c.Viewport
	return &AnimatedZoomJob{
		FromScale:  Vec(vp.ScaleX(), vp.ScaleY()),
		ToScale:    Vec(vp.ScaleX()*scaleX, vp.ScaleY()*scaleY),
		FromCenter: c.ValuesByTouchPoint(center.X, center.Y, dep),
		ToCenter:   Pt(x, y),
		Dependency: dep,
	}
}

// SetScaleMinima sets the smallest zoom per screen axis.
func (c *Chart) SetScaleMinima(scaleX, scaleY float64) {
	c.Viewport.SetMinimumScaleX(scaleX)
	c.Viewport.SetMinimumScaleY(scaleY)
}

// The visible range limits below translate a range of data values into zoom
// bounds of the screen axis that carries it, using the axis ranges of the
// last SetData. On swapped charts data x runs vertically.

// SetVisibleXRangeMaximum stops zooming out once maxRange of the x axis is
// visible.
func (c *Chart) SetVisibleXRangeMaximum(maxRange float64) {
	if s, ok := c.scaleFor(c.XAxis, maxRange); ok {
		c.setMinScale(true, s)
	}
}

// SetVisibleXRangeMinimum stops zooming in once only minRange of the x axis
// is visible.
func (c *Chart) SetVisibleXRangeMinimum(minRange float64) {
	if s, ok := c.scaleFor(c.XAxis, minRange); ok {
		c.setMaxScale(true, s)
	}
}

// SetVisibleXRange limits the visible part of the x axis to [minRange,
// maxRange].
func (c *Chart) SetVisibleXRange(minRange, maxRange float64) {
	c.setScaleBounds(true, c.XAxis, minRange, maxRange)
}

// SetVisibleYRangeMaximum stops zooming out once maxRange of the y axis for
// dep is visible.
func (c *Chart) SetVisibleYRangeMaximum(maxRange float64, dep AxisDependency) {
	if s, ok := c.scaleFor(c.Axis(dep), maxRange); ok {
		c.setMinScale(false, s)
	}
}

// SetVisibleYRangeMinimum stops zooming in once only minRange of the y axis
// for dep is visible.
func (c *Chart) SetVisibleYRangeMinimum(minRange float64, dep AxisDependency) {
	if s, ok := c.scaleFor(c.Axis(dep), minRange); ok {
		c.setMaxScale(false, s)
	}
}

// SetVisibleYRange limits the visible part of the y axis for dep to
// [minRange, maxRange].
func (c *Chart) SetVisibleYRange(minRange, maxRange float64, dep AxisDependency) {
	c.setScaleBounds(false, c.Axis(dep), minRange, maxRange)
}

// scaleFor returns the zoom at which visible of a's range fills the content
// rect.
func (c *Chart) scaleFor(a *Axis, visible float64) (float64, bool) {
	s := a.Range / visible
	if !isUsableScale(s) || s < 0 {
		c.log.WithFields(logrus.Fields{
			"axisRange": a.Range,
			"visible":   visible,
		}).Debug("ignoring visible range limit")
		return 0, false
	}
	return s, true
}

// horizontal reports whether the x axis, or the y axis if dataX is false, runs
// horizontally on screen.
func (c *Chart) horizontal(dataX bool) bool {
	return dataX == (c.orientation == Normal)
}

func (c *Chart) setMinScale(dataX bool, s float64) {
	if c.horizontal(dataX) {
		c.Viewport.SetMinimumScaleX(s)
	} else {
		c.Viewport.SetMinimumScaleY(s)
	}
}

func (c *Chart) setMaxScale(dataX bool, s float64) {
	if c.horizontal(dataX) {
		c.Viewport.SetMaximumScaleX(s)
	} else {
		c.Viewport.SetMaximumScaleY(s)
	}
}

func (c *Chart) setScaleBounds(dataX bool, a *Axis, minRange, maxRange float64) {
	lo, ok := c.scaleFor(a, maxRange)
	if !ok {
		return
	}
	hi, ok := c.scaleFor(a, minRange)
	if !ok {
		return
	}
	if c.horizontal(dataX) {
		c.Viewport.SetMinMaxScaleX(lo, hi)
	} else {
		c.Viewport.SetMinMaxScaleY(lo, hi)
	}
}
