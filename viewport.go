package chartview

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	zoomInFactor  = 1.4
	zoomOutFactor = 0.7

	// scaleTolerance absorbs the rounding left behind by composing many
	// incremental zooms when comparing the current scale against its bounds.
	scaleTolerance = 1e-9
)

// A Viewport owns the pixel rectangle that chart content is drawn into and
// the cumulative pan/zoom transform (the touch matrix) applied on top of it.
//
// The touch matrix operates in screen pixels and is applied after a
// [Transformer] has mapped data values onto the content rect. Changes are made
// in two steps: methods such as [Viewport.Zoom] and [Viewport.Drag] return a
// proposed matrix, and [Viewport.Refresh] commits a proposal after clamping it
// to the configured scale and drag bounds.
//
// A Viewport is not safe for concurrent use.
type Viewport struct {
	chart      Size
	content    Rect
	configured bool

	touch Affine

	minScaleX, maxScaleX float64
	minScaleY, maxScaleY float64

	dragOffsetX, dragOffsetY float64

	log logrus.FieldLogger
}

// NewViewport returns an unconfigured viewport with an identity touch matrix.
// Its content rect must be set before any transform is requested.
func NewViewport(opts ...Option) *Viewport {
	cfg := newConfig(opts)
	return newViewport(cfg)
}

func newViewport(cfg config) *Viewport {
	vp := &Viewport{
		touch: Identity,
		log:   cfg.log,
	}
	vp.SetMinMaxScaleX(cfg.scaleX[0], cfg.scaleX[1])
	vp.SetMinMaxScaleY(cfg.scaleY[0], cfg.scaleY[1])
	vp.SetDragOffsetX(cfg.dragOffset.X)
	vp.SetDragOffsetY(cfg.dragOffset.Y)
	return vp
}

// SetContentRect replaces the content rect. Rectangles without positive,
// finite width and height are rejected with an error wrapping
// [ErrEmptyContentRect] and leave the viewport unchanged.
func (vp *Viewport) SetContentRect(left, top, right, bottom float64) error {
	r := Rect{left, top, right, bottom}
	if r.IsEmpty() || r.Size().IsInf() {
		vp.log.WithFields(logrus.Fields{
			"left":   left,
			"top":    top,
			"right":  right,
			"bottom": bottom,
		}).Warn("rejecting content rect without area")
		return fmt.Errorf("set content rect %v: %w", r, ErrEmptyContentRect)
	}
	vp.content = r
	vp.configured = true
	vp.chart.Width = max(vp.chart.Width, r.X1)
	vp.chart.Height = max(vp.chart.Height, r.Y1)
	return nil
}

// SetChartDimens sets the size of the whole chart view and derives the content
// rect by removing the offsets from it.
func (vp *Viewport) SetChartDimens(width, height float64, off Offsets) error {
	r := Rect{0, 0, width, height}.Inset(off)
	if err := vp.SetContentRect(r.X0, r.Y0, r.X1, r.Y1); err != nil {
		return fmt.Errorf("chart %v: %w", Sz(width, height), err)
	}
	vp.chart = Sz(width, height)
	return nil
}

// Layout lays out the content rect of a chart of the given size, asking calc
// for the offsets.
func (vp *Viewport) Layout(chart Size, calc OffsetCalculator) error {
	return vp.SetChartDimens(chart.Width, chart.Height, calc.Offsets(chart))
}

// HasContentRect reports whether a valid content rect has been set.
func (vp *Viewport) HasContentRect() bool { return vp.configured }

func (vp *Viewport) ContentRect() Rect      { return vp.content }
func (vp *Viewport) ContentWidth() float64  { return vp.content.Width() }
func (vp *Viewport) ContentHeight() float64 { return vp.content.Height() }
func (vp *Viewport) ContentCenter() Point   { return vp.content.Center() }
func (vp *Viewport) ChartSize() Size        { return vp.chart }

// Offsets returns the margins between the chart's edges and the content rect.
func (vp *Viewport) Offsets() Offsets {
	return Offsets{
		Left:   vp.content.X0,
		Top:    vp.content.Y0,
		Right:  vp.chart.Width - vp.content.X1,
		Bottom: vp.chart.Height - vp.content.Y1,
	}
}

// Touch returns the committed touch matrix.
func (vp *Viewport) Touch() Affine { return vp.touch }

func (vp *Viewport) ScaleX() float64 { return vp.touch.N0 }
func (vp *Viewport) ScaleY() float64 { return vp.touch.N3 }
func (vp *Viewport) TransX() float64 { return vp.touch.N4 }
func (vp *Viewport) TransY() float64 { return vp.touch.N5 }

// Zoom returns the touch matrix followed by a scale of (scaleX, scaleY) about
// the pixel pivot. The result is a proposal; it is neither clamped nor
// committed until passed to [Viewport.Refresh].
func (vp *Viewport) Zoom(scaleX, scaleY float64, pivot Point) Affine {
	return vp.touch.ThenScaleAbout(scaleX, scaleY, pivot)
}

// ZoomIn proposes zooming in by a fixed step about pivot.
func (vp *Viewport) ZoomIn(pivot Point) Affine {
	return vp.Zoom(zoomInFactor, zoomInFactor, pivot)
}

// ZoomOut proposes zooming out by a fixed step about pivot.
func (vp *Viewport) ZoomOut(pivot Point) Affine {
	return vp.Zoom(zoomOutFactor, zoomOutFactor, pivot)
}

// SetZoom proposes an absolute zoom of (scaleX, scaleY) about pivot, dropping
// any current pan.
func (vp *Viewport) SetZoom(scaleX, scaleY float64, pivot Point) Affine {
	return ScaleAbout(scaleX, scaleY, pivot)
}

// ResetZoom proposes undoing the current zoom about the content center.
func (vp *Viewport) ResetZoom() Affine {
	return vp.Zoom(1/vp.touch.N0, 1/vp.touch.N3, vp.ContentCenter())
}

// FitScreen resets the minimum scales to 1 and proposes the identity matrix,
// showing all content.
func (vp *Viewport) FitScreen() Affine {
	vp.minScaleX = 1
	vp.minScaleY = 1
	return Identity
}

// Drag proposes panning the content by (dx, dy) pixels.
func (vp *Viewport) Drag(dx, dy float64) Affine {
	return vp.touch.ThenTranslate(Vec(dx, dy))
}

// Translate proposes a pan that moves the pixel position pt to the content
// rect's origin.
func (vp *Viewport) Translate(pt Point) Affine {
	d := pt.Sub(vp.content.Origin())
	return vp.touch.ThenTranslate(d.Negate())
}

// MoveTo commits [Viewport.Translate] for pt.
func (vp *Viewport) MoveTo(pt Point, view Invalidator) Affine {
	return vp.Refresh(vp.Translate(pt), view)
}

// Refresh commits m as the new touch matrix and returns the committed matrix.
//
// The scale is clamped to the configured bounds per axis, keeping the point
// that m zooms about in place, and the translation is then clamped so that
// content is not dragged further than the drag offset past the content rect.
// view, if not nil, is invalidated. Matrices that are not finite or not
// invertible are ignored.
func (vp *Viewport) Refresh(m Affine, view Invalidator) Affine {
	if !m.IsInvertible() {
		vp.log.WithField("matrix", m).Warn("ignoring degenerate touch matrix")
		return vp.touch
	}
	vp.touch = vp.limitTransAndScale(m)
	if view != nil {
		view.Invalidate()
	}
	return vp.touch
}

func (vp *Viewport) limitTransAndScale(m Affine) Affine {
	prev := vp.touch
	center := vp.content.Center()

	sx := clamp(m.N0, vp.minScaleX, vp.maxScaleX)
	sy := clamp(m.N3, vp.minScaleY, vp.maxScaleY)
	tx, ty := m.N4, m.N5
	if sx != m.N0 {
		tx = keepPivot(prev.N0, prev.N4, m.N0, m.N4, sx, center.X)
	}
	if sy != m.N3 {
		ty = keepPivot(prev.N3, prev.N5, m.N3, m.N5, sy, center.Y)
	}
	if sx != m.N0 || sy != m.N3 {
		vp.log.WithFields(logrus.Fields{
			"scaleX":    m.N0,
			"scaleY":    m.N3,
			"clampedX":  sx,
			"clampedY":  sy,
			"minScaleX": vp.minScaleX,
			"minScaleY": vp.minScaleY,
		}).Debug("clamped zoom")
	}

	tx = clampTrans(tx, sx, vp.content.X0, vp.content.Width(), vp.dragOffsetX)
	ty = clampTrans(ty, sy, vp.content.Y0, vp.content.Height(), vp.dragOffsetY)
	return Affine{sx, 0, 0, sy, tx, ty}
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// keepPivot returns the translation that, for a scale clamped to sc, keeps the
// fixed point of the step from the committed (s0, t0) to the proposed (s, t)
// in place. If the step does not scale, there is no fixed point and fallback
// is used as the pivot.
func keepPivot(s0, t0, s, t, sc, fallback float64) float64 {
	d := s / s0
	p := fallback
	if d != 1 {
		p = (t - d*t0) / (1 - d)
	}
	dc := sc / s0
	return dc*t0 + p*(1-dc)
}

// clampTrans limits a translation along one axis. The limits are expressed
// relative to the content rect's origin: a translation of zero keeps the
// content's leading edge on the content rect's leading edge, and content may
// move at most dragOffset pixels past either edge.
func clampTrans(t, scale, origin, length, dragOffset float64) float64 {
	shift := origin * (1 - scale)
	rel := t - shift
	maxTrans := -length * (scale - 1)
	rel = min(max(rel, maxTrans-dragOffset), dragOffset)
	return rel + shift
}

// SetMinimumScaleX sets the smallest horizontal zoom. Values below 1 are
// raised to 1. The bound is enforced by the next [Viewport.Refresh].
func (vp *Viewport) SetMinimumScaleX(scale float64) {
	vp.minScaleX = max(scale, 1)
	vp.maxScaleX = max(vp.maxScaleX, vp.minScaleX)
}

// SetMinimumScaleY sets the smallest vertical zoom. Values below 1 are raised
// to 1. The bound is enforced by the next [Viewport.Refresh].
func (vp *Viewport) SetMinimumScaleY(scale float64) {
	vp.minScaleY = max(scale, 1)
	vp.maxScaleY = max(vp.maxScaleY, vp.minScaleY)
}

// SetMaximumScaleX sets the largest horizontal zoom. Zero means unbounded.
func (vp *Viewport) SetMaximumScaleX(scale float64) {
	if scale == 0 {
		scale = math.MaxFloat64
	}
	vp.maxScaleX = max(scale, vp.minScaleX)
}

// SetMaximumScaleY sets the largest vertical zoom. Zero means unbounded.
func (vp *Viewport) SetMaximumScaleY(scale float64) {
	if scale == 0 {
		scale = math.MaxFloat64
	}
	vp.maxScaleY = max(scale, vp.minScaleY)
}

func (vp *Viewport) SetMinMaxScaleX(minScale, maxScale float64) {
	vp.minScaleX = max(minScale, 1)
	vp.maxScaleX = math.MaxFloat64
	vp.SetMaximumScaleX(maxScale)
}

func (vp *Viewport) SetMinMaxScaleY(minScale, maxScale float64) {
	vp.minScaleY = max(minScale, 1)
	vp.maxScaleY = math.MaxFloat64
	vp.SetMaximumScaleY(maxScale)
}

func (vp *Viewport) MinScaleX() float64 { return vp.minScaleX }
func (vp *Viewport) MaxScaleX() float64 { return vp.maxScaleX }
func (vp *Viewport) MinScaleY() float64 { return vp.minScaleY }
func (vp *Viewport) MaxScaleY() float64 { return vp.maxScaleY }

// SetDragOffsetX sets how far, in pixels, content may be dragged past the
// left and right edges of the content rect.
func (vp *Viewport) SetDragOffsetX(offset float64) { vp.dragOffsetX = max(offset, 0) }

// SetDragOffsetY sets how far, in pixels, content may be dragged past the top
// and bottom edges of the content rect.
func (vp *Viewport) SetDragOffsetY(offset float64) { vp.dragOffsetY = max(offset, 0) }

func (vp *Viewport) DragOffsetX() float64 { return vp.dragOffsetX }
func (vp *Viewport) DragOffsetY() float64 { return vp.dragOffsetY }

// HasNoDragOffset reports whether content is confined to the content rect.
func (vp *Viewport) HasNoDragOffset() bool {
	return vp.dragOffsetX <= 0 && vp.dragOffsetY <= 0
}

// atMost reports whether a ≤ b, treating values within scaleTolerance as
// equal.
func atMost(a, b float64) bool {
	return a <= b || scalar.EqualWithinAbsOrRel(a, b, scaleTolerance, scaleTolerance)
}

func (vp *Viewport) CanZoomOutMoreX() bool { return !atMost(vp.touch.N0, vp.minScaleX) }
func (vp *Viewport) CanZoomOutMoreY() bool { return !atMost(vp.touch.N3, vp.minScaleY) }
func (vp *Viewport) CanZoomInMoreX() bool  { return !atMost(vp.maxScaleX, vp.touch.N0) }
func (vp *Viewport) CanZoomInMoreY() bool  { return !atMost(vp.maxScaleY, vp.touch.N3) }

// IsFullyZoomedOutX reports whether the content is horizontally zoomed out to
// fit the content rect.
func (vp *Viewport) IsFullyZoomedOutX() bool {
	return !vp.CanZoomOutMoreX() && vp.minScaleX <= 1
}

// IsFullyZoomedOutY reports whether the content is vertically zoomed out to
// fit the content rect.
func (vp *Viewport) IsFullyZoomedOutY() bool {
	return !vp.CanZoomOutMoreY() && vp.minScaleY <= 1
}

func (vp *Viewport) IsFullyZoomedOut() bool {
	return vp.IsFullyZoomedOutX() && vp.IsFullyZoomedOutY()
}

func (vp *Viewport) IsFullyZoomedInX() bool { return !vp.CanZoomInMoreX() }
func (vp *Viewport) IsFullyZoomedInY() bool { return !vp.CanZoomInMoreY() }

func (vp *Viewport) IsFullyZoomedIn() bool {
	return vp.IsFullyZoomedInX() && vp.IsFullyZoomedInY()
}

// IsInBounds reports whether the pixel position lies within the content rect,
// allowing one pixel of slack horizontally.
func (vp *Viewport) IsInBounds(x, y float64) bool {
	return vp.IsInBoundsX(x) && vp.IsInBoundsY(y)
}

func (vp *Viewport) IsInBoundsX(x float64) bool {
	return vp.IsInBoundsLeft(x) && vp.IsInBoundsRight(x)
}

func (vp *Viewport) IsInBoundsY(y float64) bool {
	return vp.IsInBoundsTop(y) && vp.IsInBoundsBottom(y)
}

func (vp *Viewport) IsInBoundsLeft(x float64) bool {
	return vp.content.X0 <= x+1
}

func (vp *Viewport) IsInBoundsRight(x float64) bool {
	x = math.Trunc(x*100) / 100
	return vp.content.X1 >= x-1
}

func (vp *Viewport) IsInBoundsTop(y float64) bool {
	return vp.content.Y0 <= y
}

func (vp *Viewport) IsInBoundsBottom(y float64) bool {
	y = math.Trunc(y*100) / 100
	return vp.content.Y1 >= y
}

// A Snapshot is a copy of a viewport's state at a frame boundary. Hosts that
// render on a different goroutine than they handle gestures on take one
// snapshot per frame and render from it.
type Snapshot struct {
	Chart      Size
	Content    Rect
	Touch      Affine
	MinScale   Vec2
	MaxScale   Vec2
	DragOffset Vec2
}

// Snapshot returns a copy of the viewport's current state.
func (vp *Viewport) Snapshot() Snapshot {
	return Snapshot{
		Chart:      vp.chart,
		Content:    vp.content,
		Touch:      vp.touch,
		MinScale:   Vec(vp.minScaleX, vp.minScaleY),
		MaxScale:   Vec(vp.maxScaleX, vp.maxScaleY),
		DragOffset: Vec(vp.dragOffsetX, vp.dragOffsetY),
	}
}
