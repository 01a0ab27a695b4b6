package chartview

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Orientation describes how a chart lays out its axes.
type Orientation int

const (
	// Normal charts run the x axis horizontally and the y axis vertically.
	Normal Orientation = iota
	// Swapped charts, such as horizontal bar charts, run the x axis
	// vertically and the y axis horizontally.
	Swapped
)

func (o Orientation) String() string {
	switch o {
	case Normal:
		return "normal"
	case Swapped:
		return "swapped"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// A Transformer converts between data values and screen pixels for one axis
// dependency. It composes two matrices: the value matrix, which maps the data
// range onto the unzoomed content rect, and the touch matrix of its
// [Viewport].
//
// The value matrix is the identity until [Transformer.Rebuild] has been
// called. Callers must rebuild after every change of data range or content
// rect.
type Transformer struct {
	vp          *Viewport
	orientation Orientation
	valuePx     Affine
}

// NewTransformer returns a transformer that applies vp's touch matrix on top
// of its own value matrix.
func NewTransformer(vp *Viewport, o Orientation) *Transformer {
	return &Transformer{
		vp:          vp,
		orientation: o,
		valuePx:     Identity,
	}
}

func (t *Transformer) Orientation() Orientation { return t.orientation }
func (t *Transformer) Viewport() *Viewport       { return t.vp }

// ValueMatrix returns the matrix mapping data values onto the unzoomed content
// rect.
func (t *Transformer) ValueMatrix() Affine { return t.valuePx }

// Rebuild derives the value matrix from the data range and content rect.
//
// xMin maps to the content's left edge and xMin+xRange to its right edge. yMin
// maps to the bottom edge and yMin+yRange to the top edge, or the other way
// around if inverted is set. For [Swapped] transformers the x and y
// coordinates of every value are exchanged before this mapping, so xMin and
// xRange describe the horizontal screen axis, which carries data y.
//
// A range or content rect that yields a zero or non-finite scale, or a matrix
// that can't be inverted, leaves the identity mapping in place.
func (t *Transformer) Rebuild(xMin, xRange, yMin, yRange float64, content Rect, inverted bool) {
	scaleX := content.Width() / xRange
	scaleY := content.Height() / yRange
	if !isUsableScale(scaleX) || !isUsableScale(scaleY) {
		t.vp.log.WithFields(logrus.Fields{
			"xRange":  xRange,
			"yRange":  yRange,
			"content": content,
		}).Debug("unusable data range, falling back to identity mapping")
		t.valuePx = Identity
		return
	}

	var m Affine
	if inverted {
		m = Translate(Vec(-xMin, -yMin)).
			ThenScale(scaleX, scaleY).
			ThenTranslate(Vec(content.X0, content.Y0))
	} else {
		m = Translate(Vec(-xMin, -yMin)).
			ThenScale(scaleX, -scaleY).
			ThenTranslate(Vec(content.X0, content.Y1))
	}
	if t.orientation == Swapped {
		m = m.Mul(swapXY)
	}
	if !m.IsInvertible() {
		t.vp.log.WithFields(logrus.Fields{
			"xRange": xRange,
			"yRange": yRange,
			"matrix": m,
		}).Debug("degenerate value matrix, falling back to identity mapping")
		m = Identity
	}
	t.valuePx = m
}

func isUsableScale(s float64) bool {
	return s != 0 && !math.IsNaN(s) && !math.IsInf(s, 0)
}

// ValueToPixelMatrix returns the value matrix followed by the touch matrix.
func (t *Transformer) ValueToPixelMatrix() Affine {
	return t.valuePx.Then(t.vp.touch)
}

// PixelToValueMatrix returns the inverse of [Transformer.ValueToPixelMatrix].
func (t *Transformer) PixelToValueMatrix() (Affine, error) {
	return t.ValueToPixelMatrix().Invert()
}

// PointValuesToPixel transforms interleaved x, y data values into pixels, in
// place.
func (t *Transformer) PointValuesToPixel(pts []float64) {
	t.ValueToPixelMatrix().MapPoints(pts)
}

// PixelsToValue transforms interleaved x, y pixel positions into data values,
// in place.
func (t *Transformer) PixelsToValue(pts []float64) {
	t.pixelToValue().MapPoints(pts)
}

// pixelToValue inverts the composed matrix. Rebuild and Viewport.Refresh only
// store invertible matrices, but their product can still lose its determinant
// to underflow; the identity stands in for it then.
func (t *Transformer) pixelToValue() Affine {
	m := t.ValueToPixelMatrix()
	inv, err := m.Invert()
	if err != nil {
		t.vp.log.WithError(err).Debug("pixel to value mapping falls back to identity")
		return Identity
	}
	return inv
}

// PixelForValues returns the pixel position of the data value (x, y).
func (t *Transformer) PixelForValues(x, y float64) Point {
	return Pt(x, y).Transform(t.ValueToPixelMatrix())
}

// ValuesByTouchPoint returns the data value at pixel position (x, y). It is
// the inverse of [Transformer.PixelForValues].
func (t *Transformer) ValuesByTouchPoint(x, y float64) Point {
	return Pt(x, y).Transform(t.pixelToValue())
}

// RectValueToPixel transforms a rectangle of data values into pixels, in
// place.
func (t *Transformer) RectValueToPixel(r *Rect) {
	t.ValueToPixelMatrix().MapRect(r)
}

// RectToPixelPhase is like [Transformer.RectValueToPixel], but first scales
// the rectangle's data y extent by phase. A phase of 0 collapses the rectangle
// onto the zero line and a phase of 1 leaves it at full size, which is how bars
// grow in during draw-in animations.
func (t *Transformer) RectToPixelPhase(r *Rect, phase float64) {
	r.Y0 *= phase
	r.Y1 *= phase
	t.RectValueToPixel(r)
}

// RectValuesToPixel transforms multiple rectangles in place.
func (t *Transformer) RectValuesToPixel(rects []Rect) {
	m := t.ValueToPixelMatrix()
	for i := range rects {
		m.MapRect(&rects[i])
	}
}

// AppendPixels transforms data points into pixels, scaling their y values by
// phaseY, and appends the interleaved coordinates to dst. Renderers pass the
// previous frame's slice, truncated to zero length, to avoid allocating per
// frame.
func (t *Transformer) AppendPixels(dst []float64, pts []Point, phaseY float64) []float64 {
	m := t.ValueToPixelMatrix()
	for _, pt := range pts {
		pt.Y *= phaseY
		px := pt.Transform(m)
		dst = append(dst, px.X, px.Y)
	}
	return dst
}
