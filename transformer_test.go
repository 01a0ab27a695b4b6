package chartview

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gonum.org/v1/gonum/mat"
)

func newTestTransformer(t *testing.T, o Orientation, opts ...Option) *Transformer {
	t.Helper()
	vp := newTestViewport(t, Rect{10, 20, 110, 220}, opts...)
	tr := NewTransformer(vp, o)
	tr.Rebuild(0, 10, 0, 100, vp.ContentRect(), false)
	return tr
}

func TestTransformerValueToPixel(t *testing.T) {
	tr := newTestTransformer(t, Normal)
	tests := []struct {
		value, pixel Point
	}{
		{Pt(0, 0), Pt(10, 220)},
		{Pt(10, 100), Pt(110, 20)},
		{Pt(5, 50), Pt(60, 120)},
	}
	for _, tt := range tests {
		assertNear(t, tr.PixelForValues(tt.value.X, tt.value.Y), tt.pixel, 1e-9)
		assertNear(t, tr.ValuesByTouchPoint(tt.pixel.X, tt.pixel.Y), tt.value, 1e-9)
	}
}

func TestTransformerInverted(t *testing.T) {
	tr := newTestTransformer(t, Normal)
	tr.Rebuild(0, 10, 0, 100, tr.Viewport().ContentRect(), true)
	assertNear(t, tr.PixelForValues(0, 0), Pt(10, 20), 1e-9)
	assertNear(t, tr.PixelForValues(10, 100), Pt(110, 220), 1e-9)
}

func TestTransformerRoundTrip(t *testing.T) {
	tr := newTestTransformer(t, Normal, WithDragOffset(15, 15))
	vp := tr.Viewport()
	vp.Refresh(vp.Zoom(3, 1.5, Pt(40, 70)), nil)
	vp.Refresh(vp.Drag(-17, 9), nil)

	for _, v := range []Point{{0, 0}, {-3, 250}, {7.25, 13.5}, {1e3, -1e3}} {
		px := tr.PixelForValues(v.X, v.Y)
		assertNear(t, tr.ValuesByTouchPoint(px.X, px.Y), v, 1e-6)
	}

	pts := []float64{1, 2, 3, 4, 5, 6}
	tr.PointValuesToPixel(pts)
	tr.PixelsToValue(pts)
	diff(t, []float64{1, 2, 3, 4, 5, 6}, pts, approx)
}

func TestTransformerMonotonic(t *testing.T) {
	for _, o := range []Orientation{Normal, Swapped} {
		tr := newTestTransformer(t, o)
		vp := tr.Viewport()
		vp.Refresh(vp.Zoom(2, 2, vp.ContentCenter()), nil)

		a := tr.PixelForValues(1, 10)
		b := tr.PixelForValues(2, 20)
		switch o {
		case Normal:
			if !(b.X > a.X) {
				t.Errorf("%s: larger x moved left: %v -> %v", o, a, b)
			}
			if !(b.Y < a.Y) {
				t.Errorf("%s: larger y moved down: %v -> %v", o, a, b)
			}
		case Swapped:
			if !(b.X > a.X) {
				t.Errorf("%s: larger y moved left: %v -> %v", o, a, b)
			}
			if !(b.Y < a.Y) {
				t.Errorf("%s: larger x moved down: %v -> %v", o, a, b)
			}
		}
	}
}

func TestTransformerSwapped(t *testing.T) {
	normal := newTestTransformer(t, Normal)
	swapped := newTestTransformer(t, Swapped)
	normal.Rebuild(0, 10, 0, 10, normal.Viewport().ContentRect(), false)
	swapped.Rebuild(0, 10, 0, 10, swapped.Viewport().ContentRect(), false)

	diff(t, normal.PixelForValues(7, 3), swapped.PixelForValues(3, 7), approx)
	px := swapped.PixelForValues(3, 7)
	assertNear(t, swapped.ValuesByTouchPoint(px.X, px.Y), Pt(3, 7), 1e-9)
}

func TestTransformerUnusableRange(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	tr := newTestTransformer(t, Normal, WithLogger(logger))

	tr.Rebuild(5, 0, 0, 100, tr.Viewport().ContentRect(), false)
	diff(t, Identity, tr.ValueMatrix())
	if e := hook.LastEntry(); e == nil || e.Level != logrus.DebugLevel {
		t.Errorf("got last entry %v, want a debug entry", e)
	}

	if _, err := tr.PixelToValueMatrix(); err != nil {
		t.Errorf("identity mapping should be invertible: %s", err)
	}
}

func TestTransformerHugeRange(t *testing.T) {
	tr := newTestTransformer(t, Normal)
	// Both scales are around 1e-198, so the determinant underflows.
	tr.Rebuild(0, 1e200, 0, 1e200, tr.Viewport().ContentRect(), false)
	if tr.ValueMatrix() == Identity {
		t.Fatal("huge range fell back to the identity mapping")
	}
	assertNear(t, tr.PixelForValues(5e199, 5e199), Pt(60, 120), 1e-9)
	diff(t, Pt(5e199, 5e199), tr.ValuesByTouchPoint(60, 120), relApprox)
}

func TestTransformerDegenerateMatrix(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	tr := newTestTransformer(t, Normal, WithLogger(logger))

	// Each scale is finite, but they are too far apart for an inverse.
	tr.Rebuild(0, 1e300, 0, 1e-300, tr.Viewport().ContentRect(), false)
	diff(t, Identity, tr.ValueMatrix())
	if e := hook.LastEntry(); e == nil || e.Message != "degenerate value matrix, falling back to identity mapping" {
		t.Errorf("got last entry %v, want a degenerate matrix entry", e)
	}
	diff(t, Pt(60, 120), tr.ValuesByTouchPoint(60, 120))
}

func TestTransformerPixelToValueMatrix(t *testing.T) {
	tr := newTestTransformer(t, Normal)
	inv, err := tr.PixelToValueMatrix()
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, Pt(60, 120).Transform(inv), Pt(5, 50), 1e-9)

	// Without a value matrix the content rect has no area to map to.
	vp := NewViewport()
	tr = NewTransformer(vp, Normal)
	tr.valuePx = Scale(0, 1)
	if _, err := tr.PixelToValueMatrix(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, want %v", err, ErrDegenerate)
	}
	// Hit testing doesn't panic on it.
	diff(t, Pt(3, 4), tr.ValuesByTouchPoint(3, 4))
}

func TestTransformerComposition(t *testing.T) {
	tr := newTestTransformer(t, Normal)
	vp := tr.Viewport()
	vp.Refresh(vp.Zoom(2.5, 1.25, Pt(30, 90)), nil)

	var want mat.Dense
	want.Mul(augmented(vp.Touch()), augmented(tr.ValueMatrix()))
	if got := augmented(tr.ValueToPixelMatrix()); !mat.EqualApprox(got, &want, 1e-9) {
		t.Errorf("got %v, want %v", tr.ValueToPixelMatrix(), mat.Formatted(&want, mat.Squeeze()))
	}
}

func TestTransformerRects(t *testing.T) {
	tr := newTestTransformer(t, Normal)

	r := Rect{1, 0, 2, 100}
	tr.RectValueToPixel(&r)
	diff(t, Rect{20, 20, 30, 220}, r, approx)

	r = Rect{1, 0, 2, 100}
	tr.RectToPixelPhase(&r, 0.5)
	diff(t, Rect{20, 120, 30, 220}, r, approx)

	rects := []Rect{{0, 0, 1, 50}, {9, 50, 10, 100}}
	tr.RectValuesToPixel(rects)
	diff(t, []Rect{{10, 120, 20, 220}, {100, 20, 110, 120}}, rects, approx)
}

func TestTransformerAppendPixels(t *testing.T) {
	tr := newTestTransformer(t, Normal)
	pts := []Point{{0, 100}, {10, 50}}

	buf := tr.AppendPixels(nil, pts, 1)
	diff(t, []float64{10, 20, 110, 120}, buf, approx)

	buf = tr.AppendPixels(buf[:0], pts, 0)
	diff(t, []float64{10, 220, 110, 220}, buf, approx)
}
