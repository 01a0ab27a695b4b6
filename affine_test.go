package chartview

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(ScaleAbout(2, 3, Pt(1, 1))), Pt(5, 10), epsilon)
	assertNear(t, p.Transform(swapXY), Pt(4, 3), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineThen(t *testing.T) {
	const epsilon = 1e-9
	base := Scale(2, 3).ThenTranslate(Vec(10, 20))
	p := Pt(1, 1)

	assertNear(t, p.Transform(base), Pt(12, 23), epsilon)
	assertNear(t, p.Transform(base.Then(Scale(2, 2))), Pt(24, 46), epsilon)
	assertNear(t, p.Transform(base.ThenScale(2, 2)), Pt(24, 46), epsilon)
	assertNear(t, p.Transform(base.PreScale(2, 2)), Pt(14, 26), epsilon)
	assertNear(t, p.Transform(base.PreTranslate(Vec(1, 1))), Pt(14, 26), epsilon)

	pivot := Pt(12, 23)
	assertNear(t, pivot.Transform(Identity.ThenScaleAbout(5, 7, pivot)), pivot, epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv, err := a.Invert()
	if err != nil {
		t.Fatal(err)
	}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(aInv).Transform(a), px, epsilon)
	assertNear(t, py.Transform(aInv).Transform(a), py, epsilon)
	assertNear(t, pxy.Transform(aInv).Transform(a), pxy, epsilon)
	assertNear(t, px.Transform(a).Transform(aInv), px, epsilon)
	assertNear(t, py.Transform(a).Transform(aInv), py, epsilon)
	assertNear(t, pxy.Transform(a).Transform(aInv), pxy, epsilon)
}

// augmented returns aff as a 3×3 matrix acting on column vectors.
func augmented(aff Affine) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		aff.N0, aff.N2, aff.N4,
		aff.N1, aff.N3, aff.N5,
		0, 0, 1,
	})
}

func TestAffineInvertMatchesGonum(t *testing.T) {
	tests := []Affine{
		{0.1, 1.2, 2.3, 3.4, 4.5, 5.6},
		Scale(2.5, -4).ThenTranslate(Vec(30, 700)),
		Translate(Vec(-3, 9)).ThenScale(1e-3, 1e4),
		swapXY.ThenTranslate(Vec(1, 2)),
	}
	for _, aff := range tests {
		got, err := aff.Invert()
		if err != nil {
			t.Errorf("%v: unexpected error: %s", aff, err)
			continue
		}
		var want mat.Dense
		if err := want.Inverse(augmented(aff)); err != nil {
			t.Fatalf("gonum failed to invert %v: %s", aff, err)
		}
		if !mat.EqualApprox(augmented(got), &want, 1e-9) {
			t.Errorf("inverse of %v: got %v, want %v", aff, got, mat.Formatted(&want, mat.Squeeze()))
		}
	}
}

func TestAffineInvertTinyScale(t *testing.T) {
	// The determinant of this transform underflows to zero.
	aff := Scale(1e-198, -1e-198).ThenTranslate(Vec(0, 100))
	if !aff.IsInvertible() {
		t.Fatalf("%v: expected to be invertible", aff)
	}
	inv, err := aff.Invert()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Affine{1e198, 0, 0, -1e198, 0, 1e200}, inv, relApprox)
	diff(t, Pt(5e199, 5e199), Pt(50, 50).Transform(inv), relApprox)
}

func TestAffineInvertDegenerate(t *testing.T) {
	tests := []Affine{
		Scale(0, 1),
		Scale(1, 0),
		{1, 2, 2, 4, 5, 6},
		{math.NaN(), 0, 0, 1, 0, 0},
		{1, 0, 0, 1, math.Inf(1), 0},
		Scale(1e-300, 1e300),
	}
	for _, aff := range tests {
		if aff.IsInvertible() {
			t.Errorf("%v: expected not to be invertible", aff)
		}
		if _, err := aff.Invert(); !errors.Is(err, ErrDegenerate) {
			t.Errorf("%v: got error %v, want %v", aff, err, ErrDegenerate)
		}
	}
}

func TestAffineMapPoints(t *testing.T) {
	aff := Scale(2, -1).ThenTranslate(Vec(10, 100))
	pts := []float64{0, 0, 1, 1, -5, 20}
	aff.MapPoints(pts)
	diff(t, []float64{10, 100, 12, 99, 0, 80}, pts)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for odd number of coordinates")
		}
	}()
	aff.MapPoints([]float64{1, 2, 3})
}

func TestAffineMapRect(t *testing.T) {
	// A flip turns the rectangle inside out; the result is normalized.
	r := Rect{0, 0, 10, 5}
	Scale(1, -1).ThenTranslate(Vec(0, 100)).MapRect(&r)
	diff(t, Rect{0, 95, 10, 100}, r)

	r = Rect{1, 2, 3, 4}
	swapXY.MapRect(&r)
	diff(t, Rect{2, 1, 4, 3}, r)
}

func TestAffineAff3(t *testing.T) {
	aff := Affine{1, 2, 3, 4, 5, 6}
	diff(t, f64.Aff3{1, 3, 5, 2, 4, 6}, aff.Aff3())
}

func TestAffineAccessors(t *testing.T) {
	aff := Scale(2, 3).ThenTranslate(Vec(4, 5))
	diff(t, 2.0, aff.ScaleX())
	diff(t, 3.0, aff.ScaleY())
	diff(t, Vec(4, 5), aff.Translation())
	diff(t, Scale(2, 3), aff.WithTranslation(Vec2{}))
	diff(t, aff, NewAffine(aff.Coefficients()))
	diff(t, 6.0, aff.Determinant())
}
