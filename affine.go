package chartview

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/floats/scalar"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then a point is mapped as
//
//	x' = a·x + c·y + e
//	y' = b·x + d·y + f
//
// which is the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// applied to column vectors, or equivalently [x y 1]·M for the transposed
// matrix applied to row vectors. (A * B) * v == A * (B * v).
//
// Charts only ever translate and scale their content. Rotation and shear are
// representable but nothing in this package produces them.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// swapXY exchanges the x and y coordinates of a point.
var swapXY = Affine{0, 1, 1, 0, 0, 0}

// Scale creates an affine transform representing non-uniform scaling about the
// origin.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// ScaleAbout creates an affine transform scaling by (x, y) about pivot. The
// pivot is a fixed point of the resulting transform.
func ScaleAbout(x, y float64, pivot Point) Affine {
	return Affine{x, 0, 0, y, pivot.X - x*pivot.X, pivot.Y - y*pivot.Y}
}

// NewAffine creates a new affine transformation from an array of coefficients.
func NewAffine(n [6]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5]}
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

func (aff Affine) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5)
}

// Mul returns the matrix product aff * o, which applies o first and aff
// second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Then creates aff followed by o.
//
// Equivalent to "o * aff"
func (aff Affine) Then(o Affine) Affine {
	return o.Mul(aff)
}

// ThenScale creates aff followed by a scale of (x, y) about the origin.
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenScaleAbout creates aff followed by a scale of (x, y) about pivot.
//
// Equivalent to "ScaleAbout(x, y, pivot) * aff"
func (aff Affine) ThenScaleAbout(x, y float64, pivot Point) Affine {
	return ScaleAbout(x, y, pivot).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// PreScale creates a scale by (x, y) followed by aff.
//
// Equivalent to "aff * Scale(x, y)"
func (aff Affine) PreScale(x, y float64) Affine {
	return aff.Mul(Scale(x, y))
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec2) Affine {
	return aff.Mul(Translate(v))
}

// ScaleX returns the horizontal scale factor. Only meaningful for transforms
// without rotation or shear.
func (aff Affine) ScaleX() float64 { return aff.N0 }

// ScaleY returns the vertical scale factor. Only meaningful for transforms
// without rotation or shear.
func (aff Affine) ScaleY() float64 { return aff.N3 }

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff Affine) WithTranslation(v Vec2) Affine {
	aff.N4 = v.X
	aff.N5 = v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// determinantTolerance is the relative tolerance under which the two products
// forming the determinant are considered equal, making the transform singular.
const determinantTolerance = 1e-12

// normalized returns the linear part divided by its largest absolute
// coefficient, along with that coefficient. Tiny or huge scales then don't
// under- or overflow the determinant.
func (aff Affine) normalized() (a, b, c, d, s float64) {
	s = max(math.Abs(aff.N0), math.Abs(aff.N1), math.Abs(aff.N2), math.Abs(aff.N3))
	if s == 0 {
		return 0, 0, 0, 0, 0
	}
	return aff.N0 / s, aff.N1 / s, aff.N2 / s, aff.N3 / s, s
}

// IsInvertible reports whether the transform has finite coefficients and a
// determinant that is not zero relative to the magnitude of its linear part.
func (aff Affine) IsInvertible() bool {
	if aff.IsNaN() || aff.IsInf() {
		return false
	}
	a, b, c, d, _ := aff.normalized()
	ad := a * d
	bc := b * c
	if ad == 0 && bc == 0 {
		return false
	}
	return !scalar.EqualWithinRel(ad, bc, determinantTolerance)
}

// Invert computes the inverse transform.
//
// It returns an error wrapping [ErrDegenerate] if the transform is not
// invertible.
func (aff Affine) Invert() (Affine, error) {
	if !aff.IsInvertible() {
		return Affine{}, fmt.Errorf("invert %v (determinant %g): %w", aff, aff.Determinant(), ErrDegenerate)
	}
	a, b, c, d, s := aff.normalized()
	invDet := 1 / ((a*d - b*c) * s)
	inv := Affine{
		N0: +invDet * d,
		N1: -invDet * b,
		N2: -invDet * c,
		N3: +invDet * a,
	}
	inv.N4 = -(inv.N0*aff.N4 + inv.N2*aff.N5)
	inv.N5 = -(inv.N1*aff.N4 + inv.N3*aff.N5)
	return inv, nil
}

func (aff Affine) IsInf() bool {
	return math.IsInf(aff.N0, 0) ||
		math.IsInf(aff.N1, 0) ||
		math.IsInf(aff.N2, 0) ||
		math.IsInf(aff.N3, 0) ||
		math.IsInf(aff.N4, 0) ||
		math.IsInf(aff.N5, 0)
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.N0) ||
		math.IsNaN(aff.N1) ||
		math.IsNaN(aff.N2) ||
		math.IsNaN(aff.N3) ||
		math.IsNaN(aff.N4) ||
		math.IsNaN(aff.N5)
}

// MapPoints transforms interleaved x, y pairs in place.
func (aff Affine) MapPoints(pts []float64) {
	if len(pts)%2 != 0 {
		panic(fmt.Sprintf("MapPoints called with odd number of coordinates (%d)", len(pts)))
	}
	for i := 0; i < len(pts); i += 2 {
		x, y := pts[i], pts[i+1]
		pts[i] = aff.N0*x + aff.N2*y + aff.N4
		pts[i+1] = aff.N1*x + aff.N3*y + aff.N5
	}
}

// MapRect replaces r with the bounding box of its transformed corners.
func (aff Affine) MapRect(r *Rect) {
	*r = aff.TransformRectBoundingBox(*r)
}

// TransformRectBoundingBox computes the bounding box of a transformed rectangle.
//
// For the scale and translate transforms used by charts the bounding box is
// tight. The returned rectangle always has non-negative width and height.
func (aff Affine) TransformRectBoundingBox(rect Rect) Rect {
	p00 := Pt(rect.X0, rect.Y0).Transform(aff)
	p01 := Pt(rect.X0, rect.Y1).Transform(aff)
	p10 := Pt(rect.X1, rect.Y0).Transform(aff)
	p11 := Pt(rect.X1, rect.Y1).Transform(aff)
	return NewRectFromPoints(p00, p01).Union(NewRectFromPoints(p10, p11))
}

// Aff3 returns the transform in the row-major layout used by
// golang.org/x/image/draw.Transformer.
func (aff Affine) Aff3() f64.Aff3 {
	return f64.Aff3{
		aff.N0, aff.N2, aff.N4,
		aff.N1, aff.N3, aff.N5,
	}
}
