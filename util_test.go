package chartview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with a tolerance suitable for pixel math.
var approx = cmpopts.EquateApprox(0, 1e-9)

// relApprox compares floats relative to their magnitude.
var relApprox = cmpopts.EquateApprox(1e-9, 0)

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}
