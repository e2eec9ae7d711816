package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t where got and want disagree beyond
// eps. With eps 0 it demands exact equality, which integer-valued
// vectors like quadrature weight patterns satisfy. NaN never counts as
// equal.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d values, want %d", len(got), len(want))
	}

	for i := range got {
		d := math.Abs(got[i] - want[i])
		if d > eps || math.IsNaN(d) {
			t.Fatalf("value %d: got %v, want %v (off by %v, eps %v)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireFinite fails t when any of the values is NaN or infinite.
func RequireFinite(t *testing.T, values ...float64) {
	t.Helper()

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("value %d is %v, want finite", i, v)
		}
	}
}
