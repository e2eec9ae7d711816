package sweep

import (
	"math"
	"testing"
)

func TestRangeValidation(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		wantErr error
	}{
		{"valid", Range{3000, 9000, 3000}, nil},
		{"zero min", Range{0, 9000, 100}, ErrNonPositive},
		{"negative min", Range{-5, 9000, 100}, ErrNonPositive},
		{"zero max", Range{3000, 0, 100}, ErrNonPositive},
		{"min above max", Range{9000, 3000, 100}, ErrOrder},
		{"min equals max", Range{3000, 3000, 100}, ErrOrder},
		{"zero step", Range{3000, 9000, 0}, ErrStep},
		{"negative step", Range{3000, 9000, -1}, ErrStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRangeCount(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want int
	}{
		{"three points", Range{3000, 9000, 3000}, 3},
		{"step equals span", Range{3000, 9000, 6000}, 2},
		{"max not on grid", Range{1, 2, 0.3}, 4},
		{"fractional step", Range{1, 2, 0.1}, 11},
		{"single interval", Range{6, 6.3, 0.3}, 2},
		{"invalid", Range{9000, 3000, 100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRangeValues(t *testing.T) {
	r := Range{Min: 3000, Max: 9000, Step: 3000}

	got := r.Values()
	want := []float64{3000, 6000, 9000}

	if len(got) != len(want) {
		t.Fatalf("Values() has %d points, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestRangeLastPointNeverExceedsMax(t *testing.T) {
	ranges := []Range{
		{1, 2, 0.3},
		{1, 2, 0.1},
		{2.2, 11.7, 0.7},
		{360, 830, 5},
	}

	for _, r := range ranges {
		n := r.Count()
		if n < 2 {
			t.Fatalf("Range %+v: Count() = %d", r, n)
		}

		last := r.At(n - 1)
		if last > r.Max+countTol*r.Step {
			t.Errorf("Range %+v: last point %g exceeds max %g", r, last, r.Max)
		}

		// The next grid point would be past Max.
		if next := r.At(n); next <= r.Max {
			t.Errorf("Range %+v: point %g after the last still within max", r, next)
		}
	}
}

func TestRangeRestartable(t *testing.T) {
	r := Range{Min: 2, Max: 4, Step: 0.5}

	first := r.Values()
	second := r.Values()

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("re-iteration differs at %d: %g vs %g", i, first[i], second[i])
		}
	}
}

func TestRangeAtHasNoDrift(t *testing.T) {
	// 0.1 is not representable in binary; index-based evaluation must
	// still land on the decade boundary exactly once scaled.
	r := Range{Min: 1, Max: 2, Step: 0.1}

	if got := r.At(10); math.Abs(got-2) > 1e-12 {
		t.Errorf("At(10) = %.17g, want 2", got)
	}
}
