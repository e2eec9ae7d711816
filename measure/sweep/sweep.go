package sweep

import (
	"errors"
	"math"
)

// Errors returned by sweep validation.
var (
	ErrNonPositive = errors.New("sweep: range bounds must be positive")
	ErrOrder       = errors.New("sweep: minimum must be less than maximum")
	ErrStep        = errors.New("sweep: step must be positive")
)

// countTol absorbs the rounding error of (Max−Min)/Step so an upper
// bound that is an exact multiple of Step stays included.
const countTol = 1e-9

// Range describes a closed interval [Min, Max] sampled every Step,
// starting at Min. The unit is the caller's: Kelvin for temperature
// sweeps, volts for lamp voltage sweeps.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Validate checks that the Range parameters are valid.
func (r Range) Validate() error {
	if r.Min <= 0 || r.Max <= 0 {
		return ErrNonPositive
	}

	if r.Min >= r.Max {
		return ErrOrder
	}

	if r.Step <= 0 {
		return ErrStep
	}

	return nil
}

// Count returns the number of sample points, 0 for an invalid Range.
//
// The points are Min + i·Step for i = 0..Count()−1; the last one never
// exceeds Max beyond the rounding tolerance.
func (r Range) Count() int {
	if r.Validate() != nil {
		return 0
	}

	span := (r.Max - r.Min) / r.Step

	return int(math.Floor(span+countTol)) + 1
}

// At returns the i-th sample point. Points are computed from the index
// rather than by repeated addition, so long sweeps carry no
// accumulated drift and re-iteration is exact.
func (r Range) At(i int) float64 {
	return r.Min + float64(i)*r.Step
}

// Values materializes all sample points.
func (r Range) Values() []float64 {
	out := make([]float64, r.Count())
	for i := range out {
		out[i] = r.At(i)
	}

	return out
}
