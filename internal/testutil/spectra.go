package testutil

import (
	"math"

	"github.com/cwbudde/algo-colorimetry/spectral/cmf"
)

// GaussianTable builds a synthetic color-matching table on a uniform
// wavelength grid. The x̄, ȳ, z̄ columns are unit-height Gaussian bumps
// centered at 600, 550, and 450 nm with a 40 nm width, crudely shaped
// like a real observer but cheap and fully deterministic. It panics on
// invalid grid parameters, which in tests means a broken fixture.
func GaussianTable(minNM, maxNM, stepNM float64) *cmf.Table {
	n := int(math.Floor((maxNM-minNM)/stepNM+1e-9)) + 1
	samples := make([]cmf.Sample, n)
	for i := range samples {
		nm := minNM + float64(i)*stepNM
		samples[i] = cmf.Sample{
			Wavelength: nm,
			X:          gaussian(nm, 600, 40),
			Y:          gaussian(nm, 550, 40),
			Z:          gaussian(nm, 450, 40),
		}
	}

	table, err := cmf.New(samples)
	if err != nil {
		panic(err)
	}
	return table
}

// ConstantTable builds a table with n rows at 400 + 5i nm whose
// columns hold the fixed values x, y, z. Useful for hand-checkable
// integrals and degenerate cases like an all-zero luminance column.
func ConstantTable(x, y, z float64, n int) *cmf.Table {
	samples := make([]cmf.Sample, n)
	for i := range samples {
		samples[i] = cmf.Sample{
			Wavelength: 400 + 5*float64(i),
			X:          x,
			Y:          y,
			Z:          z,
		}
	}

	table, err := cmf.New(samples)
	if err != nil {
		panic(err)
	}
	return table
}

func gaussian(x, center, width float64) float64 {
	d := (x - center) / width
	return math.Exp(-0.5 * d * d)
}
