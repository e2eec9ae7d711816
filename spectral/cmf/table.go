package cmf

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned when building or parsing tables.
var (
	ErrTooFewRows   = errors.New("cmf: table needs at least two rows")
	ErrNotAscending = errors.New("cmf: wavelengths must be strictly increasing")
	ErrSpacing      = errors.New("cmf: wavelength spacing must be uniform")
	ErrBadRow       = errors.New("cmf: row does not contain four numeric fields")
)

// spacingTol is the relative tolerance when checking grid uniformity.
const spacingTol = 1e-6

// Sample is one table row: a wavelength in nanometers and the standard
// observer weights x̄, ȳ, z̄ at that wavelength.
type Sample struct {
	Wavelength float64
	X, Y, Z    float64
}

// Table is an immutable set of color-matching samples on a strictly
// increasing, uniformly spaced wavelength grid.
type Table struct {
	wavelengths []float64
	xbar        []float64
	ybar        []float64
	zbar        []float64
	spacing     float64
	skipped     int
}

// New builds a Table from samples, validating row count, wavelength
// order, and grid uniformity.
func New(samples []Sample) (*Table, error) {
	if len(samples) < 2 {
		return nil, ErrTooFewRows
	}

	spacing := samples[1].Wavelength - samples[0].Wavelength

	t := &Table{
		wavelengths: make([]float64, len(samples)),
		xbar:        make([]float64, len(samples)),
		ybar:        make([]float64, len(samples)),
		zbar:        make([]float64, len(samples)),
		spacing:     spacing,
	}

	for i, s := range samples {
		if i > 0 {
			d := s.Wavelength - samples[i-1].Wavelength
			if d <= 0 {
				return nil, fmt.Errorf("%w: %g nm after %g nm",
					ErrNotAscending, s.Wavelength, samples[i-1].Wavelength)
			}

			if math.Abs(d-spacing) > spacingTol*spacing {
				return nil, fmt.Errorf("%w: step %g nm differs from %g nm",
					ErrSpacing, d, spacing)
			}
		}

		t.wavelengths[i] = s.Wavelength
		t.xbar[i] = s.X
		t.ybar[i] = s.Y
		t.zbar[i] = s.Z
	}

	return t, nil
}

// Len returns the number of samples.
func (t *Table) Len() int {
	return len(t.wavelengths)
}

// Spacing returns the wavelength grid step in nanometers.
func (t *Table) Spacing() float64 {
	return t.spacing
}

// Bounds returns the first and last wavelength in nanometers.
func (t *Table) Bounds() (min, max float64) {
	return t.wavelengths[0], t.wavelengths[len(t.wavelengths)-1]
}

// At returns the i-th sample.
func (t *Table) At(i int) Sample {
	return Sample{
		Wavelength: t.wavelengths[i],
		X:          t.xbar[i],
		Y:          t.ybar[i],
		Z:          t.zbar[i],
	}
}

// Wavelengths returns the wavelength grid in nanometers.
// The returned slice is shared with the table and must not be modified.
func (t *Table) Wavelengths() []float64 {
	return t.wavelengths
}

// XBar returns the x̄ column. Shared storage; must not be modified.
func (t *Table) XBar() []float64 {
	return t.xbar
}

// YBar returns the ȳ column. Shared storage; must not be modified.
func (t *Table) YBar() []float64 {
	return t.ybar
}

// ZBar returns the z̄ column. Shared storage; must not be modified.
func (t *Table) ZBar() []float64 {
	return t.zbar
}

// SkippedRows reports how many malformed rows the lenient reader
// dropped while parsing. Zero for tables from New or Approximate.
func (t *Table) SkippedRows() int {
	return t.skipped
}
