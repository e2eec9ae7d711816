package blackbody

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-colorimetry/color/cie"
	"github.com/cwbudde/algo-colorimetry/spectral/cmf"
	"github.com/cwbudde/algo-colorimetry/spectral/planck"
	"github.com/cwbudde/algo-vecmath"
)

// MaxLuminousEfficacy is the peak spectral luminous efficacy in lm/W.
// It converts the radiometric integrals to photometric units, making Y
// a luminance in lm·sr⁻¹·m⁻².
const MaxLuminousEfficacy = 683.0

// Errors returned by the black-body color computation.
var (
	ErrNoTable       = errors.New("blackbody: config needs a color-matching table")
	ErrTemperature   = errors.New("blackbody: temperature must be positive")
	ErrCalibration   = errors.New("blackbody: calibration must not be negative")
	ErrRefLuminance  = errors.New("blackbody: reference luminance must be positive")
	ErrDarkReference = errors.New("blackbody: reference temperature has zero luminance")
)

// Config selects the observer table, the target RGB space, and the
// brightness handling for a Calculator.
type Config struct {
	// Table holds the color-matching functions to integrate against.
	Table *cmf.Table

	// Space is the linear RGB space colors convert to.
	Space cie.Space

	// Calibration scales the raw tristimulus integrals. Zero selects
	// uncalibrated operation, where every sample is normalized to a
	// peak channel of 1 instead.
	Calibration float64
}

// Result is the color of one black-body sample.
type Result struct {
	// Kelvin is the sample temperature.
	Kelvin float64

	// XYZ holds the tristimulus values, calibrated if a calibration is
	// set.
	XYZ cie.XYZ

	// Linear is the RGB conversion of XYZ before normalization,
	// companding, or clamping.
	Linear cie.RGB

	// Display is the display-ready color: peak-normalized when
	// uncalibrated, companded in sRGB, and clamped to [0, 1].
	Display cie.RGB

	// OutOfGamut reports whether clamping changed Display.
	OutOfGamut bool
}

// Calculator turns temperatures into colors. It caches the Simpson
// quadrature weights for its table and reuses scratch buffers across
// calls, so a single Calculator must not be shared between goroutines.
type Calculator struct {
	table       *cmf.Table
	space       cie.Space
	calibration float64

	weights  []float64
	radiance []float64
	weighted []float64
}

// New validates cfg and builds a Calculator for it.
func New(cfg Config) (*Calculator, error) {
	if cfg.Table == nil {
		return nil, ErrNoTable
	}

	if cfg.Calibration < 0 {
		return nil, fmt.Errorf("%w (got %g)", ErrCalibration, cfg.Calibration)
	}

	n := cfg.Table.Len()
	weights := simpsonWeights(n)
	vecmath.ScaleBlockInPlace(weights, cfg.Table.Spacing()/3)

	return &Calculator{
		table:       cfg.Table,
		space:       cfg.Space,
		calibration: cfg.Calibration,
		weights:     weights,
		radiance:    make([]float64, n),
		weighted:    make([]float64, n),
	}, nil
}

// simpsonWeights returns the composite Simpson coefficient pattern
// 1, 4, 2, 4, …, 4, 1 for n uniformly spaced samples, unscaled. When
// the panel count n−1 is odd the last sample gets weight zero, so the
// quadrature covers the largest even panel count that fits.
func simpsonWeights(n int) []float64 {
	m := n
	if (n-1)%2 != 0 {
		m = n - 1
	}

	w := make([]float64, n)
	w[0] = 1
	w[m-1] += 1
	for i := 1; i < m-1; i++ {
		if i%2 == 1 {
			w[i] = 4
		} else {
			w[i] = 2
		}
	}
	return w
}

// Calibrate computes the coefficient that makes the luminance at
// refKelvin equal refLuminance,
//
//	k = L_ref / Y_raw(T_ref)
//
// installs it on the Calculator, and returns it. Any previous
// calibration is replaced.
func (c *Calculator) Calibrate(refKelvin, refLuminance float64) (float64, error) {
	if refLuminance <= 0 {
		return 0, fmt.Errorf("%w (got %g)", ErrRefLuminance, refLuminance)
	}

	raw, err := c.rawXYZ(refKelvin)
	if err != nil {
		return 0, err
	}
	if raw.Y <= 0 {
		return 0, fmt.Errorf("%w (%g K)", ErrDarkReference, refKelvin)
	}

	c.calibration = refLuminance / raw.Y
	return c.calibration, nil
}

// Calibration returns the active calibration coefficient, zero when
// uncalibrated.
func (c *Calculator) Calibration() float64 {
	return c.calibration
}

// XYZAt integrates the Planck spectrum at kelvin against the observer
// curves and returns the tristimulus values, scaled by the calibration
// coefficient when one is set.
func (c *Calculator) XYZAt(kelvin float64) (cie.XYZ, error) {
	xyz, err := c.rawXYZ(kelvin)
	if err != nil {
		return cie.XYZ{}, err
	}

	if c.calibration != 0 {
		xyz = xyz.Scale(c.calibration)
	}
	return xyz, nil
}

func (c *Calculator) rawXYZ(kelvin float64) (cie.XYZ, error) {
	if kelvin <= 0 {
		return cie.XYZ{}, fmt.Errorf("%w (got %g)", ErrTemperature, kelvin)
	}

	for i, nm := range c.table.Wavelengths() {
		c.radiance[i] = planck.Radiance(nm*1e-9, kelvin)
	}

	vecmath.MulBlock(c.weighted, c.radiance, c.table.XBar())
	x := vecmath.DotProduct(c.weighted, c.weights)

	vecmath.MulBlock(c.weighted, c.radiance, c.table.YBar())
	y := vecmath.DotProduct(c.weighted, c.weights)

	vecmath.MulBlock(c.weighted, c.radiance, c.table.ZBar())
	z := vecmath.DotProduct(c.weighted, c.weights)

	return cie.XYZ{X: x, Y: y, Z: z}.Scale(MaxLuminousEfficacy), nil
}

// ColorAt computes the full color result for one temperature.
//
// The XYZ integral converts to linear RGB in the configured space.
// Uncalibrated calculators then scale the sample to a peak channel of
// 1. In sRGB the value is gamma-companded; CIE RGB stays linear. The
// final display color is clamped to [0, 1], and OutOfGamut records
// whether that clipped anything. Linear always keeps the unscaled,
// unclamped conversion.
func (c *Calculator) ColorAt(kelvin float64) (Result, error) {
	xyz, err := c.XYZAt(kelvin)
	if err != nil {
		return Result{}, err
	}

	linear := cie.Convert(xyz, c.space)

	display := linear
	if c.calibration == 0 {
		// Divide rather than multiply by a reciprocal: v/v is exactly 1,
		// so the peak channel never overshoots into the clamp.
		if peak := display.Max(); peak > 0 {
			display = cie.RGB{R: display.R / peak, G: display.G / peak, B: display.B / peak}
		}
	}

	if c.space == cie.SpaceSRGB {
		display = cie.Encode(display)
	}

	display, clipped := cie.Clamp(display)

	return Result{
		Kelvin:     kelvin,
		XYZ:        xyz,
		Linear:     linear,
		Display:    display,
		OutOfGamut: clipped,
	}, nil
}
