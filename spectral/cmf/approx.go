package cmf

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by Approximate.
var (
	ErrGrid      = errors.New("cmf: grid needs min < max and step > 0")
	ErrFitDomain = errors.New("cmf: analytic fit covers 266 nm to 1337 nm")
)

// Default sampling grid for Approximate, matching the range and spacing
// of the published CIE 1964 table.
const (
	DefaultMin  = 360.0
	DefaultMax  = 830.0
	DefaultStep = 5.0
)

// Fit domain bounds in nanometers; outside them the logarithms in the
// x̄ and z̄ lobes leave their domain.
const (
	fitMin = 266.0
	fitMax = 1337.0
)

// Approximate builds a table by sampling an analytic fit of the CIE
// 1964 10° standard observer from min to max nanometers inclusive at
// the given step.
//
// The fit is the sum-of-Gaussians form from Wyman, Sloan and Shirley,
// "Simple Analytic Approximations to the CIE XYZ Color Matching
// Functions" (JCGT 2013):
//
//	x̄(λ) = 0.398·e^(−1250·ln²((λ+570.1)/1014)) + 1.132·e^(−234·ln²((1338−λ)/743.5))
//	ȳ(λ) = 1.011·e^(−½·((λ−556.1)/46.14)²)
//	z̄(λ) = 2.060·e^(−32·ln²((λ−265.8)/180.4))
//
// Accuracy is a few percent near the response lobes and coarser in the
// blue-green dip of x̄. Load the published table when exact values
// matter.
func Approximate(min, max, step float64) (*Table, error) {
	if step <= 0 || min >= max {
		return nil, fmt.Errorf("%w (min %g, max %g, step %g)", ErrGrid, min, max, step)
	}

	if min < fitMin || max > fitMax {
		return nil, fmt.Errorf("%w (requested %g nm to %g nm)", ErrFitDomain, min, max)
	}

	n := int(math.Floor((max-min)/step+1e-9)) + 1

	samples := make([]Sample, n)
	for i := range samples {
		lambda := min + float64(i)*step
		samples[i] = Sample{
			Wavelength: lambda,
			X:          xBarFit(lambda),
			Y:          yBarFit(lambda),
			Z:          zBarFit(lambda),
		}
	}

	return New(samples)
}

func xBarFit(lambda float64) float64 {
	a := math.Log((lambda + 570.1) / 1014.0)
	b := math.Log((1338.0 - lambda) / 743.5)

	return 0.398*math.Exp(-1250*a*a) + 1.132*math.Exp(-234*b*b)
}

func yBarFit(lambda float64) float64 {
	g := (lambda - 556.1) / 46.14

	return 1.011 * math.Exp(-0.5*g*g)
}

func zBarFit(lambda float64) float64 {
	l := math.Log((lambda - 265.8) / 180.4)

	return 2.060 * math.Exp(-32*l*l)
}
