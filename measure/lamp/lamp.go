// Package lamp models incandescent lamp filaments, mapping drive
// voltage to steady-state filament temperature.
package lamp

import (
	"errors"
	"math"
)

// Errors returned by filament validation and preset loading.
var (
	ErrGeometry   = errors.New("lamp: filament length and radius must be positive")
	ErrEmissivity = errors.New("lamp: emissivity must be in (0, 1]")
	ErrNoPresets  = errors.New("lamp: presets file defines no filaments")
)

// Stefan-Boltzmann constant in W·m⁻²·K⁻⁴.
const stefanBoltzmann = 5.670374419e-8

// Filament describes a tungsten lamp filament. Length and Radius are
// in meters.
type Filament struct {
	Name       string  `yaml:"name"`
	Length     float64 `yaml:"length"`
	Radius     float64 `yaml:"radius"`
	Emissivity float64 `yaml:"emissivity"`
}

// GE47 returns the filament of the GE 47 pilot lamp, the reference
// bulb characterized by Kykta (2022).
func GE47() Filament {
	return Filament{
		Name:       "GE47",
		Length:     0.02314,
		Radius:     1.091e-5,
		Emissivity: 0.28,
	}
}

// Validate checks the filament parameters.
func (f Filament) Validate() error {
	if f.Length <= 0 || f.Radius <= 0 {
		return ErrGeometry
	}

	if f.Emissivity <= 0 || f.Emissivity > 1 {
		return ErrEmissivity
	}

	return nil
}

// Temperature returns the filament temperature in Kelvin at the given
// drive voltage. Polarity does not matter; the magnitude is used.
//
// The relation is the empirical power law from Kykta, "Incandescent
// lamp design and lifetime" (AIP Advances 12, 105116, 2022):
//
//	T(V) = B₂ · |V|^0.384
//	B₂   = b₂ · L^−0.384 · r^0.192
//	b₂   = (2π·σ·ε·b₁)^−0.25
//	b₁   = (2·σ·ε·(2.96e8)⁴)^−0.232 / π
//
// The 2.96e8 factor is the paper's tungsten resistivity fit constant,
// not the speed of light. The fit describes normal operating
// conditions (temperatures well above ambient); it is not meaningful
// near zero voltage and no clamping is applied there.
func (f Filament) Temperature(volts float64) float64 {
	b1 := math.Pow(2*stefanBoltzmann*f.Emissivity*math.Pow(2.96e8, 4), -0.232) / math.Pi
	b2 := math.Pow(2*math.Pi*stefanBoltzmann*f.Emissivity*b1, -0.25)
	scale := b2 * math.Pow(f.Length, -0.384) * math.Pow(f.Radius, 0.192)

	return scale * math.Pow(math.Abs(volts), 0.384)
}
