// Package planck evaluates Planck's law of black-body radiation.
//
// All functions work in SI units: wavelengths in meters, temperatures
// in Kelvin, spectral radiance in W·sr⁻¹·m⁻³.
package planck

import "math"

// Physical constants, 2019 SI exact values.
const (
	// PlanckConstant in J·s.
	PlanckConstant = 6.62607015e-34
	// SpeedOfLight in m/s.
	SpeedOfLight = 2.99792458e8
	// BoltzmannConstant in J/K.
	BoltzmannConstant = 1.380649e-23

	// WienDisplacement in m·K (CODATA 2018).
	WienDisplacement = 2.897771955e-3
)

// Radiance returns the spectral radiance of an ideal black body at the
// given wavelength (meters) and temperature (Kelvin):
//
//	L(λ,T) = 2hc² / (λ⁵ · (exp(hc/(λ·k_B·T)) − 1))
//
// The exponential term is evaluated with math.Expm1 so that long
// wavelengths (hc/λk_BT ≪ 1) remain accurate. Products λ·T near zero
// overflow the exponential and the result underflows to 0; such inputs
// are outside the supported range rather than defended against.
func Radiance(wavelength, kelvin float64) float64 {
	num := 2 * PlanckConstant * SpeedOfLight * SpeedOfLight
	den := math.Pow(wavelength, 5) *
		math.Expm1(PlanckConstant*SpeedOfLight/(wavelength*BoltzmannConstant*kelvin))

	return num / den
}

// PeakWavelength returns the wavelength (meters) of maximum spectral
// radiance at the given temperature, per Wien's displacement law:
//
//	λ_max = b / T
func PeakWavelength(kelvin float64) float64 {
	return WienDisplacement / kelvin
}
