// Package blackbody computes the perceived color of an ideal black
// body radiator from its temperature.
//
// For a temperature T the Calculator evaluates Planck's spectral
// radiance on the wavelength grid of a color-matching table, weights
// it by the x̄, ȳ, z̄ observer curves, and integrates with composite
// Simpson's rule:
//
//	X = 683 · ∫ L(λ,T)·x̄(λ) dλ
//	Y = 683 · ∫ L(λ,T)·ȳ(λ) dλ
//	Z = 683 · ∫ L(λ,T)·z̄(λ) dλ
//
// The 683 lm/W factor is the maximum spectral luminous efficacy, so Y
// is a luminance. The tristimulus value then converts to linear RGB in
// the configured space and to a display color.
//
// Brightness handling is one of two modes:
//
//   - Uncalibrated (Calibration == 0): each sample's linear RGB is
//     scaled so its largest channel is 1. Hue and saturation survive;
//     absolute brightness does not.
//   - Calibrated: the tristimulus integrals are multiplied by a fixed
//     coefficient, usually from Calibrate, which pins the luminance at
//     a reference temperature to a measured value. Relative brightness
//     across the sweep is preserved.
//
// A Calculator reuses internal buffers and is not safe for concurrent
// use.
package blackbody
