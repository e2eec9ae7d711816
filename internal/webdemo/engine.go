// Package webdemo backs the browser demo page. It renders black-body
// color gradients as hex stops a canvas can paint directly, both from
// the full spectral computation and from the cheap piecewise-linear
// approximation the static page embeds.
package webdemo

import (
	"fmt"

	"github.com/cwbudde/algo-colorimetry/color/cie"
	"github.com/cwbudde/algo-colorimetry/measure/blackbody"
	"github.com/cwbudde/algo-colorimetry/measure/lamp"
	"github.com/cwbudde/algo-colorimetry/spectral/cmf"
)

// Stop is one gradient sample. Volts is set only by voltage gradients.
type Stop struct {
	Kelvin float64
	Volts  float64
	Hex    string
}

// Engine renders gradient data for the demo page.
type Engine struct {
	calc     *blackbody.Calculator
	filament lamp.Filament
}

// NewEngine builds the engine on the analytic observer fit, so the
// browser bundle needs no data file.
func NewEngine() (*Engine, error) {
	table, err := cmf.Approximate(cmf.DefaultMin, cmf.DefaultMax, cmf.DefaultStep)
	if err != nil {
		return nil, fmt.Errorf("build observer table: %w", err)
	}

	calc, err := blackbody.New(blackbody.Config{Table: table, Space: cie.SpaceSRGB})
	if err != nil {
		return nil, err
	}

	return &Engine{calc: calc, filament: lamp.GE47()}, nil
}

// Gradient samples n spectrally computed colors from minKelvin to
// maxKelvin, both ends included.
func (e *Engine) Gradient(minKelvin, maxKelvin float64, n int) ([]Stop, error) {
	if err := checkGradientArgs(minKelvin, maxKelvin, n); err != nil {
		return nil, err
	}

	stops := make([]Stop, n)
	for i := range n {
		kelvin := lerp(minKelvin, maxKelvin, float64(i)/float64(n-1))

		res, err := e.calc.ColorAt(kelvin)
		if err != nil {
			return nil, err
		}

		stops[i] = Stop{Kelvin: kelvin, Hex: cie.Hex(res.Display)}
	}

	return stops, nil
}

// GradientVolts samples n lamp colors across a supply voltage range,
// converting each voltage through the filament model.
func (e *Engine) GradientVolts(minVolts, maxVolts float64, n int) ([]Stop, error) {
	if err := checkGradientArgs(minVolts, maxVolts, n); err != nil {
		return nil, err
	}

	stops := make([]Stop, n)
	for i := range n {
		volts := lerp(minVolts, maxVolts, float64(i)/float64(n-1))
		kelvin := e.filament.Temperature(volts)

		res, err := e.calc.ColorAt(kelvin)
		if err != nil {
			return nil, err
		}

		stops[i] = Stop{Kelvin: kelvin, Volts: volts, Hex: cie.Hex(res.Display)}
	}

	return stops, nil
}

// VoltsToKelvin exposes the filament model to the page controls.
func (e *Engine) VoltsToKelvin(volts float64) float64 {
	return e.filament.Temperature(volts)
}

func checkGradientArgs(minV, maxV float64, n int) error {
	if minV <= 0 || maxV <= minV {
		return fmt.Errorf("gradient range must be positive and ascending: %g to %g", minV, maxV)
	}
	if n < 2 {
		return fmt.Errorf("gradient needs at least 2 stops: %d", n)
	}
	return nil
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
