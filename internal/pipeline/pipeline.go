// Package pipeline runs a full color sweep: it expands a sample range,
// maps voltages to filament temperatures when asked to, computes one
// black-body color per point, and serializes the result as CSV.
//
// All inputs arrive in a Config value, so the computation itself needs
// no console, no flags, and no files beyond the output target.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-colorimetry/color/cie"
	"github.com/cwbudde/algo-colorimetry/measure/blackbody"
	"github.com/cwbudde/algo-colorimetry/measure/lamp"
	"github.com/cwbudde/algo-colorimetry/measure/sweep"
	"github.com/cwbudde/algo-colorimetry/spectral/cmf"
)

// Errors returned by run configuration checks.
var (
	ErrMode      = errors.New("pipeline: unknown mode")
	ErrReference = errors.New("pipeline: reference value and luminance must be set together")
)

// Mode selects the independent variable of a sweep.
type Mode int

const (
	// ModeTemperature sweeps black-body temperatures in Kelvin.
	ModeTemperature Mode = iota

	// ModeVoltage sweeps lamp supply voltages and derives the filament
	// temperature at every point.
	ModeVoltage
)

func (m Mode) String() string {
	switch m {
	case ModeTemperature:
		return "temperature"
	case ModeVoltage:
		return "voltage"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps user input to a Mode. Only the first letter decides,
// in any case: "t..." selects temperature, "v..." voltage.
func ParseMode(s string) (Mode, error) {
	switch t := strings.TrimSpace(strings.ToLower(s)); {
	case strings.HasPrefix(t, "t"):
		return ModeTemperature, nil
	case strings.HasPrefix(t, "v"):
		return ModeVoltage, nil
	}

	return 0, fmt.Errorf("%w %q", ErrMode, s)
}

// Config collects everything a run needs.
type Config struct {
	Mode  Mode
	Range sweep.Range

	// Filament provides the voltage-to-temperature model in voltage
	// mode. Temperature mode ignores it.
	Filament lamp.Filament

	Table *cmf.Table
	Space cie.Space

	// RefValue and RefLuminance switch on calibrated output when both
	// are positive. RefValue is in sweep units: Kelvin in temperature
	// mode, volts in voltage mode.
	RefValue     float64
	RefLuminance float64

	// Raw selects unnormalized, unclamped linear RGB in the output.
	Raw bool
}

// Row is one computed sample. Volts is set in voltage mode and zero
// otherwise.
type Row struct {
	Volts  float64
	Result blackbody.Result
}

// Report is the outcome of a run.
type Report struct {
	Config Config

	// Calibrated reports whether a reference calibration was applied;
	// RefKelvin and Coefficient describe it.
	Calibrated  bool
	RefKelvin   float64
	Coefficient float64

	Rows []Row

	// Clipped counts rows whose display color left the gamut.
	Clipped int
}

// Run executes the sweep described by cfg.
func Run(cfg Config) (*Report, error) {
	if cfg.Mode != ModeTemperature && cfg.Mode != ModeVoltage {
		return nil, fmt.Errorf("%w (%d)", ErrMode, int(cfg.Mode))
	}

	if err := cfg.Range.Validate(); err != nil {
		return nil, err
	}

	if cfg.Mode == ModeVoltage {
		if err := cfg.Filament.Validate(); err != nil {
			return nil, err
		}
	}

	if (cfg.RefValue > 0) != (cfg.RefLuminance > 0) {
		return nil, ErrReference
	}

	calc, err := blackbody.New(blackbody.Config{Table: cfg.Table, Space: cfg.Space})
	if err != nil {
		return nil, err
	}

	report := &Report{Config: cfg}

	if cfg.RefLuminance > 0 {
		report.RefKelvin = cfg.RefValue
		if cfg.Mode == ModeVoltage {
			report.RefKelvin = cfg.Filament.Temperature(cfg.RefValue)
		}

		coeff, err := calc.Calibrate(report.RefKelvin, cfg.RefLuminance)
		if err != nil {
			return nil, fmt.Errorf("pipeline: calibrate: %w", err)
		}

		report.Calibrated = true
		report.Coefficient = coeff
	}

	n := cfg.Range.Count()
	report.Rows = make([]Row, 0, n)
	for i := range n {
		value := cfg.Range.At(i)

		row := Row{}
		kelvin := value
		if cfg.Mode == ModeVoltage {
			row.Volts = value
			kelvin = cfg.Filament.Temperature(value)
		}

		res, err := calc.ColorAt(kelvin)
		if err != nil {
			return nil, fmt.Errorf("pipeline: sample %d (%g): %w", i, value, err)
		}

		row.Result = res
		report.Rows = append(report.Rows, row)
		if res.OutOfGamut {
			report.Clipped++
		}
	}

	return report, nil
}
