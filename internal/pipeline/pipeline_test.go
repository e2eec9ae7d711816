package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-colorimetry/color/cie"
	"github.com/cwbudde/algo-colorimetry/internal/testutil"
	"github.com/cwbudde/algo-colorimetry/measure/blackbody"
	"github.com/cwbudde/algo-colorimetry/measure/lamp"
	"github.com/cwbudde/algo-colorimetry/measure/sweep"
	"github.com/cwbudde/algo-colorimetry/spectral/cmf"
)

func fitTable(t *testing.T) *cmf.Table {
	t.Helper()
	table, err := cmf.Approximate(cmf.DefaultMin, cmf.DefaultMax, cmf.DefaultStep)
	if err != nil {
		t.Fatalf("Approximate: %v", err)
	}
	return table
}

func mustRun(t *testing.T, cfg Config) *Report {
	t.Helper()
	report, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return report
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"temperature", ModeTemperature, false},
		{"t", ModeTemperature, false},
		{" T ", ModeTemperature, false},
		{"Temp", ModeTemperature, false},
		{"voltage", ModeVoltage, false},
		{"V", ModeVoltage, false},
		{"volts", ModeVoltage, false},
		{"watts", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMode(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrMode) {
					t.Fatalf("ParseMode(%q) error = %v, want ErrMode", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseMode(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if got := ModeTemperature.String(); got != "temperature" {
		t.Errorf("ModeTemperature = %q", got)
	}
	if got := ModeVoltage.String(); got != "voltage" {
		t.Errorf("ModeVoltage = %q", got)
	}
	if got := Mode(7).String(); got != "mode(7)" {
		t.Errorf("Mode(7) = %q", got)
	}
}

// The classic three-point sweep: 3000 K comes out warm orange,
// 6000 K near neutral, 9000 K cool blue-white.
func TestRunTemperatureSweep(t *testing.T) {
	report := mustRun(t, Config{
		Mode:  ModeTemperature,
		Range: sweep.Range{Min: 3000, Max: 9000, Step: 3000},
		Table: fitTable(t),
		Space: cie.SpaceSRGB,
	})

	if len(report.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(report.Rows))
	}
	if report.Calibrated {
		t.Error("uncalibrated run reported as calibrated")
	}

	for i, wantKelvin := range []float64{3000, 6000, 9000} {
		row := report.Rows[i]
		if row.Result.Kelvin != wantKelvin {
			t.Errorf("row %d Kelvin = %v, want %v", i, row.Result.Kelvin, wantKelvin)
		}
		if row.Volts != 0 {
			t.Errorf("row %d Volts = %v, want 0 in temperature mode", i, row.Volts)
		}
	}

	warm := report.Rows[0].Result.Display
	if !(warm.R > warm.G && warm.G > warm.B) {
		t.Errorf("3000 K display = %+v, want R > G > B", warm)
	}

	neutral := report.Rows[1].Result.Display
	for _, ch := range []float64{neutral.R, neutral.G, neutral.B} {
		if ch < 0.85 || ch > 1 {
			t.Errorf("6000 K display = %+v, want all channels in [0.85, 1]", neutral)
			break
		}
	}

	cool := report.Rows[2].Result.Display
	if !(cool.B >= cool.R) {
		t.Errorf("9000 K display = %+v, want B >= R", cool)
	}
}

func TestRunVoltageSweep(t *testing.T) {
	filament := lamp.GE47()

	report := mustRun(t, Config{
		Mode:     ModeVoltage,
		Range:    sweep.Range{Min: 6, Max: 12, Step: 3},
		Filament: filament,
		Table:    testutil.GaussianTable(400, 700, 10),
		Space:    cie.SpaceSRGB,
	})

	if len(report.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(report.Rows))
	}

	prev := 0.0
	for i, wantVolts := range []float64{6, 9, 12} {
		row := report.Rows[i]
		if row.Volts != wantVolts {
			t.Errorf("row %d Volts = %v, want %v", i, row.Volts, wantVolts)
		}
		if want := filament.Temperature(wantVolts); row.Result.Kelvin != want {
			t.Errorf("row %d Kelvin = %v, want %v", i, row.Result.Kelvin, want)
		}
		if row.Result.Kelvin <= prev {
			t.Errorf("row %d Kelvin = %v not increasing", i, row.Result.Kelvin)
		}
		prev = row.Result.Kelvin
	}
}

func TestRunValidation(t *testing.T) {
	table := testutil.GaussianTable(400, 700, 10)
	okRange := sweep.Range{Min: 3000, Max: 4000, Step: 500}

	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"descending range", Config{Mode: ModeTemperature, Range: sweep.Range{Min: 5000, Max: 3000, Step: 100}, Table: table}, sweep.ErrOrder},
		{"min equals max", Config{Mode: ModeTemperature, Range: sweep.Range{Min: 3000, Max: 3000, Step: 100}, Table: table}, sweep.ErrOrder},
		{"zero step", Config{Mode: ModeTemperature, Range: sweep.Range{Min: 3000, Max: 4000, Step: 0}, Table: table}, sweep.ErrStep},
		{"unknown mode", Config{Mode: Mode(9), Range: okRange, Table: table}, ErrMode},
		{"invalid filament", Config{Mode: ModeVoltage, Range: sweep.Range{Min: 6, Max: 12, Step: 3}, Table: table}, lamp.ErrGeometry},
		{"reference without luminance", Config{Mode: ModeTemperature, Range: okRange, Table: table, RefValue: 3500}, ErrReference},
		{"luminance without reference", Config{Mode: ModeTemperature, Range: okRange, Table: table, RefLuminance: 100}, ErrReference},
		{"missing table", Config{Mode: ModeTemperature, Range: okRange}, blackbody.ErrNoTable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Run(tc.cfg)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Run error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRunCalibrated(t *testing.T) {
	report := mustRun(t, Config{
		Mode:         ModeTemperature,
		Range:        sweep.Range{Min: 3000, Max: 6000, Step: 1500},
		Table:        testutil.GaussianTable(400, 700, 10),
		Space:        cie.SpaceSRGB,
		RefValue:     4500,
		RefLuminance: 250,
	})

	if !report.Calibrated {
		t.Fatal("run with reference not reported as calibrated")
	}
	if report.RefKelvin != 4500 {
		t.Errorf("RefKelvin = %v, want 4500", report.RefKelvin)
	}
	if report.Coefficient <= 0 {
		t.Errorf("Coefficient = %v, want positive", report.Coefficient)
	}

	// The middle sample sits exactly on the reference temperature, so
	// its luminance must be the reference luminance.
	if len(report.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(report.Rows))
	}
	y := report.Rows[1].Result.XYZ.Y
	if rel := math.Abs(y-250) / 250; rel > 1e-12 {
		t.Errorf("Y at reference = %v, want 250", y)
	}
}

func TestRunCalibratedVoltageConvertsReference(t *testing.T) {
	filament := lamp.GE47()

	report := mustRun(t, Config{
		Mode:         ModeVoltage,
		Range:        sweep.Range{Min: 6, Max: 12, Step: 6},
		Filament:     filament,
		Table:        testutil.GaussianTable(400, 700, 10),
		Space:        cie.SpaceSRGB,
		RefValue:     6.3,
		RefLuminance: 100,
	})

	if want := filament.Temperature(6.3); report.RefKelvin != want {
		t.Errorf("RefKelvin = %v, want %v", report.RefKelvin, want)
	}
}

// Deep red heat sits outside the sRGB gamut, so every row of a
// low-temperature sweep gets flagged and counted.
func TestRunCountsClippedRows(t *testing.T) {
	report := mustRun(t, Config{
		Mode:  ModeTemperature,
		Range: sweep.Range{Min: 1000, Max: 1100, Step: 100},
		Table: fitTable(t),
		Space: cie.SpaceSRGB,
	})

	if len(report.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(report.Rows))
	}
	if report.Clipped != 2 {
		t.Errorf("Clipped = %d, want 2", report.Clipped)
	}
	for i, row := range report.Rows {
		if !row.Result.OutOfGamut {
			t.Errorf("row %d not flagged out of gamut", i)
		}
	}
}
