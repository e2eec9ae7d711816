package lamp

import (
	"errors"
	"math"
	"testing"
)

func TestFilamentValidate(t *testing.T) {
	tests := []struct {
		name    string
		f       Filament
		wantErr error
	}{
		{"ge47", GE47(), nil},
		{"zero length", Filament{Length: 0, Radius: 1e-5, Emissivity: 0.3}, ErrGeometry},
		{"negative radius", Filament{Length: 0.02, Radius: -1, Emissivity: 0.3}, ErrGeometry},
		{"zero emissivity", Filament{Length: 0.02, Radius: 1e-5, Emissivity: 0}, ErrEmissivity},
		{"emissivity above one", Filament{Length: 0.02, Radius: 1e-5, Emissivity: 1.2}, ErrEmissivity},
		{"black body limit", Filament{Length: 0.02, Radius: 1e-5, Emissivity: 1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.f.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGE47Temperature(t *testing.T) {
	// Hand-derived from the published power law for the GE 47 bulb.
	tests := []struct {
		volts float64
		want  float64
	}{
		{6.3, 2439.4}, // rated voltage
		{10, 2913.0},
	}

	f := GE47()
	for _, tt := range tests {
		got := f.Temperature(tt.volts)
		if math.Abs(got-tt.want) > 2 {
			t.Errorf("Temperature(%g) = %.1f K, want %.1f ±2 K", tt.volts, got, tt.want)
		}
	}
}

func TestTemperaturePowerLaw(t *testing.T) {
	// Doubling the voltage scales the temperature by exactly 2^0.384
	// regardless of the filament.
	filaments := []Filament{
		GE47(),
		{Name: "long", Length: 0.05, Radius: 2e-5, Emissivity: 0.35},
	}

	want := math.Pow(2, 0.384)

	for _, f := range filaments {
		for _, volts := range []float64{1, 6.3, 24} {
			ratio := f.Temperature(2*volts) / f.Temperature(volts)
			if math.Abs(ratio-want) > 1e-12 {
				t.Errorf("%s: T(2·%g)/T(%g) = %.15f, want 2^0.384 = %.15f",
					f.Name, volts, volts, ratio, want)
			}
		}
	}
}

func TestTemperaturePolarity(t *testing.T) {
	f := GE47()
	if got, want := f.Temperature(-6.3), f.Temperature(6.3); got != want {
		t.Errorf("Temperature(-6.3) = %g, Temperature(6.3) = %g", got, want)
	}
}

func TestTemperatureMonotoneInVoltage(t *testing.T) {
	f := GE47()

	prev := f.Temperature(0.5)
	for volts := 1.0; volts <= 24; volts++ {
		cur := f.Temperature(volts)
		if cur <= prev {
			t.Fatalf("Temperature(%g) = %g, not above Temperature at %g = %g",
				volts, cur, volts-1, prev)
		}
		prev = cur
	}
}

func TestTemperatureGeometryTrends(t *testing.T) {
	// Per the fit, a longer filament runs cooler and a thicker one
	// hotter at the same drive voltage.
	base := GE47()

	longer := base
	longer.Length *= 2

	thicker := base
	thicker.Radius *= 2

	const volts = 6.3

	if got, ref := longer.Temperature(volts), base.Temperature(volts); got >= ref {
		t.Errorf("longer filament: %g K, want below %g K", got, ref)
	}

	if got, ref := thicker.Temperature(volts), base.Temperature(volts); got <= ref {
		t.Errorf("thicker filament: %g K, want above %g K", got, ref)
	}
}
