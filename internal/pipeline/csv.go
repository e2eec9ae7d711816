package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteCSV serializes the report. Calibrated runs start with a
// preamble row echoing the reference point, then a header row, then
// one row per sample. Voltage mode adds a leading voltage column.
//
// The RGB columns hold the display color, or the raw linear values
// when the run was configured with Raw.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if r.Calibrated {
		preamble := []string{
			"Reference Temperature (K):", formatFloat(r.RefKelvin),
			"Reference Luminance (lm sr^-1 m^-2):", formatFloat(r.Config.RefLuminance),
		}
		if err := cw.Write(preamble); err != nil {
			return fmt.Errorf("pipeline: write preamble: %w", err)
		}
	}

	if err := cw.Write(r.header()); err != nil {
		return fmt.Errorf("pipeline: write header: %w", err)
	}

	record := make([]string, 0, 8)
	for _, row := range r.Rows {
		record = record[:0]
		if r.Config.Mode == ModeVoltage {
			record = append(record, formatFloat(row.Volts))
		}

		rgb := row.Result.Display
		if r.Config.Raw {
			rgb = row.Result.Linear
		}

		record = append(record,
			formatFloat(row.Result.Kelvin),
			formatFloat(row.Result.XYZ.X),
			formatFloat(row.Result.XYZ.Y),
			formatFloat(row.Result.XYZ.Z),
			formatFloat(rgb.R),
			formatFloat(rgb.G),
			formatFloat(rgb.B),
		)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("pipeline: write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("pipeline: flush: %w", err)
	}

	return nil
}

// SaveCSV writes the report to path, appending a .csv extension when
// the name lacks one, and returns the path actually written. An
// existing file is overwritten without warning.
func (r *Report) SaveCSV(path string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".csv") {
		path += ".csv"
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("pipeline: create %q: %w", path, err)
	}

	if err := r.WriteCSV(f); err != nil {
		f.Close()
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("pipeline: close %q: %w", path, err)
	}

	return path, nil
}

func (r *Report) header() []string {
	h := make([]string, 0, 8)
	if r.Config.Mode == ModeVoltage {
		h = append(h, "Voltage (V)")
	}

	return append(h, "Temperature (K)", "X", "Y", "Z", "Red", "Green", "Blue")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
