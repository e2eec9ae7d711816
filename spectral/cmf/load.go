package cmf

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads a color-matching table from the CSV file at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cmf: open table: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses CSV rows of [wavelength_nm, x̄, ȳ, z̄] into a Table.
//
// Rows that do not have exactly four fields, and rows where no field
// parses as a number (header lines), are skipped; the count of skipped
// rows is reported by SkippedRows. A non-numeric or non-finite field
// inside an otherwise numeric row is read as zero, matching how the
// published CIE files mark missing response values.
func Read(r io.Reader) (*Table, error) {
	return read(r, false)
}

// ReadStrict parses like Read but fails with ErrBadRow on the first
// malformed row or field instead of repairing it.
func ReadStrict(r io.Reader) (*Table, error) {
	return read(r, true)
}

func read(r io.Reader, strict bool) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		samples []Sample
		skipped int
	)

	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("cmf: parse table: %w", err)
		}

		if len(record) != 4 {
			if strict {
				return nil, fmt.Errorf("%w (row %d has %d fields)", ErrBadRow, row, len(record))
			}

			skipped++

			continue
		}

		var (
			values  [4]float64
			numeric int
		)

		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				if strict {
					return nil, fmt.Errorf("%w (row %d field %d: %q)", ErrBadRow, row, i+1, field)
				}

				continue
			}

			values[i] = v
			numeric++
		}

		// A four-field row with nothing numeric is a header, not data.
		if numeric == 0 {
			skipped++

			continue
		}

		samples = append(samples, Sample{
			Wavelength: values[0],
			X:          values[1],
			Y:          values[2],
			Z:          values[3],
		})
	}

	t, err := New(samples)
	if err != nil {
		return nil, err
	}

	t.skipped = skipped

	return t, nil
}
