// Package cmf loads and represents CIE color-matching function tables.
//
// A table holds the x̄, ȳ, z̄ standard-observer weights sampled on a
// uniform wavelength grid (nanometers). Tables are built once and never
// mutated; the column accessors expose the underlying storage so the
// integration code can run vectorized kernels over it directly.
//
// Two sources are supported:
//
//   - Load/Read parse the published CIE table from CSV rows of
//     [wavelength_nm, x̄, ȳ, z̄], e.g. CIE_xyz_1964_10deg.csv as
//     distributed by the CIE (cie.co.at) or CVRL (cvrl.org).
//   - Approximate evaluates an analytic fit of the CIE 1964 10°
//     standard observer when no data file is available.
//
// Malformed CSV rows are handled the way the published files need:
// rows without exactly four fields are skipped, and non-numeric or
// non-finite fields inside a four-field row are read as zero. ReadStrict
// rejects such rows instead.
package cmf
