package cie

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownSpace is returned by ParseSpace for unrecognized names.
var ErrUnknownSpace = errors.New("cie: unknown RGB space")

// Space selects the RGB primaries used by Convert.
type Space int

const (
	SpaceSRGB Space = iota
	SpaceCIERGB
)

// String returns the canonical space name.
func (s Space) String() string {
	switch s {
	case SpaceSRGB:
		return "srgb"
	case SpaceCIERGB:
		return "cie-rgb"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}

// ParseSpace resolves a space from its name, case-insensitively.
// Accepted names: "srgb", "cie-rgb" (also "cie").
func ParseSpace(name string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "srgb":
		return SpaceSRGB, nil
	case "cie-rgb", "cie":
		return SpaceCIERGB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpace, name)
	}
}

type matrix3 [3][3]float64

// sRGB D65 XYZ→linear-RGB matrix (IEC 61966-2-1).
var srgbFromXYZ = matrix3{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// CIE RGB→XYZ matrix from CIE 15:2004 Colorimetry, table 3. The
// conversion needs its inverse, computed once below.
var cieXYZFromRGB = matrix3{
	{2.768892, 1.751748, 1.130160},
	{1.000000, 4.590700, 0.060100},
	{0.000000, 0.056508, 5.594292},
}

var cieFromXYZ = mustInvert(cieXYZFromRGB)

// Convert transforms a tristimulus value into linear RGB components of
// the given space. No companding or clamping is applied.
func Convert(v XYZ, space Space) RGB {
	m := &srgbFromXYZ
	if space == SpaceCIERGB {
		m = &cieFromXYZ
	}

	return RGB{
		R: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		G: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		B: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// mustInvert returns the inverse of m via the adjugate. The package
// only inverts its fixed primaries matrix, so singularity is a
// programming error.
func mustInvert(m matrix3) matrix3 {
	inv, err := invert(m)
	if err != nil {
		panic(err)
	}

	return inv
}

func invert(m matrix3) (matrix3, error) {
	adj := matrix3{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}

	det := m[0][0]*adj[0][0] + m[0][1]*adj[1][0] + m[0][2]*adj[2][0]
	if math.Abs(det) < 1e-12 {
		return matrix3{}, errors.New("cie: singular matrix")
	}

	var inv matrix3
	for i := range inv {
		for j := range inv[i] {
			inv[i][j] = adj[i][j] / det
		}
	}

	return inv, nil
}
