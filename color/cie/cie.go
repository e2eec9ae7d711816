package cie

// XYZ is a CIE tristimulus value. Y carries luminance; when the value
// comes from a radiometric integration its unit is cd·m⁻² per the
// caller's calibration.
type XYZ struct {
	X, Y, Z float64
}

// Scale returns the value with all three components multiplied by k.
func (v XYZ) Scale(k float64) XYZ {
	return XYZ{X: k * v.X, Y: k * v.Y, Z: k * v.Z}
}

// Chromaticity returns the CIE xy chromaticity coordinates. A zero
// tristimulus value maps to (0, 0).
func (v XYZ) Chromaticity() (x, y float64) {
	sum := v.X + v.Y + v.Z
	if sum == 0 {
		return 0, 0
	}

	return v.X / sum, v.Y / sum
}

// RGB is a color in some RGB space. Whether the components are linear
// or companded depends on which function produced them.
type RGB struct {
	R, G, B float64
}

// Scale returns the color with all channels multiplied by k.
func (c RGB) Scale(k float64) RGB {
	return RGB{R: k * c.R, G: k * c.G, B: k * c.B}
}

// Max returns the largest channel value.
func (c RGB) Max() float64 {
	m := c.R
	if c.G > m {
		m = c.G
	}

	if c.B > m {
		m = c.B
	}

	return m
}
