package cie

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Encode applies sRGB companding to linear components:
//
//	v ≤ 0.0031308: 12.92·v
//	otherwise:     1.055·v^(1/2.4) − 0.055
//
// The curve is monotone and keeps the sign of out-of-range values, so
// clamping may run after companding.
func Encode(c RGB) RGB {
	e := colorful.LinearRgb(c.R, c.G, c.B)

	return RGB{R: e.R, G: e.G, B: e.B}
}

// Clamp clips each channel into [0,1] and reports whether any channel
// was out of gamut.
func Clamp(c RGB) (RGB, bool) {
	col := colorful.Color{R: c.R, G: c.G, B: c.B}
	if col.IsValid() {
		return c, false
	}

	clamped := col.Clamped()

	return RGB{R: clamped.R, G: clamped.G, B: clamped.B}, true
}

// Hex formats the color as "#rrggbb", clamping out-of-range channels
// first.
func Hex(c RGB) string {
	col := colorful.Color{R: c.R, G: c.G, B: c.B}

	return col.Clamped().Hex()
}

// RGB255 returns the channels as 8-bit values, clamping first.
func RGB255(c RGB) (r, g, b uint8) {
	col := colorful.Color{R: c.R, G: c.G, B: c.B}

	return col.Clamped().RGB255()
}
