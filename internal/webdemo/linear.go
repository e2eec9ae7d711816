package webdemo

import "github.com/lucasb-eyer/go-colorful"

// anchorTable holds reference display colors at fixed temperatures.
// Blending linearly between neighbors approximates the spectral
// pipeline closely enough for a preview strip while staying cheap
// enough to inline as plain JavaScript on the static page.
type anchorTable []struct {
	kelvin float64
	color  colorful.Color
}

// Charity's rendering of the Planckian locus for the 1964 10° observer,
// peak-normalized sRGB, one anchor per 1000 K.
var anchors = anchorTable{
	{1000, mustHex("#ff3800")},
	{2000, mustHex("#ff8912")},
	{3000, mustHex("#ffb46b")},
	{4000, mustHex("#ffd1a3")},
	{5000, mustHex("#ffe4ce")},
	{6000, mustHex("#fff3ef")},
	{7000, mustHex("#f5f3ff")},
	{8000, mustHex("#e3e9ff")},
	{9000, mustHex("#d6e1ff")},
	{10000, mustHex("#ccdbff")},
}

// LinearApprox returns the piecewise-linear approximation of the
// black-body color at kelvin. Temperatures outside the anchor range
// clamp to the first or last anchor.
func LinearApprox(kelvin float64) colorful.Color {
	if kelvin <= anchors[0].kelvin {
		return anchors[0].color
	}

	for i := 0; i < len(anchors)-1; i++ {
		lo, hi := anchors[i], anchors[i+1]
		if kelvin <= hi.kelvin {
			t := (kelvin - lo.kelvin) / (hi.kelvin - lo.kelvin)
			return lo.color.BlendRgb(hi.color, t)
		}
	}

	return anchors[len(anchors)-1].color
}

// LinearGradient samples n approximation colors from minKelvin to
// maxKelvin, both ends included.
func LinearGradient(minKelvin, maxKelvin float64, n int) ([]Stop, error) {
	if err := checkGradientArgs(minKelvin, maxKelvin, n); err != nil {
		return nil, err
	}

	stops := make([]Stop, n)
	for i := range n {
		kelvin := lerp(minKelvin, maxKelvin, float64(i)/float64(n-1))
		stops[i] = Stop{Kelvin: kelvin, Hex: LinearApprox(kelvin).Hex()}
	}

	return stops, nil
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("webdemo: bad anchor color " + s + ": " + err.Error())
	}
	return c
}
