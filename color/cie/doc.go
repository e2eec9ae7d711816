// Package cie converts CIE XYZ tristimulus values to RGB.
//
// Two target spaces are supported:
//
//   - SpaceSRGB: the sRGB primaries with D65 white point. Convert
//     produces linear components for the standard XYZ→sRGB matrix;
//     Encode applies the sRGB companding curve for display.
//   - SpaceCIERGB: the original CIE RGB primaries. The forward
//     RGB→XYZ matrix is the one tabulated in CIE 15:2004 Colorimetry;
//     its inverse is computed at startup. Components stay linear and
//     are historically left unclamped.
//
// Out-of-gamut handling is explicit: Clamp clips into [0,1] and
// reports that it did, so callers decide whether to surface or accept
// the loss.
package cie
