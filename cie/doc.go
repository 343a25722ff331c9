// Package cie converts between gamma-encoded sRGB, CIE 1931 XYZ and
// CIE 1976 L*a*b* under the D65 white point, and provides the color
// temperature helpers (Planckian locus, McCamy CCT) used to calibrate
// hycol's thermal axis.
//
// All conversions are pure functions on float64 triples. Out-of-gamut
// values pass through unclamped; use [SRGB.InGamut] to check a round trip.
package cie
