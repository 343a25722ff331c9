package cie

import "math"

// SRGB is a gamma-encoded sRGB color. In-gamut components are in [0, 1].
type SRGB struct {
	R, G, B float64
}

// Gamut poles: the six corners of the RGB cube with nonzero chroma.
var (
	Black   = SRGB{0, 0, 0}
	White   = SRGB{1, 1, 1}
	Red     = SRGB{1, 0, 0}
	Green   = SRGB{0, 1, 0}
	Blue    = SRGB{0, 0, 1}
	Cyan    = SRGB{0, 1, 1}
	Magenta = SRGB{1, 0, 1}
	Yellow  = SRGB{1, 1, 0}
)

// GamutPoles lists the primaries and secondaries in hue order.
var GamutPoles = [6]SRGB{Red, Yellow, Green, Cyan, Blue, Magenta}

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// FromU8 converts 8-bit components to SRGB.
func FromU8(r, g, b uint8) SRGB {
	return SRGB{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

// ToU8 truncates each component to 8 bits. Components outside [0, 1]
// are clamped first.
func (c SRGB) ToU8() [3]uint8 {
	return [3]uint8{clampU8(c.R), clampU8(c.G), clampU8(c.B)}
}

func clampU8(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// InGamut reports whether every component is in [0, 1].
func (c SRGB) InGamut() bool {
	return inUnit(c.R) && inUnit(c.G) && inUnit(c.B)
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

// SubGamut reports whether any component is negative.
func (c SRGB) SubGamut() bool {
	return c.R < 0 || c.G < 0 || c.B < 0
}

// SuperGamut reports whether any component exceeds 1.
func (c SRGB) SuperGamut() bool {
	return c.R > 1 || c.G > 1 || c.B > 1
}

// XYZ converts the color to CIE XYZ.
func (c SRGB) XYZ() XYZ {
	r, g, b := SRGBToLinear(c.R), SRGBToLinear(c.G), SRGBToLinear(c.B)
	return XYZ{
		X: r*0.4124 + g*0.3576 + b*0.1805,
		Y: r*0.2126 + g*0.7152 + b*0.0722,
		Z: r*0.0193 + g*0.1192 + b*0.9505,
	}
}

// Lab converts the color to CIE L*a*b*.
func (c SRGB) Lab() Lab {
	return c.XYZ().Lab()
}
