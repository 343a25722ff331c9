package cie

import "math"

// labDelta is the knee of the L*a*b* nonlinearity.
const labDelta = 6.0 / 29.0

// Lab is a CIE 1976 L*a*b* color. L is 0 for black and 100 for the
// reference white.
type Lab struct {
	L, A, B float64
}

// XYZ converts the color to CIE XYZ.
func (c Lab) XYZ() XYZ {
	l := (c.L + 16) / 116
	return XYZ{
		X: WhiteX * labUncompress(l+c.A/500),
		Y: WhiteY * labUncompress(l),
		Z: WhiteZ * labUncompress(l-c.B/200),
	}
}

// SRGB converts the color to gamma-encoded sRGB, unclamped.
func (c Lab) SRGB() SRGB {
	return c.XYZ().SRGB()
}

// Chroma returns the L*a*b* chroma sqrt(a² + b²).
func (c Lab) Chroma() float64 {
	return math.Hypot(c.A, c.B)
}

// labCompress is the forward L*a*b* nonlinearity f(t).
func labCompress(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

// labUncompress is the inverse of labCompress.
func labUncompress(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}
