package hycol

import (
	"math"

	"github.com/gogpu/hycol/cie"
	"github.com/gogpu/hycol/poincare"
)

// Hycol is a color in the hyperbolic perceptual space: a flat luma axis
// times a chroma plane modeled as the Poincaré disk.
//
// Luma runs from 0 (black) to 100 (white) but is not clamped. Chroma must
// be strictly inside the unit disk.
//
// A Hycol carries no reference frame. Values returned by FromLab and the
// derived operations are in the cold (T = 0) frame; mixing values computed
// in different thermal frames is the caller's responsibility.
type Hycol struct {
	Luma   float64
	Chroma poincare.Point
}

// New creates a Hycol from a luma and the disk coordinates of its chroma.
func New(luma, x, y float64) Hycol {
	return Hycol{Luma: luma, Chroma: poincare.Pt(x, y)}
}

// FromLab embeds a CIE L*a*b* color.
//
// The chroma magnitude sqrt(a² + (0.94·b)²) is log-compressed, divided by
// CurvatureRadius to give a geodesic radius, and placed in the disk at the
// hue angle minus ThermalAngle. The lightness receives a hue-dependent
// Helmholtz-Kohlrausch boost before its own log compression.
func FromLab(lab cie.Lab) Hycol {
	f := ChromaAxisScale * lab.B
	g := math.Hypot(lab.A, f)
	h := math.Atan2(f, lab.A)

	radius := ChromaLogScale * math.Log1p(ChromaLogRate*g) / CurvatureRadius
	r := math.Tanh(radius / 2)
	s, c := math.Sincos(h - ThermalAngle)

	mu, nu := hkCorrection(h, g)
	l := lab.L + mu - nu*lab.L

	return Hycol{
		Luma:   LumaLogScale * math.Log1p(LumaLogRate*l),
		Chroma: poincare.Pt(r*c, r*s),
	}
}

// Lab returns the CIE L*a*b* color of c. It is the exact inverse of
// FromLab.
func (c Hycol) Lab() cie.Lab {
	radius := poincare.Distance(c.Chroma, poincare.Origin)
	h := c.Chroma.Angle() + ThermalAngle

	g := math.Expm1(radius*CurvatureRadius/ChromaLogScale) / ChromaLogRate
	s, co := math.Sincos(h)

	mu, nu := hkCorrection(h, g)
	l := math.Expm1(c.Luma/LumaLogScale) / LumaLogRate

	return cie.Lab{
		L: (l - mu) / (1 - nu),
		A: g * co,
		B: g * s / ChromaAxisScale,
	}
}

// hkCorrection returns the additive and multiplicative lightness terms of
// the Helmholtz-Kohlrausch correction for hue h (radians) and chroma g.
// Corrected lightness is l + mu - nu·l.
func hkCorrection(h, g float64) (mu, nu float64) {
	f1 := HKBase + HKHueGain*math.Abs(math.Sin((h-math.Pi/2)/2))
	return HKOffset * f1 * g, HKLightnessGain * f1 * g
}

// FromSRGB embeds a gamma-encoded sRGB color.
func FromSRGB(c cie.SRGB) Hycol {
	return FromLab(c.Lab())
}

// SRGB returns the gamma-encoded sRGB color of c, unclamped. Use
// [cie.SRGB.InGamut] to test whether it is displayable.
func (c Hycol) SRGB() cie.SRGB {
	return c.Lab().SRGB()
}

// Distance returns the perceptual distance between two colors:
// sqrt(ΔLuma² + (CurvatureRadius·d)²) where d is the hyperbolic distance
// between their chromas. Black to white spans 100 units.
func Distance(c1, c2 Hycol) float64 {
	dl := c1.Luma - c2.Luma
	dc := CurvatureRadius * poincare.Distance(c1.Chroma, c2.Chroma)
	return math.Hypot(dl, dc)
}

// Distance returns the perceptual distance from c to o.
func (c Hycol) Distance(o Hycol) float64 {
	return Distance(c, o)
}

// Valid reports whether c has finite luma and chroma inside the disk.
func (c Hycol) Valid() bool {
	return !math.IsNaN(c.Luma) && !math.IsInf(c.Luma, 0) && c.Chroma.Inside()
}
