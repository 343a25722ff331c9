package hycol

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/hycol/cie"
	"github.com/gogpu/hycol/poincare"
)

func assertLabNear(t *testing.T, want, got cie.Lab, tol float64) {
	t.Helper()
	assert.InDelta(t, want.L, got.L, tol*math.Max(1, math.Abs(want.L)), "L* of %+v", want)
	assert.InDelta(t, want.A, got.A, tol*math.Max(1, math.Abs(want.A)), "a* of %+v", want)
	assert.InDelta(t, want.B, got.B, tol*math.Max(1, math.Abs(want.B)), "b* of %+v", want)
}

func TestLabRoundTrip(t *testing.T) {
	for l := 0.0; l <= 100; l += 12.5 {
		for a := -100.0; a <= 100; a += 20 {
			for b := -100.0; b <= 100; b += 25 {
				lab := cie.Lab{L: l, A: a, B: b}
				h := FromLab(lab)
				assert.True(t, h.Valid(), "FromLab(%+v) = %+v", lab, h)
				assertLabNear(t, lab, h.Lab(), 1e-9)
			}
		}
	}
}

func TestLabRoundTripSmallChroma(t *testing.T) {
	for _, lab := range []cie.Lab{
		{L: 50, A: 0, B: 0},
		{L: 50, A: 1e-7, B: 0},
		{L: 20, A: -1e-4, B: 3e-4},
		{L: 80, A: 0.01, B: -0.02},
	} {
		assertLabNear(t, lab, FromLab(lab).Lab(), 1e-6)
	}
}

func TestSRGBRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    cie.SRGB
	}{
		{"violet", cie.SRGB{R: 0.3, G: 0.01, B: 0.8}},
		{"red", cie.Red},
		{"yellow", cie.Yellow},
		{"blue", cie.Blue},
		{"grey", cie.SRGB{R: 0.5, G: 0.5, B: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := FromSRGB(tt.c)
			assertLabNear(t, tt.c.Lab(), h.Lab(), 1e-9)

			back := h.SRGB()
			assert.InDelta(t, tt.c.R, back.R, 5e-3)
			assert.InDelta(t, tt.c.G, back.G, 5e-3)
			assert.InDelta(t, tt.c.B, back.B, 5e-3)
		})
	}
}

func TestLumaScale(t *testing.T) {
	white := FromLab(cie.Lab{L: 100})
	assert.InDelta(t, 100, white.Luma, 0.01)
	assert.Equal(t, poincare.Origin, white.Chroma)

	black := FromLab(cie.Lab{})
	assert.Equal(t, 0.0, black.Luma)
	assert.InDelta(t, 100, Distance(black, white), 0.01)
}

func TestThermalAngle(t *testing.T) {
	// A hue at ThermalAngle (after b* scaling) lands on the positive real axis.
	s, c := math.Sincos(ThermalAngle)
	h := FromLab(cie.Lab{L: 60, A: 40 * c, B: 40 * s / ChromaAxisScale})
	assert.InDelta(t, 0, h.Chroma.Y, 1e-12)
	assert.Greater(t, h.Chroma.X, 0.0)

	wantRadius := ChromaLogScale * math.Log1p(ChromaLogRate*40) / CurvatureRadius
	assert.InDelta(t, wantRadius, poincare.Distance(poincare.Origin, h.Chroma), 1e-12)
}

func TestHelmholtzKohlrausch(t *testing.T) {
	// Chromatic colors look brighter than a grey of the same L*.
	grey := FromLab(cie.Lab{L: 50})
	for _, lab := range []cie.Lab{
		{L: 50, A: 60, B: 0},
		{L: 50, A: 0, B: 60},
		{L: 50, A: -60, B: 0},
		{L: 50, A: 0, B: -60},
	} {
		assert.Greater(t, FromLab(lab).Luma, grey.Luma, "%+v", lab)
	}

	// The boost is smallest along +b* (h = π/2), where the sine vanishes.
	mu, nu := hkCorrection(math.Pi/2, 10)
	assert.InDelta(t, HKOffset*HKBase*10, mu, 1e-12)
	assert.InDelta(t, HKLightnessGain*HKBase*10, nu, 1e-12)

	mu, _ = hkCorrection(-math.Pi/2, 10)
	assert.InDelta(t, HKOffset*(HKBase+HKHueGain)*10, mu, 1e-12)
}

func TestDistanceProperties(t *testing.T) {
	colors := []Hycol{
		FromLab(cie.Lab{L: 50, A: 60, B: 40}),
		FromLab(cie.Lab{L: 70, A: -40, B: 20}),
		FromLab(cie.Lab{L: 30, A: 10, B: -50}),
		New(80, 0, 0),
	}
	for _, c1 := range colors {
		assert.Equal(t, 0.0, c1.Distance(c1))
		for _, c2 := range colors {
			assert.InDelta(t, Distance(c1, c2), Distance(c2, c1), 1e-12)
			assert.GreaterOrEqual(t, Distance(c1, c2), 0.0)
		}
	}
}

func TestDistanceLumaSymmetry(t *testing.T) {
	c := New(50, 0, 0)
	for _, p := range []poincare.Point{poincare.Origin, poincare.Pt(0.3, 0.1), poincare.Pt(-0.2, -0.6)} {
		for _, d := range []float64{0.5, 5, 20} {
			up := Hycol{Luma: 50 + d, Chroma: p}
			down := Hycol{Luma: 50 - d, Chroma: p}
			assert.InDelta(t, Distance(c, up), Distance(c, down), 1e-12)
		}
	}
}

func TestValid(t *testing.T) {
	assert.True(t, New(50, 0.2, 0.3).Valid())
	assert.False(t, New(50, 1, 0).Valid())
	assert.False(t, New(math.NaN(), 0, 0).Valid())
	assert.False(t, New(math.Inf(1), 0, 0).Valid())
}
