package hycol

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/hycol/poincare"
)

func TestAzimuthalLength(t *testing.T) {
	for _, c := range []Hycol{orange, teal, indigo} {
		x, y, err := Azimuthal(c, orange)
		require.NoError(t, err)
		want := poincare.Distance(c.Chroma, orange.Chroma)
		assert.InDelta(t, want, math.Hypot(x, y), 1e-9)
	}
}

func TestAzimuthalOutsideDisk(t *testing.T) {
	_, _, err := Azimuthal(New(50, 1, 0), orange)
	assert.ErrorIs(t, err, ErrOutsideDisk)
}

func TestFromPolarRoundTrip(t *testing.T) {
	center := New(70, 0.1, -0.2)
	for _, hue := range []float64{0, 1, 2.5, -2} {
		for _, dist := range []float64{0, 0.4, 1.3} {
			c := FromPolar(center, 55, hue, dist)
			assert.Equal(t, 55.0, c.Luma)
			assert.InDelta(t, dist, poincare.Distance(center.Chroma, c.Chroma), 1e-9)

			x, y, err := Azimuthal(c, center)
			require.NoError(t, err)
			assert.InDelta(t, dist*math.Cos(hue), x, 1e-9)
			assert.InDelta(t, dist*math.Sin(hue), y, 1e-9)
		}
	}
}
