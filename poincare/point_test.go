package poincare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var samplePoints = []Point{
	Origin,
	Pt(0.5, 0),
	Pt(0, 0.5),
	Pt(-0.3, 0.4),
	Pt(0.7, -0.6),
	Pt(1e-12, -1e-12),
	Pt(-0.95, 0.1),
}

func TestDistanceMetric(t *testing.T) {
	for _, p := range samplePoints {
		assert.Equal(t, 0.0, Distance(p, p), "d(p,p) for %v", p)
		for _, q := range samplePoints {
			d := Distance(p, q)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.InDelta(t, d, Distance(q, p), 1e-12, "symmetry %v %v", p, q)
			for _, r := range samplePoints {
				assert.LessOrEqual(t, Distance(p, r), d+Distance(q, r)+1e-9,
					"triangle inequality %v %v %v", p, q, r)
			}
		}
	}
}

func TestDistanceFromOrigin(t *testing.T) {
	tests := []struct {
		name string
		p    Point
	}{
		{"axis", Pt(0.5, 0)},
		{"diagonal", Pt(0.3, 0.3)},
		{"near boundary", Pt(0, -0.999)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := 2 * math.Atanh(tt.p.Norm())
			assert.InDelta(t, want, Distance(Origin, tt.p), 1e-9)
			assert.InDelta(t, want, tt.p.Distance(Origin), 1e-9)
		})
	}
}

func TestTranslateMovesOrigin(t *testing.T) {
	for _, q := range samplePoints {
		got := Translate(q, Origin)
		assert.True(t, got.Approx(q, 1e-15), "Translate(%v, 0) = %v", q, got)
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	for _, q := range samplePoints {
		for _, p := range samplePoints {
			got := Translate(q.Neg(), Translate(q, p))
			assert.True(t, got.Approx(p, 1e-9), "q=%v p=%v got %v", q, p, got)
		}
	}
}

func TestTranslateIsometry(t *testing.T) {
	q := Pt(0.4, -0.2)
	for _, a := range samplePoints[:5] {
		for _, b := range samplePoints[:5] {
			want := Distance(a, b)
			got := Distance(Translate(q, a), Translate(q, b))
			assert.InDelta(t, want, got, 1e-9, "a=%v b=%v", a, b)
		}
	}
}

func TestPointHelpers(t *testing.T) {
	p := Pt(0.3, -0.4)
	assert.InDelta(t, 0.5, p.Norm(), 1e-15)
	assert.InDelta(t, 0.25, p.NormSq(), 1e-15)
	assert.Equal(t, Pt(-0.3, 0.4), p.Neg())
	assert.Equal(t, Pt(0.3, 0.4), p.Conj())
	assert.Equal(t, complex(0.3, -0.4), p.Complex())
	assert.Equal(t, p, FromComplex(p.Complex()))
	assert.True(t, p.Inside())
	assert.False(t, Pt(1, 0).Inside())
	assert.False(t, Pt(math.NaN(), 0).Inside())
}
