package hycol

import (
	"fmt"
	"math"

	"github.com/gogpu/hycol/poincare"
)

// Hlerp2 blends two colors along the geodesic from c1 (t = 0) to c2
// (t = 1). Luma is interpolated linearly; chroma is the weighted geodesic
// mean with weights (1-t, t), so Distance(c1, Hlerp2(c1, c2, t)) equals
// t·Distance(c1, c2).
//
// t is expected in [0, 1]; values outside extrapolate along the geodesic.
func Hlerp2(c1, c2 Hycol, t float64) (Hycol, error) {
	c, err := blend([]float64{1 - t, t}, c1, c2)
	if err != nil {
		return Hycol{}, fmt.Errorf("hycol: hlerp2 t=%g: %w", t, err)
	}
	return c, nil
}

// Hlerp3 blends three colors with barycentric weights (l1, l2, 1-l1-l2).
// Hlerp3(c1, c2, c3, 1, 0) is c1 and Hlerp3(c1, c2, c3, 0, 1) is c2.
//
// Weights are not range checked: a negative third weight extrapolates,
// and fails with ErrOutsideDisk or ErrNotConverged when the mean cannot be
// represented inside the disk.
func Hlerp3(c1, c2, c3 Hycol, l1, l2 float64) (Hycol, error) {
	c, err := blend([]float64{l1, l2, 1 - l1 - l2}, c1, c2, c3)
	if err != nil {
		return Hycol{}, fmt.Errorf("hycol: hlerp3 l1=%g l2=%g: %w", l1, l2, err)
	}
	return c, nil
}

// blend computes the weighted combination of colors: affine in luma and
// the Fréchet mean in chroma.
func blend(weights []float64, colors ...Hycol) (Hycol, error) {
	vertices := make([]poincare.Vertex, len(colors))
	var luma float64
	for i, c := range colors {
		w := weights[i]
		if math.IsNaN(w) {
			return Hycol{}, fmt.Errorf("weight %d: %w", i, ErrInvalidWeight)
		}
		vertices[i] = poincare.Vertex{Weight: w, Point: c.Chroma}
		luma += w * c.Luma
	}

	chroma, err := poincare.Mean(vertices, poincare.WithLogger(Logger()))
	if err != nil {
		return Hycol{}, err
	}
	return Hycol{Luma: luma, Chroma: chroma}, nil
}
