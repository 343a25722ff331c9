package hycol

import "github.com/gogpu/hycol/poincare"

// Azimuthal returns the position of c's chroma in the azimuthal
// equidistant chart centered on center's chroma. The length of (x, y) is
// the geodesic distance between the chromas and its angle the true
// bearing, so the chart is exact radially. Multiply by CurvatureRadius to
// get perceptual units.
func Azimuthal(c, center Hycol) (x, y float64, err error) {
	v, err := poincare.Azimuthal(c.Chroma, center.Chroma)
	if err != nil {
		return 0, 0, err
	}
	return v.X, v.Y, nil
}

// FromPolar returns the color with the given luma whose chroma sits at
// geodesic distance dist from center's chroma, at bearing hue (radians,
// measured in the disk frame).
func FromPolar(center Hycol, luma, hue, dist float64) Hycol {
	return Hycol{
		Luma:   luma,
		Chroma: poincare.FromAzimuthal(poincare.Polar(dist, hue), center.Chroma),
	}
}
