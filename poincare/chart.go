package poincare

import (
	"fmt"
	"math"
)

// linearThreshold is the norm below which Log and Exp use their
// first-order expansions instead of the 0/0 closed forms.
const linearThreshold = 1e-10

// Log is the Riemannian logarithm at the origin. The returned tangent
// vector points at p and its length is the geodesic distance 2·atanh(|p|).
//
// Log returns ErrOutsideDisk if p is not strictly inside the disk.
func Log(p Point) (Vec, error) {
	if !p.Inside() {
		return Vec{}, fmt.Errorf("log of (%g, %g): %w", p.X, p.Y, ErrOutsideDisk)
	}
	n := p.Norm()
	if n < linearThreshold {
		return Vec{X: 2 * p.X, Y: 2 * p.Y}, nil
	}
	s := 2 * math.Atanh(n) / n
	return Vec{X: s * p.X, Y: s * p.Y}, nil
}

// Exp is the Riemannian exponential at the origin, the inverse of [Log].
// The result is always inside the disk for finite v of moderate length;
// beyond roughly 37 units tanh rounds to 1 in float64.
func Exp(v Vec) Point {
	n := v.Length()
	if n < linearThreshold {
		return Point{X: v.X / 2, Y: v.Y / 2}
	}
	s := math.Tanh(n/2) / n
	return Point{X: s * v.X, Y: s * v.Y}
}

// Azimuthal returns the azimuthal equidistant chart of p around center.
// The vector's length is the true geodesic distance from center to p and
// its angle is the true bearing, so the chart is exact along rays from
// center and distorts only transversally.
func Azimuthal(p, center Point) (Vec, error) {
	return Log(Translate(center.Neg(), p))
}

// FromAzimuthal is the inverse of [Azimuthal]: it returns the point reached
// by travelling along v from center.
func FromAzimuthal(v Vec, center Point) Point {
	return Translate(center, Exp(v))
}

// FromHalfPlane maps a point of the upper half-plane model to the disk
// with the Cayley transform (z - i)/(z + i).
func FromHalfPlane(z complex128) (Point, error) {
	if !(imag(z) > 0) || math.IsInf(real(z), 0) || math.IsInf(imag(z), 0) {
		return Point{}, fmt.Errorf("%v: %w", z, ErrHalfPlane)
	}
	return FromComplex((z - 1i) / (z + 1i)), nil
}

// ToHalfPlane is the inverse Cayley transform i(1 + p)/(1 - p).
func ToHalfPlane(p Point) complex128 {
	w := p.Complex()
	return 1i * (1 + w) / (1 - w)
}
