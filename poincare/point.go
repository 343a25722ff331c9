package poincare

import "math"

// Point is a point of the open unit disk.
// Valid points satisfy X*X + Y*Y < 1.
type Point struct {
	X, Y float64
}

// Origin is the center of the disk.
var Origin = Point{}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromComplex converts a complex number to a Point.
func FromComplex(z complex128) Point {
	return Point{X: real(z), Y: imag(z)}
}

// Complex returns the point as a complex number.
func (p Point) Complex() complex128 {
	return complex(p.X, p.Y)
}

// Neg returns the point reflected through the origin.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Conj returns the complex conjugate (reflection across the real axis).
func (p Point) Conj() Point {
	return Point{X: p.X, Y: -p.Y}
}

// Norm returns the Euclidean norm of the point.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// NormSq returns the squared Euclidean norm of the point.
func (p Point) NormSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Angle returns the polar angle of the point in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Inside reports whether p is finite and strictly inside the unit disk.
func (p Point) Inside() bool {
	n := p.NormSq()
	return n < 1 && !math.IsNaN(n)
}

// Distance returns the hyperbolic distance between p and q.
func (p Point) Distance(q Point) float64 {
	return Distance(p, q)
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// Vec returns the point as a tangent vector at the origin in Euclidean
// coordinates. It does not apply the logarithm; use [Log] for that.
func (p Point) Vec() Vec {
	return Vec(p)
}

// Distance returns the hyperbolic distance between p and q:
//
//	acosh(1 + 2|p-q|² / ((1-|p|²)(1-|q|²)))
//
// Both points must be inside the disk. The result is undefined otherwise.
//
// acosh(1+δ) is evaluated as log1p(δ + sqrt(δ(δ+2))) so that nearby points
// keep full relative precision instead of losing it to the rounding of 1+δ.
func Distance(p, q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	delta := 2 * (dx*dx + dy*dy) / ((1 - p.NormSq()) * (1 - q.NormSq()))
	return math.Log1p(delta + math.Sqrt(delta*(delta+2)))
}

// Translate applies the Möbius translation that sends the origin to q:
//
//	(p + q) / (conj(q)·p + 1)
//
// Translate(q.Neg(), Translate(q, p)) == p up to rounding.
func Translate(q, p Point) Point {
	pz, qz := p.Complex(), q.Complex()
	num := pz + qz
	den := complex(q.X, -q.Y)*pz + 1
	return FromComplex(num / den)
}
