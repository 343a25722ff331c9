package poincare

import "math"

// Vec is a tangent vector at the origin of the disk.
// Its Euclidean length equals the geodesic length it represents.
type Vec struct {
	X, Y float64
}

// V is a convenience function to create a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec) Mul(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Length returns the length (magnitude) of the vector.
func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSq returns the squared length of the vector.
func (v Vec) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Atan2 returns the angle of the vector in radians.
func (v Vec) Atan2() float64 {
	return math.Atan2(v.Y, v.X)
}

// IsFinite reports whether both components are finite.
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Polar returns the tangent vector with the given length and bearing.
func Polar(length, angle float64) Vec {
	s, c := math.Sincos(angle)
	return Vec{X: length * c, Y: length * s}
}
