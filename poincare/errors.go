package poincare

import "errors"

var (
	// ErrOutsideDisk is returned when a point lies on or outside the unit
	// circle, where the hyperbolic metric is infinite.
	ErrOutsideDisk = errors.New("poincare: point on or outside the unit disk")

	// ErrInvalidWeight is returned by [Mean] when a vertex weight is NaN.
	ErrInvalidWeight = errors.New("poincare: invalid vertex weight")

	// ErrNoVertices is returned by [Mean] for an empty vertex set.
	ErrNoVertices = errors.New("poincare: no vertices")

	// ErrNotConverged is returned by [Mean] when the iteration cap is reached.
	ErrNotConverged = errors.New("poincare: mean did not converge")

	// ErrHalfPlane is returned by [FromHalfPlane] for points not in the
	// open upper half-plane.
	ErrHalfPlane = errors.New("poincare: point not in the upper half-plane")
)
