// Package poincare implements the Poincaré disk model of the hyperbolic plane.
//
// # Overview
//
// Points live strictly inside the open unit disk. The package provides the
// hyperbolic distance, the Möbius translations that act as the isometries
// of the disk, the Riemannian logarithm and exponential maps at the origin,
// and an azimuthal equidistant chart around an arbitrary center.
//
// On top of those primitives [Mean] computes the weighted Fréchet (Karcher)
// mean of a set of points, the curved-space analogue of an affine
// combination.
//
// # Conventions
//
// The metric has constant curvature -1, so the geodesic distance from the
// origin to a point p is 2·atanh(|p|). Tangent vectors are expressed at the
// origin; to work at another base point w, translate by -w, operate, and
// translate back by w.
//
// All values are immutable and all functions are pure, so they are safe for
// concurrent use.
package poincare
