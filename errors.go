package hycol

import (
	"errors"

	"github.com/gogpu/hycol/poincare"
)

// Errors returned by blends. They wrap or alias the solver's sentinels so
// callers can test with errors.Is against either package.
var (
	// ErrInvalidWeight is returned when a blend weight is NaN.
	ErrInvalidWeight = poincare.ErrInvalidWeight

	// ErrOutsideDisk is returned when a chroma lies on or outside the
	// disk boundary.
	ErrOutsideDisk = poincare.ErrOutsideDisk

	// ErrNotConverged is returned when the geodesic mean solver hits its
	// iteration cap.
	ErrNotConverged = poincare.ErrNotConverged

	// ErrMeshSize is returned by MeshedTriangle for fewer than two samples
	// per side.
	ErrMeshSize = errors.New("hycol: mesh needs at least two samples per side")
)
