// Package hycol implements Hycol, a perceptual color space whose chroma
// plane is the hyperbolic plane in the Poincaré disk model.
//
// # Overview
//
// Flat color spaces blend by straight lines, which over-saturates mixtures
// and bends hue transitions. Hycol log-compresses CIE L*a*b* chroma and
// embeds it in the disk, where blending becomes geodesic interpolation:
// the weighted Fréchet mean of the chromas.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/hycol"
//	    "github.com/gogpu/hycol/cie"
//	)
//
//	a := hycol.FromSRGB(cie.SRGB{R: 0.9, G: 0.3, B: 0.1})
//	b := hycol.FromSRGB(cie.SRGB{R: 0.1, G: 0.4, B: 0.8})
//
//	mid, err := hycol.Hlerp2(a, b, 0.5)
//	if err != nil {
//	    return err
//	}
//	rgb := mid.SRGB()
//
// # Coordinates
//
// A [Hycol] pairs a luma (0 black, 100 white) with a chroma point of the
// unit disk. [FromLab] and [Hycol.Lab] are exact inverses. Perceptual
// distance combines the flat luma axis with the hyperbolic chroma distance
// scaled by [CurvatureRadius].
//
// Values carry no thermal frame: everything this package returns is in the
// cold (T = 0) frame, and [Neutral] gives the neutral colors along the
// thermal axis.
//
// # Errors
//
// Blends can fail. A NaN weight yields [ErrInvalidWeight], a chroma on or
// outside the disk boundary [ErrOutsideDisk], and a solver that runs out
// of iterations [ErrNotConverged]. No partial results are returned.
//
// # Architecture
//
// The package is organized into:
//   - hycol: coordinate model, blends, thermal axis, mesh sampling
//   - poincare: disk primitives and the geodesic mean solver
//   - cie: sRGB, XYZ and L*a*b* conversions, color temperature
//   - render: rasterization of meshed color fields
package hycol
