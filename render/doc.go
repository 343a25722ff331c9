// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render rasterizes hycol color fields into images.
//
// [Mesh] draws the lattice produced by [hycol.MeshedTriangle]: each lattice
// cell is filled with the sRGB color of the geodesic blend at its centroid
// and placed at its azimuthal chart position, so the picture keeps the
// hyperbolic layout of the triangle rather than a flat barycentric one.
//
// Rasterization uses golang.org/x/image/vector for anti-aliased coverage.
//
// # Example
//
//	samples, err := hycol.MeshedTriangle(c1, c2, c3, 32)
//	if err != nil {
//	    return err
//	}
//	img, err := render.Mesh(samples, 512, render.WithMargin(8))
package render
