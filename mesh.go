package hycol

import "fmt"

// MeshSample is one vertex of a meshed triangle.
type MeshSample struct {
	// I and J index the lattice; I + J <= n-1.
	I, J int

	// L1 and L2 are the barycentric weights of the first two corners.
	L1, L2 float64

	// X and Y locate the sample in the azimuthal chart centered on the
	// triangle's centroid.
	X, Y float64

	Color Hycol
}

// MeshedTriangle samples the geodesic triangle v1 v2 v3 on a lattice of
// n points per side, n(n+1)/2 samples in total. Sample (i, j) is
// Hlerp3(v1, v2, v3, i/(n-1), j/(n-1)) and is positioned in the azimuthal
// chart around the centroid Hlerp3(v1, v2, v3, 1/3, 1/3), which preserves
// the hyperbolic layout for rendering.
//
// Samples are ordered by i, then j.
func MeshedTriangle(v1, v2, v3 Hycol, n int) ([]MeshSample, error) {
	if n < 2 {
		return nil, fmt.Errorf("meshed triangle n=%d: %w", n, ErrMeshSize)
	}

	center, err := Hlerp3(v1, v2, v3, 1.0/3, 1.0/3)
	if err != nil {
		return nil, fmt.Errorf("meshed triangle centroid: %w", err)
	}

	step := 1 / float64(n-1)
	samples := make([]MeshSample, 0, n*(n+1)/2)
	for i := range n {
		for j := 0; i+j <= n-1; j++ {
			l1, l2 := float64(i)*step, float64(j)*step
			c, err := Hlerp3(v1, v2, v3, l1, l2)
			if err != nil {
				return nil, fmt.Errorf("meshed triangle sample (%d, %d): %w", i, j, err)
			}
			x, y, err := Azimuthal(c, center)
			if err != nil {
				return nil, fmt.Errorf("meshed triangle sample (%d, %d): %w", i, j, err)
			}
			samples = append(samples, MeshSample{
				I: i, J: j,
				L1: l1, L2: l2,
				X: x, Y: y,
				Color: c,
			})
		}
	}
	return samples, nil
}

// MeshIndex returns the position of lattice sample (i, j) in the slice
// returned by MeshedTriangle with n points per side.
func MeshIndex(n, i, j int) int {
	// Rows i' < i hold n-i' samples each.
	return i*n - i*(i-1)/2 + j
}
