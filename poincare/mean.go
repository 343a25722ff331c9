package poincare

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

const (
	// seedBoundary is the squared norm above which the chord-average seed
	// is pulled back inside the disk.
	seedBoundary = 1 - 1e-8

	// seedRadius is the norm the seed is rescaled to when pulled back.
	seedRadius = 0.9

	// minStepScale is the smallest fraction of a step tried before the
	// line search gives up.
	minStepScale = 0x1p-30
)

// Vertex is a weighted point, the input unit of [Mean].
type Vertex struct {
	Weight float64
	Point  Point
}

// Mean returns the weighted Fréchet mean of vertices: the point w that
// minimizes Σ wᵢ·Distance(w, pᵢ)².
//
// Weights are expected to sum to 1 and may be negative, generalizing an
// affine combination. For two vertices with weights (1-t, t) the mean is
// the point at parameter t along the geodesic segment.
//
// The solver is a Riemannian fixed point: at each step every vertex is
// moved into the frame where the current estimate is the origin, and the
// weighted sum of their logarithms (the pull) gives the descent direction.
// The pull is preconditioned by the Hessian of the objective when that is
// positive definite, which makes the step a Newton step, and the step is
// halved until the pull at the new estimate is shorter than the current
// one. It stops when the unscaled step is shorter than the tolerance.
//
// Mean returns ErrNoVertices for an empty input, ErrInvalidWeight for a NaN
// weight, ErrOutsideDisk if a vertex is not inside the disk or the pull is
// not finite, and ErrNotConverged if the iteration cap is reached or no
// step reduces the pull. It never returns a partial answer.
func Mean(vertices []Vertex, opts ...MeanOption) (Point, error) {
	o := defaultMeanOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(vertices) == 0 {
		return Point{}, ErrNoVertices
	}
	for i, v := range vertices {
		if math.IsNaN(v.Weight) {
			return Point{}, fmt.Errorf("vertex %d: %w", i, ErrInvalidWeight)
		}
		if !v.Point.Inside() {
			return Point{}, fmt.Errorf("vertex %d at (%g, %g): %w", i, v.Point.X, v.Point.Y, ErrOutsideDisk)
		}
	}

	w := chordSeed(vertices)
	f, err := evaluate(vertices, w)
	if err != nil {
		return Point{}, fmt.Errorf("seed: %w", err)
	}

	tolSq := o.tolerance * o.tolerance
	debug := o.logger.Enabled(context.Background(), slog.LevelDebug)

	for iter := 1; iter <= o.maxIterations; iter++ {
		if Exp(f.pull).NormSq() < tolSq {
			return w, nil
		}

		dir := f.newtonStep()
		scale := 1.0
		for {
			cand := Translate(w, Exp(dir.Mul(scale)))
			if cand.Inside() {
				next, err := evaluate(vertices, cand)
				if err == nil && next.pull.LengthSq() < f.pull.LengthSq() {
					w, f = cand, next
					break
				}
			}
			scale /= 2
			if scale < minStepScale {
				o.logger.Warn("poincare: mean step stalled",
					"iteration", iter,
					"pull", f.pull.Length())
				return Point{}, fmt.Errorf("iteration %d: no step reduces the pull: %w", iter, ErrNotConverged)
			}
		}

		if debug {
			o.logger.Debug("poincare: mean iteration",
				"iteration", iter,
				"scale", scale,
				"pull", f.pull.Length(),
				"x", w.X, "y", w.Y)
		}
	}

	o.logger.Warn("poincare: mean did not converge",
		"iterations", o.maxIterations,
		"vertices", len(vertices))
	return Point{}, fmt.Errorf("after %d iterations: %w", o.maxIterations, ErrNotConverged)
}

// meanField is the weighted log pull of the vertices at an estimate and the
// Hessian of ½·Σ wᵢ·d(w, pᵢ)² there, in the frame where the estimate is the
// origin.
type meanField struct {
	pull          Vec
	hxx, hxy, hyy float64
}

// evaluate computes the field of vertices at w. Along the direction u to a
// vertex at distance d the Hessian of ½d² is 1, and across it d·coth(d).
func evaluate(vertices []Vertex, w Point) (meanField, error) {
	var f meanField
	frame := w.Neg()
	for _, v := range vertices {
		l, err := Log(Translate(frame, v.Point))
		if err != nil {
			return meanField{}, err
		}
		f.pull = f.pull.Add(l.Mul(v.Weight))

		d := l.Length()
		k := 1.0
		var ux, uy float64
		if d > linearThreshold {
			k = d / math.Tanh(d)
			ux, uy = l.X/d, l.Y/d
		}
		f.hxx += v.Weight * (k + (1-k)*ux*ux)
		f.hxy += v.Weight * (1 - k) * ux * uy
		f.hyy += v.Weight * (k + (1-k)*uy*uy)
	}
	if !f.pull.IsFinite() {
		return meanField{}, fmt.Errorf("non-finite pull at (%g, %g): %w", w.X, w.Y, ErrOutsideDisk)
	}
	return f, nil
}

// newtonStep returns H⁻¹·pull, or the pull itself when the Hessian is not
// positive definite, which happens with negative weights.
func (f meanField) newtonStep() Vec {
	det := f.hxx*f.hyy - f.hxy*f.hxy
	if !(f.hxx > 0 && det > 0) {
		return f.pull
	}
	step := Vec{
		X: (f.hyy*f.pull.X - f.hxy*f.pull.Y) / det,
		Y: (f.hxx*f.pull.Y - f.hxy*f.pull.X) / det,
	}
	if !step.IsFinite() {
		return f.pull
	}
	return step
}

// chordSeed returns the Euclidean weighted average of the vertices, pulled
// strictly inside the disk if it lands on or near the boundary.
func chordSeed(vertices []Vertex) Point {
	var s Point
	for _, v := range vertices {
		s.X += v.Weight * v.Point.X
		s.Y += v.Weight * v.Point.Y
	}
	if n2 := s.NormSq(); n2 > seedBoundary {
		k := seedRadius / math.Sqrt(n2)
		s = Point{X: s.X * k, Y: s.Y * k}
	}
	return s
}
