// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/hycol"
)

// Errors returned by Mesh.
var (
	// ErrSampleCount is returned when the sample count is not a triangular
	// number n(n+1)/2 with n >= 2.
	ErrSampleCount = errors.New("render: sample count is not a triangular lattice")

	// ErrSize is returned for a non-positive image size or a margin that
	// leaves no drawing area.
	ErrSize = errors.New("render: invalid image size")
)

// Mesh rasterizes a meshed triangle into a size×size image. The chart
// positions of the samples are scaled uniformly to fit inside the margin,
// with the chart's +Y axis pointing up.
//
// samples must be the full lattice returned by hycol.MeshedTriangle, in
// its order.
func Mesh(samples []hycol.MeshSample, size int, opts ...Option) (*image.RGBA, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if size <= 0 || size <= 2*o.margin {
		return nil, fmt.Errorf("size %d, margin %d: %w", size, o.margin, ErrSize)
	}
	n, ok := latticeSide(len(samples))
	if !ok {
		return nil, fmt.Errorf("%d samples: %w", len(samples), ErrSampleCount)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)

	f := fitChart(samples, size, o.margin)
	z := vector.NewRasterizer(size, size)

	cells := 0
	at := func(i, j int) hycol.MeshSample { return samples[hycol.MeshIndex(n, i, j)] }
	fill := func(a, b, c hycol.MeshSample) error {
		col, err := hycol.Hlerp3(a.Color, b.Color, c.Color, 1.0/3, 1.0/3)
		if err != nil {
			return fmt.Errorf("render: cell (%d, %d): %w", a.I, a.J, err)
		}
		rgb := col.SRGB()
		if o.gamutMask && !rgb.InGamut() {
			return nil
		}

		z.Reset(size, size)
		z.MoveTo(f.apply(a))
		z.LineTo(f.apply(b))
		z.LineTo(f.apply(c))
		z.ClosePath()
		z.Draw(img, img.Bounds(), image.NewUniform(rgb.Color()), image.Point{})
		cells++
		return nil
	}

	for i := 0; i < n-1; i++ {
		for j := 0; i+j <= n-2; j++ {
			if err := fill(at(i, j), at(i+1, j), at(i, j+1)); err != nil {
				return nil, err
			}
			if i+j <= n-3 {
				if err := fill(at(i+1, j), at(i, j+1), at(i+1, j+1)); err != nil {
					return nil, err
				}
			}
		}
	}

	hycol.Logger().Debug("render: mesh",
		"side", n,
		"cells", cells,
		"size", size)
	return img, nil
}

// latticeSide returns n such that count == n(n+1)/2, n >= 2.
func latticeSide(count int) (int, bool) {
	n := int(math.Round((math.Sqrt(8*float64(count)+1) - 1) / 2))
	if n < 2 || n*(n+1)/2 != count {
		return 0, false
	}
	return n, true
}

// chartFit maps chart coordinates to pixel coordinates.
type chartFit struct {
	scale      float64
	minX, maxY float64
	offX, offY float64
}

// fitChart computes a uniform scale that fits the samples' bounding box
// into the area inside the margin, centered.
func fitChart(samples []hycol.MeshSample, size, margin int) chartFit {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range samples {
		minX, maxX = math.Min(minX, s.X), math.Max(maxX, s.X)
		minY, maxY = math.Min(minY, s.Y), math.Max(maxY, s.Y)
	}

	area := float64(size - 2*margin)
	w, h := maxX-minX, maxY-minY
	extent := math.Max(w, h)
	scale := 0.0
	if extent > 0 {
		scale = area / extent
	}
	return chartFit{
		scale: scale,
		minX:  minX,
		maxY:  maxY,
		offX:  float64(margin) + (area-w*scale)/2,
		offY:  float64(margin) + (area-h*scale)/2,
	}
}

// apply returns the pixel position of a sample.
func (f chartFit) apply(s hycol.MeshSample) (x, y float32) {
	return float32(f.offX + (s.X-f.minX)*f.scale), float32(f.offY + (f.maxY-s.Y)*f.scale)
}
