// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image/color"

// Option configures Mesh rendering.
type Option func(*options)

// options holds optional configuration for Mesh.
type options struct {
	background color.Color
	margin     int
	gamutMask  bool
}

// defaultOptions returns the default rendering options.
func defaultOptions() options {
	return options{
		background: color.Transparent,
		margin:     2,
	}
}

// WithBackground sets the color of pixels not covered by the mesh.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}

// WithMargin sets the blank border, in pixels, around the fitted mesh.
// Negative values are ignored.
func WithMargin(px int) Option {
	return func(o *options) {
		if px >= 0 {
			o.margin = px
		}
	}
}

// WithGamutMask leaves cells whose color falls outside the sRGB gamut
// unpainted instead of clamping them.
func WithGamutMask() Option {
	return func(o *options) {
		o.gamutMask = true
	}
}
