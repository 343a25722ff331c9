package cie

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// FromColor converts a standard color.Color to SRGB.
// It reports false for fully transparent colors, whose RGB is undefined.
func FromColor(c color.Color) (SRGB, bool) {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return SRGB{}, false
	}
	return SRGB{R: cc.R, G: cc.G, B: cc.B}, true
}

// Color converts SRGB to the standard color.Color interface, clamping
// out-of-gamut components.
func (c SRGB) Color() color.Color {
	return c.toColorful().Clamped()
}

// Hex formats the color as "#rrggbb", clamping out-of-gamut components.
func (c SRGB) Hex() string {
	return c.toColorful().Clamped().Hex()
}

// ParseHex parses a color from a hex string.
// Supports formats: "RGB", "RRGGBB", with or without a leading '#'.
func ParseHex(s string) (SRGB, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	cc, err := colorful.Hex(s)
	if err != nil {
		return SRGB{}, fmt.Errorf("cie: parse hex %q: %w", s, err)
	}
	return SRGB{R: cc.R, G: cc.G, B: cc.B}, nil
}

func (c SRGB) toColorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}
