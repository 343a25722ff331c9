package cie

// D65 reference white.
const (
	WhiteX = 0.950489
	WhiteY = 1.0
	WhiteZ = 1.088840
)

// XYZ is a CIE 1931 tristimulus value with Y = 1 for the reference white.
type XYZ struct {
	X, Y, Z float64
}

// SRGB converts the tristimulus value to gamma-encoded sRGB.
// The result is not clamped to the gamut.
func (c XYZ) SRGB() SRGB {
	r := c.X*3.2404542 + c.Y*-1.5371385 + c.Z*-0.4985314
	g := c.X*-0.9692660 + c.Y*1.8760108 + c.Z*0.0415560
	b := c.X*0.0556434 + c.Y*-0.2040259 + c.Z*1.0572252
	return SRGB{R: LinearToSRGB(r), G: LinearToSRGB(g), B: LinearToSRGB(b)}
}

// Lab converts the tristimulus value to CIE L*a*b*.
func (c XYZ) Lab() Lab {
	fx := labCompress(c.X / WhiteX)
	fy := labCompress(c.Y / WhiteY)
	fz := labCompress(c.Z / WhiteZ)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}
