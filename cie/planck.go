package cie

// PlanckianLocus returns the XYZ of a black body at the given temperature
// in kelvin, scaled to luminance y. It uses the Kim et al. cubic spline
// approximation, valid from 1667 K to 25000 K.
func PlanckianLocus(temperature, y float64) XYZ {
	tau := 1000 / temperature
	tau2 := tau * tau
	tau3 := tau2 * tau

	var xc float64
	if temperature < 4000 {
		xc = -0.2661239*tau3 - 0.2343589*tau2 + 0.8776956*tau + 0.179910
	} else {
		xc = -3.0258469*tau3 + 2.1070379*tau2 + 0.2226347*tau + 0.240390
	}

	xc2 := xc * xc
	xc3 := xc2 * xc

	var yc float64
	switch {
	case temperature < 2222:
		yc = -1.1063814*xc3 - 1.34811020*xc2 + 2.18555832*xc - 0.20219683
	case temperature < 4000:
		yc = -0.9549476*xc3 - 1.37418593*xc2 + 2.09137015*xc - 0.16748867
	default:
		yc = 3.0817580*xc3 - 5.87338670*xc2 + 3.75112997*xc - 0.37001483
	}

	return XYZ{
		X: y / yc * xc,
		Y: y,
		Z: y / yc * (1 - xc - yc),
	}
}

// Chromaticity returns the CIE 1931 xy chromaticity coordinates.
func (c XYZ) Chromaticity() (x, y float64) {
	sum := c.X + c.Y + c.Z
	return c.X / sum, c.Y / sum
}

// CCT estimates the correlated color temperature in kelvin with McCamy's
// cubic approximation. It is accurate near the Planckian locus between
// roughly 2856 K and 6504 K.
func (c XYZ) CCT() float64 {
	const xe, ye = 0.3320, 0.1858
	x, y := c.Chromaticity()
	n := (x - xe) / (y - ye)
	n2 := n * n
	n3 := n2 * n
	return -449*n3 + 3525*n2 - 6823.3*n + 5520.33
}
