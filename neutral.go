package hycol

import (
	"fmt"
	"math"

	"github.com/gogpu/hycol/poincare"
)

// Neutral returns the neutral color at the given thermal coordinate.
//
// Its chroma lies on the real axis at tanh(temperature/2), so temperature
// is the signed geodesic distance from the origin along the thermal axis.
// Its luma is linear in temperature through the calibration points
// (NeutralMinTemperature, NeutralMinLuma) and (NeutralMaxTemperature,
// NeutralMaxLuma), and extrapolates beyond them.
//
// The calibration only holds inside that range. Far outside it the chroma
// approaches the disk boundary, and once it rounds onto the boundary (or
// temperature is NaN) Neutral returns ErrOutsideDisk.
func Neutral(temperature float64) (Hycol, error) {
	chroma := poincare.Pt(math.Tanh(temperature/2), 0)
	if !chroma.Inside() {
		return Hycol{}, fmt.Errorf("hycol: neutral at temperature %g: %w", temperature, ErrOutsideDisk)
	}
	s := (temperature - NeutralMinTemperature) / (NeutralMaxTemperature - NeutralMinTemperature)
	return Hycol{
		Luma:   NeutralMinLuma + s*(NeutralMaxLuma-NeutralMinLuma),
		Chroma: chroma,
	}, nil
}
