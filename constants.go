package hycol

// Calibration constants of the Hycol embedding. The values are empirical
// and must not be changed without recalibrating existing palettes.
const (
	// CurvatureRadius converts geodesic distance in the disk to perceptual
	// chroma units.
	CurvatureRadius = 28.6

	// ThermalAngle is the hue, in radians, mapped onto the positive real
	// axis of the disk (the warm end of the thermal axis).
	ThermalAngle = 0.78539816339

	// ChromaAxisScale shrinks the b* axis before the chroma is measured.
	ChromaAxisScale = 0.94

	// ChromaLogScale and ChromaLogRate log-compress the chroma magnitude g:
	// c = ChromaLogScale·ln(1 + ChromaLogRate·g).
	ChromaLogScale = 23.0
	ChromaLogRate  = 0.066

	// LumaLogScale and LumaLogRate log-compress the corrected lightness:
	// luma = LumaLogScale·ln(1 + LumaLogRate·l). L* = 100 maps to luma 100.
	LumaLogScale = 317.65
	LumaLogRate  = 0.0037

	// Helmholtz-Kohlrausch correction. The hue factor is
	// f1(h) = HKBase + HKHueGain·|sin((h - π/2)/2)| and the lightness is
	// raised to l + f1·g·(HKOffset - HKLightnessGain·l).
	HKBase          = 0.085
	HKHueGain       = 0.116
	HKOffset        = 2.5
	HKLightnessGain = 0.025
)

// Calibration of the neutral thermal axis used by Neutral.
const (
	NeutralMinTemperature = -1.2
	NeutralMaxTemperature = 1.7
	NeutralMinLuma        = 95.0
	NeutralMaxLuma        = 85.0
)
