package ocean

import "math"

// Gravity is the gravitational acceleration (m/s²) used by the spectrum
// model and the deep-water dispersion relation.
const Gravity = 9.81

// EnergyDensity evaluates the JONSWAP spectral energy density at frequency f
// (Hz). The result is the Pierson–Moskowitz base spectrum multiplied by the
// gamma^r peak-enhancement factor; gamma = 1 reduces to plain
// Pierson–Moskowitz. f must be positive.
func EnergyDensity(f, peakF, gamma, alpha float64) float64 {
	sigma := 0.07
	if f > peakF {
		sigma = 0.09
	}
	df := f - peakF
	r := math.Exp(-(df * df) / (2 * sigma * sigma * peakF * peakF))

	pm := alpha * Gravity * Gravity * math.Pow(2*math.Pi, -4) *
		math.Pow(f, -5) * math.Exp(-1.25*math.Pow(peakF/f, 4))

	return pm * math.Pow(gamma, r)
}
