package ocean

import (
	"math"
	"testing"
)

// piersonMoskowitz is the base spectrum without peak enhancement, written out
// independently so the gamma=1 reduction is checked against a second source.
func piersonMoskowitz(f, peakF, alpha float64) float64 {
	return alpha * Gravity * Gravity * math.Pow(2*math.Pi, -4) *
		math.Pow(f, -5) * math.Exp(-1.25*math.Pow(peakF/f, 4))
}

func TestGammaOneReducesToPiersonMoskowitz(t *testing.T) {
	for _, f := range []float64{0.05, 0.1, 0.13, 0.2, 0.5, 1.0} {
		got := EnergyDensity(f, 0.13, 1, 0.0081)
		want := piersonMoskowitz(f, 0.13, 0.0081)
		if math.Abs(got-want) > 1e-15*math.Max(1, math.Abs(want)) {
			t.Fatalf("f=%v: got %v, want %v", f, got, want)
		}
	}
}

func TestPeakEnhancementRatio(t *testing.T) {
	const peakF, gamma, alpha = 0.13, 3.3, 0.0081
	enhanced := EnergyDensity(peakF, peakF, gamma, alpha)
	base := piersonMoskowitz(peakF, peakF, alpha)
	ratio := enhanced / base
	if math.Abs(ratio-gamma) > 1e-12 {
		t.Fatalf("enhancement at peak = %v, want %v", ratio, gamma)
	}
}

func TestDensityPeaksNearPeakFrequency(t *testing.T) {
	const peakF, gamma, alpha = 0.13, 3.3, 0.0081
	atPeak := EnergyDensity(peakF, peakF, gamma, alpha)
	if below := EnergyDensity(peakF*0.5, peakF, gamma, alpha); below >= atPeak {
		t.Fatalf("density below peak (%v) >= density at peak (%v)", below, atPeak)
	}
	if above := EnergyDensity(peakF*2, peakF, gamma, alpha); above >= atPeak {
		t.Fatalf("density above peak (%v) >= density at peak (%v)", above, atPeak)
	}
}

func TestHighFrequencyDecay(t *testing.T) {
	const peakF, gamma, alpha = 0.13, 3.3, 0.0081
	prev := EnergyDensity(0.3, peakF, gamma, alpha)
	for _, f := range []float64{0.5, 0.8, 1.2, 2.0} {
		cur := EnergyDensity(f, peakF, gamma, alpha)
		if cur >= prev {
			t.Fatalf("density did not decay at f=%v: %v >= %v", f, cur, prev)
		}
		prev = cur
	}
}

func TestDensityFinitePositive(t *testing.T) {
	for _, f := range []float64{0.01, 0.13, 1, 10} {
		s := EnergyDensity(f, 0.13, 3.3, 0.0081)
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			t.Fatalf("density at f=%v not finite positive: %v", f, s)
		}
	}
}
