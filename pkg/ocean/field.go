package ocean

import (
	"math"
	"time"

	"seastate/pkg/core"
)

// WaveComponent is one discrete sinusoidal contributor to the field.
type WaveComponent struct {
	// K is the wavenumber, from the deep-water dispersion relation k = ω²/g.
	K float64
	// Omega is the angular frequency (rad/s).
	Omega float64
	// Amp is the component amplitude derived from the spectrum.
	Amp float64
	// Phase is the random phase offset in [0, 2π).
	Phase float64
	// DirX, DirZ form a unit direction in the horizontal plane.
	DirX, DirZ float64
}

// Displacement is a 3D surface offset returned by sampling.
type Displacement struct {
	X, Y, Z float64
}

// WaveField is an immutable collection of wave components. Once Generate
// returns, the field is never mutated and may be read from any number of
// goroutines without synchronization.
type WaveField struct {
	components []WaveComponent
	peakHeight float64
}

// Generate builds a wave field from cfg. Component i (1-based) sits at
// frequency i·DeltaF with amplitude sqrt(2·S·DeltaF) scaled by Scale and
// AmplitudeScale; its direction angle is drawn before its phase so a fixed
// seed yields a bit-identical field on every run. Invalid spectral
// parameters are rejected before any component is built.
func Generate(cfg Config) (*WaveField, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := core.NewRNG(seed)

	scale := cfg.Scale
	if scale == 0 {
		scale = 1
	}
	ampScale := cfg.AmplitudeScale
	if ampScale == 0 {
		ampScale = 1
	}

	components := make([]WaveComponent, cfg.Count)
	ampSum := 0.0
	for i := range components {
		f := float64(i+1) * cfg.DeltaF
		omega := twoPi * f
		s := EnergyDensity(f, cfg.PeakFrequency, cfg.Gamma, cfg.Alpha)
		amp := math.Sqrt(2*s*cfg.DeltaF) * scale * ampScale

		theta := rng.Angle()
		phase := rng.Angle()

		components[i] = WaveComponent{
			K:     omega * omega / Gravity,
			Omega: omega,
			Amp:   amp,
			Phase: phase,
			DirX:  math.Cos(theta),
			DirZ:  math.Sin(theta),
		}
		ampSum += amp
	}

	return &WaveField{
		components: components,
		peakHeight: ampSum / 2,
	}, nil
}

// Len returns the number of components in the field.
func (f *WaveField) Len() int { return len(f.components) }

// PeakHeight is half the summed component amplitudes. It is a visual-tuning
// reference for normalizing sampled heights, not the oceanographic
// significant wave height.
func (f *WaveField) PeakHeight() float64 { return f.peakHeight }

// Components returns a copy of the component list in generation order.
func (f *WaveField) Components() []WaveComponent {
	out := make([]WaveComponent, len(f.components))
	copy(out, f.components)
	return out
}

// Sample evaluates the surface displacement at time t and horizontal
// position (x, z). Each component contributes Amp·cos(φ) along its direction
// horizontally and Amp·sin(φ) vertically, with
// φ = k·(dir·pos) - ω·t + phase. The call is pure and allocation free;
// calling it on a nil field panics.
func (f *WaveField) Sample(t, x, z float64) Displacement {
	var d Displacement
	for i := range f.components {
		c := &f.components[i]
		phi := c.K*(c.DirX*x+c.DirZ*z) - c.Omega*t + c.Phase
		sinF := FastSin(phi)
		cosF := FastCos(phi)
		d.X += c.Amp * cosF * c.DirX
		d.Z += c.Amp * cosF * c.DirZ
		d.Y += c.Amp * sinF
	}
	return d
}
