// Package ocean synthesizes a directional ocean wave field from a JONSWAP
// spectrum and samples its 3D surface displacement at arbitrary points and
// times. Generation happens once per sea state; sampling is the hot path and
// is safe for unsynchronized concurrent callers.
package ocean

import (
	"errors"
	"strconv"
)

// Configuration errors reported by Validate and Generate.
var (
	ErrBadCount         = errors.New("ocean: component count must be positive")
	ErrBadDeltaF        = errors.New("ocean: frequency step must be positive")
	ErrBadPeakFrequency = errors.New("ocean: peak frequency must be positive")
	ErrBadAlpha         = errors.New("ocean: alpha must be positive")
	ErrBadGamma         = errors.New("ocean: gamma must be positive")
)

// Config holds the spectral parameters for one generated wave field.
type Config struct {
	// Count is the number of discrete wave components.
	Count int `yaml:"count"`

	// DeltaF is the frequency spacing between components (Hz).
	DeltaF float64 `yaml:"deltaF"`

	// PeakFrequency is the JONSWAP peak frequency (Hz).
	PeakFrequency float64 `yaml:"peakFrequency"`

	// Alpha is the Phillips constant of the Pierson–Moskowitz base.
	Alpha float64 `yaml:"alpha"`

	// Gamma is the JONSWAP peak-enhancement factor; 1 disables enhancement.
	Gamma float64 `yaml:"gamma"`

	// Scale multiplies every component amplitude. Zero means 1.
	Scale float64 `yaml:"scale"`

	// AmplitudeScale is an additional caller-supplied amplitude multiplier,
	// kept separate from Scale so presets and runtime tuning compose.
	// Zero means 1.
	AmplitudeScale float64 `yaml:"amplitudeScale"`

	// Seed drives the deterministic direction/phase draws. Zero selects a
	// clock-derived seed; pass any nonzero value for reproducible fields.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the standard sea-state parameters.
func DefaultConfig() Config {
	return Config{
		Count:         32,
		DeltaF:        0.02,
		PeakFrequency: 0.13,
		Alpha:         0.0081,
		Gamma:         3.3,
		Scale:         1,
	}
}

// Validate reports the first invalid spectral parameter, if any.
func (c Config) Validate() error {
	if c.Count <= 0 {
		return ErrBadCount
	}
	if c.DeltaF <= 0 {
		return ErrBadDeltaF
	}
	if c.PeakFrequency <= 0 {
		return ErrBadPeakFrequency
	}
	if c.Alpha <= 0 {
		return ErrBadAlpha
	}
	if c.Gamma <= 0 {
		return ErrBadGamma
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and malformed values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Count = parsed
		}
	}
	if v, ok := cfg["delta_f"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.DeltaF = parsed
		}
	}
	if v, ok := cfg["peak_frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.PeakFrequency = parsed
		}
	}
	if v, ok := cfg["alpha"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Alpha = parsed
		}
	}
	if v, ok := cfg["gamma"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Gamma = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["amplitude_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.AmplitudeScale = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
