package app

import (
	"fmt"
	"strconv"

	"seastate/internal/core"
	"seastate/pkg/ocean"
)

// buildSnapshot flattens the active wave configuration and field stats into
// the HUD's display form.
func buildSnapshot(cfg ocean.Config, field *ocean.WaveField) core.ParameterSnapshot {
	spectrum := core.ParameterGroup{
		Name: "spectrum",
		Params: []core.Parameter{
			{Label: "components", Value: strconv.Itoa(cfg.Count)},
			{Label: "deltaF", Value: fmt.Sprintf("%g Hz", cfg.DeltaF)},
			{Label: "peak freq", Value: fmt.Sprintf("%g Hz", cfg.PeakFrequency)},
			{Label: "alpha", Value: fmt.Sprintf("%g", cfg.Alpha)},
			{Label: "gamma", Value: fmt.Sprintf("%g", cfg.Gamma)},
		},
	}
	fieldGroup := core.ParameterGroup{
		Name: "field",
		Params: []core.Parameter{
			{Label: "seed", Value: strconv.FormatInt(cfg.Seed, 10)},
			{Label: "scale", Value: fmt.Sprintf("%g", effectiveScale(cfg.Scale))},
			{Label: "amp scale", Value: fmt.Sprintf("%g", effectiveScale(cfg.AmplitudeScale))},
			{Label: "peak height", Value: fmt.Sprintf("%.4f m", field.PeakHeight())},
		},
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{spectrum, fieldGroup}}
}

func effectiveScale(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
