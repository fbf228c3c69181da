package app

import (
	"flag"
	"fmt"
	"runtime"

	"seastate/pkg/ocean"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Preset  string
	File    string
	GridW   int
	GridH   int
	Spacing float64
	Scale   int
	TPS     int
	Seed    int64
	Workers int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Preset:  "chop",
		GridW:   256,
		GridH:   256,
		Spacing: 0.5,
		Scale:   3,
		TPS:     30,
		Seed:    42,
		Workers: runtime.NumCPU(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "builtin sea-state preset")
	fs.StringVar(&c.File, "config", c.File, "YAML sea-state file (overrides -preset)")
	fs.IntVar(&c.GridW, "grid-w", c.GridW, "surface lattice width in points")
	fs.IntVar(&c.GridH, "grid-h", c.GridH, "surface lattice height in points")
	fs.Float64Var(&c.Spacing, "spacing", c.Spacing, "world-space distance between lattice points")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for wave generation (0 = clock)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to fill the lattice")
}

// Resolve produces the wave configuration selected by the flags. A -config
// file wins over -preset; the -seed flag applies in either case.
func (c *Config) Resolve() (ocean.Config, error) {
	var cfg ocean.Config
	if c.File != "" {
		loaded, err := ocean.LoadConfig(c.File)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	} else {
		preset, ok := ocean.PresetConfig(c.Preset)
		if !ok {
			return cfg, fmt.Errorf("app: unknown preset %q (have %v)", c.Preset, ocean.Presets())
		}
		cfg = preset
	}
	cfg.Seed = c.Seed
	return cfg, nil
}
