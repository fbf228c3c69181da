package ocean

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var presets = map[string]Config{}

// RegisterPreset adds a named sea-state configuration to the registry.
func RegisterPreset(name string, cfg Config) {
	if name == "" {
		return
	}
	presets[name] = cfg
}

// Presets returns the registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetConfig looks up a registered preset by name.
func PresetConfig(name string) (Config, bool) {
	cfg, ok := presets[name]
	return cfg, ok
}

// LoadConfig reads a YAML sea-state file. Fields absent from the file keep
// their DefaultConfig values; the merged result is validated before being
// returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("ocean: read sea-state file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("ocean: parse sea-state file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("ocean: sea-state file %s: %w", path, err)
	}
	return cfg, nil
}

func init() {
	RegisterPreset("calm", Config{
		Count: 24, DeltaF: 0.02, PeakFrequency: 0.20,
		Alpha: 0.0081, Gamma: 1.8, Scale: 0.6,
	})
	RegisterPreset("chop", DefaultConfig())
	RegisterPreset("swell", Config{
		Count: 48, DeltaF: 0.01, PeakFrequency: 0.08,
		Alpha: 0.0081, Gamma: 2.4, Scale: 1.2,
	})
	RegisterPreset("storm", Config{
		Count: 64, DeltaF: 0.02, PeakFrequency: 0.10,
		Alpha: 0.012, Gamma: 3.3, Scale: 1.6,
	})
}
