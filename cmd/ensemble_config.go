package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/remd-sim/remd-sim/sim"
)

// Define struct for YAML
type EnsembleConfig struct {
	Ensembles map[string]EnsemblePreset `yaml:"ensembles"`
}

// EnsemblePreset holds the ensemble parameters of a named preset.
type EnsemblePreset struct {
	Size            int     `yaml:"size"`
	StartTemp       float64 `yaml:"start_temp"`
	ScalingExponent float64 `yaml:"scaling_exponent"`
	WidthParam      float64 `yaml:"width_param"`
}

// Apply copies the preset's ensemble parameters onto cfg.
func (p *EnsemblePreset) Apply(cfg *sim.Config) {
	cfg.Size = p.Size
	cfg.StartTemp = p.StartTemp
	cfg.ScalingExponent = p.ScalingExponent
	cfg.WidthParam = p.WidthParam
}

// GetEnsemblePreset loads the named preset from a YAML presets file.
// Returns nil if the file has no preset with that name.
func GetEnsemblePreset(path string, name string) *EnsemblePreset {
	// Read YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	// Parse YAML
	var cfg EnsembleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		panic(err)
	}

	if preset, presetExists := cfg.Ensembles[name]; presetExists {
		logrus.Infof("Using preset ensemble %v\n", name)
		return &preset
	}
	return nil
}
