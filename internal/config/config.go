package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the optional on-disk configuration for cmd/church, read from
// a church.yaml next to the script being run. Every field is optional; the
// zero value falls back to the defaults in limits.go.
type Settings struct {
	Strategy Strategy `yaml:"strategy"`
	MaxSteps int      `yaml:"max_steps"`
}

// Load reads settings from path. A missing file is not an error — it just
// yields the zero Settings, which Resolve then fills with defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Resolve fills in zero fields of s with package defaults.
func (s Settings) Resolve() Settings {
	if s.Strategy == "" {
		s.Strategy = DefaultStrategy
	}
	if s.MaxSteps == 0 {
		s.MaxSteps = DefaultMaxSteps
	}
	return s
}
