package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultM1     = 2.0
	DefaultM2     = 0.5
	DefaultRadius = 1.0
	DefaultExtent = 1.5
	DefaultPoints = 200
	DefaultLevels = 40
)

// Config describes one field computation: the mass configuration plus
// the sampling window. Extent is the half-width of the square window
// centered on the barycenter; Points is the sample count per axis.
type Config struct {
	M1            float64 `yaml:"m1"`
	M2            float64 `yaml:"m2"`
	OrbitalRadius float64 `yaml:"orbital_radius"`
	Extent        float64 `yaml:"extent"`
	Points        int     `yaml:"points"`
	Levels        int     `yaml:"levels"`
	Workers       int     `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		M1:            DefaultM1,
		M2:            DefaultM2,
		OrbitalRadius: DefaultRadius,
		Extent:        DefaultExtent,
		Points:        DefaultPoints,
		Levels:        DefaultLevels,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
