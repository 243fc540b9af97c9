package config

import "sort"

// Presets are named mass configurations in normalized units
// (G = 1, secondary mass and orbital radius scaled to 1 except for
// the demo pair).
var Presets = map[string]*Config{
	"demo": {
		M1: 2, M2: 0.5, OrbitalRadius: 1,
		Extent: 1.5, Points: 200, Levels: 40,
	},
	"equal": {
		M1: 1, M2: 1, OrbitalRadius: 1,
		Extent: 1.8, Points: 200, Levels: 40,
	},
	"earth-moon": {
		M1: 81.3, M2: 1, OrbitalRadius: 1,
		Extent: 1.4, Points: 300, Levels: 60,
	},
	"sun-jupiter": {
		M1: 1047.6, M2: 1, OrbitalRadius: 1,
		Extent: 1.3, Points: 300, Levels: 80,
	},
	"pluto-charon": {
		M1: 8.2, M2: 1, OrbitalRadius: 1,
		Extent: 1.6, Points: 200, Levels: 40,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
