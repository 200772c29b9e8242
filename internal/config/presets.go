package config

import "sort"

var Presets = map[string]func() *Config{
	"classic": DefaultConfig,
	"calm": func() *Config {
		cfg := DefaultConfig()
		cfg.Chain.SpeedMax = 0.8
		cfg.Chain.LengthMin, cfg.Chain.LengthMax = 80, 120
		return cfg
	},
	"frantic": func() *Config {
		cfg := DefaultConfig()
		cfg.Chain.SpeedMin, cfg.Chain.SpeedMax = -8, 8
		cfg.Chain.LengthMin, cfg.Chain.LengthMax = 20, 60
		cfg.Chain.RadiusMin, cfg.Chain.RadiusMax = 4, 12
		return cfg
	},
	"mono": func() *Config {
		cfg := DefaultConfig()
		cfg.Colors.Palette = []string{"#ffffff", "#c8c8c8", "#8c8c8c"}
		cfg.Colors.Root = "#ffffff"
		cfg.Colors.Link = "#3c3c3c"
		cfg.Colors.Background = "#0a0a0a"
		return cfg
	},
	"counter": func() *Config {
		cfg := DefaultConfig()
		cfg.Chain.SpeedMin = -3
		return cfg
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
