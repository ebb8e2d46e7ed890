package config

import "sort"

// Presets are named partial configurations applied over the defaults.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"calm": func(c *Config) {
		c.FPS = 24
		c.Theme = "ocean"
	},
	"neon": func(c *Config) {
		c.Theme = "cyberpunk"
		c.ResampleGlyphs = true
	},
	"braille": func(c *Config) {
		c.GlyphBase = 0x2800
		c.Theme = "minimal"
	},
	"katakana": func(c *Config) {
		// U+30A0..U+311F runs past the katakana block; resampling keeps
		// the occasional unassigned code point from sticking to a column
		c.GlyphBase = 0x30A0
		c.ResampleGlyphs = true
	},
	"quiet": func(c *Config) {
		c.Header.Show = false
		c.FPS = 30
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ApplyPreset applies the named preset to cfg and reports whether it exists.
func ApplyPreset(cfg *Config, name string) bool {
	apply, ok := Presets[name]
	if ok {
		apply(cfg)
	}
	return ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
