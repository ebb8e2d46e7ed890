package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme     = "matrix"
	DefaultFPS       = 60
	DefaultGlyphBase = 0x0400
	DefaultCellW     = 10
	DefaultCellH     = 20
	DefaultTitle     = "Vaultline"
	DefaultTagline   = "Enterprise backup that never sleeps."
	DefaultFrames    = 300
	DefaultDelay     = 2
	DefaultWindowW   = 1280
	DefaultWindowH   = 720
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Theme          string       `yaml:"theme"`
	FPS            int          `yaml:"fps"`
	GlyphBase      int          `yaml:"glyph_base"`
	ResampleGlyphs bool         `yaml:"resample_glyphs"`
	Seed           int64        `yaml:"seed"`
	CellPixels     CellConfig   `yaml:"cell_pixels"`
	Header         HeaderConfig `yaml:"header"`
	Log            LogConfig    `yaml:"log"`
	Window         WindowConfig `yaml:"window"`
	Record         RecordConfig `yaml:"record"`
}

type CellConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type HeaderConfig struct {
	Show    bool   `yaml:"show"`
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Font   string `yaml:"font"`
}

type RecordConfig struct {
	Frames int `yaml:"frames"`
	Delay  int `yaml:"delay"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:     DefaultTheme,
		FPS:       DefaultFPS,
		GlyphBase: DefaultGlyphBase,
		CellPixels: CellConfig{
			X: DefaultCellW,
			Y: DefaultCellH,
		},
		Header: HeaderConfig{
			Show:    true,
			Title:   DefaultTitle,
			Tagline: DefaultTagline,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Window: WindowConfig{
			Width:  DefaultWindowW,
			Height: DefaultWindowH,
		},
		Record: RecordConfig{
			Frames: DefaultFrames,
			Delay:  DefaultDelay,
		},
	}
}

// Load reads path over the defaults, then each overlay in order, so an
// environment file only needs the keys it changes.
func Load(path string, overlays ...string) (*Config, error) {
	cfg := DefaultConfig()
	for _, p := range append([]string{path}, overlays...) {
		if err := merge(cfg, p); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func merge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "write config %s", path)
}

// Validate checks ranges that would otherwise produce a blank or broken
// screen.
func (c *Config) Validate() error {
	switch {
	case c.FPS <= 0 || c.FPS > 240:
		return errors.Wrapf(ErrInvalid, "fps %d out of range (1-240)", c.FPS)
	case c.GlyphBase <= 0 || c.GlyphBase+127 > 0x10FFFF:
		return errors.Wrapf(ErrInvalid, "glyph_base %#x out of range", c.GlyphBase)
	case c.GlyphBase <= 0xDFFF && c.GlyphBase+127 >= 0xD800:
		return errors.Wrapf(ErrInvalid, "glyph_base %#x overlaps surrogates", c.GlyphBase)
	case c.CellPixels.X <= 0 || c.CellPixels.Y <= 0:
		return errors.Wrapf(ErrInvalid, "cell_pixels %dx%d must be positive", c.CellPixels.X, c.CellPixels.Y)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Wrapf(ErrInvalid, "window %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Record.Frames < 0:
		return errors.Wrapf(ErrInvalid, "record.frames %d is negative", c.Record.Frames)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return errors.Wrapf(ErrInvalid, "log.format %q (want text or json)", c.Log.Format)
	}
	return nil
}
