package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "matrix" {
		t.Errorf("expected theme matrix, got %s", cfg.Theme)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.CellPixels.X != 10 || cfg.CellPixels.Y != 20 {
		t.Errorf("unexpected cell size %+v", cfg.CellPixels)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"huge fps", func(c *Config) { c.FPS = 1000 }},
		{"zero glyph base", func(c *Config) { c.GlyphBase = 0 }},
		{"past unicode", func(c *Config) { c.GlyphBase = 0x10FFF0 }},
		{"surrogates", func(c *Config) { c.GlyphBase = 0xD7C0 }},
		{"zero cell", func(c *Config) { c.CellPixels.X = 0 }},
		{"zero window", func(c *Config) { c.Window.Height = 0 }},
		{"negative frames", func(c *Config) { c.Record.Frames = -1 }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if errors.Cause(err) != ErrInvalid {
				t.Errorf("expected ErrInvalid cause, got %v", err)
			}
		})
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	prod := filepath.Join(dir, "production.yaml")

	if err := os.WriteFile(base, []byte("theme: ocean\nfps: 30\nheader:\n  title: Base\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(prod, []byte("fps: 50\nlog:\n  level: warn\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(base, prod)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "ocean" {
		t.Errorf("expected theme from base, got %s", cfg.Theme)
	}
	if cfg.FPS != 50 {
		t.Errorf("expected overlay fps 50, got %d", cfg.FPS)
	}
	if cfg.Header.Title != "Base" || cfg.Header.Tagline != DefaultTagline {
		t.Errorf("header not merged: %+v", cfg.Header)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "text" {
		t.Errorf("log not merged: %+v", cfg.Log)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("fps: [1, 2\n"), 0644)
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("fps: 0\n"), 0644)
	if _, err := Load(invalid); errors.Cause(err) != ErrInvalid {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("neon")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("calm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.FPS != 24 || cfg.Theme != "ocean" {
		t.Errorf("unexpected calm preset %+v", cfg)
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	if !ApplyPreset(cfg, "quiet") {
		t.Fatal("quiet preset missing")
	}
	if cfg.Header.Show || cfg.Seed != 7 {
		t.Errorf("preset should only touch its own keys: %+v", cfg)
	}
	if ApplyPreset(cfg, "nonexistent") {
		t.Error("expected false for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	if names[0] != "braille" {
		t.Errorf("expected sorted list starting with braille, got %v", names)
	}
}
