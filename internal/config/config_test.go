package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("expected 1024x768 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Layout.NeighborsPerWheel != 2 {
		t.Errorf("expected 2 neighbors per wheel, got %d", cfg.Layout.NeighborsPerWheel)
	}
	if cfg.Audio.LevelCeiling != 0.25 {
		t.Errorf("expected level ceiling 0.25, got %g", cfg.Audio.LevelCeiling)
	}
	if cfg.Mapping.BeadGain != 1.6 || cfg.Mapping.BackgroundGain != 1.2 {
		t.Errorf("unexpected gains: %+v", cfg.Mapping)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("window:\n  width: 640\nlayout:\n  neighbors_per_wheel: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Window.Width)
	}
	// Untouched keys keep their defaults.
	if cfg.Window.Height != 768 {
		t.Errorf("expected default height 768, got %d", cfg.Window.Height)
	}
	if cfg.Layout.NeighborsPerWheel != 3 {
		t.Errorf("expected 3 neighbors, got %d", cfg.Layout.NeighborsPerWheel)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("window: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("window:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error for zero width")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative neighbors", func(c *Config) { c.Layout.NeighborsPerWheel = -1 }},
		{"zero ceiling", func(c *Config) { c.Audio.LevelCeiling = 0 }},
		{"zero tap", func(c *Config) { c.Audio.TapSize = 0 }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
