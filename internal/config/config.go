// Package config loads the application settings. Defaults are embedded and a
// user YAML file may override any subset of them.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

const (
	// Play/Pause button dimensions; the button is centred at the bottom edge.
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonMargin = 4
)

// Config holds every tunable of the application.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Layout  LayoutConfig  `yaml:"layout"`
	Audio   AudioConfig   `yaml:"audio"`
	Mapping MappingConfig `yaml:"mapping"`
	Export  ExportConfig  `yaml:"export"`
	Log     LogConfig     `yaml:"log"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type LayoutConfig struct {
	NeighborsPerWheel int `yaml:"neighbors_per_wheel"`
}

// AudioConfig describes the track and how its volume level is measured.
type AudioConfig struct {
	Track        string  `yaml:"track"`
	BufferMs     int     `yaml:"buffer_ms"`
	TapSize      int     `yaml:"tap_size"`     // ring buffer length in stereo frames
	LevelWindow  int     `yaml:"level_window"` // frames averaged into one RMS reading
	LevelCeiling float64 `yaml:"level_ceiling"`
}

// MappingConfig holds the coefficients of the level -> visual parameter mapping.
type MappingConfig struct {
	RotationBase   float64 `yaml:"rotation_base"`
	RotationGain   float64 `yaml:"rotation_gain"`
	BeadGain       float64 `yaml:"bead_gain"`
	BackgroundGain float64 `yaml:"background_gain"`
}

type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load returns the defaults overlaid with the file at path. An empty path tries
// the user config locations and silently keeps the defaults when none exists.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = findUserConfig()
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func findUserConfig() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	paths := []string{
		filepath.Join(home, ".config", "wheels", "config.yaml"),
		filepath.Join(home, ".config", "wheels", "config.yml"),
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Layout.NeighborsPerWheel < 0 {
		errs = append(errs, fmt.Errorf("neighbors_per_wheel must not be negative, got %d", c.Layout.NeighborsPerWheel))
	}
	if c.Audio.LevelCeiling <= 0 {
		errs = append(errs, fmt.Errorf("level_ceiling must be positive, got %g", c.Audio.LevelCeiling))
	}
	if c.Audio.TapSize <= 0 || c.Audio.LevelWindow <= 0 {
		errs = append(errs, errors.New("tap_size and level_window must be positive"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// Logger builds the slog logger described by the log section.
func (c *Config) Logger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
