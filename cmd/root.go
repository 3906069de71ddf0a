// Package cmd holds the command line entry points.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/config"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/layout"
)

var (
	configPath string
	seedFlag   uint32
	widthFlag  int
	heightFlag int
)

var rootCmd = &cobra.Command{
	Use:   "wheels",
	Short: "Audio reactive 'Wheels of Fortune' generative artwork",
	Long: `wheels composes a canvas of decorated wheels joined by bead strings and
animates it with the volume of a playing track.

Controls: Space or the Play/Pause button toggles the music, R draws a new
composition, Shift+R regenerates the current seed, S saves a PNG, Esc/Q quits.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to config.yaml (default: ~/.config/wheels/config.yaml)")
	pf.Uint32Var(&seedFlag, "seed", 0, "composition seed (0 = random)")
	pf.IntVar(&widthFlag, "width", 0, "canvas width (0 = config)")
	pf.IntVar(&heightFlag, "height", 0, "canvas height (0 = config)")
}

// loadConfig applies the persistent flags on top of the config file and
// installs the configured logger as the default.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if widthFlag > 0 {
		cfg.Window.Width = widthFlag
	}
	if heightFlag > 0 {
		cfg.Window.Height = heightFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid settings: %w", err)
	}
	logger := cfg.Logger()
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func seed() uint32 {
	if seedFlag != 0 {
		return seedFlag
	}
	return layout.NewSeed()
}
