package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/audio"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/game"
)

var trackFlag string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive window (default)",
	RunE:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().StringVar(&trackFlag, "track", "", "audio file to play (wav, mp3 or flac)")
	}
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if trackFlag != "" {
		cfg.Audio.Track = trackFlag
	}

	player := audio.NewPlayer(audio.Options{
		Buffer:      time.Duration(cfg.Audio.BufferMs) * time.Millisecond,
		TapSize:     cfg.Audio.TapSize,
		LevelWindow: cfg.Audio.LevelWindow,
	}, logger)
	defer player.Close()

	if cfg.Audio.Track != "" {
		if err := player.Load(cfg.Audio.Track); err != nil {
			return fmt.Errorf("loading track: %w", err)
		}
	}

	g := game.New(cfg, player, seed(), logger)
	if err := game.Run(g); err != nil {
		logger.Error("game loop failed", "error", err)
		return err
	}
	return nil
}
