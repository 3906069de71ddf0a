package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/anim"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/game"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/layout"
)

var outFlag string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one still composition to a PNG without opening a window",
	Example: `  wheels render --seed 42 --width 900 --height 900 --out wheels.png`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		state := layout.NewState(cfg.Layout.NeighborsPerWheel, logger)
		state.SetSeed(seed())
		comp := state.Regenerate(true, float64(cfg.Window.Width), float64(cfg.Window.Height))

		if err := game.WritePNG(outFlag, comp, anim.Rest()); err != nil {
			return err
		}
		logger.Info("frame written", "path", outFlag, "seed", comp.Seed)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&outFlag, "out", "o", "wheels.png", "output PNG path")
	rootCmd.AddCommand(renderCmd)
}
