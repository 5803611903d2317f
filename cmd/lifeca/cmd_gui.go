//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"lifeca/internal/app"
)

func newGUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the board in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := newLogger(cmd, cfg)
			e, err := newEngine(cfg, log)
			if err != nil {
				return err
			}

			game := app.New(e, cfg.Palette())
			tps, _ := cmd.Flags().GetInt("tps")
			ebiten.SetWindowTitle("lifeca - " + e.Rule().Name)
			ebiten.SetTPS(tps)
			ebiten.SetWindowSize(game.WindowSize())

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	bindBoardFlags(cmd)
	cmd.Flags().Int("tps", 60, "Frames per second")
	return cmd
}
