package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lifeca/internal/life"
	"lifeca/internal/render"
)

type runOutput struct {
	Generation int      `json:"generation"`
	Population int      `json:"population"`
	Rule       string   `json:"rule"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Rows       []string `json:"rows"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step the board headlessly and print it",
		Long: `Feed the engine a fixed number of frames of --dt seconds each, as a
frame loop would, and print the final board. The engine is started running.`,
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

			ticks, _ := cmd.Flags().GetInt("ticks")
			dt, _ := cmd.Flags().GetFloat64("dt")
			frames, _ := cmd.Flags().GetBool("frames")
			if ticks < 0 {
				return fmt.Errorf("ticks must be non-negative, got %d", ticks)
			}

			out := cmd.OutOrStdout()
			e.SetState(life.Running)
			for i := 0; i < ticks; i++ {
				if e.Update(dt) && frames {
					if err := render.WriteText(out, e.View(), '#', '.'); err != nil {
						return err
					}
					fmt.Fprintln(out)
				}
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				var b strings.Builder
				if err := render.WriteText(&b, e.View(), '#', '.'); err != nil {
					return err
				}
				size := e.Size()
				return json.NewEncoder(out).Encode(runOutput{
					Generation: e.Generation(),
					Population: e.Population(),
					Rule:       e.Rule().Slug,
					Width:      size.W,
					Height:     size.H,
					Rows:       strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n"),
				})
			}
			if !frames {
				if err := render.WriteText(out, e.View(), '#', '.'); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "generation %d population %d rule %s\n", e.Generation(), e.Population(), e.Rule().Slug)
			return nil
		},
	}
	bindBoardFlags(cmd)
	cmd.Flags().Int("ticks", 10, "Frames to feed the engine")
	cmd.Flags().Float64("dt", 0.1, "Seconds per frame")
	cmd.Flags().Bool("frames", false, "Print the board after every committed generation")
	return cmd
}
