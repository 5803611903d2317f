package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"lifeca/internal/rules"
	"lifeca/internal/sweep"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare rule sets from the same starting board",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := newLogger(cmd, cfg)

			generations, _ := cmd.Flags().GetInt("generations")
			workers, _ := cmd.Flags().GetInt("workers")
			names, _ := cmd.Flags().GetStringSlice("rules")
			seeds, _ := cmd.Flags().GetInt64Slice("seeds")

			var ids []rules.ID
			for _, name := range names {
				r, err := rules.ByName(name)
				if err != nil {
					return err
				}
				ids = append(ids, r.ID)
			}

			results, err := sweep.Run(cmd.Context(), sweep.Options{
				Board:       cfg.Engine(),
				Generations: generations,
				Workers:     workers,
				Rules:       ids,
				Seeds:       seeds,
				Logger:      log,
			})
			if err != nil {
				return fmt.Errorf("sweep failed: %w", err)
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(results)
			}
			return sweep.WriteTable(cmd.OutOrStdout(), results)
		},
	}
	bindBoardFlags(cmd)
	cmd.Flags().Int("generations", 100, "Generations to run per scenario")
	cmd.Flags().Int("workers", runtime.NumCPU(), "Scenarios to run at once")
	cmd.Flags().StringSlice("rules", nil, "Rule sets to compare (default all)")
	cmd.Flags().Int64Slice("seeds", nil, "Seeds to run each rule set with (default --seed)")
	return cmd
}
