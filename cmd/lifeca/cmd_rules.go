package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lifeca/internal/patterns"
	"lifeca/internal/rules"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rule sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			all := rules.All()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				type entry struct {
					ID       int    `json:"id"`
					Slug     string `json:"slug"`
					Name     string `json:"name"`
					Notation string `json:"notation"`
					Birth    []int  `json:"birth"`
					Survive  []int  `json:"survive"`
				}
				out := make([]entry, 0, len(all))
				for _, r := range all {
					out = append(out, entry{int(r.ID), r.Slug, r.Name, r.Notation(), r.Birth(), r.Survive()})
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tSLUG\tNAME\tNOTATION")
			for _, r := range all {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.Slug, r.Name, r.Notation())
			}
			return tw.Flush()
		},
	}
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the starting patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			all := patterns.All()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				out := make([]map[string]string, 0, len(all))
				for _, p := range all {
					out = append(out, map[string]string{"name": p.Name, "description": p.Description})
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, p := range all {
				fmt.Fprintf(tw, "%s\t%s\n", p.Name, p.Description)
			}
			return tw.Flush()
		},
	}
}
