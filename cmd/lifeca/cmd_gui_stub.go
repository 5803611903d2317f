//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNoGUI = errors.New("the gui command requires building with the 'ebiten' tag: go build -tags ebiten ./cmd/lifeca")

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the board in a window (needs -tags ebiten)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNoGUI
		},
	}
}
