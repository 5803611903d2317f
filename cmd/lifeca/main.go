package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lifeca/internal/config"
	"lifeca/internal/life"
	"lifeca/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lifeca",
		Short: "Bounded Game of Life with switchable rule sets",
		Long: `lifeca runs Conway's Game of Life and three related rule sets
(Day and Night, Walled Cities, Coral Growth) on a fixed, non-wrapping board.

Use 'gui' for the ebiten window, 'tui' for the terminal, 'run' for headless
stepping and 'sweep' to compare rule sets from the same start.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newGUICmd(),
		newTUICmd(),
		newRunCmd(),
		newSweepCmd(),
		newRulesCmd(),
		newPatternsCmd(),
	)
	return rootCmd
}

// bindBoardFlags registers the board and simulation overrides on cmd.
func bindBoardFlags(cmd *cobra.Command) {
	config.Default().BindFlags(cmd.Flags())
}

// loadConfig resolves defaults, the --config file, LIFECA_* variables and
// explicitly set flags, then validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyFlags(cmd.Flags(), cfg); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
}

func newEngine(cfg *config.Config, log *slog.Logger) (*life.Engine, error) {
	e, err := life.New(cfg.Engine(), life.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}
	return e, nil
}
