package life

import (
	"lifeca/internal/core"
	"lifeca/internal/patterns"
	"lifeca/internal/rules"
)

// DefaultCellSize is the on-screen edge of one cell in pixels.
const DefaultCellSize = 50

// Config holds the construction-time settings of an Engine.
type Config struct {
	Width    int
	Height   int
	CellSize float64

	Interval float64
	Running  bool
	Rule     rules.ID

	Pattern string
	Seed    int64
	Density float64
}

// DefaultConfig returns a 20x12 board, paused, stepping every 0.1s under
// Conway's rules with a random half-density start.
func DefaultConfig() Config {
	return Config{
		Width:    20,
		Height:   12,
		CellSize: DefaultCellSize,
		Interval: core.DefaultInterval,
		Running:  false,
		Rule:     rules.Conway,
		Pattern:  "random",
		Seed:     42,
		Density:  patterns.DefaultDensity,
	}
}
