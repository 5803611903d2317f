// Package config loads lifeca settings from defaults, an optional YAML file,
// LIFECA_* environment variables and command-line flags, in that order.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"lifeca/internal/core"
	"lifeca/internal/life"
	"lifeca/internal/logging"
	"lifeca/internal/patterns"
	"lifeca/internal/render"
	"lifeca/internal/rules"
)

// Config contains all lifeca settings.
type Config struct {
	Board   BoardConfig   `json:"board" yaml:"board"`
	Sim     SimConfig     `json:"sim" yaml:"sim"`
	Render  RenderConfig  `json:"render" yaml:"render"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// BoardConfig sizes the board and its on-screen cells.
type BoardConfig struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// CellSize is the pixel edge of one cell.
	CellSize float64 `json:"cell_size" yaml:"cell_size"`
}

// SimConfig controls the starting state of the engine.
type SimConfig struct {
	// Interval is the seconds between generations, 0.05 to 2.0.
	Interval float64 `json:"interval" yaml:"interval"`
	Running  bool    `json:"running" yaml:"running"`

	// Rule accepts an id (1-4), slug, display name or B/S notation.
	Rule    string  `json:"rule" yaml:"rule"`
	Pattern string  `json:"pattern" yaml:"pattern"`
	Seed    int64   `json:"seed" yaml:"seed"`
	Density float64 `json:"density" yaml:"density"`
}

// RenderConfig holds frontend colors as hex strings.
type RenderConfig struct {
	Alive     string `json:"alive" yaml:"alive"`
	Dead      string `json:"dead" yaml:"dead"`
	Line      string `json:"line" yaml:"line"`
	GridLines bool   `json:"grid_lines" yaml:"grid_lines"`
}

// LoggingConfig sets log verbosity.
type LoggingConfig struct {
	// Level is one of "trace", "debug", "info" (default), "warn", "error".
	Level string `json:"level" yaml:"level"`
}

// Default returns the stock configuration.
func Default() *Config {
	ec := life.DefaultConfig()
	return &Config{
		Board: BoardConfig{
			Width:    ec.Width,
			Height:   ec.Height,
			CellSize: ec.CellSize,
		},
		Sim: SimConfig{
			Interval: ec.Interval,
			Running:  ec.Running,
			Rule:     rules.Default().Slug,
			Pattern:  ec.Pattern,
			Seed:     ec.Seed,
			Density:  ec.Density,
		},
		Render: RenderConfig{
			Alive:     "#00ff00",
			Dead:      "#000000",
			Line:      "#ff0000",
			GridLines: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds a configuration from defaults, then path if it is not empty,
// then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Board.Width < core.MinDimension || c.Board.Height < core.MinDimension {
		return fmt.Errorf("board must be at least %dx%d, got %dx%d", core.MinDimension, core.MinDimension, c.Board.Width, c.Board.Height)
	}
	if !finite(c.Board.CellSize) || c.Board.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %v", c.Board.CellSize)
	}
	if !finite(c.Sim.Interval) || c.Sim.Interval < core.MinInterval || c.Sim.Interval > core.MaxInterval {
		return fmt.Errorf("interval must be between %v and %v, got %v", core.MinInterval, core.MaxInterval, c.Sim.Interval)
	}
	if !finite(c.Sim.Density) || c.Sim.Density < 0 || c.Sim.Density > 1 {
		return fmt.Errorf("density must be between 0 and 1, got %v", c.Sim.Density)
	}
	if _, err := rules.ByName(c.Sim.Rule); err != nil {
		return err
	}
	if _, err := patterns.Lookup(c.Sim.Pattern); err != nil {
		return err
	}
	for name, v := range map[string]string{"alive": c.Render.Alive, "dead": c.Render.Dead, "line": c.Render.Line} {
		if _, err := render.ParseHexColor(v); err != nil {
			return fmt.Errorf("render.%s: %w", name, err)
		}
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: trace, debug, info, warn, error)", c.Logging.Level)
	}
	return nil
}

// Engine converts the configuration into engine construction settings. An
// unrecognized rule resolves to Conway.
func (c *Config) Engine() life.Config {
	r, _ := rules.ByName(c.Sim.Rule)
	return life.Config{
		Width:    c.Board.Width,
		Height:   c.Board.Height,
		CellSize: c.Board.CellSize,
		Interval: c.Sim.Interval,
		Running:  c.Sim.Running,
		Rule:     r.ID,
		Pattern:  c.Sim.Pattern,
		Seed:     c.Sim.Seed,
		Density:  c.Sim.Density,
	}
}

// Palette resolves the render colors. Invalid entries fall back to the
// default palette's colors.
func (c *Config) Palette() render.Palette {
	p := render.DefaultPalette()
	if col, err := render.ParseHexColor(c.Render.Alive); err == nil {
		p.Alive = col
	}
	if col, err := render.ParseHexColor(c.Render.Dead); err == nil {
		p.Dead = col
	}
	if col, err := render.ParseHexColor(c.Render.Line); err == nil {
		p.Line = col
	}
	p.GridLines = c.Render.GridLines
	return p
}

// BindFlags registers flags for the board and simulation settings on fs,
// using c's values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Board.Width, "width", c.Board.Width, "board width in cells")
	fs.IntVar(&c.Board.Height, "height", c.Board.Height, "board height in cells")
	fs.Float64Var(&c.Board.CellSize, "cell-size", c.Board.CellSize, "cell edge in pixels")
	fs.Float64Var(&c.Sim.Interval, "interval", c.Sim.Interval, "seconds between generations")
	fs.BoolVar(&c.Sim.Running, "running", c.Sim.Running, "start running instead of paused")
	fs.StringVar(&c.Sim.Rule, "rule", c.Sim.Rule, "rule set id, slug or B/S notation")
	fs.StringVar(&c.Sim.Pattern, "pattern", c.Sim.Pattern, "starting pattern")
	fs.Int64Var(&c.Sim.Seed, "seed", c.Sim.Seed, "seed for the random pattern")
	fs.Float64Var(&c.Sim.Density, "density", c.Sim.Density, "fraction of cells the random pattern targets")
}

// ApplyFlags copies every flag the user set explicitly on fs into dst, so a
// config file loaded after BindFlags does not mask command-line values.
func ApplyFlags(fs *pflag.FlagSet, dst *Config) error {
	var firstErr error
	fs.Visit(func(f *pflag.Flag) {
		if firstErr != nil {
			return
		}
		if err := dst.set(f.Name, f.Value.String()); err != nil {
			firstErr = fmt.Errorf("flag --%s: %w", f.Name, err)
		}
	})
	return firstErr
}

func (c *Config) set(name, v string) error {
	var err error
	switch name {
	case "width":
		c.Board.Width, err = strconv.Atoi(v)
	case "height":
		c.Board.Height, err = strconv.Atoi(v)
	case "cell-size":
		c.Board.CellSize, err = strconv.ParseFloat(v, 64)
	case "interval":
		c.Sim.Interval, err = strconv.ParseFloat(v, 64)
	case "running":
		c.Sim.Running, err = strconv.ParseBool(v)
	case "rule":
		c.Sim.Rule = v
	case "pattern":
		c.Sim.Pattern = v
	case "seed":
		c.Sim.Seed, err = strconv.ParseInt(v, 10, 64)
	case "density":
		c.Sim.Density, err = strconv.ParseFloat(v, 64)
	}
	return err
}

// applyEnvOverrides applies LIFECA_* environment variables to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFECA_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Board.Width = n
		}
	}
	if v := os.Getenv("LIFECA_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Board.Height = n
		}
	}
	if v := os.Getenv("LIFECA_CELL_SIZE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Board.CellSize = f
		}
	}
	if v := os.Getenv("LIFECA_INTERVAL"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Sim.Interval = f
		}
	}
	if v := os.Getenv("LIFECA_RUNNING"); v != "" {
		cfg.Sim.Running = v == "true" || v == "1"
	}
	if v := os.Getenv("LIFECA_RULE"); v != "" {
		cfg.Sim.Rule = v
	}
	if v := os.Getenv("LIFECA_PATTERN"); v != "" {
		cfg.Sim.Pattern = v
	}
	if v := os.Getenv("LIFECA_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Sim.Seed = n
		}
	}
	if v := os.Getenv("LIFECA_DENSITY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Sim.Density = f
		}
	}
	if v := os.Getenv("LIFECA_GRID_LINES"); v != "" {
		cfg.Render.GridLines = v == "true" || v == "1"
	}
	if v := os.Getenv("LIFECA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
}
