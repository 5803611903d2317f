// Package life runs a bounded Game of Life board: it owns the grid, the
// active rule set, the step scheduler and the run state, and exposes one tick
// entry point for frame loops plus the edit and read operations frontends
// need.
package life

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"lifeca/internal/core"
	"lifeca/internal/logging"
	"lifeca/internal/patterns"
	"lifeca/internal/rules"
)

// ErrNonFinite is returned by New when a numeric setting is NaN or infinite.
var ErrNonFinite = errors.New("setting must be a finite number")

// Engine is single-threaded; callers serialize access.
type Engine struct {
	cfg   Config
	grid  *core.Grid
	rule  rules.RuleSet
	sched *core.Scheduler
	state RunState

	generation  int
	pendingStep bool

	log *slog.Logger
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithLogger routes engine logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New builds an engine and seeds it with cfg.Pattern. Boards smaller than
// 2x2 fail with core.ErrInvalidDimension, NaN or infinite settings with
// ErrNonFinite and an unknown pattern with patterns.ErrUnknownPattern.
func New(cfg Config, opts ...Option) (*Engine, error) {
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("creating board: %w", err)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"cell size", cfg.CellSize}, {"interval", cfg.Interval}, {"density", cfg.Density}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return nil, fmt.Errorf("%w: %s is %v", ErrNonFinite, f.name, f.v)
		}
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultCellSize
	}

	e := &Engine{
		cfg:   cfg,
		grid:  grid,
		sched: core.NewScheduler(cfg.Interval),
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rule = e.lookupRule(cfg.Rule)
	if cfg.Running {
		e.state = Running
	}

	if cfg.Pattern != "" {
		if err := e.Reset(cfg.Pattern, cfg.Seed); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Engine) lookupRule(id rules.ID) rules.RuleSet {
	r, err := rules.Lookup(id)
	if err != nil {
		e.log.Debug("falling back to default rule set", "requested", int(id), "err", err)
	}
	return r
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the board dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// View exposes the committed generation read-only.
func (e *Engine) View() core.View { return boardView{e.grid} }

// boardView hides the grid's mutators from frontends.
type boardView struct{ g *core.Grid }

func (v boardView) Size() core.Size     { return v.g.Size() }
func (v boardView) Alive(x, y int) bool { return v.g.Alive(x, y) }

// Alive reports the committed state of (x, y).
func (e *Engine) Alive(x, y int) bool { return e.grid.Alive(x, y) }

// Generation returns the number of steps committed since the last reset.
func (e *Engine) Generation() int { return e.generation }

// Population counts alive cells in the committed generation.
func (e *Engine) Population() int { return e.grid.Population() }

// Rule returns the active rule set.
func (e *Engine) Rule() rules.RuleSet { return e.rule }

// Interval returns the seconds between scheduled steps.
func (e *Engine) Interval() float64 { return e.sched.Interval() }

// State returns the run state.
func (e *Engine) State() RunState { return e.state }

// CellSize returns the pixel edge of a cell used to map pointer positions.
func (e *Engine) CellSize() float64 { return e.cfg.CellSize }

// Update is the per-frame entry point. It applies events in order, then
// advances the scheduler by dt while running, and commits at most one
// generation. It reports whether a generation was committed.
func (e *Engine) Update(dt float64, events ...Event) bool {
	for _, ev := range events {
		if ev != nil {
			ev.apply(e)
		}
	}

	due := e.pendingStep
	e.pendingStep = false
	if e.state == Running && e.sched.Advance(dt) {
		due = true
	}
	if !due {
		return false
	}
	e.Step()
	return true
}

// Step computes the next generation from the committed one under the active
// rule set and commits it.
func (e *Engine) Step() {
	g, rule := e.grid, e.rule
	g.Stage(func(x, y int) bool {
		return rule.Next(g.Alive(x, y), core.CountNeighbors(g, x, y))
	})
	g.Commit()
	e.generation++
	logging.Trace(e.log, "generation committed", "generation", e.generation, "rule", rule.Slug, "population", g.Population())
}

// ToggleRun flips the run state.
func (e *Engine) ToggleRun() {
	e.SetState(e.state.Toggle())
}

// SetState moves the engine into s. Accumulated time is kept across pauses.
func (e *Engine) SetState(s RunState) {
	if s == e.state {
		return
	}
	e.state = s
	e.log.Info("run state changed", "state", s.String(), "generation", e.generation)
}

// Faster shortens the step interval by one increment.
func (e *Engine) Faster() {
	e.log.Debug("interval changed", "interval", e.sched.Faster())
}

// Slower lengthens the step interval by one increment.
func (e *Engine) Slower() {
	e.log.Debug("interval changed", "interval", e.sched.Slower())
}

// SetInterval sets the step interval, clamped to the scheduler bounds, and
// returns the stored value.
func (e *Engine) SetInterval(seconds float64) float64 {
	v := e.sched.SetInterval(seconds)
	e.log.Debug("interval changed", "interval", v)
	return v
}

// SelectRule switches the rule set used by future steps. The committed
// generation is not touched. Unknown ids select Conway.
func (e *Engine) SelectRule(id rules.ID) {
	r := e.lookupRule(id)
	if r.ID == e.rule.ID {
		return
	}
	e.rule = r
	e.log.Info("rule set changed", "rule", r.Name, "notation", r.Notation())
}

// SetCell force-sets (x, y) and commits immediately, independent of run
// state.
func (e *Engine) SetCell(x, y int, alive bool) error {
	if err := e.grid.SetCell(x, y, alive); err != nil {
		return err
	}
	e.grid.Commit()
	return nil
}

// Clear kills every cell. The generation counter and scheduler are left as
// they are.
func (e *Engine) Clear() {
	e.grid.Clear()
	e.log.Info("board cleared", "generation", e.generation)
}

// Reset clears the board, applies the named pattern with seed, commits it and
// restarts the generation count and step timer.
func (e *Engine) Reset(pattern string, seed int64) error {
	p, err := patterns.Lookup(pattern)
	if err != nil {
		return err
	}
	density := e.cfg.Density
	if density <= 0 {
		density = patterns.DefaultDensity
	}

	e.grid.Clear()
	p.Apply(e.grid, patterns.Options{RNG: core.NewRNG(seed), Density: density})
	e.grid.Commit()
	e.generation = 0
	e.sched.Reset()
	e.pendingStep = false
	e.cfg.Pattern = pattern
	e.cfg.Seed = seed
	e.log.Info("board reset", "pattern", pattern, "seed", seed, "population", e.grid.Population())
	return nil
}
