package life

import "lifeca/internal/rules"

// Event is a discrete input command submitted by a frontend. Events are
// applied in the order given, before the tick's scheduled step.
type Event interface {
	apply(e *Engine)
}

// ToggleRun flips between Paused and Running.
type ToggleRun struct{}

// SpeedUp shortens the step interval.
type SpeedUp struct{}

// SpeedDown lengthens the step interval.
type SpeedDown struct{}

// SelectRule switches the active rule set. Unknown ids select Conway.
type SelectRule struct{ ID rules.ID }

// PaintAlive forces the cell under pointer position (X, Y) alive.
type PaintAlive struct{ X, Y float64 }

// PaintDead forces the cell under pointer position (X, Y) dead.
type PaintDead struct{ X, Y float64 }

// ClearBoard kills every cell.
type ClearBoard struct{}

// Reseed rebuilds the board from the configured pattern, or "random" when
// none was configured, with a new seed.
type Reseed struct{ Seed int64 }

// StepOnce requests a single generation on this tick even while paused.
type StepOnce struct{}

func (ToggleRun) apply(e *Engine) {
	e.ToggleRun()
}

func (SpeedUp) apply(e *Engine) {
	e.Faster()
}

func (SpeedDown) apply(e *Engine) {
	e.Slower()
}

func (ev SelectRule) apply(e *Engine) {
	e.SelectRule(ev.ID)
}

func (ev PaintAlive) apply(e *Engine) {
	e.SetCellAt(ev.X, ev.Y, true)
}

func (ev PaintDead) apply(e *Engine) {
	e.SetCellAt(ev.X, ev.Y, false)
}

func (ClearBoard) apply(e *Engine) {
	e.Clear()
}

func (StepOnce) apply(e *Engine) {
	e.pendingStep = true
}

func (ev Reseed) apply(e *Engine) {
	pattern := e.cfg.Pattern
	if pattern == "" {
		pattern = "random"
	}
	if err := e.Reset(pattern, ev.Seed); err != nil {
		e.log.Warn("reseed failed", "pattern", pattern, "err", err)
	}
}
