// Package app hosts the ebiten frontend. Device polling lives behind the
// ebiten build tag; translating a frame's input into engine events does not.
package app

import (
	"lifeca/internal/life"
	"lifeca/internal/rules"
)

// Input is one frame's worth of user intent, already debounced.
type Input struct {
	Toggle bool
	Faster bool
	Slower bool
	Clear  bool
	Reseed bool
	Step   bool

	// Rule is a rule set selected this frame, or zero.
	Rule rules.ID

	// PaintAlive and PaintDead hold the held mouse buttons; Cursor is the
	// pointer position in board pixels.
	PaintAlive bool
	PaintDead  bool
	CursorX    float64
	CursorY    float64
}

// Events converts a frame's input into engine events in a fixed order:
// run state, speed, rule, board edits, then single-step. seed is used when a
// reseed is requested.
func Events(in Input, seed int64) []life.Event {
	var events []life.Event
	if in.Toggle {
		events = append(events, life.ToggleRun{})
	}
	if in.Faster {
		events = append(events, life.SpeedUp{})
	}
	if in.Slower {
		events = append(events, life.SpeedDown{})
	}
	if in.Rule != 0 {
		events = append(events, life.SelectRule{ID: in.Rule})
	}
	if in.Clear {
		events = append(events, life.ClearBoard{})
	}
	if in.Reseed {
		events = append(events, life.Reseed{Seed: seed})
	}
	switch {
	case in.PaintAlive:
		events = append(events, life.PaintAlive{X: in.CursorX, Y: in.CursorY})
	case in.PaintDead:
		events = append(events, life.PaintDead{X: in.CursorX, Y: in.CursorY})
	}
	if in.Step {
		events = append(events, life.StepOnce{})
	}
	return events
}
