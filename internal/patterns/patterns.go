// Package patterns provides named starting boards. Each pattern writes into
// a board's pending buffer; the caller commits.
package patterns

import (
	"errors"
	"fmt"
	"sort"

	"lifeca/internal/core"
)

// ErrUnknownPattern is returned by Lookup for unregistered names.
var ErrUnknownPattern = errors.New("unknown pattern")

// DefaultDensity is the fraction of the board the random pattern targets.
const DefaultDensity = 0.5

// Board is the write side of a grid that patterns draw onto.
type Board interface {
	Size() core.Size
	SetCell(x, y int, alive bool) error
	SeedRandom(r *core.RNG, target int)
}

// Options carries inputs for patterns that need them.
type Options struct {
	RNG     *core.RNG
	Density float64
}

// Pattern is a named board initializer.
type Pattern struct {
	Name        string
	Description string
	Apply       func(b Board, opts Options)
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name.
func Register(p Pattern) {
	if p.Name == "" || p.Apply == nil {
		return
	}
	registry[p.Name] = p
}

// Lookup returns the pattern registered as name.
func Lookup(name string) (Pattern, error) {
	p, ok := registry[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// All returns the registered patterns sorted by name.
func All() []Pattern {
	out := make([]Pattern, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// set writes an alive cell, clipping anything that does not fit the board.
func set(b Board, x, y int) {
	_ = b.SetCell(x, y, true)
}
