package core

import "fmt"

// MinDimension is the smallest accepted board width or height.
const MinDimension = 2

// Grid stores two row-major boolean buffers: cur holds the last committed
// generation and nxt is where the following one is assembled. Readers only
// ever see cur.
type Grid struct {
	W, H int
	cur  []bool
	nxt  []bool
}

// NewGrid allocates a grid with every cell dead in both buffers.
func NewGrid(w, h int) (*Grid, error) {
	if w < MinDimension || h < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrInvalidDimension, w, h, MinDimension, MinDimension)
	}
	return &Grid{W: w, H: h, cur: make([]bool, w*h), nxt: make([]bool, w*h)}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Alive reports the committed state of (x, y). Coordinates off the board
// read as dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cur[g.Index(x, y)]
}

// Cell is the bounds-checked form of Alive.
func (g *Grid) Cell(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, g.W, g.H)
	}
	return g.cur[g.Index(x, y)], nil
}

// SetCell writes the pending state of (x, y). The change becomes visible
// after the next Commit.
func (g *Grid) SetCell(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, g.W, g.H)
	}
	g.nxt[g.Index(x, y)] = alive
	return nil
}

// Stage fills the pending buffer by evaluating fn for every cell in row-major
// order. fn must only consult the committed buffer.
func (g *Grid) Stage(fn func(x, y int) bool) {
	for y := 0; y < g.H; y++ {
		row := y * g.W
		for x := 0; x < g.W; x++ {
			g.nxt[row+x] = fn(x, y)
		}
	}
}

// Commit copies every pending cell into the committed buffer. The pending
// buffer keeps its values and is the base for subsequent edits.
func (g *Grid) Commit() {
	copy(g.cur, g.nxt)
}

// Clear kills every cell in both buffers.
func (g *Grid) Clear() {
	clear(g.cur)
	clear(g.nxt)
}

// SeedRandom marks target uniformly chosen cells alive in the pending buffer.
// Picks are not deduplicated, so the resulting population is usually below
// target.
func (g *Grid) SeedRandom(r *RNG, target int) {
	size := g.Size()
	for i := 0; i < target; i++ {
		x, y := r.Coord(size)
		g.nxt[g.Index(x, y)] = true
	}
}

// Population counts alive cells in the committed buffer.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur {
		if alive {
			n++
		}
	}
	return n
}

// Equal reports whether v has the same size and committed cells as g.
func (g *Grid) Equal(v View) bool {
	if v.Size() != g.Size() {
		return false
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.cur[g.Index(x, y)] != v.Alive(x, y) {
				return false
			}
		}
	}
	return true
}
