package core

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells on a board of this size.
func (s Size) Cells() int { return s.W * s.H }

// Contains reports whether (x, y) lies on the board.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// View is read-only access to a committed generation. Renderers and the
// neighbor counter only ever see a board through this interface.
type View interface {
	Size() Size
	Alive(x, y int) bool
}

// Snapshot copies the state of v into a new row-major slice.
func Snapshot(v View) []bool {
	size := v.Size()
	out := make([]bool, size.Cells())
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			out[y*size.W+x] = v.Alive(x, y)
		}
	}
	return out
}

// Population counts the alive cells in v.
func Population(v View) int {
	size := v.Size()
	n := 0
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if v.Alive(x, y) {
				n++
			}
		}
	}
	return n
}
