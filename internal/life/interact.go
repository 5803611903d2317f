package life

import "math"

// CellAt maps a pointer position in pixels to board coordinates. ok is false
// when the position is off the board.
func (e *Engine) CellAt(px, py float64) (x, y int, ok bool) {
	if math.IsNaN(px) || math.IsNaN(py) {
		return 0, 0, false
	}
	size := e.cfg.CellSize
	fx := math.Floor(px / size)
	fy := math.Floor(py / size)
	s := e.grid.Size()
	if fx < 0 || fy < 0 || fx >= float64(s.W) || fy >= float64(s.H) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// SetCellAt force-sets the cell under pointer position (px, py) and commits
// it so the edit shows on the next frame, whether or not the simulation is
// running. Positions off the board are ignored and report false.
func (e *Engine) SetCellAt(px, py float64, alive bool) bool {
	x, y, ok := e.CellAt(px, py)
	if !ok {
		return false
	}
	return e.SetCell(x, y, alive) == nil
}
