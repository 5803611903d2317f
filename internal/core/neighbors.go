package core

// mooreOffsets lists the eight relative positions around a cell.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CountNeighbors returns how many of the up to eight cells around (x, y) are
// alive in v. Offsets that fall off the board are skipped; there is no
// wrapping.
func CountNeighbors(v View, x, y int) int {
	size := v.Size()
	n := 0
	for _, off := range mooreOffsets {
		nx, ny := x+off[0], y+off[1]
		if !size.Contains(nx, ny) {
			continue
		}
		if v.Alive(nx, ny) {
			n++
		}
	}
	return n
}

// Position classifies a cell by where it sits on the board.
type Position uint8

const (
	PositionInterior Position = iota
	PositionTopLeft
	PositionTop
	PositionTopRight
	PositionLeft
	PositionRight
	PositionBottomLeft
	PositionBottom
	PositionBottomRight
)

// Classify returns the position class of (x, y) on a board of size s. On
// boards of at least MinDimension in both directions the classes never
// overlap.
func Classify(s Size, x, y int) Position {
	left, right := x == 0, x == s.W-1
	top, bottom := y == 0, y == s.H-1
	switch {
	case top && left:
		return PositionTopLeft
	case top && right:
		return PositionTopRight
	case bottom && left:
		return PositionBottomLeft
	case bottom && right:
		return PositionBottomRight
	case top:
		return PositionTop
	case bottom:
		return PositionBottom
	case left:
		return PositionLeft
	case right:
		return PositionRight
	default:
		return PositionInterior
	}
}

// MaxNeighbors returns the largest neighbor count a cell in this position can
// have.
func (p Position) MaxNeighbors() int {
	switch p {
	case PositionInterior:
		return 8
	case PositionTopLeft, PositionTopRight, PositionBottomLeft, PositionBottomRight:
		return 3
	default:
		return 5
	}
}

func (p Position) String() string {
	switch p {
	case PositionTopLeft:
		return "top-left"
	case PositionTop:
		return "top"
	case PositionTopRight:
		return "top-right"
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	case PositionBottomLeft:
		return "bottom-left"
	case PositionBottom:
		return "bottom"
	case PositionBottomRight:
		return "bottom-right"
	default:
		return "interior"
	}
}
