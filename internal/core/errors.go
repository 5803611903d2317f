package core

import "errors"

var (
	// ErrInvalidDimension is returned when a board is narrower or shorter
	// than MinDimension.
	ErrInvalidDimension = errors.New("invalid board dimension")

	// ErrOutOfBounds is returned for cell access outside the board.
	ErrOutOfBounds = errors.New("cell out of bounds")
)
