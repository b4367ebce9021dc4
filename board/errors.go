package board

import "errors"

// Sentinel errors for board state transitions.
var (
	// ErrCellContradiction indicates SetCell attempted to assign a cell
	// a value that conflicts with its already-known value.
	ErrCellContradiction = errors.New("board: cell contradiction")
)
