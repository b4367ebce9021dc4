package bitline

import "errors"

// Sentinel errors for bitline. Validation errors only: Full returns
// ErrBadWidth and RangeFill returns ErrBadRange. Clip, Set and
// FirstUnset panic on a width outside (0, MaxWidth] instead of
// returning an error, and no function checks bit positions.
var (
	// ErrBadWidth indicates a requested width is outside (0, MaxWidth].
	ErrBadWidth = errors.New("bitline: width out of range")

	// ErrBadPosition indicates a bit position is outside [0, width).
	ErrBadPosition = errors.New("bitline: position out of range")

	// ErrBadRange indicates an inclusive [lo, hi] range is malformed
	// (lo > hi, or either bound outside [0, width)).
	ErrBadRange = errors.New("bitline: invalid range")
)
