package nonogram

import "errors"

// ErrOptionViolation is returned by NewSolveContext when a supplied
// Option carries an invalid value.
var ErrOptionViolation = errors.New("nonogram: invalid option supplied")
