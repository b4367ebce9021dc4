package zobrist

import "errors"

// ErrOptionViolation is returned by New when a supplied Option carries
// an invalid value (e.g. non-positive capacity).
var ErrOptionViolation = errors.New("zobrist: invalid option supplied")
