package batch

import "errors"

// ErrNoOutcome is returned by WriteSolution when asked to render a
// Result whose Err is set: such a Result has no solve outcome to
// write. WriteBatch skips these Results instead of calling
// WriteSolution on them.
var ErrNoOutcome = errors.New("batch: result has no outcome to write")
