// Package propagate implements the fixpoint constraint-propagation loop
// of spec.md §4.3: drain a work queue of line ids, consult the Zobrist
// cache, fall back to linedp.Solve on a miss, apply newly forced cells
// to the board, and enqueue every cross-line a changed cell touches.
//
// The queue is a FIFO with set semantics (a line id enqueued while
// already pending is not duplicated), modeled on the level-building BFS
// loop in the teacher's flow/dinic.go: a slice-backed queue walked by
// index plus a membership set, rather than a container/list or a
// separately imported queue package.
package propagate
