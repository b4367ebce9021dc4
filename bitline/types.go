package bitline

import "math/bits"

// Mask is an N-bit-wide bitvector over a single line. Bit i corresponds to
// cell i of that line. Only the low `width` bits are ever meaningful; all
// exported operations re-mask their output to `width` bits.
//
// Complexity: every operation in this file is O(1) (single machine-word
// arithmetic); there is no per-width loop anywhere in the hot path.
type Mask uint32

// MaxWidth is the largest line width Mask can represent without truncation.
const MaxWidth = 32

// Full returns a Mask with the low `width` bits set (1) and everything above
// zero. Returns ErrBadWidth if width is outside (0, MaxWidth].
//
// Complexity: O(1).
func Full(width int) (Mask, error) {
	if width <= 0 || width > MaxWidth {
		return 0, ErrBadWidth
	}
	if width == MaxWidth {
		return Mask(^uint32(0)), nil
	}

	return Mask((uint32(1) << uint(width)) - 1), nil
}

// mustFull panics if width is invalid. Clip, Set and FirstUnset pass
// their caller's width straight through to it, so they panic on an
// invalid width rather than returning ErrBadWidth.
func mustFull(width int) Mask {
	m, err := Full(width)
	if err != nil {
		panic(err)
	}

	return m
}

// Clip masks m down to its low `width` bits, discarding anything above.
// This is the "must be masked to zero after every operation" invariant made
// explicit and reusable.
//
// Complexity: O(1).
func Clip(m Mask, width int) Mask {
	return m & mustFull(width)
}

// Test reports whether bit i is set in m.
//
// Complexity: O(1).
func Test(m Mask, i int) bool {
	return m&(Mask(1)<<uint(i)) != 0
}

// Set returns m with bit i forced to 1, re-masked to `width` bits.
//
// Complexity: O(1).
func Set(m Mask, i, width int) Mask {
	return Clip(m|(Mask(1)<<uint(i)), width)
}

// Clear returns m with bit i forced to 0.
//
// Complexity: O(1).
func Clear(m Mask, i int) Mask {
	return m &^ (Mask(1) << uint(i))
}

// PopCount returns the number of set bits in m.
//
// Complexity: O(1) (hardware popcount via math/bits).
func PopCount(m Mask) int {
	return bits.OnesCount32(uint32(m))
}

// RangeFill returns a Mask with bits [lo, hi] (inclusive) set, re-masked to
// `width` bits. Returns ErrBadRange if lo > hi or either bound lies outside
// [0, width).
//
// Complexity: O(1).
func RangeFill(lo, hi, width int) (Mask, error) {
	if lo < 0 || hi < 0 || lo >= width || hi >= width || lo > hi {
		return 0, ErrBadRange
	}
	span := hi - lo + 1
	var block Mask
	if span >= width {
		block = mustFull(width)
	} else {
		block = (Mask(1) << uint(span)) - 1
	}

	return Clip(block<<uint(lo), width), nil
}

// FirstUnset returns the index of the lowest unset bit in m within
// [0, width), or -1 if all `width` bits are set.
//
// Complexity: O(1).
func FirstUnset(m Mask, width int) int {
	inv := ^m & mustFull(width)
	if inv == 0 {
		return -1
	}

	return bits.TrailingZeros32(uint32(inv))
}
