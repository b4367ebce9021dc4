package linedp

import (
	"github.com/lineforge/nonogram/bitline"
	"github.com/lineforge/nonogram/puzzle"
)

// Solve runs the line-DP of spec.md §4.1 against one line's clue and its
// current (known, filled) masks.
//
// Complexity: Θ(k·N) to build the forward and backward tables, Θ(k·N) to
// project them onto cells — Θ(N²) worst case, as spec.md §4.1 describes.
func Solve(clue puzzle.Clue, known, filled bitline.Mask) (Result, error) {
	n := puzzle.N
	k := len(clue)

	if err := puzzle.ValidateClue(clue, n); err != nil {
		return Result{}, ErrClueTooLong
	}

	if k == 0 {
		if filled != 0 {
			return Result{Contradiction: true}, nil
		}
		full, _ := bitline.Full(n)

		return Result{MustEmpty: full}, nil
	}

	emptyMask := known &^ filled
	nfb := nearestFilledAtOrBefore(filled, n)
	f := computeForward(clue, emptyMask, filled, n, nfb)

	rClue := reverseClue(clue)
	rKnown := reverseBits(known, n)
	rFilled := reverseBits(filled, n)
	rEmptyMask := rKnown &^ rFilled
	rNfb := nearestFilledAtOrBefore(rFilled, n)
	f2 := computeForward(rClue, rEmptyMask, rFilled, n, rNfb)

	// nextStart[j][x]: runs j+1..k can be placed with run j+1 starting at
	// some s >= x, leaving no filled cell in [x, s).
	nextStart := make([][]bool, k)
	for j := 1; j < k; j++ {
		nextStart[j] = make([]bool, n+1)
		for x := n - 1; x >= 0; x-- {
			nextStart[j][x] = f2[k-j][n-1-x] || (!bitline.Test(filled, x) && nextStart[j][x+1])
		}
	}

	ext := func(i, p int) bool {
		if i == k {
			return !anyInRange(filled, p+2, n-1, n)
		}
		if p+2 > n-1 {
			return false
		}

		return nextStart[i][p+2]
	}

	minP := make([]int, k+1)
	maxP := make([]int, k+1)
	feasibleEnd := make([][]bool, k+1)
	for i := 1; i <= k; i++ {
		minP[i], maxP[i] = -1, -1
		feasibleEnd[i] = make([]bool, n)
		for p := 0; p < n; p++ {
			if !f[i][p] || !ext(i, p) {
				continue
			}
			feasibleEnd[i][p] = true
			if minP[i] == -1 {
				minP[i] = p
			}
			maxP[i] = p
		}
		if minP[i] == -1 {
			return Result{Contradiction: true}, nil
		}
	}

	var mustFill, mustEmpty bitline.Mask
	mustFill |= filled
	mustEmpty |= emptyMask

	for i := 1; i <= k; i++ {
		r := clue[i-1]
		lo, hi := maxP[i]-r+1, minP[i]
		if lo <= hi {
			win, err := bitline.RangeFill(lo, hi, n)
			if err != nil {
				return Result{}, err
			}
			mustFill |= win
		}
	}

	// Project mustEmpty from the actual feasible ends, not the
	// [minP,maxP] envelope: a cell inside that envelope can still be
	// covered by no feasible placement when feasible ends are gapped by
	// interior constraints, and such a cell must still come out Empty.
	var coveredMask bitline.Mask
	for i := 1; i <= k; i++ {
		r := clue[i-1]
		for p := 0; p < n; p++ {
			if !feasibleEnd[i][p] {
				continue
			}
			win, err := bitline.RangeFill(p-r+1, p, n)
			if err != nil {
				return Result{}, err
			}
			coveredMask |= win
		}
	}
	full, err := bitline.Full(n)
	if err != nil {
		return Result{}, err
	}
	mustEmpty |= full &^ coveredMask

	return Result{MustFill: mustFill, MustEmpty: mustEmpty}, nil
}

// computeForward builds f(i,p): runs clue[0..i) can be placed within
// columns [0,p] with run i ending exactly at p, for i = 1..len(clue).
func computeForward(clue []int, emptyMask, filled bitline.Mask, n int, nfb []int) [][]bool {
	k := len(clue)
	f := make([][]bool, k+1)
	for i := 1; i <= k; i++ {
		f[i] = make([]bool, n)
	}

	r := clue[0]
	for p := 0; p < n; p++ {
		startp := p - r + 1
		if startp < 0 {
			continue
		}
		if anyInRange(emptyMask, startp, p, n) {
			continue
		}
		if p+1 < n && bitline.Test(filled, p+1) {
			continue
		}
		if startp > 0 && nfb[startp-1] != -1 {
			continue
		}
		f[1][p] = true
	}

	for i := 2; i <= k; i++ {
		r = clue[i-1]
		lastTrue := make([]int, n)
		running := -1
		for x := 0; x < n; x++ {
			if f[i-1][x] {
				running = x
			}
			lastTrue[x] = running
		}

		for p := 0; p < n; p++ {
			startp := p - r + 1
			if startp < 0 {
				continue
			}
			if anyInRange(emptyMask, startp, p, n) {
				continue
			}
			if p+1 < n && bitline.Test(filled, p+1) {
				continue
			}
			hi := startp - 2
			if hi < 0 {
				continue
			}
			nf := -1
			if startp-1 >= 0 {
				nf = nfb[startp-1]
			}
			// Run i-1 must end at or after nf so the filled cell at nf
			// (if any) falls inside it, not in the gap before run i; with
			// no filled cell, it must still end at some real column.
			lo := nf
			if lo < 0 {
				lo = 0
			}
			if lo > hi {
				continue
			}
			if lastTrue[hi] >= lo {
				f[i][p] = true
			}
		}
	}

	return f
}

// nearestFilledAtOrBefore[x] is the largest index <= x with a Filled
// bit set, or -1 if none. A single forward scan, reused by every run.
func nearestFilledAtOrBefore(filled bitline.Mask, n int) []int {
	out := make([]int, n)
	running := -1
	for x := 0; x < n; x++ {
		if bitline.Test(filled, x) {
			running = x
		}
		out[x] = running
	}

	return out
}

// anyInRange reports whether m has any bit set within [lo,hi], clamped
// to [0,n). An empty or out-of-bounds range reports false.
func anyInRange(m bitline.Mask, lo, hi, n int) bool {
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	if lo > hi {
		return false
	}
	win, err := bitline.RangeFill(lo, hi, n)
	if err != nil {
		return false
	}

	return m&win != 0
}

// reverseClue returns clue in reverse run order.
func reverseClue(clue puzzle.Clue) []int {
	out := make([]int, len(clue))
	for i, v := range clue {
		out[len(clue)-1-i] = v
	}

	return out
}

// reverseBits mirrors the low n bits of m end for end.
func reverseBits(m bitline.Mask, n int) bitline.Mask {
	var out bitline.Mask
	for i := 0; i < n; i++ {
		if bitline.Test(m, i) {
			out = bitline.Set(out, n-1-i, n)
		}
	}

	return out
}
