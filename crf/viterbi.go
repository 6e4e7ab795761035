package crf

import (
	"fmt"
	"math"
)

// ViterbiDecode finds the single most likely state path through tpost
// (block x T transition posteriors) and the per-step quality of each
// transition on that path.
//
// path and qpath must both have length tpost.Rows+1; they are filled in
// place. qpath[0] is deliberately NaN (there is no transition into the
// first state) — that is a contract, not a fault. ViterbiDecode returns the
// best final score, max_d fwd[nblocks, d].
func ViterbiDecode(tpost *Matrix, path []int, qpath []float32) (float32, error) {
	nbase, err := NBaseFromTransitionWidth(tpost.Cols)
	if err != nil {
		return 0, err
	}
	nblocks := tpost.Rows
	if nblocks == 0 {
		return 0, fmt.Errorf("%w: zero blocks", ErrEmptyInput)
	}
	if len(path) != nblocks+1 || len(qpath) != nblocks+1 {
		return 0, fmt.Errorf("%w: path/qpath must have length nblocks+1=%d", ErrEmptyInput, nblocks+1)
	}
	nstate := 2 * nbase

	prev := make([]float32, nstate)
	curr := make([]float32, nstate)
	tb := make([][]int, nblocks)
	for k := range tb {
		tb[k] = make([]int, nstate)
	}

	for k := 0; k < nblocks; k++ {
		row := tpost.Row(k)
		forwardMaxSumTraceback(row, prev, curr, tb[k], nbase)
		prev, curr = curr, prev
	}
	// prev now holds the final row (curr/prev were swapped after the loop).
	final := prev

	// Index of the best final state. Ties resolve to the smallest index,
	// so the comparison below must use strict > and start from state 0.
	bestIdx := 0
	bestVal := final[0]
	for d := 1; d < nstate; d++ {
		if final[d] > bestVal {
			bestVal = final[d]
			bestIdx = d
		}
	}

	path[nblocks] = bestIdx
	for k := nblocks; k >= 1; k-- {
		path[k-1] = tb[k-1][path[k]]
	}

	qpath[0] = float32(math.NaN())
	for k := 1; k <= nblocks; k++ {
		c := TransIndex(path[k-1], path[k], nbase)
		qpath[k] = tpost.At(k-1, c)
	}

	return bestVal, nil
}

// forwardMaxSumTraceback is forwardMaxSumStep plus the traceback bookkeeping
// required by Viterbi: tb[d] records the predecessor state that achieved
// curr[d].
func forwardMaxSumTraceback(weights, prev, curr []float32, tb []int, nbase int) {
	nstate := 2 * nbase
	for d := 0; d < nbase; d++ {
		bestFrom := 0
		bestVal := prev[0] + weights[TransIndex(0, d, nbase)]
		for from := 1; from < nstate; from++ {
			v := prev[from] + weights[TransIndex(from, d, nbase)]
			if v > bestVal {
				bestVal = v
				bestFrom = from
			}
		}
		curr[d] = bestVal
		tb[d] = bestFrom
	}
	for b := 0; b < nbase; b++ {
		d := b + nbase
		bestFrom := b
		bestVal := prev[b] + weights[TransIndex(b, d, nbase)]
		if stay := prev[d] + weights[TransIndex(d, d, nbase)]; stay > bestVal {
			bestVal = stay
			bestFrom = d
		}
		curr[d] = bestVal
		tb[d] = bestFrom
	}
}
