package crf

import (
	"fmt"
	"math"
)

// ComputeTransitionPosteriors converts per-block transition log-weights
// logprob[nblocks, T] into a block x T matrix of transition posteriors.
//
// The computation is a max-semiring forward-backward pass (§4.2): the
// resulting tpost is a Viterbi posterior per transition — the log-score of
// the best path that uses that transition at that block — not a
// Baum-Welch sum-posterior. Substituting logsumexp for max in the backward
// pass would silently change this into a different (and, for this system,
// wrong) quantity; downstream calibration assumes the max-semiring one.
//
// When wantLog is false the returned matrix holds exp(tpost) instead of
// tpost, computed in place over the same buffer.
func ComputeTransitionPosteriors(logprob *Matrix, wantLog bool) (*Matrix, error) {
	nbase, err := NBaseFromTransitionWidth(logprob.Cols)
	if err != nil {
		return nil, err
	}
	nblocks := logprob.Rows
	if nblocks == 0 {
		return nil, fmt.Errorf("%w: zero blocks", ErrEmptyInput)
	}
	nstate := 2 * nbase

	fwd := make([][]float32, nblocks+1)
	for k := range fwd {
		fwd[k] = make([]float32, nstate)
	}
	for k := 0; k < nblocks; k++ {
		forwardMaxSumStep(logprob.Row(k), fwd[k], fwd[k+1], nbase)
	}

	tpost := NewMatrix(nblocks, logprob.Cols)

	bwdCur := make([]float32, nstate) // bwd[nblocks, ·] = 0
	bwdNext := make([]float32, nstate)
	negInf := float32(math.Inf(-1))

	for k := nblocks; k >= 1; k-- {
		row := logprob.Row(k - 1)
		out := tpost.Row(k - 1)
		for i := range bwdNext {
			bwdNext[i] = negInf
		}

		// Flip destinations: to < nbase, from ranges over all 2*nbase states.
		for to := 0; to < nbase; to++ {
			for from := 0; from < nstate; from++ {
				c := TransIndex(from, to, nbase)
				out[c] = fwd[k-1][from] + bwdCur[to] + row[c]
				cand := row[c] + bwdCur[to]
				if cand > bwdNext[from] {
					bwdNext[from] = cand
				}
			}
		}
		// Flop destinations: to >= nbase, from in {to-nbase, to}.
		for b := 0; b < nbase; b++ {
			to := b + nbase
			for _, from := range [2]int{b, to} {
				c := TransIndex(from, to, nbase)
				out[c] = fwd[k-1][from] + bwdCur[to] + row[c]
				cand := row[c] + bwdCur[to]
				if cand > bwdNext[from] {
					bwdNext[from] = cand
				}
			}
		}

		bwdCur, bwdNext = bwdNext, bwdCur
	}

	for k := 0; k < nblocks; k++ {
		row := tpost.Row(k)
		lse := rowLogSumExp(row)
		for i, v := range row {
			row[i] = v - lse
		}
	}

	if !wantLog {
		for i, v := range tpost.Data {
			tpost.Data[i] = float32(math.Exp(float64(v)))
		}
	}
	return tpost, nil
}

// forwardMaxSumStep advances the max-sum forward recurrence of §4.2 by one
// block: curr[d] is computed from prev and the block's weight row.
func forwardMaxSumStep(weights, prev, curr []float32, nbase int) {
	nstate := 2 * nbase
	for d := 0; d < nbase; d++ {
		best := float32(math.Inf(-1))
		for from := 0; from < nstate; from++ {
			v := prev[from] + weights[TransIndex(from, d, nbase)]
			if v > best {
				best = v
			}
		}
		curr[d] = best
	}
	for b := 0; b < nbase; b++ {
		d := b + nbase
		// Candidates in increasing from-index order (b < d) so a tie
		// resolves to the smaller index, per the strict-> argmax rule.
		best := prev[b] + weights[TransIndex(b, d, nbase)]
		if stay := prev[d] + weights[TransIndex(d, d, nbase)]; stay > best {
			best = stay
		}
		curr[d] = best
	}
}
