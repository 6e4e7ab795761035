package crf

import (
	"fmt"
	"math"
)

// DefaultAlphabet is the canonical four-base alphabet. It is a convention
// only: the package operates on any alphabet of B distinct symbols
// consistent with a matrix's width.
const DefaultAlphabet = "ACGT"

// NBaseFromTransitionWidth solves T = 2B(B+1) for the positive integer base
// count B. It returns ErrInvalidStateCount if no such B reproduces T exactly.
func NBaseFromTransitionWidth(t int) (int, error) {
	if t <= 0 {
		return 0, fmt.Errorf("%w: transition width %d must be positive", ErrInvalidStateCount, t)
	}
	b := int(math.Floor(math.Sqrt(0.25+float64(t)/2) - 0.5))
	for _, candidate := range []int{b - 1, b, b + 1} {
		if candidate > 0 && 2*candidate*(candidate+1) == t {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("%w: %d is not of the form 2B(B+1)", ErrInvalidStateCount, t)
}

// TransIndex computes the transition-state column for a from->to move over
// a B-base flip-flop state space, per the layout contract with the upstream
// weight producer:
//
//   - to < B (flip destination): index = to*2B + from, for any from in 0..2B-1.
//   - to >= B (flop destination, b = to-B): index = 2B*B + from, where from
//     must be b (flip->flop) or to (flop stay); all other from are invalid
//     for that column and this function does not validate reachability,
//     only the arithmetic layout.
func TransIndex(from, to, nbase int) int {
	twoB := 2 * nbase
	if to < nbase {
		return to*twoB + from
	}
	return twoB*nbase + from
}

// FlipMaskWalk applies invariant (I3): fm[0] = seq[0]; fm[i] = seq[i]+B if
// seq[i] == fm[i-1], else seq[i]. It is deterministic in seq alone.
func FlipMaskWalk(seq []int, nbase int) []int {
	fm := make([]int, len(seq))
	if len(seq) == 0 {
		return fm
	}
	fm[0] = seq[0]
	for i := 1; i < len(seq); i++ {
		if seq[i] == fm[i-1] {
			fm[i] = seq[i] + nbase
		} else {
			fm[i] = seq[i]
		}
	}
	return fm
}

// StayStepIndices derives the per-position stay transition index (a
// symbol's flip/flop state transitioning to itself) and the per-step
// transition index (moving from one symbol's resolved state to the next).
// len(stay) == len(seq); len(step) == len(seq)-1.
func StayStepIndices(seq []int, nbase int) (stay, step []int) {
	fm := FlipMaskWalk(seq, nbase)
	stay = make([]int, len(seq))
	for i, s := range fm {
		stay[i] = TransIndex(s, s, nbase)
	}
	if len(fm) > 1 {
		step = make([]int, len(fm)-1)
		for i := 1; i < len(fm); i++ {
			step[i-1] = TransIndex(fm[i-1], fm[i], nbase)
		}
	}
	return stay, step
}
