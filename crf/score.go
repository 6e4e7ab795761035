package crf

import "fmt"

// ScoreSequence scores how well seq aligns to the posterior slice
// tpost[tpost_start:tpost_end, ·], either as the best single alignment
// (allPaths=false) or as the log-sum-exp over all alignments
// (allPaths=true).
func ScoreSequence(tpost *Matrix, seq []int, tpostStart, tpostEnd int, allPaths bool) (float32, error) {
	return scoreLattice(tpost, seq, nil, nil, tpostStart, tpostEnd, allPaths)
}

// ScoreModSequence is ScoreSequence's modified-base companion: the
// step-direction score at position i additionally reads the log-weight in
// column T + canModsOffsets[seq[i]] + modCats[i] of the same block.
func ScoreModSequence(tpost *Matrix, seq, modCats, canModsOffsets []int, tpostStart, tpostEnd int, allPaths bool) (float32, error) {
	if modCats == nil || canModsOffsets == nil {
		return 0, fmt.Errorf("%w: mod_cats and can_mods_offsets are required for modified scoring", ErrInvalidSymbol)
	}
	if len(modCats) != len(seq) {
		return 0, fmt.Errorf("%w: mod_cats length %d does not match seq length %d", ErrInvalidSymbol, len(modCats), len(seq))
	}
	return scoreLattice(tpost, seq, modCats, canModsOffsets, tpostStart, tpostEnd, allPaths)
}

func scoreLattice(tpost *Matrix, seq, modCats, canModsOffsets []int, tpostStart, tpostEnd int, allPaths bool) (float32, error) {
	nseq := len(seq)
	if nseq == 0 {
		return 0, fmt.Errorf("%w: zero-length sequence", ErrEmptyInput)
	}
	if tpostStart < 0 || tpostEnd > tpost.Rows || tpostStart > tpostEnd {
		return 0, fmt.Errorf("%w: tpost_start=%d tpost_end=%d nblocks=%d", ErrRangeOutOfBounds, tpostStart, tpostEnd, tpost.Rows)
	}
	nblk := tpostEnd - tpostStart

	transWidth := baseTransitionWidth(tpost.Cols, canModsOffsets)
	nbase, err := NBaseFromTransitionWidth(transWidth)
	if err != nil {
		return 0, err
	}
	for i, s := range seq {
		if s < 0 || s >= nbase {
			return 0, fmt.Errorf("%w: seq[%d]=%d out of range for %d bases", ErrInvalidSymbol, i, s, nbase)
		}
		if canModsOffsets != nil {
			mCount := canModsOffsets[s+1] - canModsOffsets[s]
			if modCats[i] < 0 || modCats[i] >= mCount {
				return 0, fmt.Errorf("%w: mod_cats[%d]=%d out of range for base %d (%d categories)", ErrInvalidSymbol, i, modCats[i], s, mCount)
			}
		}
	}

	w := nblk - nseq + 2
	if w < 1 {
		return 0, fmt.Errorf("%w: nblk=%d nseq=%d window=%d", ErrInsufficientBlocks, nblk, nseq, w)
	}

	combine := maxCombine
	if allPaths {
		combine = logAdd2
	}

	stay, step := StayStepIndices(seq, nbase)

	modWeight := func(i, block int) float32 {
		if canModsOffsets == nil {
			return 0
		}
		col := transWidth + canModsOffsets[seq[i]] + modCats[i]
		return tpost.At(block, col)
	}

	prev := make([]float32, w)
	curr := make([]float32, w)

	prev[0] = 0
	for wi := 1; wi < w; wi++ {
		prev[wi] = prev[wi-1] + tpost.At(tpostStart+wi-1, stay[0])
	}

	for i := 1; i < nseq; i++ {
		stepBase := step[i-1]
		stayIdx := stay[i]
		for wi := 0; wi < w; wi++ {
			block := tpostStart + i + wi - 1
			stepScore := prev[wi] + tpost.At(block, stepBase) + modWeight(i, block)
			if wi == 0 {
				curr[wi] = stepScore
				continue
			}
			stayScore := curr[wi-1] + tpost.At(block, stayIdx)
			curr[wi] = combine(stepScore, stayScore)
		}
		prev, curr = curr, prev
	}

	return prev[w-1], nil
}

func maxCombine(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// baseTransitionWidth recovers the un-extended transition width T from a
// possibly mod-extended column count, using canModsOffsets[B] == M when
// modifications are present.
func baseTransitionWidth(cols int, canModsOffsets []int) int {
	if canModsOffsets == nil {
		return cols
	}
	m := canModsOffsets[len(canModsOffsets)-1]
	return cols - m
}
