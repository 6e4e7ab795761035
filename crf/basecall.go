package crf

import (
	"fmt"
	"math"
)

// ReducePath run-length encodes a decoded state path into a basecall,
// and — when modWeights/canNMods are supplied — gathers per-run
// modification-probability scores from an auxiliary weight matrix.
//
// rlCumsum has length len(runs)+1: rlCumsum[r] is the block index at which
// run r begins, with rlCumsum[0]=0 and rlCumsum[last]=len(path).
//
// modWeights's columns interleave canonical and modification channels per
// base, canonical channel first, with stride 1+canNMods[b] for base b.
// mods_scores[r, :] is left as NaN for the first run (r==0, "never moved
// into") and for modifications the covered base does not have.
func ReducePath(path []int, alphabet string, modWeights *Matrix, canNMods []int) (basecall string, rlCumsum []int, modsScores *Matrix, err error) {
	if len(path) == 0 {
		return "", nil, nil, fmt.Errorf("%w: empty path", ErrEmptyInput)
	}
	nbase := len(alphabet)

	runValue, runLen := runLengthEncode(path)
	nruns := len(runValue)

	basecallBytes := make([]byte, nruns)
	for i, v := range runValue {
		b := v % nbase
		basecallBytes[i] = alphabet[b]
	}

	rlCumsum = make([]int, nruns+1)
	for i, l := range runLen {
		rlCumsum[i+1] = rlCumsum[i] + l
	}

	if modWeights == nil || canNMods == nil {
		return string(basecallBytes), rlCumsum, nil, nil
	}

	offsets := make([]int, nbase+1)
	for b, n := range canNMods {
		offsets[b+1] = offsets[b] + n
	}
	m := offsets[nbase]

	baseColOffset := make([]int, nbase+1)
	for b, n := range canNMods {
		baseColOffset[b+1] = baseColOffset[b] + 1 + n
	}

	modsScores = NewMatrix(nruns, m)
	for i := range modsScores.Data {
		modsScores.Data[i] = float32(math.NaN())
	}

	for r := 1; r < nruns; r++ {
		b := runValue[r] % nbase
		srcBlock := rlCumsum[r] - 1
		for j := 0; j < canNMods[b]; j++ {
			srcCol := baseColOffset[b] + 1 + j
			modsScores.Set(r, offsets[b]+j, modWeights.At(srcBlock, srcCol))
		}
	}

	return string(basecallBytes), rlCumsum, modsScores, nil
}

// runLengthEncode compresses consecutive equal elements of path into
// (value, length) pairs.
func runLengthEncode(path []int) (values, lens []int) {
	values = append(values, path[0])
	lens = append(lens, 1)
	for _, v := range path[1:] {
		last := len(values) - 1
		if v == values[last] {
			lens[last]++
		} else {
			values = append(values, v)
			lens = append(lens, 1)
		}
	}
	return values, lens
}
