package crf

import "fmt"

// DecodePosteriors is the composite §6 entry point: it runs ViterbiDecode
// over tpost and reduces the resulting path to a basecall via ReducePath.
func DecodePosteriors(tpost *Matrix, alphabet string, modWeights *Matrix, canNMods []int) (basecall string, score float32, rlCumsum []int, modsScores *Matrix, err error) {
	nbase, err := NBaseFromTransitionWidth(tpost.Cols)
	if err != nil {
		return "", 0, nil, nil, err
	}
	if len(alphabet) != nbase {
		return "", 0, nil, nil, fmt.Errorf("%w: alphabet length %d, matrix implies %d bases", ErrAlphabetMismatch, len(alphabet), nbase)
	}

	path := make([]int, tpost.Rows+1)
	qpath := make([]float32, tpost.Rows+1)
	score, err = ViterbiDecode(tpost, path, qpath)
	if err != nil {
		return "", 0, nil, nil, err
	}

	basecall, rlCumsum, modsScores, err = ReducePath(path, alphabet, modWeights, canNMods)
	if err != nil {
		return "", 0, nil, nil, err
	}
	return basecall, score, rlCumsum, modsScores, nil
}
