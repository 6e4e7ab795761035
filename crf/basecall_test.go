package crf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReducePath_BasicRunLengthEncoding(t *testing.T) {
	// GIVEN a state path with four runs: A(flip), A(flop), A(flip), C(flop)
	path := []int{0, 0, 0, 4, 4, 0, 5}

	// WHEN reducing the path to a basecall
	basecall, rlCumsum, modsScores, err := ReducePath(path, DefaultAlphabet, nil, nil)
	require.NoError(t, err)

	// THEN it MUST collapse repeats of the same state into one run, while
	// flip/flop alternation of the same base yields one symbol per run
	assert.Equal(t, "AAAC", basecall) // 0,4,0,5 mod 4 => A,A,A,C
	assert.Equal(t, []int{0, 3, 5, 6, 7}, rlCumsum)
	assert.Nil(t, modsScores)
}

// P5: basecall length equals the number of distinct runs.
func TestReducePath_P5_BasecallLengthEqualsRunCount(t *testing.T) {
	// GIVEN a state path with four distinct runs
	path := []int{0, 0, 1, 1, 1, 2, 3, 3}

	// WHEN reducing the path to a basecall
	basecall, rlCumsum, _, err := ReducePath(path, DefaultAlphabet, nil, nil)
	require.NoError(t, err)

	// THEN the basecall length MUST equal the run count, and rlCumsum one more
	assert.Len(t, basecall, 4)
	assert.Len(t, rlCumsum, 5)
}

func TestReducePath_EmptyPathFails(t *testing.T) {
	// GIVEN an empty path
	// WHEN reducing it to a basecall
	// THEN it MUST fail with ErrEmptyInput
	_, _, _, err := ReducePath(nil, DefaultAlphabet, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

// S6: decode_posteriors with mod_weights where modification columns are
// log(0.3) returns mods_scores equal to log(0.3) at every run position >= 1
// for covered bases, and NaN elsewhere.
func TestReducePath_S6_GathersModificationScores(t *testing.T) {
	// GIVEN a path with runs A(len2), A-flop(len2), C(len1), where only base
	// A (index 0) carries a modification channel
	alphabet := DefaultAlphabet
	nbase := len(alphabet)
	path := []int{0, 0, 4, 4, 1}       // runs: A(len2), A-flop(len2), C(len1)
	canNMods := []int{1, 0, 0, 0} // only A carries a modification channel

	// mod_weights columns: base0(A) => [canon, mod0] (stride 2); bases
	// 1-3 => [canon] only (stride 1).
	stride := make([]int, nbase)
	colOffset := make([]int, nbase+1)
	for b := range stride {
		stride[b] = 1 + canNMods[b]
		colOffset[b+1] = colOffset[b] + stride[b]
	}
	modWeights := NewMatrix(len(path), colOffset[nbase])
	logP3 := float32(math.Log(0.3))
	for k := 0; k < len(path); k++ {
		modWeights.Set(k, colOffset[0]+1, logP3) // base0's modification column
	}

	// WHEN reducing the path and gathering modification scores
	basecall, rlCumsum, modsScores, err := ReducePath(path, alphabet, modWeights, canNMods)
	require.NoError(t, err)

	// THEN the basecall and run boundaries MUST match the runs
	assert.Equal(t, "AAC", basecall)
	assert.Equal(t, []int{0, 2, 4, 5}, rlCumsum)
	require.NotNil(t, modsScores)
	assert.Equal(t, 3, modsScores.Rows)
	assert.Equal(t, 1, modsScores.Cols) // M = sum(canNMods) = 1

	// AND each run's modification score MUST be log(0.3) where A is covered,
	// NaN where the run's base carries no modification channel
	assert.True(t, math.IsNaN(float64(modsScores.At(0, 0))), "run 0 (never moved into) is all-NaN")
	assert.InDelta(t, math.Log(0.3), float64(modsScores.At(1, 0)), 1e-6, "run 1 is the second A, which has a modification")
	assert.True(t, math.IsNaN(float64(modsScores.At(2, 0))), "run 2 is base C, which carries no modification channel")
}
