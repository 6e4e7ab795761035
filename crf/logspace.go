package crf

import "math"

// logAdd2 computes log(exp(a)+exp(b)) in the numerically stable pairwise
// form mandated by the spec: max(a,b) + log1p(exp(-|a-b|)). Using this form
// (rather than a single accumulated sum) keeps every intermediate value
// bounded by the largest input, which is what makes the backward pass and
// row normalization safe in single precision.
func logAdd2(a, b float32) float32 {
	if math.IsInf(float64(a), -1) {
		return b
	}
	if math.IsInf(float64(b), -1) {
		return a
	}
	hi, lo := a, b
	if lo > hi {
		hi, lo = lo, hi
	}
	diff := float64(hi - lo)
	return hi + float32(math.Log1p(math.Exp(-diff)))
}

// rowLogSumExp folds logAdd2 pairwise across row, returning log(sum(exp(row))).
func rowLogSumExp(row []float32) float32 {
	if len(row) == 0 {
		return float32(math.Inf(-1))
	}
	acc := row[0]
	for _, v := range row[1:] {
		acc = logAdd2(acc, v)
	}
	return acc
}
