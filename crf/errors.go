package crf

import "errors"

// Error kinds surfaced by this package. Every exported function returns one
// of these (optionally wrapped with fmt.Errorf("%w: ...") for context)
// instead of panicking or logging; none are recovered or logged locally.
var (
	// ErrInvalidStateCount is returned when a transition-matrix width is not
	// of the form 2B(B+1) for any positive integer B.
	ErrInvalidStateCount = errors.New("crf: invalid state count")

	// ErrAlphabetMismatch is returned when an alphabet's length disagrees
	// with the base count implied by a matrix width.
	ErrAlphabetMismatch = errors.New("crf: alphabet length mismatch")

	// ErrEmptyInput is returned for zero blocks or a zero-length sequence
	// where that is forbidden.
	ErrEmptyInput = errors.New("crf: empty input")

	// ErrInsufficientBlocks is returned when the scoring window would be
	// empty: nblk < nseq-1.
	ErrInsufficientBlocks = errors.New("crf: insufficient blocks for scoring window")

	// ErrRangeOutOfBounds is returned when tpost_start/tpost_end exceed the
	// posterior matrix's block range.
	ErrRangeOutOfBounds = errors.New("crf: tpost range out of bounds")

	// ErrInvalidSymbol is returned when a sequence symbol or modification
	// category index is out of range.
	ErrInvalidSymbol = errors.New("crf: invalid symbol")
)
