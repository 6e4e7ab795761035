// Package crf implements the flip-flop CRF decoding and sequence scoring
// core used downstream of a recurrent neural network that emits per-block
// transition weights over a flip-flop state space for nanopore base calling.
//
// # Reading Guide
//
// Start with these files to understand the pipeline, leaves first:
//   - statespace.go: base/state/transition-index arithmetic and the flip-mask walk
//   - logspace.go: the stable pairwise log-sum-exp used throughout
//   - posterior.go: forward/backward max-semiring pass, producing tpost
//   - viterbi.go: best-path decode over tpost
//   - score.go: best-path / all-paths scoring of a candidate sequence against tpost
//   - basecall.go: run-length reduction of a state path into a basecall
//   - decode.go: composes viterbi.go + basecall.go into the single decode entry point
//
// # Architecture
//
// The package is a pure computational core: every exported function is a
// function of its arguments, allocates only scratch it releases before
// returning, and never logs, performs I/O, or retains state between calls.
// Callers (see the sibling cmd/ package) own configuration, logging, and
// file formats; none of that belongs here.
//
// # Conventions
//
// All matrices are represented by Matrix (matrix.go): row-major, float32,
// columns addressed by the transition-index layout described in statespace.go.
// Errors are sentinel values in errors.go, checked with errors.Is and wrapped
// with additional context via fmt.Errorf("%w: ...", ...).
package crf
