// Package chain defines core types and sentinel errors for the chain
// subpackage of github.com/lowpolyghost/breach.
package chain

import (
	"errors"

	"github.com/lowpolyghost/breach/grid"
)

// Sentinel errors for chain construction.
var (
	// ErrEmptyPool indicates the code pool has no entries.
	ErrEmptyPool = errors.New("chain: code pool must not be empty")
	// ErrSequenceCount indicates a non-positive sequence count.
	ErrSequenceCount = errors.New("chain: sequence count must be at least one")
	// ErrSequenceLength indicates a non-positive sequence length.
	ErrSequenceLength = errors.New("chain: sequence length must be at least one")
	// ErrOverlapCount indicates more overlapping junctions than junctions exist.
	ErrOverlapCount = errors.New("chain: overlap count exceeds junction count")
	// ErrOverlapDepth indicates a non-positive overlap depth with overlap enabled.
	ErrOverlapDepth = errors.New("chain: overlap depth must be at least one")
)

// Sequence is an ordered, non-empty list of codes the player must match in
// order, not necessarily contiguously. Matched and Impossible are live-play
// state consumed by the interactive loop; generation leaves them zero.
type Sequence struct {
	Codes      []grid.Code // Target codes, in required order
	Matched    int         // Live play: codes matched so far
	Impossible bool        // Live play: no completion remains reachable
}

// Complete reports whether every code of the sequence has been matched
// at progress p.
func (s Sequence) Complete(p int) bool {
	return p >= len(s.Codes)
}

// Chain is the full target-sequence set plus the merged solution path.
// Invariant: replaying MergedPath via Advance completes every sequence.
type Chain struct {
	Sequences  []Sequence  // Target sequences, in build order
	MergedPath []grid.Code // Ordered codes satisfying all sequences at once
}

// OverlapConfig carries the generation parameters for Build.
//
// Pool           – alphabet to draw codes from (must be non-empty).
// SequenceCount  – number of target sequences (≥ 1).
// SequenceLength – codes per sequence (≥ 1; all sequences share one length).
// OverlapCount   – how many junctions between adjacent sequences carry
//
//	overlap (0 ≤ OverlapCount ≤ SequenceCount−1).
//
// OverlapDepth   – codes shared at each overlapping junction (≥ 1; clamped
//
//	to SequenceLength−1 to avoid zero-length appends).
type OverlapConfig struct {
	Pool           []grid.Code
	SequenceCount  int
	SequenceLength int
	OverlapCount   int
	OverlapDepth   int
}

// validate checks cfg against the sentinel contracts above.
func (cfg OverlapConfig) validate() error {
	if len(cfg.Pool) == 0 {
		return ErrEmptyPool
	}
	if cfg.SequenceCount < 1 {
		return ErrSequenceCount
	}
	if cfg.SequenceLength < 1 {
		return ErrSequenceLength
	}
	if cfg.OverlapCount < 0 || cfg.OverlapCount > cfg.SequenceCount-1 {
		return ErrOverlapCount
	}
	if cfg.OverlapCount > 0 && cfg.OverlapDepth < 1 {
		return ErrOverlapDepth
	}

	return nil
}
