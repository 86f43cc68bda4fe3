// Package chain - sequence synthesis with controlled overlap.
package chain

import (
	"math/rand"

	"github.com/lowpolyghost/breach/grid"
)

// Build constructs cfg.SequenceCount target sequences and their merged
// solution path.
//
// Construction order:
//  1. Sequence 0 is fully random over cfg.Pool.
//  2. A uniformly random subset of cfg.OverlapCount distinct junctions
//     (junction j sits between sequences j and j+1) carries overlap.
//  3. A sequence behind an overlapping junction reuses the previous
//     sequence's last depth codes as its own prefix and fills the rest
//     randomly; depth is cfg.OverlapDepth clamped to SequenceLength−1.
//  4. The merged path accumulates every sequence's codes, skipping the
//     shared prefix of overlapping junctions (those codes were already
//     emitted by the previous sequence).
//
// A nil rng selects the deterministic default stream.
// Returns the sentinel errors of OverlapConfig.validate on bad input.
// Complexity: O(SequenceCount × SequenceLength) time and memory.
func Build(cfg OverlapConfig, rng *rand.Rand) (Chain, error) {
	// 1) Validate the configuration up front; all later steps assume it.
	if err := cfg.validate(); err != nil {
		return Chain{}, err
	}
	r := rngOrDefault(rng)

	// 2) Clamp the overlap depth so an overlapping sequence always appends
	//    at least one fresh code to the merged path.
	depth := cfg.OverlapDepth
	if depth > cfg.SequenceLength-1 {
		depth = cfg.SequenceLength - 1
	}

	// 3) Pick which junctions carry overlap. With depth clamped to zero
	//    (single-code sequences) every junction degenerates to non-overlap.
	overlapAt := map[int]bool{}
	if cfg.SequenceCount > 1 && depth > 0 {
		overlapAt = junctionSubset(cfg.SequenceCount-1, cfg.OverlapCount, r)
	}

	// 4) Build sequences in order, accumulating the merged path.
	seqs := make([]Sequence, cfg.SequenceCount)
	merged := make([]grid.Code, 0, cfg.SequenceCount*cfg.SequenceLength)
	for i := 0; i < cfg.SequenceCount; i++ {
		codes := make([]grid.Code, 0, cfg.SequenceLength)
		shared := 0

		// 4a) Overlapping junction: inherit the previous sequence's suffix.
		if i > 0 && overlapAt[i-1] {
			prev := seqs[i-1].Codes
			codes = append(codes, prev[len(prev)-depth:]...)
			shared = depth
		}

		// 4b) Fill the remainder with uniformly random pool codes.
		for len(codes) < cfg.SequenceLength {
			codes = append(codes, randomCode(cfg.Pool, r))
		}

		seqs[i] = Sequence{Codes: codes}

		// 4c) Emit only the non-shared suffix; the shared prefix already
		//     sits at the tail of the merged path.
		merged = append(merged, codes[shared:]...)
	}

	return Chain{Sequences: seqs, MergedPath: merged}, nil
}
