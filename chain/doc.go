// Package chain builds the target-sequence set of a puzzle and the single
// merged code path whose selection satisfies every sequence at once.
//
// What:
//
//   - Sequence is an ordered, non-empty list of codes the player must match
//     in order (not necessarily contiguously).
//   - Chain bundles the sequences with their MergedPath.
//   - Build synthesizes sequences with controlled, randomized overlap:
//     a chosen subset of junctions between adjacent sequences shares a
//     suffix/prefix block of OverlapDepth codes, and the merged path emits
//     each shared block exactly once.
//   - Advance is the allocation-free longest-prefix progress update used by
//     both the verification solver and the live play loop.
//
// Why:
//
//   - Overlap is the difficulty lever: deeper, more frequent overlap means
//     a shorter merged path relative to total sequence length, and more
//     interleaved matching during play.
//   - The merged path doubles as the canonical solution layout input.
//
// Guarantee:
//
//   - Replaying Chain.MergedPath against every sequence via Advance marks
//     all sequences complete. Verified by Replay and property-tested.
//
// Complexity:
//
//   - Build:   O(SequenceCount × SequenceLength).
//   - Advance: O(1).
//   - Replay:  O(len(path) × #sequences).
//
// Errors:
//
//   - ErrEmptyPool:      the code pool has no entries.
//   - ErrSequenceCount:  requested sequence count is not positive.
//   - ErrSequenceLength: requested sequence length is not positive.
//   - ErrOverlapCount:   overlap count exceeds the junction count.
//   - ErrOverlapDepth:   overlap depth is not positive while overlap is on.
package chain
