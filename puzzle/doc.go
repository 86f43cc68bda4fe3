// Package puzzle orchestrates the full generation pipeline and owns the
// final immutable Puzzle artifact.
//
// What:
//
//   - Difficulty is a closed enum indexing a data table of tier parameters
//     (grid size, sequence ranges, overlap ranges, fill options, buffer
//     margin, quality thresholds).
//   - Generate runs pool draw → chain build → path placement → fill →
//     solve → quality gate, retrying with fresh randomness up to a bounded
//     attempt budget, and falls back to a hand-constructed, guaranteed
//     solvable staircase puzzle on exhaustion. It never returns an error.
//   - GenerateWithDiagnostics additionally reports rejection counters by
//     category (structural / unsolvable / false starts / band / fallback).
//   - Validate re-checks every puzzle invariant as a pure function:
//     row-0 start, strict row/column alternation, no repeated positions,
//     sequence satisfaction by replay, par and buffer coherence.
//
// Quality gate:
//
//   - Tiers below the gate threshold accept the first solvable result.
//   - Gated tiers reject unsolvable grids and grids with too few false
//     starts outright; a solution count outside the tier band triggers the
//     adjustment loop — promoting non-path cells to sequence-bearing codes
//     when solutions are scarce, demoting them to sequence-free codes when
//     abundant — for up to three re-solve rounds before the attempt is
//     rejected. Path cells are never touched.
//
// Failure model:
//
//   - Structural and quality failures are absorbed by the retry loop; the
//     fallback is the only terminal branch and has no failure mode.
//
// Errors:
//
//   - Generate returns none by contract. Validate returns the sentinel
//     describing the first violated invariant; see types.go.
package puzzle
