// Package solver enumerates the valid selection paths of a filled grid
// against a set of target sequences, up to a solution cap.
//
// What:
//
//   - Solve roots a depth-first backtracking search at every non-blocker
//     cell of row 0 — all possible starts, not just the canonical path the
//     generator placed — and reports every complete selection path found.
//   - A selection path obeys the alternation rule (row move, column move,
//     row move, …), never revisits a position, never exceeds the buffer,
//     and completes every target sequence via chain.Advance.
//   - Result exposes Solvable, Par (shortest solution length), Count and
//     the number of false starts (row-0 starts yielding no solution).
//
// Why:
//
//   - Generation-time verification: the quality gate tunes difficulty by
//     solution count and false starts, so the solver must enumerate, not
//     merely decide. The live play loop uses a cheaper single-path check
//     built on the same grid/sequence model; that collaborator lives
//     outside this library.
//
// Search state:
//
//   - One mutable record (progress vector, used set, path, move budget) is
//     pushed before descending and restored after backtracking; per-move
//     progress changes are recorded as a bitmask so the undo is
//     allocation-free.
//
// Pruning and ordering:
//
//   - A node is expanded only while the remaining budget can still cover
//     the largest remaining-codes-needed across incomplete sequences (max,
//     not sum — one move can advance several sequences at once).
//   - Candidates whose code matches a currently-needed code (or which are
//     wildcards) are tried first; this changes only which solutions appear
//     first under the cap, never correctness.
//
// Counting policy:
//
//   - Blocker cells in row 0 are skipped entirely and are NOT counted as
//     false starts; starts never attempted because the cap was already
//     reached are not counted either.
//
// Complexity:
//
//   - Worst case exponential in the buffer size; bounded in practice by
//     the buffer, the solution cap and the pruning bound.
//
// Errors:
//
//   - ErrNilGrid:       grid is nil.
//   - ErrNoSequences:   the sequence set is empty.
//   - ErrEmptySequence: a sequence has no codes.
//   - ErrBufferSize:    the buffer is not positive.
//   - ErrSolutionCap:   the solution cap is not positive.
//   - ErrTooManySequences: more sequences than the progress bitmask holds.
package solver
