// Package grid defines the value types shared by every stage of the
// puzzle pipeline: symbolic codes, positions, cells and the square grid.
//
// What:
//
//   - Code is an opaque symbolic token (2-character hex-like label).
//   - Position is an immutable, hashable (row, col) pair.
//   - Cell carries a Code, a CellKind (normal / blocker / wildcard /
//     decaying) and live-play state (Selected, Decay).
//   - Grid wraps a size×size matrix of Cells with bound-checked access.
//
// Why:
//
//   - Generation: the placer, filler and solver all operate on the same
//     grid representation, so it lives in one leaf package.
//   - Live play: the solver is exposed to the play loop (see solver/),
//     which selects cells and decays counters on the same types.
//
// Complexity:
//
//   - New / Clone: O(n²) for an n×n grid.
//   - At / Set / SetKind / InBounds / Neighbors4: O(1).
//   - String: O(n²).
//
// Errors:
//
//   - ErrGridSize: requested size is not positive.
//   - ErrOutOfBounds: a position lies outside the grid.
package grid
