// Package layout places a merged code path onto an empty grid under the
// row/column alternation rule of the breach minigame.
//
// What:
//
//   - Place lays the ordered codes of a merged path onto fresh grid cells:
//     the first code lands in a uniformly random column of row 0 (a forced
//     special case, not a general horizontal move); every later code lands
//     in the same column as its predecessor (vertical mode) or the same
//     row (horizontal mode), with the mode flipping after every placement.
//   - Positions are never revisited.
//
// Why:
//
//   - The placed path is the skeleton the filler decorates and the one
//     selection the generator knows is legal before the solver runs.
//
// Failure model:
//
//   - Running out of candidates (grid too small, or randomness painted the
//     walk into a corner) is a normal outcome reported as ErrNoCandidate;
//     callers retry with fresh randomness rather than treating it as fatal.
//
// Complexity:
//
//   - Place: O(len(path) × size) time, O(size²) memory for the grid.
//
// Errors:
//
//   - ErrEmptyPath:   the merged path has no codes.
//   - ErrNoCandidate: no unused position remains in the required row/column.
//   - grid.ErrGridSize: the requested grid size is not positive.
package layout
