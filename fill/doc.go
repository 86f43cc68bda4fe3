// Package fill populates the non-path cells of a placed grid according to
// a difficulty-tied strategy.
//
// What:
//
//   - Forgiving (easy tiers): each non-path cell independently receives a
//     code from the solution path with probability Density, else a uniform
//     pool code. High density breeds accidental alternate solutions.
//   - Moderate (mid tiers): the same shape as Forgiving, parameterized as a
//     red-herring density and tuned lower by the difficulty table.
//   - Deceptive (hard tiers): cells 4-adjacent to the solution path receive
//     a sequence-bearing code with probability DecoyDensity — traps that
//     look promising near the true path — while non-adjacent cells are
//     restricted to codes absent from every sequence when the pool has any.
//
// Invariant:
//
//   - Path cells are never overwritten; Fill touches only positions outside
//     the given path set.
//
// Complexity:
//
//   - Fill: O(size² + len(path) + Σ len(seq)) time.
//
// Errors:
//
//   - ErrNilGrid:      grid is nil.
//   - ErrEmptyPool:    the code pool has no entries.
//   - ErrBadStrategy:  the strategy is not one of the three variants.
//   - ErrBadDensity:   a density lies outside [0, 1].
package fill
