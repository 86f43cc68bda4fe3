// Package layout defines the solution-path placer and its sentinel errors
// for github.com/lowpolyghost/breach.
package layout

import (
	"errors"
	"math/rand"

	"github.com/lowpolyghost/breach/grid"
)

// Sentinel errors for path placement.
var (
	// ErrEmptyPath indicates the merged path has no codes to place.
	ErrEmptyPath = errors.New("layout: merged path must not be empty")
	// ErrNoCandidate indicates no unused position remains in the required
	// row or column. This is a normal, retryable outcome.
	ErrNoCandidate = errors.New("layout: no candidate position remains")
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass a nil RNG.
const defaultRNGSeed int64 = 1

// Place lays path onto a fresh size×size grid obeying the alternation rule.
//
// Walk:
//   - Step 0: a uniformly random column of row 0 (forced; row 0 is where
//     every legal selection begins).
//   - Step k>0: vertical mode restricts candidates to unused positions in
//     the previous pick's column; horizontal mode to its row. The mode
//     flips after every placement, starting vertical after step 0.
//
// Returns the grid with only path cells populated plus the ordered list of
// positions, or ErrNoCandidate when the walk exhausts a row/column — the
// caller retries with fresh randomness. A nil rng selects the deterministic
// default stream.
// Complexity: O(len(path) × size) time, O(size²) memory.
func Place(path []grid.Code, size int, rng *rand.Rand) (*grid.Grid, []grid.Position, error) {
	// 1) Validate inputs; grid.New guards the size.
	if len(path) == 0 {
		return nil, nil, ErrEmptyPath
	}
	g, err := grid.New(size)
	if err != nil {
		return nil, nil, err
	}
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultRNGSeed))
	}

	// 2) Forced first pick: random column in row 0.
	used := make(map[grid.Position]bool, len(path))
	positions := make([]grid.Position, 0, len(path))
	cur := grid.Position{Row: 0, Col: r.Intn(size)}
	_ = g.SetCode(cur, path[0])
	used[cur] = true
	positions = append(positions, cur)

	// 3) Alternate vertical/horizontal moves for the remaining codes.
	vertical := true
	candidates := make([]grid.Position, 0, size)
	for k := 1; k < len(path); k++ {
		// 3a) Collect unused positions sharing the required line.
		candidates = candidates[:0]
		for i := 0; i < size; i++ {
			var p grid.Position
			if vertical {
				p = grid.Position{Row: i, Col: cur.Col}
			} else {
				p = grid.Position{Row: cur.Row, Col: i}
			}
			if !used[p] {
				candidates = append(candidates, p)
			}
		}

		// 3b) Exhausted line: normal retryable failure.
		if len(candidates) == 0 {
			return nil, nil, ErrNoCandidate
		}

		// 3c) Pick uniformly, place the code and flip the mode.
		cur = candidates[r.Intn(len(candidates))]
		_ = g.SetCode(cur, path[k])
		used[cur] = true
		positions = append(positions, cur)
		vertical = !vertical
	}

	return g, positions, nil
}
