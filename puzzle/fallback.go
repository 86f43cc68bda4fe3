// Package puzzle - the guaranteed-solvable fallback puzzle.
package puzzle

import (
	"github.com/lowpolyghost/breach/chain"
	"github.com/lowpolyghost/breach/grid"
)

// fallbackLength is the target sequence length of the fallback puzzle,
// shortened only when the grid or pool cannot hold it.
const fallbackLength = 3

// fallback hand-constructs a single-sequence, single-solution staircase
// puzzle. It bypasses the quality gate, uses no randomness, and has no
// failure mode: every branch below is total for any normalized Config.
func fallback(cfg Config) Puzzle {
	size := cfg.Tier.GridSize
	if size < 1 {
		size = fallbackLength
	}
	pool := cfg.Pool

	// 1) Staircase length: capped by the alternation-reachable cell count
	//    of the grid and by the distinct codes the pool offers.
	length := fallbackLength
	if maxSteps := 2*size - 1; length > maxSteps {
		length = maxSteps
	}
	if length > len(pool) {
		length = len(pool)
	}

	// 2) The staircase walk: (0,0) → (1,0) → (1,1) → (2,1) → … alternates
	//    column and row moves and starts in row 0 by construction.
	positions := make([]grid.Position, length)
	codes := make([]grid.Code, length)
	for i := 0; i < length; i++ {
		positions[i] = grid.Position{Row: (i + 1) / 2, Col: i / 2}
		codes[i] = pool[i]
	}

	// 3) Filler: a code outside the sequence when the pool has one, so the
	//    staircase stays the only sequence-bearing geometry.
	filler := pool[0]
	if length < len(pool) {
		filler = pool[length]
	}

	g, err := grid.New(size)
	if err != nil {
		// Unreachable: size ≥ 1 is enforced above. Keep the puzzle total
		// anyway with a minimal one-cell grid.
		g, _ = grid.New(1)
		positions = positions[:1]
		codes = codes[:1]
	}
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			_ = g.SetCode(grid.Position{Row: row, Col: col}, filler)
		}
	}
	for i, p := range positions {
		_ = g.SetCode(p, codes[i])
	}

	return Puzzle{
		Grid:       g,
		Sequences:  []chain.Sequence{{Codes: codes}},
		BufferSize: len(codes) + cfg.Tier.BufferMargin,
		Par:        len(codes),
		Difficulty: cfg.Difficulty,
		Solution:   positions,
	}
}
