// Package fill - density-controlled population of non-path cells.
package fill

import (
	"math/rand"

	"github.com/lowpolyghost/breach/chain"
	"github.com/lowpolyghost/breach/grid"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass a nil RNG.
const defaultRNGSeed int64 = 1

// Fill populates every cell of g that is not a path position, per opts.
// Path cells are never touched. All written cells are KindNormal.
//
// Contracts:
//   - g non-nil, pool non-empty, opts valid; path positions must lie in
//     bounds (they came from the placer).
//   - A nil rng selects the deterministic default stream.
//
// Errors: strict sentinels from types.go.
// Complexity: O(size² + len(path) + Σ len(seq)).
func Fill(g *grid.Grid, path []grid.Position, seqs []chain.Sequence, pool []grid.Code, opts Options, rng *rand.Rand) error {
	// Stage 1 - validation.
	if g == nil {
		return ErrNilGrid
	}
	if len(pool) == 0 {
		return ErrEmptyPool
	}
	if err := opts.validate(); err != nil {
		return err
	}
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultRNGSeed))
	}

	// Stage 2 - index the path and the code families the strategies draw from.
	onPath := make(map[grid.Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	pathCodes := pathCodeSet(g, path)
	seqCodes, safeCodes := splitPool(pool, seqs)

	// Stage 3 - strategy-specific per-cell fill.
	size := g.Size()
	adjacent := map[grid.Position]bool{}
	if opts.Strategy == Deceptive {
		adjacent = adjacency(g, path)
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			p := grid.Position{Row: row, Col: col}
			if onPath[p] {
				continue
			}

			var code grid.Code
			switch opts.Strategy {
			case Forgiving, Moderate:
				// Probability Density: echo a code the path actually uses;
				// otherwise a uniform pool code.
				if r.Float64() < opts.Density && len(pathCodes) > 0 {
					code = pathCodes[r.Intn(len(pathCodes))]
				} else {
					code = pool[r.Intn(len(pool))]
				}
			case Deceptive:
				code = deceptiveCode(p, adjacent, seqCodes, safeCodes, pool, opts, r)
			}

			if err := g.SetCode(p, code); err != nil {
				return err
			}
		}
	}

	return nil
}

// deceptiveCode picks one code for a non-path cell under the Deceptive
// strategy: path-adjacent cells bait with sequence codes at DecoyDensity;
// everything else stays on safe filler when the pool provides any.
func deceptiveCode(p grid.Position, adjacent map[grid.Position]bool, seqCodes, safeCodes, pool []grid.Code, opts Options, r *rand.Rand) grid.Code {
	if adjacent[p] && len(seqCodes) > 0 && r.Float64() < opts.DecoyDensity {
		return seqCodes[r.Intn(len(seqCodes))]
	}
	if len(safeCodes) > 0 {
		return safeCodes[r.Intn(len(safeCodes))]
	}

	// Pool has no sequence-free codes; fall back to the whole pool.
	return pool[r.Intn(len(pool))]
}

// pathCodeSet collects the distinct codes present on the placed path, in
// first-appearance order for deterministic draws.
func pathCodeSet(g *grid.Grid, path []grid.Position) []grid.Code {
	seen := make(map[grid.Code]bool, len(path))
	out := make([]grid.Code, 0, len(path))
	for _, p := range path {
		cell, err := g.At(p)
		if err != nil {
			continue
		}
		if !seen[cell.Code] {
			seen[cell.Code] = true
			out = append(out, cell.Code)
		}
	}

	return out
}

// splitPool partitions pool into codes appearing in some sequence and
// codes appearing in none, preserving pool order.
func splitPool(pool []grid.Code, seqs []chain.Sequence) (seqCodes, safeCodes []grid.Code) {
	inSeq := make(map[grid.Code]bool)
	for i := range seqs {
		for _, c := range seqs[i].Codes {
			inSeq[c] = true
		}
	}
	for _, c := range pool {
		if inSeq[c] {
			seqCodes = append(seqCodes, c)
		} else {
			safeCodes = append(safeCodes, c)
		}
	}

	return seqCodes, safeCodes
}

// adjacency marks every in-bounds position 4-adjacent to the path that is
// not itself on the path.
func adjacency(g *grid.Grid, path []grid.Position) map[grid.Position]bool {
	onPath := make(map[grid.Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	adj := make(map[grid.Position]bool)
	for _, p := range path {
		for _, q := range g.Neighbors4(p) {
			if !onPath[q] {
				adj[q] = true
			}
		}
	}

	return adj
}
