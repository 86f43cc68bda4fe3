// Package puzzle - the generation orchestrator and quality gate.
package puzzle

import (
	"math/rand"

	"github.com/lowpolyghost/breach/chain"
	"github.com/lowpolyghost/breach/fill"
	"github.com/lowpolyghost/breach/grid"
	"github.com/lowpolyghost/breach/layout"
	"github.com/lowpolyghost/breach/solver"
)

const (
	// maxAttempts bounds the pipeline retries before the fallback fires.
	maxAttempts = 20
	// adjustRounds bounds the re-solve rounds of the adjustment loop.
	adjustRounds = 3
	// adjustCellsPerRound bounds cell mutations per adjustment round.
	adjustCellsPerRound = 2
	// defaultRNGSeed is the fixed "zero" seed used when callers pass a nil RNG.
	defaultRNGSeed int64 = 1
)

// Generate produces one validated Puzzle for cfg. It is synchronous, pure
// over (cfg, rng), and total: structural and quality failures are retried
// with fresh randomness up to maxAttempts, after which the guaranteed
// fallback puzzle is returned. A nil rng selects the deterministic default
// stream.
// Complexity: bounded by maxAttempts × (fill O(size²) + one capped solve).
func Generate(cfg Config, rng *rand.Rand) Puzzle {
	p, _ := GenerateWithDiagnostics(cfg, rng)

	return p
}

// GenerateWithDiagnostics is Generate plus per-category rejection counters.
// The counters are informational; two calls with equal inputs return equal
// puzzles and equal diagnostics.
func GenerateWithDiagnostics(cfg Config, rng *rand.Rand) (Puzzle, Diagnostics) {
	cfg = cfg.withDefaults()
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultRNGSeed))
	}

	var diag Diagnostics
	for attempt := 0; attempt < maxAttempts; attempt++ {
		diag.Attempts++
		if p, ok := generateOnce(cfg, r, &diag); ok {
			return p, diag
		}
	}

	// Exhaustion: the only terminal branch, and it cannot fail.
	diag.Fallback = true

	return fallback(cfg), diag
}

// generateOnce runs one full pipeline attempt. Rejections bump the
// matching diagnostics counter and report ok=false.
func generateOnce(cfg Config, r *rand.Rand, diag *Diagnostics) (Puzzle, bool) {
	tier := cfg.Tier

	// 1) Draw this instance's code alphabet and tier sub-parameters.
	pool := drawPool(cfg.Pool, tier.PoolSize, r)
	overlap := sampleOverlap(tier, pool, r)

	// 2) Synthesize the sequence chain.
	ch, err := chain.Build(overlap, r)
	if err != nil {
		diag.Structural++

		return Puzzle{}, false
	}

	// 3) Lay the merged path onto a fresh grid.
	g, pathPos, err := layout.Place(ch.MergedPath, tier.GridSize, r)
	if err != nil {
		diag.Structural++

		return Puzzle{}, false
	}

	// 4) Populate the remaining cells per the tier strategy.
	if err = fill.Fill(g, pathPos, ch.Sequences, pool, tier.Fill, r); err != nil {
		diag.Structural++

		return Puzzle{}, false
	}

	// 5) Verify, gate and (for gated tiers) adjust.
	buffer := len(ch.MergedPath) + tier.BufferMargin
	res, ok := gate(g, pathPos, ch, pool, tier, buffer, r, diag)
	if !ok {
		return Puzzle{}, false
	}

	// 6) Freeze the artifact. The canonical solution is the solver's
	//    shortest path, so Par always matches both it and the grid.
	return Puzzle{
		Grid:       g,
		Sequences:  ch.Sequences,
		BufferSize: buffer,
		Par:        res.Par(),
		Difficulty: cfg.Difficulty,
		Solution:   res.Solutions[0],
	}, true
}

// gate solves g and applies the tier's quality thresholds, running the
// adjustment loop when the solution count falls outside the band.
func gate(g *grid.Grid, pathPos []grid.Position, ch chain.Chain, pool []grid.Code, tier TierConfig, buffer int, r *rand.Rand, diag *Diagnostics) (solver.Result, bool) {
	res, err := solver.Solve(g, ch.Sequences, buffer, tier.MaxSolutions)
	if err != nil || !res.Solvable() {
		diag.Unsolvable++

		return solver.Result{}, false
	}

	// Cheap tiers accept the first solvable result.
	if !tier.UseQualityGate {
		return res, true
	}

	if res.FalseStarts < tier.MinFalseStarts {
		diag.FalseStarts++

		return solver.Result{}, false
	}

	// Adjustment loop: nudge non-path cells until the count lands in band.
	for round := 0; round < adjustRounds; round++ {
		if inBand(res.Count(), tier.SolutionBand) {
			return res, true
		}
		if res.Count() < tier.SolutionBand.Min {
			promote(g, pathPos, ch.Sequences, r)
		} else {
			demote(g, pathPos, ch.Sequences, pool, r)
		}
		res, err = solver.Solve(g, ch.Sequences, buffer, tier.MaxSolutions)
		if err != nil || !res.Solvable() {
			diag.Unsolvable++

			return solver.Result{}, false
		}
	}
	if inBand(res.Count(), tier.SolutionBand) {
		return res, true
	}
	diag.Band++

	return solver.Result{}, false
}

// inBand reports whether n lies in the inclusive band b.
func inBand(n int, b Range) bool {
	return n >= b.Min && n <= b.Max
}

// promote rewrites up to adjustCellsPerRound random non-path cells with
// sequence-bearing codes, breeding alternate solutions. Path cells are
// never touched.
func promote(g *grid.Grid, pathPos []grid.Position, seqs []chain.Sequence, r *rand.Rand) {
	seqCodes := sequenceCodes(seqs)
	if len(seqCodes) == 0 {
		return
	}
	targets := offPathPositions(g, pathPos, nil)
	shufflePositions(targets, r)
	for i := 0; i < len(targets) && i < adjustCellsPerRound; i++ {
		_ = g.SetCode(targets[i], seqCodes[r.Intn(len(seqCodes))])
	}
}

// demote rewrites up to adjustCellsPerRound random sequence-bearing
// non-path cells with sequence-free pool codes, starving alternate
// solutions. A pool without sequence-free codes leaves the grid unchanged
// (the band check then rejects the attempt). Path cells are never touched.
func demote(g *grid.Grid, pathPos []grid.Position, seqs []chain.Sequence, pool []grid.Code, r *rand.Rand) {
	seqSet := make(map[grid.Code]bool)
	for _, c := range sequenceCodes(seqs) {
		seqSet[c] = true
	}
	var safe []grid.Code
	for _, c := range pool {
		if !seqSet[c] {
			safe = append(safe, c)
		}
	}
	if len(safe) == 0 {
		return
	}
	targets := offPathPositions(g, pathPos, seqSet)
	shufflePositions(targets, r)
	for i := 0; i < len(targets) && i < adjustCellsPerRound; i++ {
		_ = g.SetCode(targets[i], safe[r.Intn(len(safe))])
	}
}

// sequenceCodes flattens the distinct codes of seqs in appearance order.
func sequenceCodes(seqs []chain.Sequence) []grid.Code {
	seen := make(map[grid.Code]bool)
	var out []grid.Code
	for i := range seqs {
		for _, c := range seqs[i].Codes {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}

	return out
}

// offPathPositions lists every non-path position of g, in row-major order.
// When filter is non-nil, only cells whose code is in filter qualify.
func offPathPositions(g *grid.Grid, pathPos []grid.Position, filter map[grid.Code]bool) []grid.Position {
	onPath := make(map[grid.Position]bool, len(pathPos))
	for _, p := range pathPos {
		onPath[p] = true
	}
	size := g.Size()
	var out []grid.Position
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			p := grid.Position{Row: row, Col: col}
			if onPath[p] {
				continue
			}
			if filter != nil {
				cell, err := g.At(p)
				if err != nil || !filter[cell.Code] {
					continue
				}
			}
			out = append(out, p)
		}
	}

	return out
}

// shufflePositions performs an in-place Fisher–Yates shuffle.
func shufflePositions(a []grid.Position, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// drawPool returns n distinct codes drawn uniformly from pool (all of them
// when n ≥ len(pool)), preserving determinism under r.
func drawPool(pool []grid.Code, n int, r *rand.Rand) []grid.Code {
	cp := make([]grid.Code, len(pool))
	copy(cp, pool)
	for i := len(cp) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cp[i], cp[j] = cp[j], cp[i]
	}
	if n < len(cp) {
		cp = cp[:n]
	}

	return cp
}

// sampleOverlap draws one attempt's chain parameters from the tier ranges,
// clamping the overlap count to the junction count.
func sampleOverlap(tier TierConfig, pool []grid.Code, r *rand.Rand) chain.OverlapConfig {
	count := sampleRange(tier.SequenceCount, r)
	length := sampleRange(tier.SequenceLength, r)
	overlap := sampleRange(tier.OverlapCount, r)
	depth := sampleRange(tier.OverlapDepth, r)
	if overlap > count-1 {
		overlap = count - 1
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap > 0 && depth < 1 {
		depth = 1
	}

	return chain.OverlapConfig{
		Pool:           pool,
		SequenceCount:  count,
		SequenceLength: length,
		OverlapCount:   overlap,
		OverlapDepth:   depth,
	}
}

// sampleRange draws a uniform integer from the inclusive range rg.
func sampleRange(rg Range, r *rand.Rand) int {
	if rg.Max <= rg.Min {
		return rg.Min
	}

	return rg.Min + r.Intn(rg.Max-rg.Min+1)
}
