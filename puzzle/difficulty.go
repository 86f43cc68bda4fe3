// Package puzzle - difficulty tiers as a closed data table.
package puzzle

import (
	"github.com/lowpolyghost/breach/fill"
	"github.com/lowpolyghost/breach/grid"
)

// Difficulty selects one tier of the parameter table. It is a closed set:
// unknown values resolve to Easy.
type Difficulty int

const (
	// Tutorial is a tiny single-sequence warm-up.
	Tutorial Difficulty = iota
	// Easy keeps short sequences with generous forgiving fill.
	Easy
	// Medium introduces overlap and the quality gate.
	Medium
	// Hard uses deceptive fill and demands false starts.
	Hard
	// Expert maximizes overlap and decoy pressure.
	Expert
)

// String returns the tier name for diagnostics and tests.
func (d Difficulty) String() string {
	switch d {
	case Tutorial:
		return "tutorial"
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

// Range is an inclusive integer interval sampled per attempt to diversify
// output within a tier.
type Range struct {
	Min, Max int
}

// TierConfig is the full parameter set of one difficulty tier.
//
// GridSize       – edge length of the square grid.
// SequenceCount  – sampled number of target sequences.
// SequenceLength – sampled codes per sequence.
// OverlapCount   – sampled overlapping junctions (clamped to count−1).
// OverlapDepth   – sampled codes shared per overlapping junction.
// PoolSize       – distinct codes drawn from the configured pool.
// BufferMargin   – extra moves granted beyond the merged path length.
// Fill           – fill strategy and densities.
// MaxSolutions   – solver enumeration cap.
// SolutionBand   – accepted solution-count band (gated tiers).
// MinFalseStarts – required false starts (gated tiers).
// UseQualityGate – whether the gate and adjustment loop run at all.
type TierConfig struct {
	GridSize       int
	SequenceCount  Range
	SequenceLength Range
	OverlapCount   Range
	OverlapDepth   Range
	PoolSize       int
	BufferMargin   int
	Fill           fill.Options
	MaxSolutions   int
	SolutionBand   Range
	MinFalseStarts int
	UseQualityGate bool
}

// tiers is the closed difficulty table. Parameters are data, not dispatch.
var tiers = map[Difficulty]TierConfig{
	Tutorial: {
		GridSize:       3,
		SequenceCount:  Range{Min: 1, Max: 1},
		SequenceLength: Range{Min: 2, Max: 3},
		PoolSize:       4,
		BufferMargin:   2,
		Fill:           fill.Options{Strategy: fill.Forgiving, Density: 0.7},
		MaxSolutions:   4,
	},
	Easy: {
		GridSize:       4,
		SequenceCount:  Range{Min: 1, Max: 2},
		SequenceLength: Range{Min: 2, Max: 2},
		OverlapCount:   Range{Min: 0, Max: 1},
		OverlapDepth:   Range{Min: 1, Max: 1},
		PoolSize:       4,
		BufferMargin:   2,
		Fill:           fill.Options{Strategy: fill.Forgiving, Density: 0.5},
		MaxSolutions:   6,
	},
	Medium: {
		GridSize:       5,
		SequenceCount:  Range{Min: 2, Max: 2},
		SequenceLength: Range{Min: 2, Max: 3},
		OverlapCount:   Range{Min: 1, Max: 1},
		OverlapDepth:   Range{Min: 1, Max: 1},
		PoolSize:       5,
		BufferMargin:   1,
		Fill:           fill.Options{Strategy: fill.Moderate, Density: 0.3},
		MaxSolutions:   8,
		SolutionBand:   Range{Min: 2, Max: 8},
		MinFalseStarts: 1,
		UseQualityGate: true,
	},
	Hard: {
		GridSize:       6,
		SequenceCount:  Range{Min: 2, Max: 3},
		SequenceLength: Range{Min: 3, Max: 3},
		OverlapCount:   Range{Min: 1, Max: 2},
		OverlapDepth:   Range{Min: 1, Max: 2},
		PoolSize:       6,
		BufferMargin:   1,
		Fill:           fill.Options{Strategy: fill.Deceptive, DecoyDensity: 0.6},
		MaxSolutions:   8,
		SolutionBand:   Range{Min: 1, Max: 5},
		MinFalseStarts: 2,
		UseQualityGate: true,
	},
	Expert: {
		GridSize:       6,
		SequenceCount:  Range{Min: 3, Max: 3},
		SequenceLength: Range{Min: 3, Max: 3},
		OverlapCount:   Range{Min: 1, Max: 2},
		OverlapDepth:   Range{Min: 2, Max: 2},
		PoolSize:       6,
		BufferMargin:   1,
		Fill:           fill.Options{Strategy: fill.Deceptive, DecoyDensity: 0.8},
		MaxSolutions:   8,
		SolutionBand:   Range{Min: 1, Max: 4},
		MinFalseStarts: 2,
		UseQualityGate: true,
	},
}

// TierFor returns the parameter table entry of d; unknown difficulties
// resolve to the Easy tier. The returned struct is a copy — callers may
// tweak it freely before passing it back through Config.
func TierFor(d Difficulty) TierConfig {
	if t, ok := tiers[d]; ok {
		return t
	}

	return tiers[Easy]
}

// Config bundles everything Generate consumes from its collaborators: the
// valid code alphabet and the per-tier parameters, both plain data.
type Config struct {
	// Difficulty tags the produced puzzle.
	Difficulty Difficulty
	// Pool is the full code alphabet; instances draw Tier.PoolSize of it.
	Pool []grid.Code
	// Tier is the parameter set; zero-value tiers resolve via TierFor.
	Tier TierConfig
}

// DefaultPool returns the classic six-token alphabet.
func DefaultPool() []grid.Code {
	return []grid.Code{"1C", "55", "7A", "BD", "E9", "FF"}
}

// DefaultConfig returns the stock configuration of tier d.
func DefaultConfig(d Difficulty) Config {
	return Config{Difficulty: d, Pool: DefaultPool(), Tier: TierFor(d)}
}

// withDefaults fills the gaps of a partially specified Config so Generate
// can honor its never-fails contract on any input.
func (c Config) withDefaults() Config {
	if len(c.Pool) == 0 {
		c.Pool = DefaultPool()
	}
	if c.Tier.GridSize < 1 {
		c.Tier = TierFor(c.Difficulty)
	}
	if c.Tier.PoolSize < 1 || c.Tier.PoolSize > len(c.Pool) {
		c.Tier.PoolSize = len(c.Pool)
	}
	if c.Tier.SequenceCount.Min < 1 {
		c.Tier.SequenceCount.Min = 1
	}
	if c.Tier.SequenceLength.Min < 1 {
		c.Tier.SequenceLength.Min = 1
	}
	if c.Tier.BufferMargin < 0 {
		c.Tier.BufferMargin = 0
	}
	if c.Tier.MaxSolutions < 1 {
		c.Tier.MaxSolutions = 1
	}

	return c
}
