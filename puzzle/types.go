// Package puzzle defines the Puzzle artifact, validation sentinels and
// diagnostics for github.com/lowpolyghost/breach.
package puzzle

import (
	"errors"

	"github.com/lowpolyghost/breach/chain"
	"github.com/lowpolyghost/breach/grid"
)

// Sentinel errors returned by Validate, one per invariant.
var (
	// ErrNilGrid indicates a puzzle without a grid.
	ErrNilGrid = errors.New("puzzle: grid must not be nil")
	// ErrNoSequences indicates an empty target-sequence set.
	ErrNoSequences = errors.New("puzzle: at least one target sequence is required")
	// ErrNoSolution indicates an empty canonical solution path.
	ErrNoSolution = errors.New("puzzle: canonical solution path must not be empty")
	// ErrPathStart indicates a canonical path not starting in row 0.
	ErrPathStart = errors.New("puzzle: solution path must start in row 0")
	// ErrPathBounds indicates a canonical path position outside the grid.
	ErrPathBounds = errors.New("puzzle: solution path leaves the grid")
	// ErrPathRepeat indicates a repeated position on the canonical path.
	ErrPathRepeat = errors.New("puzzle: solution path revisits a position")
	// ErrPathAlternation indicates a violation of the row/column
	// alternation rule along the canonical path.
	ErrPathAlternation = errors.New("puzzle: solution path breaks row/column alternation")
	// ErrPathBlocked indicates a blocker cell on the canonical path.
	ErrPathBlocked = errors.New("puzzle: solution path crosses a blocker")
	// ErrUnsatisfied indicates the canonical path does not complete every
	// target sequence.
	ErrUnsatisfied = errors.New("puzzle: solution path leaves a sequence incomplete")
	// ErrParMismatch indicates Par differing from the canonical path length.
	ErrParMismatch = errors.New("puzzle: par must equal the solution path length")
	// ErrBufferShort indicates a buffer smaller than par.
	ErrBufferShort = errors.New("puzzle: buffer size must be at least par")
)

// Puzzle is the final immutable artifact of one successful generation
// attempt. It is created once, never mutated afterwards, and owned
// exclusively by the caller that receives it.
type Puzzle struct {
	// Grid is the fully populated play grid.
	Grid *grid.Grid
	// Sequences are the target sequences the player must complete.
	Sequences []chain.Sequence
	// BufferSize is the selection budget (always ≥ Par).
	BufferSize int
	// Par is the length of the shortest valid solution.
	Par int
	// Difficulty tags the tier the puzzle was generated for.
	Difficulty Difficulty
	// Solution is the canonical shortest solution path.
	Solution []grid.Position
}

// Diagnostics counts rejection reasons across one Generate call. It is
// informational only; correctness never depends on it.
type Diagnostics struct {
	// Attempts is the number of pipeline attempts consumed.
	Attempts int
	// Structural counts chain-build and placement failures.
	Structural int
	// Unsolvable counts attempts whose filled grid had no solution.
	Unsolvable int
	// FalseStarts counts rejections for too few false starts.
	FalseStarts int
	// Band counts rejections for a solution count outside the tier band
	// after all adjustment rounds.
	Band int
	// Fallback reports whether the attempt budget was exhausted and the
	// guaranteed fallback puzzle was returned.
	Fallback bool
}
