// Package solver defines the result type and sentinel errors for the
// solver subpackage of github.com/lowpolyghost/breach.
package solver

import (
	"errors"

	"github.com/lowpolyghost/breach/grid"
)

// Sentinel errors for solver inputs.
var (
	// ErrNilGrid indicates a nil grid.
	ErrNilGrid = errors.New("solver: grid must not be nil")
	// ErrNoSequences indicates an empty target-sequence set.
	ErrNoSequences = errors.New("solver: at least one target sequence is required")
	// ErrEmptySequence indicates a target sequence with no codes.
	ErrEmptySequence = errors.New("solver: target sequences must not be empty")
	// ErrBufferSize indicates a non-positive move budget.
	ErrBufferSize = errors.New("solver: buffer size must be at least one")
	// ErrSolutionCap indicates a non-positive solution cap.
	ErrSolutionCap = errors.New("solver: max solutions must be at least one")
	// ErrTooManySequences indicates a sequence set too large for the
	// progress-undo bitmask (64 slots).
	ErrTooManySequences = errors.New("solver: at most 64 target sequences are supported")
)

// Result is the solver output: every discovered solution path, sorted by
// length ascending (ties broken lexicographically by positions for
// deterministic output), plus the false-start count.
type Result struct {
	// Solutions holds each complete selection path as an ordered position list.
	Solutions [][]grid.Position
	// FalseStarts counts row-0 starting cells from which no solution exists.
	FalseStarts int
}

// Solvable reports whether at least one solution was found.
func (r Result) Solvable() bool {
	return len(r.Solutions) > 0
}

// Count returns the number of discovered solutions (capped by the caller).
func (r Result) Count() int {
	return len(r.Solutions)
}

// Par returns the length of the shortest solution, or 0 when unsolvable.
func (r Result) Par() int {
	if !r.Solvable() {
		return 0
	}

	return len(r.Solutions[0])
}
