// Package puzzle - pure re-validation of a finished Puzzle.
package puzzle

import (
	"github.com/lowpolyghost/breach/chain"
	"github.com/lowpolyghost/breach/grid"
)

// Validate re-checks every invariant of p and returns the sentinel of the
// first violation, or nil. It is a pure function of p: no hidden state,
// identical results on repeated calls.
//
// Checked invariants:
//  1. Grid, sequences and solution are present.
//  2. The solution starts in row 0, stays in bounds, never repeats a
//     position, never crosses a blocker, and alternates column moves
//     (odd steps) with row moves (even steps).
//  3. Replaying the solution's cells completes every target sequence.
//  4. Par equals the solution length; BufferSize ≥ Par.
//
// Complexity: O(len(solution) × #sequences).
func Validate(p Puzzle) error {
	// 1) Presence.
	if p.Grid == nil {
		return ErrNilGrid
	}
	if len(p.Sequences) == 0 {
		return ErrNoSequences
	}
	if len(p.Solution) == 0 {
		return ErrNoSolution
	}

	// 2) Path geometry.
	if p.Solution[0].Row != 0 {
		return ErrPathStart
	}
	seen := make(map[grid.Position]bool, len(p.Solution))
	for k, pos := range p.Solution {
		if !p.Grid.InBounds(pos) {
			return ErrPathBounds
		}
		if seen[pos] {
			return ErrPathRepeat
		}
		seen[pos] = true
		if k > 0 {
			prev := p.Solution[k-1]
			if k%2 == 1 && pos.Col != prev.Col {
				return ErrPathAlternation
			}
			if k%2 == 0 && pos.Row != prev.Row {
				return ErrPathAlternation
			}
		}
	}

	// 3) Sequence satisfaction by replay against the actual grid cells.
	progress := make([]int, len(p.Sequences))
	for _, pos := range p.Solution {
		cell, err := p.Grid.At(pos)
		if err != nil {
			return ErrPathBounds
		}
		if cell.Kind == grid.KindBlocker {
			return ErrPathBlocked
		}
		wildcard := cell.Kind == grid.KindWildcard
		for i := range p.Sequences {
			progress[i] = chain.Advance(p.Sequences[i].Codes, progress[i], cell.Code, wildcard)
		}
	}
	for i := range p.Sequences {
		if !p.Sequences[i].Complete(progress[i]) {
			return ErrUnsatisfied
		}
	}

	// 4) Par and buffer coherence.
	if p.Par != len(p.Solution) {
		return ErrParMismatch
	}
	if p.BufferSize < p.Par {
		return ErrBufferShort
	}

	return nil
}

// Valid reports whether Validate(p) passes. Idempotent by construction.
func Valid(p Puzzle) bool {
	return Validate(p) == nil
}
