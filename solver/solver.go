// Package solver - multi-sequence backtracking enumeration.
package solver

import (
	"sort"

	"github.com/lowpolyghost/breach/chain"
	"github.com/lowpolyghost/breach/grid"
)

// Solve enumerates all valid selection paths of g against seqs, up to
// maxSolutions, within bufferSize moves.
//
// Contracts:
//   - g must be non-nil; seqs non-empty with non-empty codes; at most 64
//     sequences; bufferSize ≥ 1; maxSolutions ≥ 1.
//   - g is read-only during the search; Solve allocates all of its own
//     working state and is safe to call repeatedly on the same inputs.
//
// Errors: strict sentinels from types.go.
//
// Complexity: worst case exponential in bufferSize, bounded by the cap and
// the remaining-needed pruning bound; memory O(size² + bufferSize).
func Solve(g *grid.Grid, seqs []chain.Sequence, bufferSize, maxSolutions int) (Result, error) {
	// Stage 1 - validation.
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if len(seqs) == 0 {
		return Result{}, ErrNoSequences
	}
	if len(seqs) > 64 {
		return Result{}, ErrTooManySequences
	}
	for i := range seqs {
		if len(seqs[i].Codes) == 0 {
			return Result{}, ErrEmptySequence
		}
	}
	if bufferSize < 1 {
		return Result{}, ErrBufferSize
	}
	if maxSolutions < 1 {
		return Result{}, ErrSolutionCap
	}

	// Stage 2 - shared mutable search state, pushed/restored around every
	// descent (see doc.go).
	st := &searchState{
		g:        g,
		seqs:     seqs,
		progress: make([]int, len(seqs)),
		used:     make(map[grid.Position]bool, bufferSize),
		path:     make([]grid.Position, 0, bufferSize),
		cap:      maxSolutions,
	}

	// Stage 3 - root the search at every non-blocker cell of row 0.
	size := g.Size()
	falseStarts := 0
	for col := 0; col < size; col++ {
		if len(st.solutions) >= st.cap {
			// Cap reached: remaining starts are neither searched nor
			// counted as false starts.
			break
		}
		start := grid.Position{Row: 0, Col: col}
		cell, err := g.At(start)
		if err != nil {
			return Result{}, err
		}
		if cell.Kind == grid.KindBlocker {
			// Skipped, not a false start.
			continue
		}

		before := len(st.solutions)
		st.budget = bufferSize
		st.search(start, true)
		if len(st.solutions) == before {
			falseStarts++
		}
	}

	// Stage 4 - deterministic ordering: length ascending, then positions
	// lexicographically. Par is the first entry's length.
	sort.Slice(st.solutions, func(i, j int) bool {
		return lessPath(st.solutions[i], st.solutions[j])
	})

	return Result{Solutions: st.solutions, FalseStarts: falseStarts}, nil
}

// searchState is the single mutable record of the backtracking search.
// Every field mutated by search is restored before search returns.
type searchState struct {
	g         *grid.Grid
	seqs      []chain.Sequence
	progress  []int               // matched-code count per sequence
	used      map[grid.Position]bool
	path      []grid.Position
	budget    int                 // remaining moves
	cap       int                 // global solution cap
	solutions [][]grid.Position
}

// search selects pos, recurses over legal continuations, and restores all
// state before returning. vertical reports whether the NEXT move must stay
// in pos's column (the mode flips every step).
func (st *searchState) search(pos grid.Position, vertical bool) {
	cell, err := st.g.At(pos)
	if err != nil {
		return
	}
	wildcard := cell.Kind == grid.KindWildcard

	// 1) Select pos: advance every sequence, recording which slots moved
	//    in a bitmask so the undo needs no per-frame allocation.
	var advanced uint64
	complete := true
	for i := range st.seqs {
		next := chain.Advance(st.seqs[i].Codes, st.progress[i], cell.Code, wildcard)
		if next != st.progress[i] {
			advanced |= 1 << uint(i)
			st.progress[i] = next
		}
		if !st.seqs[i].Complete(st.progress[i]) {
			complete = false
		}
	}
	st.used[pos] = true
	st.path = append(st.path, pos)
	st.budget--

	switch {
	case complete:
		// 2a) Every sequence done: record a copy of the path. Longer
		//     extensions of a complete path are not explored.
		solution := make([]grid.Position, len(st.path))
		copy(solution, st.path)
		st.solutions = append(st.solutions, solution)

	case st.budget >= st.maxRemaining() && len(st.solutions) < st.cap:
		// 2b) Expand: the budget can still cover the worst remaining
		//     sequence (max, not sum — one move may advance several).
		for _, next := range st.candidates(pos, vertical) {
			if len(st.solutions) >= st.cap {
				break
			}
			st.search(next, !vertical)
		}
	}

	// 3) Restore: pop the path, free the position, refund the move and
	//    roll back exactly the progress slots this move advanced.
	st.budget++
	st.path = st.path[:len(st.path)-1]
	delete(st.used, pos)
	for i := range st.seqs {
		if advanced&(1<<uint(i)) != 0 {
			st.progress[i]--
		}
	}
}

// maxRemaining returns the largest remaining-codes-needed across incomplete
// sequences; 0 when everything is complete.
func (st *searchState) maxRemaining() int {
	maxNeed := 0
	for i := range st.seqs {
		if need := len(st.seqs[i].Codes) - st.progress[i]; need > maxNeed {
			maxNeed = need
		}
	}

	return maxNeed
}

// candidates returns the legal continuations from pos: unused, non-blocker
// positions in pos's column (vertical) or row (horizontal), with cells that
// match a currently-needed code — or wildcards — ordered first.
func (st *searchState) candidates(pos grid.Position, vertical bool) []grid.Position {
	size := st.g.Size()
	matching := make([]grid.Position, 0, size)
	rest := make([]grid.Position, 0, size)

	for i := 0; i < size; i++ {
		var p grid.Position
		if vertical {
			p = grid.Position{Row: i, Col: pos.Col}
		} else {
			p = grid.Position{Row: pos.Row, Col: i}
		}
		if st.used[p] {
			continue
		}
		cell, err := st.g.At(p)
		if err != nil || cell.Kind == grid.KindBlocker {
			continue
		}
		if cell.Kind == grid.KindWildcard || st.needed(cell.Code) {
			matching = append(matching, p)
		} else {
			rest = append(rest, p)
		}
	}

	return append(matching, rest...)
}

// needed reports whether code is the next-needed code of any incomplete
// sequence.
func (st *searchState) needed(code grid.Code) bool {
	for i := range st.seqs {
		p := st.progress[i]
		if p < len(st.seqs[i].Codes) && st.seqs[i].Codes[p] == code {
			return true
		}
	}

	return false
}

// lessPath orders solution paths by length ascending, then by positions
// lexicographically, for fully deterministic output.
func lessPath(a, b []grid.Position) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i].Row != b[i].Row {
				return a[i].Row < b[i].Row
			}

			return a[i].Col < b[i].Col
		}
	}

	return false
}
