// Package chain - progress matching shared by the solver and live play.
package chain

import (
	"github.com/lowpolyghost/breach/grid"
)

// Advance returns the updated progress of one sequence after the code
// picked is selected. Matching is ordered but not contiguous: a pick that
// does not equal the next-needed code leaves progress unchanged, and a
// wildcard pick advances any incomplete sequence unconditionally.
//
// Advance is pure and allocation-free; it is the single matching rule used
// by generation, verification and the interactive loop.
// Complexity: O(1).
func Advance(codes []grid.Code, progress int, picked grid.Code, wildcard bool) int {
	// Completed sequences never move again.
	if progress >= len(codes) {
		return progress
	}
	if wildcard || codes[progress] == picked {
		return progress + 1
	}

	return progress
}

// Replay streams path through every sequence via Advance and reports
// whether all of them complete. It is the independent check behind the
// merged-path guarantee of Build.
// Complexity: O(len(path) × len(seqs)).
func Replay(path []grid.Code, seqs []Sequence) bool {
	progress := make([]int, len(seqs))
	for _, picked := range path {
		for i := range seqs {
			progress[i] = Advance(seqs[i].Codes, progress[i], picked, false)
		}
	}

	for i := range seqs {
		if !seqs[i].Complete(progress[i]) {
			return false
		}
	}

	return true
}
