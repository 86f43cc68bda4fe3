package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lowpolyghost/breach/chain"
	"github.com/lowpolyghost/breach/grid"
	"github.com/lowpolyghost/breach/puzzle"
)

// basePuzzle hand-builds a known-valid 3×3 staircase puzzle:
// 1C at (0,0), BD at (1,0), 55 at (1,1); FF everywhere else.
func basePuzzle(t *testing.T) puzzle.Puzzle {
	t.Helper()
	g, err := grid.New(3)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.NoError(t, g.SetCode(grid.Position{Row: r, Col: c}, "FF"))
		}
	}
	require.NoError(t, g.SetCode(grid.Position{Row: 0, Col: 0}, "1C"))
	require.NoError(t, g.SetCode(grid.Position{Row: 1, Col: 0}, "BD"))
	require.NoError(t, g.SetCode(grid.Position{Row: 1, Col: 1}, "55"))

	return puzzle.Puzzle{
		Grid:       g,
		Sequences:  []chain.Sequence{{Codes: []grid.Code{"1C", "BD", "55"}}},
		BufferSize: 5,
		Par:        3,
		Difficulty: puzzle.Easy,
		Solution: []grid.Position{
			{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
		},
	}
}

// TestValidate_OK verifies the hand-built puzzle passes and that Validate
// is idempotent.
func TestValidate_OK(t *testing.T) {
	p := basePuzzle(t)
	require.NoError(t, puzzle.Validate(p))
	require.NoError(t, puzzle.Validate(p), "second validation must agree")
	require.True(t, puzzle.Valid(p))
}

// TestValidate_Errors mutates the base puzzle one invariant at a time and
// expects the matching sentinel.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *puzzle.Puzzle)
		want   error
	}{
		{"NilGrid", func(p *puzzle.Puzzle) { p.Grid = nil }, puzzle.ErrNilGrid},
		{"NoSequences", func(p *puzzle.Puzzle) { p.Sequences = nil }, puzzle.ErrNoSequences},
		{"NoSolution", func(p *puzzle.Puzzle) { p.Solution = nil }, puzzle.ErrNoSolution},
		{"StartOffRow0", func(p *puzzle.Puzzle) {
			p.Solution = []grid.Position{{Row: 1, Col: 0}, {Row: 1, Col: 1}}
		}, puzzle.ErrPathStart},
		{"OutOfBounds", func(p *puzzle.Puzzle) {
			p.Solution = []grid.Position{{Row: 0, Col: 0}, {Row: 5, Col: 0}}
		}, puzzle.ErrPathBounds},
		{"Repeat", func(p *puzzle.Puzzle) {
			p.Solution = []grid.Position{
				{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 0},
			}
		}, puzzle.ErrPathRepeat},
		{"BrokenAlternation", func(p *puzzle.Puzzle) {
			// Second move must share the column, not the row.
			p.Solution = []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
		}, puzzle.ErrPathAlternation},
		{"Blocker", func(p *puzzle.Puzzle) {
			_ = p.Grid.SetKind(grid.Position{Row: 1, Col: 0}, grid.KindBlocker)
		}, puzzle.ErrPathBlocked},
		{"Unsatisfied", func(p *puzzle.Puzzle) {
			p.Sequences = []chain.Sequence{{Codes: []grid.Code{"1C", "E9"}}}
		}, puzzle.ErrUnsatisfied},
		{"ParMismatch", func(p *puzzle.Puzzle) { p.Par = 2 }, puzzle.ErrParMismatch},
		{"BufferShort", func(p *puzzle.Puzzle) { p.BufferSize = 2; p.Par = 3 }, puzzle.ErrBufferShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := basePuzzle(t)
			tc.mutate(&p)
			require.ErrorIs(t, puzzle.Validate(p), tc.want)
		})
	}
}

// TestValidate_WildcardOnPath verifies wildcard cells satisfy any needed
// code during replay.
func TestValidate_WildcardOnPath(t *testing.T) {
	p := basePuzzle(t)
	require.NoError(t, p.Grid.Set(grid.Position{Row: 1, Col: 0}, grid.Cell{Kind: grid.KindWildcard}))
	require.NoError(t, puzzle.Validate(p), "wildcard must stand in for BD")
}
