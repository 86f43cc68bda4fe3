package fill_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lowpolyghost/breach/chain"
	"github.com/lowpolyghost/breach/fill"
	"github.com/lowpolyghost/breach/grid"
)

var testPool = []grid.Code{"1C", "55", "7A", "BD", "E9", "FF"}

// placedGrid lays the codes of path onto fresh positions down column 0 of
// a size×size grid and returns the grid plus the positions.
// Layout details are irrelevant to fill; only the path set matters here.
func placedGrid(t *testing.T, size int, codes []grid.Code) (*grid.Grid, []grid.Position) {
	t.Helper()
	g, err := grid.New(size)
	require.NoError(t, err)
	pos := make([]grid.Position, len(codes))
	for i, c := range codes {
		pos[i] = grid.Position{Row: i, Col: 0}
		require.NoError(t, g.SetCode(pos[i], c))
	}

	return g, pos
}

// TestFill_Errors verifies the input sentinels.
func TestFill_Errors(t *testing.T) {
	g, pos := placedGrid(t, 3, []grid.Code{"1C"})
	ok := fill.Options{Strategy: fill.Forgiving, Density: 0.5}

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"NilGrid", func() error { return fill.Fill(nil, pos, nil, testPool, ok, nil) }, fill.ErrNilGrid},
		{"EmptyPool", func() error { return fill.Fill(g, pos, nil, nil, ok, nil) }, fill.ErrEmptyPool},
		{"BadStrategy", func() error {
			return fill.Fill(g, pos, nil, testPool, fill.Options{Strategy: fill.Strategy(9)}, nil)
		}, fill.ErrBadStrategy},
		{"DensityHigh", func() error {
			return fill.Fill(g, pos, nil, testPool, fill.Options{Strategy: fill.Forgiving, Density: 1.5}, nil)
		}, fill.ErrBadDensity},
		{"DensityNegative", func() error {
			return fill.Fill(g, pos, nil, testPool, fill.Options{Strategy: fill.Deceptive, DecoyDensity: -0.1}, nil)
		}, fill.ErrBadDensity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.call(), tc.want)
		})
	}
}

// TestFill_PathNeverOverwritten property-tests the core invariant across
// all three strategies and many seeds.
func TestFill_PathNeverOverwritten(t *testing.T) {
	pathCodes := []grid.Code{"1C", "BD", "55", "E9"}
	seqs := []chain.Sequence{{Codes: pathCodes}}
	strategies := []fill.Options{
		{Strategy: fill.Forgiving, Density: 0.9},
		{Strategy: fill.Moderate, Density: 0.2},
		{Strategy: fill.Deceptive, DecoyDensity: 0.8},
	}
	for _, opts := range strategies {
		for seed := int64(0); seed < 50; seed++ {
			g, pos := placedGrid(t, 5, pathCodes)
			require.NoError(t, fill.Fill(g, pos, seqs, testPool, opts, rand.New(rand.NewSource(seed))))
			for i, p := range pos {
				cell, err := g.At(p)
				require.NoError(t, err)
				require.Equal(t, pathCodes[i], cell.Code,
					"strategy %v seed %d: path cell %v overwritten", opts.Strategy, seed, p)
			}
		}
	}
}

// TestFill_EveryCellPopulated verifies no cell is left with an empty code.
func TestFill_EveryCellPopulated(t *testing.T) {
	g, pos := placedGrid(t, 4, []grid.Code{"1C", "BD"})
	require.NoError(t, fill.Fill(g, pos, nil, testPool, fill.DefaultOptions(), rand.New(rand.NewSource(3))))
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			cell, err := g.At(grid.Position{Row: r, Col: c})
			require.NoError(t, err)
			require.NotEmpty(t, cell.Code, "cell (%d,%d) left empty", r, c)
			require.Equal(t, grid.KindNormal, cell.Kind)
		}
	}
}

// TestFill_ForgivingFullDensity verifies the density bound: at Density 1.0
// every non-path cell echoes a code present on the solution path.
func TestFill_ForgivingFullDensity(t *testing.T) {
	pathCodes := []grid.Code{"1C", "BD"}
	onPath := map[grid.Code]bool{"1C": true, "BD": true}
	for seed := int64(0); seed < 100; seed++ {
		g, pos := placedGrid(t, 4, pathCodes)
		opts := fill.Options{Strategy: fill.Forgiving, Density: 1.0}
		require.NoError(t, fill.Fill(g, pos, nil, testPool, opts, rand.New(rand.NewSource(seed))))
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				cell, err := g.At(grid.Position{Row: r, Col: c})
				require.NoError(t, err)
				require.True(t, onPath[cell.Code],
					"seed %d: cell (%d,%d) code %q not drawn from the path", seed, r, c, cell.Code)
			}
		}
	}
}

// TestFill_DeceptiveSafeFiller verifies that non-adjacent cells never carry
// a sequence code when the pool offers sequence-free codes.
func TestFill_DeceptiveSafeFiller(t *testing.T) {
	pathCodes := []grid.Code{"1C", "BD"}
	seqs := []chain.Sequence{{Codes: pathCodes}}
	inSeq := map[grid.Code]bool{"1C": true, "BD": true}
	for seed := int64(0); seed < 100; seed++ {
		g, pos := placedGrid(t, 5, pathCodes)
		opts := fill.Options{Strategy: fill.Deceptive, DecoyDensity: 1.0}
		require.NoError(t, fill.Fill(g, pos, seqs, testPool, opts, rand.New(rand.NewSource(seed))))

		// Rebuild the adjacency set independently of the implementation.
		adjacent := map[grid.Position]bool{}
		for _, p := range pos {
			for _, q := range g.Neighbors4(p) {
				adjacent[q] = true
			}
		}
		onPath := map[grid.Position]bool{pos[0]: true, pos[1]: true}

		for r := 0; r < 5; r++ {
			for c := 0; c < 5; c++ {
				p := grid.Position{Row: r, Col: c}
				if onPath[p] || adjacent[p] {
					continue
				}
				cell, err := g.At(p)
				require.NoError(t, err)
				require.False(t, inSeq[cell.Code],
					"seed %d: far cell %v carries sequence code %q", seed, p, cell.Code)
			}
		}
	}
}

// TestFill_DeceptiveDecoysNearPath verifies that with DecoyDensity 1.0
// every path-adjacent cell carries a sequence code.
func TestFill_DeceptiveDecoysNearPath(t *testing.T) {
	pathCodes := []grid.Code{"1C", "BD"}
	seqs := []chain.Sequence{{Codes: pathCodes}}
	inSeq := map[grid.Code]bool{"1C": true, "BD": true}
	g, pos := placedGrid(t, 5, pathCodes)
	opts := fill.Options{Strategy: fill.Deceptive, DecoyDensity: 1.0}
	require.NoError(t, fill.Fill(g, pos, seqs, testPool, opts, rand.New(rand.NewSource(8))))

	onPath := map[grid.Position]bool{pos[0]: true, pos[1]: true}
	for _, p := range pos {
		for _, q := range g.Neighbors4(p) {
			if onPath[q] {
				continue
			}
			cell, err := g.At(q)
			require.NoError(t, err)
			require.True(t, inSeq[cell.Code],
				"adjacent cell %v code %q is not a sequence decoy", q, cell.Code)
		}
	}
}

// TestFill_DeceptiveNoSafeCodes verifies the fallback when every pool code
// appears in some sequence: far cells draw from the whole pool.
func TestFill_DeceptiveNoSafeCodes(t *testing.T) {
	pool := []grid.Code{"1C", "BD"}
	seqs := []chain.Sequence{{Codes: []grid.Code{"1C", "BD"}}}
	g, pos := placedGrid(t, 4, []grid.Code{"1C", "BD"})
	opts := fill.Options{Strategy: fill.Deceptive, DecoyDensity: 0.5}
	require.NoError(t, fill.Fill(g, pos, seqs, pool, opts, rand.New(rand.NewSource(4))))
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			cell, err := g.At(grid.Position{Row: r, Col: c})
			require.NoError(t, err)
			require.Contains(t, pool, cell.Code)
		}
	}
}

// TestFill_Deterministic verifies equal seeds fill identically.
func TestFill_Deterministic(t *testing.T) {
	mk := func() *grid.Grid {
		g, pos := placedGrid(t, 5, []grid.Code{"1C", "BD", "55"})
		opts := fill.Options{Strategy: fill.Moderate, Density: 0.4}
		require.NoError(t, fill.Fill(g, pos, nil, testPool, opts, rand.New(rand.NewSource(21))))
		return g
	}
	require.Equal(t, mk().String(), mk().String())
}
