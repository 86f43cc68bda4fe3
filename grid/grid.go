package grid

import (
	"strings"
)

// Grid is a square matrix of Cells. Exactly one Cell exists per Position;
// the size is fixed at construction and never changes.
//
// Grid is not safe for concurrent mutation; the pipeline is single-threaded
// by contract and each generation attempt owns its grids exclusively.
type Grid struct {
	size  int
	cells [][]Cell
}

// New constructs an empty size×size Grid. Every cell starts as KindNormal
// with an empty Code.
// Returns ErrGridSize if size < 1.
// Complexity: O(size²) time and memory.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, ErrGridSize
	}
	cells := make([][]Cell, size)
	for r := 0; r < size; r++ {
		cells[r] = make([]Cell, size)
	}

	return &Grid{size: size, cells: cells}, nil
}

// Size returns the edge length of the grid.
// Complexity: O(1).
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// At returns the Cell stored at p.
// Returns ErrOutOfBounds if p lies outside the grid.
// Complexity: O(1).
func (g *Grid) At(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return Cell{}, ErrOutOfBounds
	}

	return g.cells[p.Row][p.Col], nil
}

// Set stores c at p, replacing the previous cell wholesale.
// Returns ErrOutOfBounds if p lies outside the grid.
// Complexity: O(1).
func (g *Grid) Set(p Position, c Cell) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	g.cells[p.Row][p.Col] = c

	return nil
}

// SetCode overwrites only the Code of the cell at p, keeping its kind and
// live-play state intact. Used by the fill and adjustment stages.
// Returns ErrOutOfBounds if p lies outside the grid.
// Complexity: O(1).
func (g *Grid) SetCode(p Position, code Code) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	g.cells[p.Row][p.Col].Code = code

	return nil
}

// SetKind overwrites only the CellKind of the cell at p.
// Returns ErrOutOfBounds if p lies outside the grid.
// Complexity: O(1).
func (g *Grid) SetKind(p Position, k CellKind) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	g.cells[p.Row][p.Col].Kind = k

	return nil
}

// Clone returns a deep copy of g. Mutating the copy never affects the
// original; the adjustment loop relies on this for speculative edits.
// Complexity: O(size²) time and memory.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.size)
	for r := 0; r < g.size; r++ {
		cells[r] = make([]Cell, g.size)
		copy(cells[r], g.cells[r])
	}

	return &Grid{size: g.size, cells: cells}
}

// Neighbors4 returns the orthogonally adjacent in-bounds positions of p
// in N, E, S, W order. Out-of-bounds p yields an empty slice.
// Complexity: O(1) (at most four candidates).
func (g *Grid) Neighbors4(p Position) []Position {
	if !g.InBounds(p) {
		return nil
	}
	out := make([]Position, 0, 4)
	for _, off := range neighborOffsets4 {
		q := Position{Row: p.Row + off[0], Col: p.Col + off[1]}
		if g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// String renders the grid as ASCII rows of codes, one row per line.
// Empty codes render as "..", blockers as "##", wildcards as "**".
// Intended for debugging and examples only.
// Complexity: O(size²).
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cellToken(g.cells[r][c]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// cellToken formats one cell for String.
func cellToken(c Cell) string {
	switch {
	case c.Kind == KindBlocker:
		return "##"
	case c.Kind == KindWildcard:
		return "**"
	case c.Code == "":
		return ".."
	default:
		return string(c.Code)
	}
}
