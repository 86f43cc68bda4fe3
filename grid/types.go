// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/lowpolyghost/breach.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrGridSize indicates a requested grid size that is not positive.
	ErrGridSize = errors.New("grid: size must be at least one")
	// ErrOutOfBounds indicates a position outside the grid boundaries.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// Code is an opaque symbolic token drawn from a small fixed alphabet
// (e.g. "1C", "BD", "E9"). Equality is by value.
type Code string

// Position identifies one grid cell by (row, col). It is immutable once
// created and usable as a map key.
type Position struct {
	Row, Col int
}

// CellKind selects how a cell behaves during selection.
type CellKind int

const (
	// KindNormal is a plain selectable cell matched by its Code.
	KindNormal CellKind = iota
	// KindBlocker can never be selected.
	KindBlocker
	// KindWildcard matches any currently-needed sequence code.
	KindWildcard
	// KindDecaying behaves like KindNormal but carries a live-play decay
	// counter; the counter is irrelevant to generation and solving.
	KindDecaying
)

// Cell occupies one grid position. Selected and Decay are live-play state;
// generation never sets them.
type Cell struct {
	Code     Code     // Symbol shown on the cell
	Kind     CellKind // Behavior during selection
	Decay    int      // Remaining turns for KindDecaying cells
	Selected bool     // Whether the player already picked this cell
}

// neighborOffsets4 lists the orthogonal neighbor offsets (N, E, S, W) in
// (row, col) order, used for path-adjacency lookups.
var neighborOffsets4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
