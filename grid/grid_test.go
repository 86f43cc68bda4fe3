package grid_test

import (
	"errors"
	"testing"

	"github.com/lowpolyghost/breach/grid"
)

//----------------------------------------------------------------------------//
// Construction and bounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive sizes.
func TestNew_Errors(t *testing.T) {
	for _, size := range []int{0, -1, -7} {
		if _, err := grid.New(size); !errors.Is(err, grid.ErrGridSize) {
			t.Errorf("New(%d) error = %v; want ErrGridSize", size, err)
		}
	}
}

// TestInBounds checks InBounds on a 3×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []grid.Position{{Row: 0, Col: 0}, {Row: 2, Col: 2}, {Row: 1, Col: 2}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []grid.Position{{Row: -1, Col: 0}, {Row: 3, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

// TestAtSet_RoundTrip verifies Set/At agree and out-of-bounds access fails.
func TestAtSet_RoundTrip(t *testing.T) {
	g, err := grid.New(2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	p := grid.Position{Row: 1, Col: 0}
	want := grid.Cell{Code: "BD", Kind: grid.KindWildcard}
	if err = g.Set(p, want); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, err := g.At(p)
	if err != nil {
		t.Fatalf("At error: %v", err)
	}
	if got != want {
		t.Errorf("At(%v) = %+v; want %+v", p, got, want)
	}

	bad := grid.Position{Row: 2, Col: 0}
	if _, err = g.At(bad); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("At(%v) error = %v; want ErrOutOfBounds", bad, err)
	}
	if err = g.Set(bad, want); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("Set(%v) error = %v; want ErrOutOfBounds", bad, err)
	}
}

// TestSetCode_PreservesKind verifies SetCode leaves kind and state untouched.
func TestSetCode_PreservesKind(t *testing.T) {
	g, _ := grid.New(2)
	p := grid.Position{Row: 0, Col: 1}
	if err := g.Set(p, grid.Cell{Code: "1C", Kind: grid.KindDecaying, Decay: 3}); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := g.SetCode(p, "55"); err != nil {
		t.Fatalf("SetCode error: %v", err)
	}
	got, _ := g.At(p)
	if got.Code != "55" || got.Kind != grid.KindDecaying || got.Decay != 3 {
		t.Errorf("cell after SetCode = %+v; want code 55, kind decaying, decay 3", got)
	}
}

//----------------------------------------------------------------------------//
// Clone and adjacency
//----------------------------------------------------------------------------//

// TestClone_Independence verifies mutations on a clone never reach the original.
func TestClone_Independence(t *testing.T) {
	g, _ := grid.New(2)
	p := grid.Position{Row: 0, Col: 0}
	_ = g.SetCode(p, "E9")

	cp := g.Clone()
	_ = cp.SetCode(p, "FF")

	orig, _ := g.At(p)
	if orig.Code != "E9" {
		t.Errorf("original code = %q after clone mutation; want E9", orig.Code)
	}
}

// TestNeighbors4 checks orthogonal adjacency at a corner, an edge and the center.
func TestNeighbors4(t *testing.T) {
	g, _ := grid.New(3)
	cases := []struct {
		name string
		p    grid.Position
		want int
	}{
		{"Corner", grid.Position{Row: 0, Col: 0}, 2},
		{"Edge", grid.Position{Row: 0, Col: 1}, 3},
		{"Center", grid.Position{Row: 1, Col: 1}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Neighbors4(tc.p)
			if len(got) != tc.want {
				t.Errorf("Neighbors4(%v) = %v (len %d); want %d neighbors", tc.p, got, len(got), tc.want)
			}
			for _, q := range got {
				if !g.InBounds(q) {
					t.Errorf("Neighbors4(%v) returned out-of-bounds %v", tc.p, q)
				}
				if q == tc.p {
					t.Errorf("Neighbors4(%v) returned the origin itself", tc.p)
				}
			}
		})
	}

	if got := g.Neighbors4(grid.Position{Row: -1, Col: 0}); got != nil {
		t.Errorf("Neighbors4(out of bounds) = %v; want nil", got)
	}
}

// TestString_Render verifies the debug rendering of codes, blanks, blockers
// and wildcards.
func TestString_Render(t *testing.T) {
	g, _ := grid.New(2)
	_ = g.Set(grid.Position{Row: 0, Col: 0}, grid.Cell{Code: "1C"})
	_ = g.Set(grid.Position{Row: 0, Col: 1}, grid.Cell{Code: "7A", Kind: grid.KindBlocker})
	_ = g.Set(grid.Position{Row: 1, Col: 0}, grid.Cell{Code: "55", Kind: grid.KindWildcard})

	want := "1C ##\n** ..\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
