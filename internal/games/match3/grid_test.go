package match3_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/match3/internal/games/match3"
)

func TestNewGridDimensions(t *testing.T) {
	testCases := []struct {
		w, h    int
		wantErr bool
	}{
		{8, 8, false},
		{1, 1, false},
		{2, 5, false},
		{0, 4, true},
		{4, 0, true},
		{-1, 3, true},
	}

	for _, tc := range testCases {
		g, err := match3.NewGrid(tc.w, tc.h)
		if tc.wantErr {
			if !errors.Is(err, match3.ErrInvalidDimensions) {
				t.Errorf("NewGrid(%d, %d): expected ErrInvalidDimensions, got %v", tc.w, tc.h, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewGrid(%d, %d) failed: %v", tc.w, tc.h, err)
		}
		if len(g.Cells) != tc.w*tc.h {
			t.Errorf("expected %d cells, got %d", tc.w*tc.h, len(g.Cells))
		}
		if g.FilledCount() != 0 {
			t.Errorf("expected empty grid, got %d filled cells", g.FilledCount())
		}
	}
}

func TestGridInBounds(t *testing.T) {
	g, _ := match3.NewGrid(5, 4)

	testCases := []struct {
		coord    match3.Coord
		expected bool
	}{
		{match3.C(0, 0), true},
		{match3.C(4, 3), true},
		{match3.C(2, 2), true},
		{match3.C(-1, 0), false},
		{match3.C(0, -1), false},
		{match3.C(5, 0), false},
		{match3.C(0, 4), false},
		{match3.C(5, 4), false},
	}

	for _, tc := range testCases {
		if got := g.InBounds(tc.coord); got != tc.expected {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.coord, tc.expected, got)
		}
	}
}

func TestGridGetSetOutOfBounds(t *testing.T) {
	g, _ := match3.NewGrid(3, 3)

	if _, err := g.Get(match3.C(3, 0)); !errors.Is(err, match3.ErrOutOfBounds) {
		t.Errorf("Get out of bounds: expected ErrOutOfBounds, got %v", err)
	}
	if err := g.Set(match3.C(0, -1), match3.Tile(1)); !errors.Is(err, match3.ErrOutOfBounds) {
		t.Errorf("Set out of bounds: expected ErrOutOfBounds, got %v", err)
	}
	if g.FilledCount() != 0 {
		t.Error("failed Set should not modify the grid")
	}
}

func TestGridSetAndIsEmpty(t *testing.T) {
	g, _ := match3.NewGrid(3, 3)
	c := match3.C(1, 2)

	if !g.IsEmpty(c) {
		t.Errorf("expected %v to start empty", c)
	}

	if err := g.Set(c, match3.Tile(2)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	cell, err := g.Get(c)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !cell.Filled || cell.Type != 2 {
		t.Errorf("expected tile C at %v, got %+v", c, cell)
	}
	if g.IsEmpty(c) {
		t.Errorf("expected %v to be occupied", c)
	}

	if err := g.Set(c, match3.Empty()); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !g.IsEmpty(c) {
		t.Errorf("expected %v to be empty after clearing", c)
	}

	// Out of bounds is never "empty"
	if g.IsEmpty(match3.C(-1, 0)) {
		t.Error("IsEmpty should be false outside the grid")
	}
}

func TestParseGridOrientation(t *testing.T) {
	g := match3.MustParseGrid(
		"AB.",
		"CDA",
	)

	if g.W != 3 || g.H != 2 {
		t.Fatalf("expected 3x2 grid, got %dx%d", g.W, g.H)
	}

	testCases := []struct {
		coord  match3.Coord
		filled bool
		typ    match3.TileType
	}{
		{match3.C(0, 0), true, 2}, // bottom row is the last string
		{match3.C(1, 0), true, 3},
		{match3.C(2, 0), true, 0},
		{match3.C(0, 1), true, 0},
		{match3.C(1, 1), true, 1},
		{match3.C(2, 1), false, 0},
	}

	for _, tc := range testCases {
		cell, err := g.Get(tc.coord)
		if err != nil {
			t.Fatalf("Get(%v) failed: %v", tc.coord, err)
		}
		if cell.Filled != tc.filled {
			t.Errorf("at %v: expected filled=%v, got %v", tc.coord, tc.filled, cell.Filled)
		}
		if tc.filled && cell.Type != tc.typ {
			t.Errorf("at %v: expected type %v, got %v", tc.coord, tc.typ, cell.Type)
		}
	}
}

func TestParseGridErrors(t *testing.T) {
	if _, err := match3.ParseGrid(); !errors.Is(err, match3.ErrInvalidDimensions) {
		t.Errorf("no rows: expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := match3.ParseGrid("ABC", "AB"); !errors.Is(err, match3.ErrInvalidDimensions) {
		t.Errorf("ragged rows: expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := match3.ParseGrid("A1C"); err == nil {
		t.Error("expected error for invalid tile character")
	}
}

func TestGridStringRoundTrip(t *testing.T) {
	rows := []string{
		"AB.D",
		"CCAB",
		"..DA",
	}
	g := match3.MustParseGrid(rows...)

	want := "AB.D\nCCAB\n..DA"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	again := match3.MustParseGrid("AB.D", "CCAB", "..DA")
	if !g.Equal(again) {
		t.Error("parsing the same rows twice should give equal grids")
	}
}

func TestGridClone(t *testing.T) {
	g := match3.MustParseGrid("AB", "CD")
	clone := g.Clone()

	if !g.Equal(clone) {
		t.Error("clone should be equal to original")
	}

	if err := g.Set(match3.C(0, 0), match3.Empty()); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if clone.IsEmpty(match3.C(0, 0)) {
		t.Error("clone should not be affected by original modification")
	}
	if g.Equal(clone) {
		t.Error("grids should differ after modifying the original")
	}
}

func TestGridEqualMismatchedCells(t *testing.T) {
	g := match3.MustParseGrid("AB", "CD")
	short := &match3.Grid{W: 2, H: 2, Cells: make([]match3.Cell, 3)}

	if g.Equal(short) || short.Equal(g) {
		t.Error("grids with different cell counts should not be equal")
	}
	if g.Equal(nil) {
		t.Error("grid should not equal nil")
	}
}

func TestGridSwap(t *testing.T) {
	g := match3.MustParseGrid("AB", "CD")

	if err := g.Swap(match3.C(0, 0), match3.C(0, 1)); err != nil {
		t.Fatalf("Swap failed: %v", err)
	}
	want := match3.MustParseGrid("CB", "AD")
	if !g.Equal(want) {
		t.Errorf("got\n%s\nwant\n%s", g, want)
	}

	err := g.Swap(match3.C(1, 1), match3.C(2, 1))
	if !errors.Is(err, match3.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if !g.Equal(want) {
		t.Error("failed swap should not modify the grid")
	}
}

func TestGridEmptyCoordsOrder(t *testing.T) {
	g := match3.MustParseGrid(
		"..A",
		"A.A",
		"AAA",
	)

	got := g.EmptyCoords()
	want := []match3.Coord{match3.C(0, 2), match3.C(1, 1), match3.C(1, 2)}

	if len(got) != len(want) {
		t.Fatalf("expected %d empty coords, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EmptyCoords()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
