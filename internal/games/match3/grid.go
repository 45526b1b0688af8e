package match3

import (
	"fmt"
	"strings"
)

// Grid represents the board as a rectangular grid of cells.
// Cells are stored in row-major order: index = y*W + x, row 0 at the bottom.
type Grid struct {
	W     int    // Width of the grid
	H     int    // Height of the grid
	Cells []Cell // Flat array of cells, length W*H
}

// NewGrid creates an empty grid with the given dimensions.
// Fails with ErrInvalidDimensions if either dimension is below 1.
func NewGrid(w, h int) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}, nil
}

// ParseGrid builds a grid from text rows listed top row first.
// Letters map to tile types ('A' is type 0), '.' marks an empty cell.
//
//	ParseGrid(
//		"CDCD",
//		"AABA", // row 0
//	)
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	w := len([]rune(rows[0]))
	g, err := NewGrid(w, len(rows))
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrInvalidDimensions, i, len(runes), w)
		}
		y := g.H - 1 - i
		for x, r := range runes {
			if r == '.' {
				continue
			}
			t, ok := ParseTileType(r)
			if !ok {
				return nil, fmt.Errorf("match3: invalid tile %q at %v", r, C(x, y))
			}
			g.Cells[g.index(C(x, y))] = Tile(t)
		}
	}
	return g, nil
}

// MustParseGrid is like ParseGrid but panics on malformed input.
func MustParseGrid(rows ...string) *Grid {
	g, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the cell at the given coordinate.
func (g *Grid) Get(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.W, g.H)
	}
	return g.Cells[g.index(c)], nil
}

// Set replaces the cell at the given coordinate. It enforces bounds only;
// game rules are the caller's business.
func (g *Grid) Set(c Coord, cell Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.W, g.H)
	}
	g.Cells[g.index(c)] = cell
	return nil
}

// Swap exchanges the cells at a and b. Like Set it checks bounds only.
func (g *Grid) Swap(a, b Coord) error {
	if !g.InBounds(a) || !g.InBounds(b) {
		return fmt.Errorf("%w: %v <-> %v on %dx%d grid", ErrOutOfBounds, a, b, g.W, g.H)
	}
	g.swap(a, b)
	return nil
}

// IsEmpty returns true iff c is in bounds and holds no tile.
func (g *Grid) IsEmpty(c Coord) bool {
	return g.InBounds(c) && !g.Cells[g.index(c)].Filled
}

// at returns the cell at an in-bounds coordinate without checking.
func (g *Grid) at(c Coord) Cell {
	return g.Cells[g.index(c)]
}

// put stores a cell at an in-bounds coordinate without checking.
func (g *Grid) put(c Coord, cell Cell) {
	g.Cells[g.index(c)] = cell
}

// swap exchanges the contents of two in-bounds cells.
func (g *Grid) swap(a, b Coord) {
	ia, ib := g.index(a), g.index(b)
	g.Cells[ia], g.Cells[ib] = g.Cells[ib], g.Cells[ia]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H || len(g.Cells) != len(other.Cells) {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// EmptyCoords returns all unoccupied coordinates in spawn order:
// column by column from the left, bottom to top within a column.
func (g *Grid) EmptyCoords() []Coord {
	var coords []Coord
	for x := range g.W {
		for y := range g.H {
			c := C(x, y)
			if !g.at(c).Filled {
				coords = append(coords, c)
			}
		}
	}
	return coords
}

// String renders the grid as text rows, top row first, in the format
// accepted by ParseGrid.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for y := g.H - 1; y >= 0; y-- {
		for x := range g.W {
			cell := g.at(C(x, y))
			if cell.Filled {
				sb.WriteRune(cell.Type.Char())
			} else {
				sb.WriteByte('.')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
