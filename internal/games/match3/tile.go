package match3

import (
	"fmt"
	"strings"
)

// MaxTileTypes is the number of distinct types a catalog may hold; each
// type has a layout letter 'A'..'Z'.
const MaxTileTypes = 26

// TileType identifies a kind of tile. Two tiles match when their types are equal;
// display metadata never takes part in matching.
type TileType uint8

// Char returns the letter used for this type in text layouts ('A' for 0, 'B' for 1, ...).
func (t TileType) Char() rune {
	if int(t) >= MaxTileTypes {
		return '?'
	}
	return rune('A' + int(t))
}

// String returns the layout letter of the type.
func (t TileType) String() string {
	return string(t.Char())
}

// ParseTileType converts a layout letter back to a TileType.
func ParseTileType(r rune) (TileType, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	return TileType(r - 'A'), true
}

// Cell represents a single slot on the grid.
type Cell struct {
	Filled bool     // Whether the cell holds a tile
	Type   TileType // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Tile returns a filled cell of the given type.
func Tile(t TileType) Cell {
	return Cell{Filled: true, Type: t}
}

// TileSpec describes one catalog entry. Name, Glyph and Color exist for
// presentation layers only.
type TileSpec struct {
	Type  TileType
	Name  string
	Glyph rune
	Color string
}

// Catalog is the fixed set of tile types the spawner draws from.
type Catalog struct {
	specs []TileSpec
	index map[TileType]int
}

// NewCatalog builds a catalog from the given specs.
// Fails with ErrInvalidCatalog when specs is empty, a type repeats or a
// type is MaxTileTypes or above.
func NewCatalog(specs ...TileSpec) (*Catalog, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no tile types", ErrInvalidCatalog)
	}

	c := &Catalog{
		specs: make([]TileSpec, len(specs)),
		index: make(map[TileType]int, len(specs)),
	}
	for i, s := range specs {
		if int(s.Type) >= MaxTileTypes {
			return nil, fmt.Errorf("%w: tile type %d has no layout letter", ErrInvalidCatalog, s.Type)
		}
		if _, dup := c.index[s.Type]; dup {
			return nil, fmt.Errorf("%w: duplicate tile type %v", ErrInvalidCatalog, s.Type)
		}
		if s.Glyph == 0 {
			s.Glyph = s.Type.Char()
		}
		c.specs[i] = s
		c.index[s.Type] = i
	}
	return c, nil
}

// NewSimpleCatalog builds a catalog of n types numbered 0..n-1 with letter glyphs.
func NewSimpleCatalog(n int) (*Catalog, error) {
	specs := make([]TileSpec, 0, max(n, 0))
	for i := range max(n, 0) {
		t := TileType(i)
		specs = append(specs, TileSpec{Type: t, Name: strings.ToLower(t.String()), Glyph: t.Char()})
	}
	return NewCatalog(specs...)
}

// DefaultCatalog returns the five-gem catalog used by the classic board.
func DefaultCatalog() *Catalog {
	c, _ := NewCatalog(
		TileSpec{Type: 0, Name: "ruby", Glyph: 'R', Color: "1"},
		TileSpec{Type: 1, Name: "emerald", Glyph: 'G', Color: "2"},
		TileSpec{Type: 2, Name: "sapphire", Glyph: 'B', Color: "4"},
		TileSpec{Type: 3, Name: "topaz", Glyph: 'Y', Color: "3"},
		TileSpec{Type: 4, Name: "amethyst", Glyph: 'P', Color: "5"},
	)
	return c
}

// Len returns the number of tile types. A nil catalog has none.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.specs)
}

// At returns the type at catalog position i.
func (c *Catalog) At(i int) TileType {
	return c.specs[i].Type
}

// Types returns all tile types in catalog order.
func (c *Catalog) Types() []TileType {
	types := make([]TileType, len(c.specs))
	for i, s := range c.specs {
		types[i] = s.Type
	}
	return types
}

// Contains reports whether t belongs to the catalog.
func (c *Catalog) Contains(t TileType) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[t]
	return ok
}

// Spec returns the display metadata for t.
func (c *Catalog) Spec(t TileType) (TileSpec, bool) {
	if c == nil {
		return TileSpec{}, false
	}
	i, ok := c.index[t]
	if !ok {
		return TileSpec{}, false
	}
	return c.specs[i], true
}

// Specs returns a copy of all catalog entries.
func (c *Catalog) Specs() []TileSpec {
	out := make([]TileSpec, len(c.specs))
	copy(out, c.specs)
	return out
}
