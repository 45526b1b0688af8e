package match3

import "fmt"

// Spawn records a new tile placed into an empty cell.
type Spawn struct {
	At   Coord
	Type TileType
}

// FillEmpties places a tile drawn uniformly from the catalog into every empty
// cell. Cells are visited column by column from the left, bottom to top, so a
// deterministic rng yields reproducible boards.
func FillEmpties(g *Grid, cat *Catalog, rng Rand) ([]Spawn, error) {
	if cat.Len() == 0 {
		return nil, fmt.Errorf("%w: cannot spawn from an empty catalog", ErrInvalidCatalog)
	}
	return fillEmpties(g, cat, rng), nil
}

// fillEmpties is FillEmpties for a catalog already known to be non-empty.
func fillEmpties(g *Grid, cat *Catalog, rng Rand) []Spawn {
	empties := g.EmptyCoords()
	spawns := make([]Spawn, 0, len(empties))
	for _, c := range empties {
		t := cat.At(rng.IntN(cat.Len()))
		g.put(c, Tile(t))
		spawns = append(spawns, Spawn{At: c, Type: t})
	}
	return spawns
}

// fillWithoutMatches is fillEmpties restricted, per cell, to types that do not
// complete a run with tiles already on the board. When every type would match
// (catalogs of one or two types) the full catalog is used for that cell.
func fillWithoutMatches(g *Grid, cat *Catalog, rng Rand) []Spawn {
	empties := g.EmptyCoords()
	spawns := make([]Spawn, 0, len(empties))
	types := cat.Types()
	allowed := make([]TileType, 0, len(types))
	for _, c := range empties {
		allowed = allowed[:0]
		for _, t := range types {
			if !wouldMatch(g, c, t) {
				allowed = append(allowed, t)
			}
		}
		if len(allowed) == 0 {
			allowed = append(allowed, types...)
		}

		t := allowed[rng.IntN(len(allowed))]
		g.put(c, Tile(t))
		spawns = append(spawns, Spawn{At: c, Type: t})
	}
	return spawns
}

// wouldMatch reports whether a tile of type t at c would sit in a run.
func wouldMatch(g *Grid, c Coord, t TileType) bool {
	horizontal := 1 + sameInDirection(g, c, t, -1, 0) + sameInDirection(g, c, t, 1, 0)
	if horizontal >= MinRun {
		return true
	}
	vertical := 1 + sameInDirection(g, c, t, 0, -1) + sameInDirection(g, c, t, 0, 1)
	return vertical >= MinRun
}

// sameInDirection counts consecutive tiles of type t starting next to c.
func sameInDirection(g *Grid, c Coord, t TileType, dx, dy int) int {
	n := 0
	for p := c.Add(dx, dy); g.InBounds(p); p = p.Add(dx, dy) {
		cell := g.at(p)
		if !cell.Filled || cell.Type != t {
			break
		}
		n++
	}
	return n
}
