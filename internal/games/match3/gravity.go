package match3

// Move records a tile falling from one cell to another during a collapse.
type Move struct {
	From Coord
	To   Coord
	Type TileType
}

// CollapseColumns compacts every column toward row 0, keeping the relative
// order of tiles and leaving all holes at the top. Tiles that stay put are
// not reported. The grid is modified in place.
func CollapseColumns(g *Grid) []Move {
	var moves []Move

	for x := range g.W {
		write := 0
		for y := range g.H {
			from := C(x, y)
			cell := g.at(from)
			if !cell.Filled {
				continue
			}
			if y != write {
				to := C(x, write)
				g.put(to, cell)
				g.put(from, Empty())
				moves = append(moves, Move{From: from, To: to, Type: cell.Type})
			}
			write++
		}
	}

	return moves
}
