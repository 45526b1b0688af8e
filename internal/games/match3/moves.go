package match3

// FindLegalSwaps returns every adjacent swap AttemptSwap would keep, scanning
// bottom row first, right and up neighbours of each cell. On a settled board
// that is every swap completing a run through one of the two cells. A board
// that already holds a run (random fill) resolves after any swap that leaves
// some run on the board, so there the whole board is re-scanned per swap.
// The grid is not modified.
func FindLegalSwaps(g *Grid) []Swap {
	if HasMatch(g) {
		return swapsLeavingRun(g)
	}

	scratch := g.Clone()
	var swaps []Swap

	for y := range g.H {
		for x := range g.W {
			a := C(x, y)
			for _, b := range []Coord{a.Add(1, 0), a.Add(0, 1)} {
				if trySwap(scratch, a, b) {
					swaps = append(swaps, Swap{A: a, B: b})
				}
			}
		}
	}
	return swaps
}

// swapsLeavingRun lists every swap of two filled neighbours after which the
// board still holds a run.
func swapsLeavingRun(g *Grid) []Swap {
	scratch := g.Clone()
	var swaps []Swap
	for y := range g.H {
		for x := range g.W {
			a := C(x, y)
			for _, b := range []Coord{a.Add(1, 0), a.Add(0, 1)} {
				if !g.InBounds(b) || g.IsEmpty(a) || g.IsEmpty(b) {
					continue
				}
				scratch.swap(a, b)
				if HasMatch(scratch) {
					swaps = append(swaps, Swap{A: a, B: b})
				}
				scratch.swap(a, b)
			}
		}
	}
	return swaps
}

// HasLegalSwap reports whether any swap would produce a match.
func HasLegalSwap(g *Grid) bool {
	return len(FindLegalSwaps(g)) > 0
}

// trySwap swaps a and b on g, checks both cells for a run, and swaps back.
func trySwap(g *Grid, a, b Coord) bool {
	if !g.InBounds(b) {
		return false
	}
	ca, cb := g.at(a), g.at(b)
	if !ca.Filled || !cb.Filled || ca.Type == cb.Type {
		return false
	}

	g.swap(a, b)
	matched := wouldMatch(g, a, cb.Type) || wouldMatch(g, b, ca.Type)
	g.swap(a, b)
	return matched
}
