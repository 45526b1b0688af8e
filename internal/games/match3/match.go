package match3

import "sort"

// MinRun is the shortest line of equal tiles that counts as a match.
const MinRun = 3

// Orientation tells whether a run lies along a row or a column.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Run is a maximal line of at least MinRun equal tiles.
type Run struct {
	Start       Coord // Leftmost (horizontal) or lowest (vertical) cell
	Length      int
	Orientation Orientation
	Type        TileType
}

// Coords enumerates every cell covered by the run.
func (r Run) Coords() []Coord {
	out := make([]Coord, r.Length)
	for i := range r.Length {
		if r.Orientation == Horizontal {
			out[i] = r.Start.Add(i, 0)
		} else {
			out[i] = r.Start.Add(0, i)
		}
	}
	return out
}

// MatchSet is the set of coordinates matched in one detection pass.
type MatchSet map[Coord]struct{}

// Add inserts c into the set.
func (m MatchSet) Add(c Coord) {
	m[c] = struct{}{}
}

// Has reports whether c is in the set.
func (m MatchSet) Has(c Coord) bool {
	_, ok := m[c]
	return ok
}

// Len returns the number of matched coordinates.
func (m MatchSet) Len() int {
	return len(m)
}

// Coords returns the matched coordinates sorted bottom row first, then left to right.
func (m MatchSet) Coords() []Coord {
	out := make([]Coord, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].less(out[j])
	})
	return out
}

// FindRuns scans rows left to right, then columns bottom to top, and returns
// every maximal run of MinRun or more equal non-empty tiles.
// Cells at intersections appear in both runs.
func FindRuns(g *Grid) []Run {
	var runs []Run

	for y := range g.H {
		runs = scanLine(g, runs, C(0, y), 1, 0, g.W, Horizontal)
	}
	for x := range g.W {
		runs = scanLine(g, runs, C(x, 0), 0, 1, g.H, Vertical)
	}

	return runs
}

// scanLine walks n cells from start in steps of (dx, dy), extending the
// current run while types agree instead of re-testing overlapping triples.
func scanLine(g *Grid, runs []Run, start Coord, dx, dy, n int, o Orientation) []Run {
	runStart := 0
	for i := 1; i <= n; i++ {
		first := g.at(start.Add(runStart*dx, runStart*dy))
		if i < n {
			cur := g.at(start.Add(i*dx, i*dy))
			if first.Filled && cur.Filled && cur.Type == first.Type {
				continue
			}
		}

		// Run [runStart, i) ended
		if first.Filled && i-runStart >= MinRun {
			runs = append(runs, Run{
				Start:       start.Add(runStart*dx, runStart*dy),
				Length:      i - runStart,
				Orientation: o,
				Type:        first.Type,
			})
		}
		runStart = i
	}
	return runs
}

// FindMatches returns the union of all horizontal and vertical runs.
// Deterministic and read-only.
func FindMatches(g *Grid) MatchSet {
	set := make(MatchSet)
	for _, r := range FindRuns(g) {
		for _, c := range r.Coords() {
			set.Add(c)
		}
	}
	return set
}

// HasMatch reports whether the grid holds at least one run.
func HasMatch(g *Grid) bool {
	return len(FindRuns(g)) > 0
}
