package match3_test

import (
	"testing"

	"github.com/vovakirdan/match3/internal/games/match3"
)

// seqRand replays a fixed sequence of draws, wrapping around at the end.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func newSeq(vals ...int) *seqRand {
	return &seqRand{vals: vals}
}

func simpleCatalog(t *testing.T, n int) *match3.Catalog {
	t.Helper()
	cat, err := match3.NewSimpleCatalog(n)
	if err != nil {
		t.Fatalf("NewSimpleCatalog(%d) failed: %v", n, err)
	}
	return cat
}

// hasTripleBruteForce checks every horizontal and vertical triple directly.
func hasTripleBruteForce(g *match3.Grid) bool {
	same := func(a, b, c match3.Coord) bool {
		ca, errA := g.Get(a)
		cb, errB := g.Get(b)
		cc, errC := g.Get(c)
		if errA != nil || errB != nil || errC != nil {
			return false
		}
		return ca.Filled && cb.Filled && cc.Filled && ca.Type == cb.Type && cb.Type == cc.Type
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := match3.C(x, y)
			if same(c, c.Add(1, 0), c.Add(2, 0)) || same(c, c.Add(0, 1), c.Add(0, 2)) {
				return true
			}
		}
	}
	return false
}
