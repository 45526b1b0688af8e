package match3_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/vovakirdan/match3/internal/games/match3"
)

// scenarioRows is a 4x4 board with bottom row [A,A,B,A] and no runs elsewhere.
var scenarioRows = []string{
	"CDCD",
	"DCDC",
	"CDCD",
	"AABA",
}

func newScenarioEngine(t *testing.T, rng match3.Rand) *match3.Engine {
	t.Helper()
	e, err := match3.NewWithGrid(match3.MustParseGrid(scenarioRows...), match3.Options{
		Catalog: simpleCatalog(t, 4),
		Rand:    rng,
	})
	if err != nil {
		t.Fatalf("NewWithGrid failed: %v", err)
	}
	return e
}

func TestNewValidation(t *testing.T) {
	cat := simpleCatalog(t, 3)

	testCases := []struct {
		name string
		opts match3.Options
		want error
	}{
		{"zero width", match3.Options{Width: 0, Height: 5, Catalog: cat}, match3.ErrInvalidDimensions},
		{"negative height", match3.Options{Width: 5, Height: -2, Catalog: cat}, match3.ErrInvalidDimensions},
		{"nil catalog", match3.Options{Width: 5, Height: 5}, match3.ErrInvalidCatalog},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := match3.New(tc.opts)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
			if e != nil {
				t.Error("expected nil engine on error")
			}
		})
	}

	if _, err := match3.New(match3.Options{Width: 4, Height: 4, Catalog: cat, Fill: "sideways"}); err == nil {
		t.Error("expected error for unknown fill policy")
	}
}

func TestNewWithGridValidation(t *testing.T) {
	cat := simpleCatalog(t, 3)

	testCases := []struct {
		name string
		grid *match3.Grid
	}{
		{"nil grid", nil},
		{"zero size", &match3.Grid{}},
		{"missing cells", &match3.Grid{W: 3, H: 3}},
		{"short cells", &match3.Grid{W: 3, H: 3, Cells: make([]match3.Cell, 8)}},
		{"extra cells", &match3.Grid{W: 2, H: 2, Cells: make([]match3.Cell, 5)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := match3.NewWithGrid(tc.grid, match3.Options{Catalog: cat, Rand: newSeq(0)})
			if !errors.Is(err, match3.ErrInvalidDimensions) {
				t.Errorf("expected ErrInvalidDimensions, got %v", err)
			}
			if e != nil {
				t.Error("expected nil engine on error")
			}
		})
	}
}

func TestNewWithGridRejectsForeignTypes(t *testing.T) {
	_, err := match3.NewWithGrid(match3.MustParseGrid("AEB"), match3.Options{
		Catalog: simpleCatalog(t, 4),
		Rand:    newSeq(0),
	})
	if !errors.Is(err, match3.ErrInvalidCatalog) {
		t.Errorf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestNewFillsEveryCell(t *testing.T) {
	for _, policy := range []match3.FillPolicy{match3.FillRandom, match3.FillNoMatches, match3.FillSettled} {
		t.Run(string(policy), func(t *testing.T) {
			e, err := match3.New(match3.Options{
				Width:   8,
				Height:  8,
				Catalog: simpleCatalog(t, 5),
				Rand:    match3.NewRand(3),
				Fill:    policy,
			})
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			g := e.Grid()
			if g.FilledCount() != 64 {
				t.Errorf("expected 64 tiles, got %d", g.FilledCount())
			}
			if e.State() != match3.StateIdle {
				t.Errorf("expected idle engine, got %v", e.State())
			}
		})
	}
}

func TestFillPoliciesAvoidInitialMatches(t *testing.T) {
	for _, policy := range []match3.FillPolicy{match3.FillNoMatches, match3.FillSettled} {
		for seed := int64(1); seed <= 20; seed++ {
			e, err := match3.New(match3.Options{
				Width:   8,
				Height:  8,
				Catalog: simpleCatalog(t, 4),
				Rand:    match3.NewRand(seed),
				Fill:    policy,
			})
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if match3.HasMatch(e.Grid()) {
				t.Fatalf("%s seed %d: initial board has a match:\n%s", policy, seed, e.Grid())
			}
		}
	}
}

func TestNewWithGridFillsHolesFromLayout(t *testing.T) {
	e, err := match3.NewWithGrid(match3.MustParseGrid("A.", ".B"), match3.Options{
		Catalog: simpleCatalog(t, 4),
		Rand:    newSeq(2, 3),
	})
	if err != nil {
		t.Fatalf("NewWithGrid failed: %v", err)
	}

	want := match3.MustParseGrid("AD", "CB")
	if !e.Grid().Equal(want) {
		t.Errorf("got\n%s\nwant\n%s", e.Grid(), want)
	}
}

func TestAttemptSwapRejectsIllegalSwaps(t *testing.T) {
	testCases := []struct {
		name string
		a, b match3.Coord
		oob  bool
	}{
		{"two apart", match3.C(0, 0), match3.C(2, 0), false},
		{"diagonal", match3.C(0, 0), match3.C(1, 1), false},
		{"same cell", match3.C(1, 1), match3.C(1, 1), false},
		{"out of bounds", match3.C(3, 0), match3.C(4, 0), true},
		{"negative", match3.C(0, 0), match3.C(0, -1), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newScenarioEngine(t, newSeq(0))
			before := e.Grid()

			trace, err := e.AttemptSwap(tc.a, tc.b)
			if !errors.Is(err, match3.ErrInvalidSwap) {
				t.Fatalf("expected ErrInvalidSwap, got %v", err)
			}
			if errors.Is(err, match3.ErrOutOfBounds) != tc.oob {
				t.Errorf("ErrOutOfBounds reported=%v, want %v", !tc.oob, tc.oob)
			}
			if trace.Outcome != match3.OutcomeNoMatch || len(trace.Rounds) != 0 {
				t.Errorf("expected empty no-match trace, got %s", spew.Sdump(trace))
			}
			if !e.Grid().Equal(before) {
				t.Errorf("rejected swap changed the grid:\n%s", e.Grid())
			}
			if e.State() != match3.StateIdle {
				t.Errorf("expected idle engine, got %v", e.State())
			}
		})
	}
}

func TestAttemptSwapRevertsWithoutMatch(t *testing.T) {
	e := newScenarioEngine(t, newSeq(0))
	before := e.Grid()

	// Bottom row becomes [A,B,A,A]: no run
	trace, err := e.AttemptSwap(match3.C(1, 0), match3.C(2, 0))
	if err != nil {
		t.Fatalf("AttemptSwap failed: %v", err)
	}

	if trace.Outcome != match3.OutcomeNoMatch {
		t.Errorf("expected no_match, got %v", trace.Outcome)
	}
	if len(trace.Rounds) != 0 {
		t.Errorf("expected empty trace, got %d rounds", len(trace.Rounds))
	}
	if trace.Swap != (match3.Swap{A: match3.C(1, 0), B: match3.C(2, 0)}) {
		t.Errorf("trace should still report the attempted swap, got %+v", trace.Swap)
	}
	if !e.Grid().Equal(before) {
		t.Errorf("reverted swap changed the grid:\n%s", e.Grid())
	}
	if e.Swaps() != 0 {
		t.Errorf("expected 0 kept swaps, got %d", e.Swaps())
	}
}

func TestAttemptSwapSingleRound(t *testing.T) {
	e := newScenarioEngine(t, newSeq(0, 1, 2))

	// Bottom row becomes [A,A,A,B]
	trace, err := e.AttemptSwap(match3.C(2, 0), match3.C(3, 0))
	if err != nil {
		t.Fatalf("AttemptSwap failed: %v", err)
	}

	if trace.Outcome != match3.OutcomeMatched {
		t.Fatalf("expected matched, got %v", trace.Outcome)
	}
	if len(trace.Rounds) != 1 {
		t.Fatalf("expected 1 round, got %d: %s", len(trace.Rounds), spew.Sdump(trace))
	}

	round := trace.Rounds[0]
	wantCleared := []match3.Coord{match3.C(0, 0), match3.C(1, 0), match3.C(2, 0)}
	if !reflect.DeepEqual(round.Cleared, wantCleared) {
		t.Errorf("Cleared = %v, want %v", round.Cleared, wantCleared)
	}
	if round.ClearedCount() != 3 || trace.TotalCleared() != 3 {
		t.Errorf("expected 3 cleared tiles, got %d (total %d)", round.ClearedCount(), trace.TotalCleared())
	}

	// Three columns each drop three tiles by one row
	if len(round.Moves) != 9 {
		t.Errorf("expected 9 moves, got %d", len(round.Moves))
	}
	for _, m := range round.Moves {
		if m.From.X != m.To.X || m.From.Y-m.To.Y != 1 {
			t.Errorf("unexpected move %+v", m)
		}
	}

	wantSpawns := []match3.Spawn{
		{At: match3.C(0, 3), Type: 0},
		{At: match3.C(1, 3), Type: 1},
		{At: match3.C(2, 3), Type: 2},
	}
	if !reflect.DeepEqual(round.Spawns, wantSpawns) {
		t.Errorf("Spawns = %+v, want %+v", round.Spawns, wantSpawns)
	}

	want := match3.MustParseGrid(
		"ABCD",
		"CDCC",
		"DCDD",
		"CDCB",
	)
	if !e.Grid().Equal(want) {
		t.Errorf("final grid:\n%s\nwant\n%s", e.Grid(), want)
	}
	if match3.HasMatch(e.Grid()) {
		t.Error("settled grid should have no matches")
	}
	if e.Swaps() != 1 {
		t.Errorf("expected 1 kept swap, got %d", e.Swaps())
	}
}

func TestAttemptSwapChainedCascade(t *testing.T) {
	// First refill drops B,B,B into the top row, which matches again
	e := newScenarioEngine(t, newSeq(1, 1, 1, 0, 2, 0))

	trace, err := e.AttemptSwap(match3.C(3, 0), match3.C(2, 0))
	if err != nil {
		t.Fatalf("AttemptSwap failed: %v", err)
	}

	if len(trace.Rounds) < 2 {
		t.Fatalf("expected a chained cascade, got %s", spew.Sdump(trace))
	}
	if len(trace.Rounds) != 2 {
		t.Errorf("expected exactly 2 rounds, got %d", len(trace.Rounds))
	}

	second := trace.Rounds[1]
	if second.Index != 1 {
		t.Errorf("expected second round index 1, got %d", second.Index)
	}
	wantCleared := []match3.Coord{match3.C(0, 3), match3.C(1, 3), match3.C(2, 3)}
	if !reflect.DeepEqual(second.Cleared, wantCleared) {
		t.Errorf("second round cleared %v, want %v", second.Cleared, wantCleared)
	}
	if len(second.Moves) != 0 {
		t.Errorf("top row clear should move nothing, got %+v", second.Moves)
	}
	if trace.TotalCleared() != 6 {
		t.Errorf("expected 6 cleared tiles, got %d", trace.TotalCleared())
	}
	if trace.Truncated {
		t.Error("cascade should not be truncated")
	}

	want := match3.MustParseGrid(
		"ACAD",
		"CDCC",
		"DCDD",
		"CDCB",
	)
	if !e.Grid().Equal(want) {
		t.Errorf("final grid:\n%s\nwant\n%s", e.Grid(), want)
	}
	if match3.FindMatches(e.Grid()).Len() != 0 {
		t.Error("final detection pass should be empty")
	}
}

func TestAttemptSwapTruncatesRunawayCascade(t *testing.T) {
	e, err := match3.New(match3.Options{
		Width:            3,
		Height:           3,
		Catalog:          simpleCatalog(t, 1),
		Rand:             newSeq(0),
		MaxCascadeRounds: 5,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	trace, err := e.AttemptSwap(match3.C(0, 0), match3.C(1, 0))
	if err != nil {
		t.Fatalf("AttemptSwap failed: %v", err)
	}
	if !trace.Truncated {
		t.Error("expected truncated trace for a single-type catalog")
	}
	if len(trace.Rounds) != 5 {
		t.Errorf("expected 5 rounds, got %d", len(trace.Rounds))
	}
	if e.State() != match3.StateIdle {
		t.Errorf("expected idle engine, got %v", e.State())
	}
}

func TestAttemptSwapDeterministic(t *testing.T) {
	newEngine := func() *match3.Engine {
		e, err := match3.New(match3.Options{
			Width:   8,
			Height:  8,
			Catalog: simpleCatalog(t, 5),
			Rand:    match3.NewRand(2024),
			Fill:    match3.FillNoMatches,
		})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		return e
	}

	a, b := newEngine(), newEngine()
	if !a.Grid().Equal(b.Grid()) {
		t.Fatal("same seed produced different initial boards")
	}

	for i := 0; i < 10; i++ {
		swaps := a.LegalSwaps()
		if len(swaps) == 0 {
			break
		}
		s := swaps[0]

		ta, errA := a.AttemptSwap(s.A, s.B)
		tb, errB := b.AttemptSwap(s.A, s.B)
		if errA != nil || errB != nil {
			t.Fatalf("AttemptSwap failed: %v / %v", errA, errB)
		}
		if !reflect.DeepEqual(ta, tb) {
			t.Fatalf("swap %d: traces differ:\n%s\n%s", i, spew.Sdump(ta), spew.Sdump(tb))
		}
		if !ta.Matched() {
			t.Errorf("swap %d: legal swap %+v did not match", i, s)
		}
	}
	if !a.Grid().Equal(b.Grid()) {
		t.Error("engines diverged")
	}
}

func TestTinyBoardNeverMatches(t *testing.T) {
	e, err := match3.New(match3.Options{
		Width:   2,
		Height:  2,
		Catalog: simpleCatalog(t, 1),
		Rand:    newSeq(0),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if len(e.LegalSwaps()) != 0 {
		t.Error("2x2 board cannot have legal swaps")
	}
	trace, err := e.AttemptSwap(match3.C(0, 0), match3.C(0, 1))
	if err != nil {
		t.Fatalf("AttemptSwap failed: %v", err)
	}
	if trace.Matched() {
		t.Error("2x2 board should never match")
	}
}

func TestTileAt(t *testing.T) {
	e := newScenarioEngine(t, newSeq(0))

	cell, err := e.TileAt(match3.C(2, 0))
	if err != nil {
		t.Fatalf("TileAt failed: %v", err)
	}
	if !cell.Filled || cell.Type != 1 {
		t.Errorf("expected B at (2,0), got %+v", cell)
	}

	if _, err := e.TileAt(match3.C(4, 4)); !errors.Is(err, match3.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestGridReturnsCopy(t *testing.T) {
	e := newScenarioEngine(t, newSeq(0))

	g := e.Grid()
	if err := g.Set(match3.C(0, 0), match3.Empty()); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	cell, _ := e.TileAt(match3.C(0, 0))
	if !cell.Filled {
		t.Error("modifying the returned grid should not affect the engine")
	}
}
