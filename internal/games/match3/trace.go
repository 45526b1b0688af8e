package match3

// Swap names the two cells exchanged by one move.
type Swap struct {
	A Coord
	B Coord
}

// Outcome tells whether a swap was kept.
type Outcome int

const (
	// OutcomeNoMatch means the swap was rejected or reverted; the board is unchanged.
	OutcomeNoMatch Outcome = iota
	// OutcomeMatched means the swap produced at least one cascade round.
	OutcomeMatched
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoMatch:
		return "no_match"
	case OutcomeMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// CascadeRound is one clear/fall/spawn iteration.
type CascadeRound struct {
	Index   int     // 0 for the round triggered directly by the swap
	Cleared []Coord // Sorted bottom row first, then left to right
	Moves   []Move
	Spawns  []Spawn
}

// ClearedCount returns how many tiles the round removed.
func (r CascadeRound) ClearedCount() int {
	return len(r.Cleared)
}

// CascadeTrace is the full result of one AttemptSwap call.
type CascadeTrace struct {
	Swap      Swap
	Outcome   Outcome
	Rounds    []CascadeRound
	Truncated bool // Cascade stopped at the round cap while matches remained
}

// Matched reports whether the swap was kept.
func (t CascadeTrace) Matched() bool {
	return t.Outcome == OutcomeMatched
}

// TotalCleared sums cleared tiles across all rounds.
func (t CascadeTrace) TotalCleared() int {
	total := 0
	for _, r := range t.Rounds {
		total += len(r.Cleared)
	}
	return total
}

// Observer receives a trace replayed cell by cell.
type Observer interface {
	RoundStarted(r CascadeRound)
	TileCleared(round int, at Coord)
	TileMoved(round int, m Move)
	TileSpawned(round int, s Spawn)
	RoundFinished(r CascadeRound)
}

// BaseObserver implements Observer with no-ops; embed it to handle only some events.
type BaseObserver struct{}

func (BaseObserver) RoundStarted(CascadeRound)  {}
func (BaseObserver) TileCleared(int, Coord)     {}
func (BaseObserver) TileMoved(int, Move)        {}
func (BaseObserver) TileSpawned(int, Spawn)     {}
func (BaseObserver) RoundFinished(CascadeRound) {}

// Walk replays the trace in order: for each round, clears, then moves, then spawns.
// It runs entirely on the caller's goroutine and does not touch the engine.
func (t CascadeTrace) Walk(o Observer) {
	for _, r := range t.Rounds {
		o.RoundStarted(r)
		for _, c := range r.Cleared {
			o.TileCleared(r.Index, c)
		}
		for _, m := range r.Moves {
			o.TileMoved(r.Index, m)
		}
		for _, s := range r.Spawns {
			o.TileSpawned(r.Index, s)
		}
		o.RoundFinished(r)
	}
}
