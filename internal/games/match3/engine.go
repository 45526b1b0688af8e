package match3

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// State is the engine's position in the swap/resolve cycle.
type State int

const (
	StateIdle State = iota
	StateSwapping
	StateResolving
	StateSettled
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSwapping:
		return "swapping"
	case StateResolving:
		return "resolving"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// FillPolicy selects how the initial board is populated.
type FillPolicy string

const (
	// FillRandom spawns every cell uniformly; the board may start with matches.
	FillRandom FillPolicy = "random"
	// FillNoMatches spawns while refusing types that would complete a run.
	FillNoMatches FillPolicy = "no_matches"
	// FillSettled spawns uniformly, then resolves any cascades before play starts.
	FillSettled FillPolicy = "settled"
)

// ParseFillPolicy validates a policy name. The empty string selects FillRandom.
func ParseFillPolicy(s string) (FillPolicy, error) {
	switch FillPolicy(s) {
	case "", FillRandom:
		return FillRandom, nil
	case FillNoMatches, FillSettled:
		return FillPolicy(s), nil
	default:
		return "", fmt.Errorf("match3: unknown fill policy %q", s)
	}
}

// DefaultMaxCascadeRounds caps a single resolution. Only degenerate catalogs
// (a single type on a board at least three wide) get near it.
const DefaultMaxCascadeRounds = 256

// Options configures a new Engine.
type Options struct {
	Width   int
	Height  int
	Catalog *Catalog
	Rand    Rand       // nil seeds a source from the current time
	Fill    FillPolicy // empty means FillRandom

	// MaxCascadeRounds bounds one AttemptSwap; 0 means DefaultMaxCascadeRounds.
	MaxCascadeRounds int

	Logger *log.Logger // nil discards engine logs
}

// Engine owns a grid and runs swap-and-resolve cycles on it.
// It is synchronous and not safe for concurrent use.
type Engine struct {
	grid      *Grid
	catalog   *Catalog
	rng       Rand
	state     State
	maxRounds int
	logger    *log.Logger
	swaps     int
}

// New creates an engine with an empty width x height board filled per opts.Fill.
func New(opts Options) (*Engine, error) {
	g, err := NewGrid(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	return NewWithGrid(g, opts)
}

// NewWithGrid creates an engine starting from a copy of g. Existing tiles must
// use catalog types; empty cells are filled per opts.Fill. opts.Width and
// opts.Height are ignored.
func NewWithGrid(g *Grid, opts Options) (*Engine, error) {
	if g == nil || g.W < 1 || g.H < 1 {
		return nil, fmt.Errorf("%w: no grid", ErrInvalidDimensions)
	}
	if len(g.Cells) != g.W*g.H {
		return nil, fmt.Errorf("%w: %dx%d grid has %d cells", ErrInvalidDimensions, g.W, g.H, len(g.Cells))
	}
	if opts.Catalog.Len() == 0 {
		return nil, fmt.Errorf("%w: no tile types", ErrInvalidCatalog)
	}
	policy, err := ParseFillPolicy(string(opts.Fill))
	if err != nil {
		return nil, err
	}
	for i, cell := range g.Cells {
		if cell.Filled && !opts.Catalog.Contains(cell.Type) {
			return nil, fmt.Errorf("%w: tile %v at %v is not in the catalog",
				ErrInvalidCatalog, cell.Type, C(i%g.W, i/g.W))
		}
	}

	e := &Engine{
		grid:      g.Clone(),
		catalog:   opts.Catalog,
		rng:       opts.Rand,
		state:     StateIdle,
		maxRounds: opts.MaxCascadeRounds,
		logger:    opts.Logger,
	}
	if e.rng == nil {
		e.rng = NewRand(time.Now().UnixNano())
	}
	if e.maxRounds <= 0 {
		e.maxRounds = DefaultMaxCascadeRounds
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	e.initialFill(policy)
	return e, nil
}

// initialFill populates empty cells according to policy.
func (e *Engine) initialFill(policy FillPolicy) {
	switch policy {
	case FillNoMatches:
		fillWithoutMatches(e.grid, e.catalog, e.rng)
	case FillSettled:
		fillEmpties(e.grid, e.catalog, e.rng)
		if matches := FindMatches(e.grid); matches.Len() > 0 {
			rounds, truncated := e.resolve(matches)
			e.logger.Debug("settled initial board", "rounds", len(rounds), "truncated", truncated)
		}
	default:
		fillEmpties(e.grid, e.catalog, e.rng)
	}
	e.logger.Debug("board ready", "width", e.grid.W, "height", e.grid.H, "fill", policy)
}

// AttemptSwap exchanges the tiles at a and b and resolves the resulting cascade.
//
// Non-adjacent, out-of-bounds or empty cells fail with ErrInvalidSwap and the
// returned trace has OutcomeNoMatch. A legal swap that forms no run is swapped
// back, also reported as OutcomeNoMatch with no error. Either way the board is
// unchanged. Otherwise the trace lists every cascade round in order.
func (e *Engine) AttemptSwap(a, b Coord) (CascadeTrace, error) {
	trace := CascadeTrace{Swap: Swap{A: a, B: b}, Outcome: OutcomeNoMatch}

	if err := e.validateSwap(a, b); err != nil {
		e.logger.Debug("swap rejected", "a", a, "b", b, "error", err)
		return trace, err
	}

	e.transition(StateSwapping)
	e.grid.swap(a, b)

	e.transition(StateResolving)
	matches := FindMatches(e.grid)
	if matches.Len() == 0 {
		e.grid.swap(a, b)
		e.logger.Debug("swap reverted", "a", a, "b", b)
		e.settle()
		return trace, nil
	}

	trace.Outcome = OutcomeMatched
	trace.Rounds, trace.Truncated = e.resolve(matches)
	e.swaps++
	e.logger.Debug("swap resolved",
		"a", a,
		"b", b,
		"rounds", len(trace.Rounds),
		"cleared", trace.TotalCleared(),
	)
	e.settle()
	return trace, nil
}

// validateSwap checks the AttemptSwap preconditions without touching the grid.
func (e *Engine) validateSwap(a, b Coord) error {
	if !e.grid.InBounds(a) || !e.grid.InBounds(b) {
		return fmt.Errorf("%w: %w: %v <-> %v on %dx%d grid",
			ErrInvalidSwap, ErrOutOfBounds, a, b, e.grid.W, e.grid.H)
	}
	if !a.Adjacent(b) {
		return fmt.Errorf("%w: %v and %v are not adjacent", ErrInvalidSwap, a, b)
	}
	if e.grid.IsEmpty(a) {
		return fmt.Errorf("%w: %v is empty", ErrInvalidSwap, a)
	}
	if e.grid.IsEmpty(b) {
		return fmt.Errorf("%w: %v is empty", ErrInvalidSwap, b)
	}
	return nil
}

// resolve runs clear/fall/spawn rounds starting from a non-empty match set
// until a detection pass comes back empty or the round cap is reached.
func (e *Engine) resolve(matches MatchSet) (rounds []CascadeRound, truncated bool) {
	for matches.Len() > 0 {
		if len(rounds) >= e.maxRounds {
			e.logger.Warn("cascade truncated", "rounds", len(rounds), "pending", matches.Len())
			return rounds, true
		}

		round := CascadeRound{
			Index:   len(rounds),
			Cleared: matches.Coords(),
		}
		for _, c := range round.Cleared {
			e.grid.put(c, Empty())
		}
		round.Moves = CollapseColumns(e.grid)
		round.Spawns = fillEmpties(e.grid, e.catalog, e.rng)

		e.logger.Debug("cascade round",
			"round", round.Index,
			"cleared", len(round.Cleared),
			"moved", len(round.Moves),
			"spawned", len(round.Spawns),
		)
		rounds = append(rounds, round)
		matches = FindMatches(e.grid)
	}
	return rounds, false
}

// transition moves the state machine and logs the change.
func (e *Engine) transition(to State) {
	e.logger.Debug("state", "from", e.state, "to", to)
	e.state = to
}

// settle ends a cycle; the engine is immediately ready for the next swap.
func (e *Engine) settle() {
	e.transition(StateSettled)
	e.transition(StateIdle)
}

// TileAt returns the cell at c without modifying anything.
func (e *Engine) TileAt(c Coord) (Cell, error) {
	return e.grid.Get(c)
}

// Grid returns a copy of the current board.
func (e *Engine) Grid() *Grid {
	return e.grid.Clone()
}

// State returns the current state. Between calls it is always StateIdle.
func (e *Engine) State() State {
	return e.state
}

// Catalog returns the catalog the engine spawns from.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Width returns the board width.
func (e *Engine) Width() int {
	return e.grid.W
}

// Height returns the board height.
func (e *Engine) Height() int {
	return e.grid.H
}

// Swaps returns how many swaps have been kept so far.
func (e *Engine) Swaps() int {
	return e.swaps
}

// LegalSwaps lists every swap that would currently produce a match.
func (e *Engine) LegalSwaps() []Swap {
	return FindLegalSwaps(e.grid)
}
