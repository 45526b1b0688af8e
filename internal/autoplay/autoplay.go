// Package autoplay drives an engine with machine-chosen swaps. It is used for
// simulations, benchmarks of variants and the run history.
package autoplay

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/score"
)

// Strategy picks one swap from the legal ones.
type Strategy string

const (
	// StrategyRandom picks uniformly among legal swaps.
	StrategyRandom Strategy = "random"
	// StrategyGreedy picks the swap clearing the most tiles in its first round.
	// Ties go to the earliest swap in scan order.
	StrategyGreedy Strategy = "greedy"
)

// ParseStrategy validates a strategy name. The empty string selects StrategyRandom.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyRandom:
		return StrategyRandom, nil
	case StrategyGreedy:
		return StrategyGreedy, nil
	default:
		return "", fmt.Errorf("autoplay: unknown strategy %q", s)
	}
}

// Options configures a Player.
type Options struct {
	Strategy Strategy
	Rand     match3.Rand // Used by StrategyRandom; nil seeds from the current time
	Logger   *log.Logger // nil discards logs
}

// Summary describes a finished run.
type Summary struct {
	RunID      string
	Swaps      int
	Score      int
	Rounds     int
	Cleared    int
	BestChain  int
	Truncated  int  // Swaps whose cascade hit the round cap
	Deadlocked bool // Stopped because no legal swap remained
	Duration   time.Duration
}

// Player plays swaps on one engine and scores them with one tracker.
type Player struct {
	id       string
	engine   *match3.Engine
	tracker  *score.Tracker
	strategy Strategy
	rng      match3.Rand
	logger   *log.Logger
}

// New creates a player with a fresh run ID.
func New(e *match3.Engine, t *score.Tracker, opts Options) *Player {
	p := &Player{
		id:       uuid.New().String(),
		engine:   e,
		tracker:  t,
		strategy: opts.Strategy,
		rng:      opts.Rand,
		logger:   opts.Logger,
	}
	if p.strategy == "" {
		p.strategy = StrategyRandom
	}
	if p.rng == nil {
		p.rng = match3.NewRand(time.Now().UnixNano())
	}
	if p.logger == nil {
		p.logger = log.New(io.Discard)
	}
	return p
}

// ID returns the run ID.
func (p *Player) ID() string {
	return p.id
}

// Run plays up to maxSwaps swaps. It stops early when the board has no legal
// swap or ctx is done; in the latter case the partial summary is returned with
// ctx's error. The context is checked between swaps, never inside one.
func (p *Player) Run(ctx context.Context, maxSwaps int) (Summary, error) {
	start := time.Now()
	sum := Summary{RunID: p.id}

	for sum.Swaps < maxSwaps {
		if err := ctx.Err(); err != nil {
			p.fill(&sum, start)
			return sum, err
		}

		legal := p.engine.LegalSwaps()
		if len(legal) == 0 {
			sum.Deadlocked = true
			p.logger.Info("no legal swaps left", "run", p.id, "swaps", sum.Swaps)
			break
		}

		s := p.choose(legal)
		trace, err := p.engine.AttemptSwap(s.A, s.B)
		if err != nil {
			p.fill(&sum, start)
			return sum, fmt.Errorf("autoplay: swap %v <-> %v: %w", s.A, s.B, err)
		}
		if !trace.Matched() {
			// Legal swaps always match; anything else is an engine bug.
			p.fill(&sum, start)
			return sum, fmt.Errorf("autoplay: legal swap %v <-> %v did not match", s.A, s.B)
		}

		gained := p.tracker.Apply(trace)
		sum.Swaps++
		if trace.Truncated {
			sum.Truncated++
		}
		p.logger.Info("swap",
			"run", p.id,
			"n", sum.Swaps,
			"a", s.A,
			"b", s.B,
			"rounds", len(trace.Rounds),
			"cleared", trace.TotalCleared(),
			"points", gained,
		)
	}

	p.fill(&sum, start)
	return sum, nil
}

// fill copies tracker totals into the summary and stamps its duration.
func (p *Player) fill(sum *Summary, start time.Time) {
	sum.Duration = time.Since(start)
	sum.Score = p.tracker.Total()
	sum.Rounds = p.tracker.Rounds()
	sum.Cleared = p.tracker.Cleared()
	sum.BestChain = p.tracker.BestChain()
}

// choose applies the strategy to a non-empty list of legal swaps.
func (p *Player) choose(legal []match3.Swap) match3.Swap {
	if p.strategy == StrategyGreedy {
		return greedy(p.engine.Grid(), legal)
	}
	return legal[p.rng.IntN(len(legal))]
}

// greedy returns the swap whose first detection pass is largest.
func greedy(g *match3.Grid, legal []match3.Swap) match3.Swap {
	best, bestSize := legal[0], -1
	for _, s := range legal {
		trial := g.Clone()
		if err := trial.Swap(s.A, s.B); err != nil {
			continue
		}
		if n := match3.FindMatches(trial).Len(); n > bestSize {
			best, bestSize = s, n
		}
	}
	return best
}
