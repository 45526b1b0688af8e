// Package score turns cascade traces into points. The engine itself never
// keeps score; callers own a Tracker and feed it every trace.
package score

import "github.com/vovakirdan/match3/internal/games/match3"

// Policy controls how cleared tiles are worth points.
type Policy struct {
	PointsPerTile     int  // 0 counts one point per tile
	CascadeMultiplier bool // Round i of a cascade scores x(i+1)
}

// Tracker accumulates score across swaps.
type Tracker struct {
	policy    Policy
	total     int
	swaps     int
	rounds    int
	cleared   int
	bestChain int
}

// NewTracker creates a tracker with the given policy.
func NewTracker(p Policy) *Tracker {
	if p.PointsPerTile == 0 {
		p.PointsPerTile = 1
	}
	return &Tracker{policy: p}
}

// RoundPoints returns the points for one cascade round.
func (t *Tracker) RoundPoints(r match3.CascadeRound) int {
	pts := len(r.Cleared) * t.policy.PointsPerTile
	if t.policy.CascadeMultiplier {
		pts *= r.Index + 1
	}
	return pts
}

// Apply adds a trace to the totals and returns the points it earned.
// Rejected and reverted swaps earn nothing and are not counted.
func (t *Tracker) Apply(trace match3.CascadeTrace) int {
	if !trace.Matched() {
		return 0
	}

	gained := 0
	for _, r := range trace.Rounds {
		gained += t.RoundPoints(r)
		t.cleared += len(r.Cleared)
	}

	t.total += gained
	t.swaps++
	t.rounds += len(trace.Rounds)
	t.bestChain = max(t.bestChain, len(trace.Rounds))
	return gained
}

// Total returns the accumulated score.
func (t *Tracker) Total() int { return t.total }

// Swaps returns how many scoring swaps were applied.
func (t *Tracker) Swaps() int { return t.swaps }

// Rounds returns the total number of cascade rounds.
func (t *Tracker) Rounds() int { return t.rounds }

// Cleared returns the total number of tiles cleared.
func (t *Tracker) Cleared() int { return t.cleared }

// BestChain returns the longest cascade seen, in rounds.
func (t *Tracker) BestChain() int { return t.bestChain }

// Reset clears all totals but keeps the policy.
func (t *Tracker) Reset() {
	*t = Tracker{policy: t.policy}
}
