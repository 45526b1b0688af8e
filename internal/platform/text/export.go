package text

import (
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/match3/internal/games/match3"
)

// TraceDocument is the YAML form of a cascade trace.
type TraceDocument struct {
	Swap      [2][2]int       `yaml:"swap,flow"`
	Outcome   string          `yaml:"outcome"`
	Truncated bool            `yaml:"truncated,omitempty"`
	Rounds    []RoundDocument `yaml:"rounds,omitempty"`
	Board     []string        `yaml:"board,omitempty"` // Top row first
}

// RoundDocument is the YAML form of one cascade round.
type RoundDocument struct {
	Index   int             `yaml:"index"`
	Cleared [][2]int        `yaml:"cleared,flow"`
	Moves   []MoveDocument  `yaml:"moves,omitempty"`
	Spawns  []SpawnDocument `yaml:"spawns,omitempty"`
}

// MoveDocument is one falling tile.
type MoveDocument struct {
	From [2]int `yaml:"from,flow"`
	To   [2]int `yaml:"to,flow"`
	Tile string `yaml:"tile"`
}

// SpawnDocument is one spawned tile.
type SpawnDocument struct {
	At   [2]int `yaml:"at,flow"`
	Tile string `yaml:"tile"`
}

func pair(c match3.Coord) [2]int {
	return [2]int{c.X, c.Y}
}

// NewTraceDocument converts a trace. When board is non-nil its rows are
// included as the state after the swap.
func NewTraceDocument(t match3.CascadeTrace, board *match3.Grid) TraceDocument {
	doc := TraceDocument{
		Swap:      [2][2]int{pair(t.Swap.A), pair(t.Swap.B)},
		Outcome:   t.Outcome.String(),
		Truncated: t.Truncated,
	}

	for _, r := range t.Rounds {
		rd := RoundDocument{Index: r.Index, Cleared: make([][2]int, 0, len(r.Cleared))}
		for _, c := range r.Cleared {
			rd.Cleared = append(rd.Cleared, pair(c))
		}
		for _, m := range r.Moves {
			rd.Moves = append(rd.Moves, MoveDocument{From: pair(m.From), To: pair(m.To), Tile: m.Type.String()})
		}
		for _, s := range r.Spawns {
			rd.Spawns = append(rd.Spawns, SpawnDocument{At: pair(s.At), Tile: s.Type.String()})
		}
		doc.Rounds = append(doc.Rounds, rd)
	}

	if board != nil {
		doc.Board = boardRows(board)
	}
	return doc
}

// boardRows returns the layout letters of g, top row first.
func boardRows(g *match3.Grid) []string {
	rows := make([]string, 0, g.H)
	for y := g.H - 1; y >= 0; y-- {
		row := make([]rune, 0, g.W)
		for x := range g.W {
			cell, _ := g.Get(match3.C(x, y))
			if cell.Filled {
				row = append(row, cell.Type.Char())
			} else {
				row = append(row, '.')
			}
		}
		rows = append(rows, string(row))
	}
	return rows
}

// MarshalTrace encodes a trace as YAML.
func MarshalTrace(t match3.CascadeTrace, board *match3.Grid) ([]byte, error) {
	return yaml.Marshal(NewTraceDocument(t, board))
}
