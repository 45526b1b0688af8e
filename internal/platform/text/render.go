// Package text renders boards and cascade traces for terminal output.
package text

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/match3/internal/games/match3"
)

// Options controls rendering.
type Options struct {
	Color     bool                  // Apply tile colors from the catalog
	Axes      bool                  // Label rows and columns
	Highlight map[match3.Coord]bool // Cells drawn reversed (color) or as '*'
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// cellStyle returns the style for a tile of the given catalog color.
func cellStyle(color string, highlight bool) lipgloss.Style {
	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	if highlight {
		style = style.Reverse(true).Bold(true)
	}
	return style
}

// glyph returns the display rune and color for a cell.
func glyph(cell match3.Cell, cat *match3.Catalog) (rune, string) {
	if !cell.Filled {
		return '.', ""
	}
	if spec, ok := cat.Spec(cell.Type); ok {
		return spec.Glyph, spec.Color
	}
	return cell.Type.Char(), ""
}

// Board renders g top row first. Adjacent cells with the same style are
// grouped to minimize ANSI escape sequences.
func Board(g *match3.Grid, cat *match3.Catalog, opts Options) string {
	var sb strings.Builder
	sb.Grow(g.W*g.H*2 + g.H*4)

	for y := g.H - 1; y >= 0; y-- {
		if y < g.H-1 {
			sb.WriteRune('\n')
		}
		if opts.Axes {
			fmt.Fprintf(&sb, "%2d ", y)
		}

		x := 0
		for x < g.W {
			cell, _ := g.Get(match3.C(x, y))
			_, startColor := glyph(cell, cat)
			startHL := opts.Highlight[match3.C(x, y)]

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < g.W {
				c := match3.C(x, y)
				cell, _ = g.Get(c)
				r, color := glyph(cell, cat)
				hl := opts.Highlight[c]
				if color != startColor || hl != startHL {
					break
				}
				if hl && !opts.Color {
					r = '*'
				}
				run.WriteRune(r)
				x++
			}

			if opts.Color {
				sb.WriteString(cellStyle(startColor, startHL).Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}

	if opts.Axes {
		sb.WriteString("\n   ")
		for x := range g.W {
			sb.WriteByte(byte('0' + x%10))
		}
	}
	return sb.String()
}

// Trace renders a cascade trace one line per round.
func Trace(t match3.CascadeTrace, cat *match3.Catalog, color bool) string {
	var sb strings.Builder

	heading := fmt.Sprintf("swap %v <-> %v: %s", t.Swap.A, t.Swap.B, t.Outcome)
	sb.WriteString(style(headingStyle, color, heading))

	for _, r := range t.Rounds {
		spawned := make([]string, 0, len(r.Spawns))
		for _, s := range r.Spawns {
			g, _ := glyph(match3.Tile(s.Type), cat)
			spawned = append(spawned, fmt.Sprintf("%c@%v", g, s.At))
		}
		fmt.Fprintf(&sb, "\n  round %d: cleared %d %v, moved %d, spawned %s",
			r.Index, len(r.Cleared), r.Cleared, len(r.Moves), strings.Join(spawned, " "))
	}

	if t.Truncated {
		sb.WriteString("\n  ")
		sb.WriteString(style(dimStyle, color, "(cascade truncated at the round limit)"))
	}
	return sb.String()
}

// style renders s with st only when color output is enabled.
func style(st lipgloss.Style, color bool, s string) string {
	if !color {
		return s
	}
	return st.Render(s)
}
