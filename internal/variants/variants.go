// Package variants registers the built-in board presets.
package variants

import (
	"fmt"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/registry"
)

// palette supplies tiles when a variant needs more than the loaded config has.
var palette = []config.TileConfig{
	{Name: "ruby", Glyph: "R", Color: "1"},
	{Name: "emerald", Glyph: "G", Color: "2"},
	{Name: "sapphire", Glyph: "B", Color: "4"},
	{Name: "topaz", Glyph: "Y", Color: "3"},
	{Name: "amethyst", Glyph: "P", Color: "5"},
	{Name: "opal", Glyph: "O", Color: "6"},
}

// Preset is a board variant defined by its size, tile count and fill policy.
type Preset struct {
	id     string
	title  string
	width  int
	height int
	tiles  int
	fill   string
}

func (p Preset) ID() string    { return p.id }
func (p Preset) Title() string { return p.title }

func (p Preset) Description() string {
	return fmt.Sprintf("%dx%d board, %d tile types, %s fill", p.width, p.height, p.tiles, p.fill)
}

// Apply sets the board and trims or extends the tile list to the preset's
// tile count. Tiles already in cfg keep their names and colors; any layout
// is dropped.
func (p Preset) Apply(cfg *config.Config) {
	cfg.Board.Width = p.width
	cfg.Board.Height = p.height
	cfg.Board.Fill = p.fill
	cfg.Board.Layout = nil
	cfg.Tiles = resizeTiles(cfg.Tiles, p.tiles)
}

// resizeTiles returns exactly n tiles, taking them from tiles first and
// then from the palette.
func resizeTiles(tiles []config.TileConfig, n int) []config.TileConfig {
	out := make([]config.TileConfig, 0, n)
	used := make(map[string]bool, n)
	for _, t := range tiles {
		if len(out) == n {
			break
		}
		out = append(out, t)
		used[t.Glyph] = true
	}
	for _, t := range palette {
		if len(out) == n {
			break
		}
		if used[t.Glyph] {
			continue
		}
		out = append(out, t)
		used[t.Glyph] = true
	}
	return out
}

func init() {
	registry.Register("classic", func() registry.Variant {
		return Preset{id: "classic", title: "Classic", width: 8, height: 8, tiles: 5, fill: "no_matches"}
	})
	registry.Register("mini", func() registry.Variant {
		return Preset{id: "mini", title: "Mini", width: 5, height: 5, tiles: 4, fill: "no_matches"}
	})
	registry.Register("wide", func() registry.Variant {
		return Preset{id: "wide", title: "Wide", width: 10, height: 6, tiles: 6, fill: "settled"}
	})
	registry.Register("chaos", func() registry.Variant {
		return Preset{id: "chaos", title: "Chaos", width: 8, height: 8, tiles: 3, fill: "random"}
	})
}
