package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultConfig returns the default configuration: an 8x8 board of five gems.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
			Fill:   "no_matches",
		},
		Tiles: []TileConfig{
			{Name: "ruby", Glyph: "R", Color: "1"},
			{Name: "emerald", Glyph: "G", Color: "2"},
			{Name: "sapphire", Glyph: "B", Color: "4"},
			{Name: "topaz", Glyph: "Y", Color: "3"},
			{Name: "amethyst", Glyph: "P", Color: "5"},
		},
		Scoring: ScoringConfig{
			PointsPerTile:     10,
			CascadeMultiplier: true,
		},
		Engine: EngineConfig{
			MaxCascadeRounds: 256,
		},
	}
}
