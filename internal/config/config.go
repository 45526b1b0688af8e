// Package config provides YAML-based board configuration loading and
// validation for the match3 engine.
package config

// Config contains everything needed to build an engine and score its swaps.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Tiles   []TileConfig  `yaml:"tiles"`
	Scoring ScoringConfig `yaml:"scoring"`
	Engine  EngineConfig  `yaml:"engine"`
}

// BoardConfig defines the board dimensions and how it is first filled.
type BoardConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Fill   string `yaml:"fill"` // "random", "no_matches" or "settled"

	// Layout optionally fixes the starting tiles, top row first.
	// Letters index into Tiles ('A' is the first tile); '.' is filled per Fill.
	Layout []string `yaml:"layout,omitempty"`
}

// TileConfig describes one tile type. Its position in the list is its type.
type TileConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"` // Single character shown on the board
	Color string `yaml:"color"` // ANSI code or hex color, empty for none
}

// ScoringConfig defines how cleared tiles turn into points.
type ScoringConfig struct {
	PointsPerTile     int  `yaml:"points_per_tile"`
	CascadeMultiplier bool `yaml:"cascade_multiplier"` // Round i scores x(i+1)
}

// EngineConfig holds engine limits.
type EngineConfig struct {
	MaxCascadeRounds int `yaml:"max_cascade_rounds"` // 0 uses the engine default
}
