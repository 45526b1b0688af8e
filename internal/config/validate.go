package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/match3/internal/games/match3"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the configuration before an engine is built from it.
// Checks:
//   - Board dimensions are positive
//   - Fill policy is known
//   - Tiles are present with single-character, distinct glyphs
//   - Layout, when given, matches the dimensions and uses known tiles
//   - Scoring and engine limits are not negative
func (c Config) Validate() error {
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return ValidationError{
			Code:    "INVALID_DIMENSIONS",
			Message: fmt.Sprintf("board must be at least 1x1, got %dx%d", c.Board.Width, c.Board.Height),
		}
	}

	if _, err := match3.ParseFillPolicy(c.Board.Fill); err != nil {
		return ValidationError{
			Code:    "INVALID_FILL",
			Message: fmt.Sprintf("unknown fill policy %q", c.Board.Fill),
		}
	}

	if err := c.validateTiles(); err != nil {
		return err
	}

	if err := c.validateLayout(); err != nil {
		return err
	}

	if c.Scoring.PointsPerTile < 0 {
		return ValidationError{
			Code:    "INVALID_SCORING",
			Message: fmt.Sprintf("points_per_tile must not be negative, got %d", c.Scoring.PointsPerTile),
		}
	}

	if c.Engine.MaxCascadeRounds < 0 {
		return ValidationError{
			Code:    "INVALID_ROUNDS",
			Message: fmt.Sprintf("max_cascade_rounds must not be negative, got %d", c.Engine.MaxCascadeRounds),
		}
	}

	return nil
}

// validateTiles checks the tile list.
func (c Config) validateTiles() error {
	if len(c.Tiles) == 0 {
		return ValidationError{Code: "NO_TILES", Message: "at least one tile type is required"}
	}
	if len(c.Tiles) > match3.MaxTileTypes {
		return ValidationError{
			Code:    "TOO_MANY_TILES",
			Message: fmt.Sprintf("at most %d tile types are supported, got %d", match3.MaxTileTypes, len(c.Tiles)),
		}
	}

	seen := make(map[string]int, len(c.Tiles))
	for i, t := range c.Tiles {
		if utf8.RuneCountInString(t.Glyph) > 1 {
			return ValidationError{
				Code:    "INVALID_GLYPH",
				Message: fmt.Sprintf("tile %d (%s): glyph %q must be a single character", i, t.Name, t.Glyph),
			}
		}
		if t.Glyph == "" {
			continue
		}
		if j, dup := seen[t.Glyph]; dup {
			return ValidationError{
				Code:    "DUPLICATE_GLYPH",
				Message: fmt.Sprintf("tiles %d and %d share glyph %q", j, i, t.Glyph),
			}
		}
		seen[t.Glyph] = i
	}
	return nil
}

// validateLayout checks layout rows against the board and tile list.
func (c Config) validateLayout() error {
	if len(c.Board.Layout) == 0 {
		return nil
	}

	if len(c.Board.Layout) != c.Board.Height {
		return ValidationError{
			Code:    "INVALID_LAYOUT",
			Message: fmt.Sprintf("layout has %d rows, board height is %d", len(c.Board.Layout), c.Board.Height),
		}
	}

	for row, line := range c.Board.Layout {
		if utf8.RuneCountInString(line) != c.Board.Width {
			return ValidationError{
				Code:    "INVALID_LAYOUT",
				Message: fmt.Sprintf("layout row %d has %d cells, board width is %d", row, utf8.RuneCountInString(line), c.Board.Width),
			}
		}
		for _, r := range line {
			if r == '.' {
				continue
			}
			t, ok := match3.ParseTileType(r)
			if !ok || int(t) >= len(c.Tiles) {
				return ValidationError{
					Code:    "INVALID_LAYOUT",
					Message: fmt.Sprintf("layout row %d: %q does not name one of %d tiles", row, r, len(c.Tiles)),
				}
			}
		}
	}
	return nil
}
