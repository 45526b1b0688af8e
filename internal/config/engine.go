package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match3/internal/games/match3"
)

// Catalog builds the tile catalog. Tile i gets type i.
func (c Config) Catalog() (*match3.Catalog, error) {
	specs := make([]match3.TileSpec, 0, len(c.Tiles))
	for i, t := range c.Tiles {
		spec := match3.TileSpec{
			Type:  match3.TileType(i),
			Name:  t.Name,
			Color: t.Color,
		}
		if t.Glyph != "" {
			spec.Glyph, _ = utf8.DecodeRuneInString(t.Glyph)
		}
		specs = append(specs, spec)
	}
	return match3.NewCatalog(specs...)
}

// Layout returns the configured starting grid, or nil when none is set.
func (c Config) Layout() (*match3.Grid, error) {
	if len(c.Board.Layout) == 0 {
		return nil, nil
	}
	return match3.ParseGrid(c.Board.Layout...)
}

// EngineOptions converts the configuration into engine options.
func (c Config) EngineOptions(rng match3.Rand, logger *log.Logger) (match3.Options, error) {
	cat, err := c.Catalog()
	if err != nil {
		return match3.Options{}, err
	}
	fill, err := match3.ParseFillPolicy(c.Board.Fill)
	if err != nil {
		return match3.Options{}, err
	}
	return match3.Options{
		Width:            c.Board.Width,
		Height:           c.Board.Height,
		Catalog:          cat,
		Rand:             rng,
		Fill:             fill,
		MaxCascadeRounds: c.Engine.MaxCascadeRounds,
		Logger:           logger,
	}, nil
}

// NewEngine validates the configuration and builds an engine from it,
// starting from Layout when one is configured.
func (c Config) NewEngine(rng match3.Rand, logger *log.Logger) (*match3.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts, err := c.EngineOptions(rng, logger)
	if err != nil {
		return nil, err
	}

	layout, err := c.Layout()
	if err != nil {
		return nil, fmt.Errorf("config: bad layout: %w", err)
	}
	if layout != nil {
		return match3.NewWithGrid(layout, opts)
	}
	return match3.New(opts)
}
