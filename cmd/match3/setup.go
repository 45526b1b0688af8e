package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/registry"
	"github.com/vovakirdan/match3/internal/score"
)

// customVariant names runs played with the config as loaded.
const customVariant = "custom"

// session is everything a command needs to work on one board.
type session struct {
	cfg     config.Config
	variant string
	seed    int64
	engine  *match3.Engine
	tracker *score.Tracker
}

// newSession loads the config, applies --variant and builds a seeded engine.
func newSession() (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	variant := customVariant
	if flagVariant != "" {
		v, err := registry.Create(flagVariant)
		if err != nil {
			return nil, fmt.Errorf("%w (run 'match3 list' to see available variants)", err)
		}
		v.Apply(&cfg)
		variant = v.ID()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e, err := cfg.NewEngine(match3.NewRand(seed), logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("engine ready", "variant", variant, "seed", seed, "width", e.Width(), "height", e.Height())

	return &session{
		cfg:     cfg,
		variant: variant,
		seed:    seed,
		engine:  e,
		tracker: score.NewTracker(score.Policy{
			PointsPerTile:     cfg.Scoring.PointsPerTile,
			CascadeMultiplier: cfg.Scoring.CascadeMultiplier,
		}),
	}, nil
}

// mustSession is newSession that exits on error.
func mustSession() *session {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s
}

// colorOutput reports whether stdout is a terminal.
func colorOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
