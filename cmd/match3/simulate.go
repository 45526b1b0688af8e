package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/autoplay"
	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/platform/text"
	"github.com/vovakirdan/match3/internal/storage"
)

var (
	flagSwaps    int
	flagStrategy string
	flagSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a game with the autoplayer",
	Long: `Lets the autoplayer pick legal swaps until it has made --swaps moves
or the board deadlocks. Ctrl+C stops between swaps and still reports.

Strategies:
  random - Pick uniformly among legal swaps (seeded from --seed)
  greedy - Pick the swap clearing the most tiles at once

Examples:
  match3 simulate --swaps 100
  match3 simulate --variant mini --strategy greedy --save
  match3 simulate --seed 42 --log-level info`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSwaps, "swaps", 50, "Maximum number of swaps")
	simulateCmd.Flags().StringVar(&flagStrategy, "strategy", "random", "Swap strategy: random, greedy")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the history database")
}

func runSimulate(cmd *cobra.Command, args []string) {
	strategy, err := autoplay.ParseStrategy(flagStrategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := mustSession()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	player := autoplay.New(s.engine, s.tracker, autoplay.Options{
		Strategy: strategy,
		// Offset so the swap choice does not replay the spawn sequence
		Rand:   match3.NewRand(s.seed + 1),
		Logger: logger,
	})

	sum, err := player.Run(ctx, flagSwaps)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run %s\n", sum.RunID)
	fmt.Printf("  Variant:    %s (seed %d, %s)\n", s.variant, s.seed, strategy)
	fmt.Printf("  Swaps:      %d\n", sum.Swaps)
	fmt.Printf("  Score:      %d\n", sum.Score)
	fmt.Printf("  Cleared:    %d tiles in %d rounds\n", sum.Cleared, sum.Rounds)
	fmt.Printf("  Best chain: %d\n", sum.BestChain)
	if sum.Truncated > 0 {
		fmt.Printf("  Truncated:  %d cascades\n", sum.Truncated)
	}
	switch {
	case sum.Deadlocked:
		fmt.Println("  Ended:      no legal swaps left")
	case err != nil:
		fmt.Println("  Ended:      interrupted")
	}
	fmt.Println()
	fmt.Println(text.Board(s.engine.Grid(), s.engine.Catalog(), text.Options{Color: colorOutput(), Axes: true}))

	if !flagSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	newBest, err := store.BeatsBest(s.variant, sum.Score)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading best score: %v\n", err)
		os.Exit(1)
	}

	err = store.SaveRun(storage.RunRecord{
		ID:         sum.RunID,
		Variant:    s.variant,
		Seed:       s.seed,
		Strategy:   string(strategy),
		Score:      sum.Score,
		Swaps:      sum.Swaps,
		Rounds:     sum.Rounds,
		Cleared:    sum.Cleared,
		BestChain:  sum.BestChain,
		Deadlocked: sum.Deadlocked,
		Duration:   sum.Duration,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		os.Exit(1)
	}

	if newBest {
		fmt.Println()
		fmt.Printf("New best for %s!\n", s.variant)
	}
}
