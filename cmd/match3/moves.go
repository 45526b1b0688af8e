package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/platform/text"
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Show the board and its legal swaps",
	Long: `Builds the board for the current seed and variant, prints it and
lists every swap that would produce a match.

Examples:
  match3 moves --seed 7
  match3 moves --variant chaos --seed 1`,
	Args: cobra.NoArgs,
	Run:  runMoves,
}

func runMoves(cmd *cobra.Command, args []string) {
	s := mustSession()
	color := colorOutput()

	swaps := s.engine.LegalSwaps()
	highlight := make(map[match3.Coord]bool, 2*len(swaps))
	for _, sw := range swaps {
		highlight[sw.A] = true
		highlight[sw.B] = true
	}

	fmt.Printf("Board %s (seed %d)\n", s.variant, s.seed)
	fmt.Println()
	fmt.Println(text.Board(s.engine.Grid(), s.engine.Catalog(), text.Options{Color: color, Axes: true}))
	fmt.Println()

	if len(swaps) == 0 {
		fmt.Println("No legal swaps: the board is deadlocked.")
		return
	}

	fmt.Printf("%d legal swaps:\n", len(swaps))
	for _, sw := range swaps {
		fmt.Printf("  %d %d %d %d\n", sw.A.X, sw.A.Y, sw.B.X, sw.B.Y)
	}
	fmt.Println()
	fmt.Println(text.Board(s.engine.Grid(), s.engine.Catalog(), text.Options{Color: color, Axes: true, Highlight: highlight}))
}
