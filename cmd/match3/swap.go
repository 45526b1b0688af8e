package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/platform/text"
)

var flagYAML bool

var swapCmd = &cobra.Command{
	Use:   "swap <ax> <ay> <bx> <by>",
	Short: "Attempt a swap and print the cascade trace",
	Long: `Builds the board for the current seed and variant, attempts to swap
the tiles at (ax,ay) and (bx,by) and prints every cascade round.
Row 0 is the bottom row.

Examples:
  match3 swap 2 0 3 0 --seed 7
  match3 swap 4 4 4 5 --seed 7 --yaml`,
	Args: cobra.ExactArgs(4),
	Run:  runSwap,
}

func init() {
	swapCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the trace as YAML")
}

func runSwap(cmd *cobra.Command, args []string) {
	coords := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: coordinate %q is not a number\n", arg)
			os.Exit(1)
		}
		coords[i] = n
	}
	a, b := match3.C(coords[0], coords[1]), match3.C(coords[2], coords[3])

	s := mustSession()
	color := colorOutput() && !flagYAML
	before := s.engine.Grid()

	trace, err := s.engine.AttemptSwap(a, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, match3.ErrOutOfBounds) {
			fmt.Fprintf(os.Stderr, "The board is %dx%d.\n", s.engine.Width(), s.engine.Height())
		}
		os.Exit(1)
	}
	points := s.tracker.Apply(trace)

	if flagYAML {
		data, err := text.MarshalTrace(trace, s.engine.Grid())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding trace: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	fmt.Printf("Board %s (seed %d)\n", s.variant, s.seed)
	fmt.Println()
	fmt.Println(text.Board(before, s.engine.Catalog(), text.Options{
		Color:     color,
		Axes:      true,
		Highlight: map[match3.Coord]bool{a: true, b: true},
	}))
	fmt.Println()
	fmt.Println(text.Trace(trace, s.engine.Catalog(), color))
	fmt.Println()

	if !trace.Matched() {
		fmt.Println("No match: the swap was reverted.")
		return
	}

	fmt.Println(text.Board(s.engine.Grid(), s.engine.Catalog(), text.Options{Color: color, Axes: true}))
	fmt.Println()
	fmt.Printf("Cleared %d tiles in %d rounds for %d points.\n", trace.TotalCleared(), len(trace.Rounds), points)
}
