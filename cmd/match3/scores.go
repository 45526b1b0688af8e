package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/registry"
	"github.com/vovakirdan/match3/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the best simulated runs",
	Long: `Display the top 10 saved runs for a variant. Without an argument the
--variant flag is used, or "custom" for runs played on the config as loaded.

Examples:
  match3 scores classic
  match3 scores mini --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved runs for the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	variant := flagVariant
	if len(args) == 1 {
		variant = args[0]
	}
	if variant == "" {
		variant = customVariant
	}

	title := "Custom board"
	if variant != customVariant {
		v, err := registry.Create(variant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
			fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available variants.")
			os.Exit(1)
		}
		title = v.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return
	}

	runs, err := store.TopRuns(variant, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'match3 simulate --variant %s --save' to record one.\n", variant)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-8s  %-20s  %s\n", "Rank", "Score", "Swaps", "Chain", "Strategy", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-8s  %-20s  %s\n", "----", "-----", "-----", "-----", "--------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-5d  %-8s  %-20d  %s\n",
			i+1, r.Score, r.Swaps, r.BestChain, r.Strategy, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(variant)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Longest chain: %d\n",
			stats.RunsCount, stats.BestScore, stats.AvgScore, stats.BestChain)
	}
}
