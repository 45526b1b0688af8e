// match3 inspects and simulates match-3 boards from the command line.
//
// Usage:
//
//	match3 list                          - List board variants
//	match3 moves                         - Show the board and its legal swaps
//	match3 swap <ax> <ay> <bx> <by>      - Attempt one swap and print the cascade
//	match3 simulate                      - Let the autoplayer run a game
//	match3 scores [variant]              - Show the best simulated runs
//
// Global flags:
//
//	--seed <value>      - RNG seed (0 = random based on time)
//	--config <path>     - Custom config YAML
//	--variant <id>      - Board variant applied on top of the config
//	--db <path>         - Database path (default: ~/.match3/runs.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/match3/internal/variants"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagVariant  string
	flagDBPath   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "match3 - Inspect and simulate match-3 boards",
	Long: `match3 runs the tile-matching rules engine from the terminal:
build a board from a seed, try swaps, watch cascades resolve and let
the autoplayer play whole games.

Available commands:
  list      - Show all board variants
  moves     - Show the board and its legal swaps
  swap      - Attempt a swap and print the cascade trace
  simulate  - Play a game with the autoplayer
  scores    - View the best simulated runs

Examples:
  match3 list
  match3 moves --variant mini --seed 7
  match3 swap 2 0 3 0 --seed 7
  match3 simulate --variant classic --swaps 50 --save
  match3 scores classic`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "match3",
			Level:           level,
		})
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "", "Board variant (see 'match3 list'); empty uses the config as loaded")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(movesCmd)
	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
}
