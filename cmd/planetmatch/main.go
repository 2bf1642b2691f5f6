// planetmatch is a planet-themed match-three game for the terminal.
//
// Usage:
//
//	planetmatch play              - Pick a level and play
//	planetmatch play --level 3    - Start the campaign at level 3
//	planetmatch levels            - List the campaign
//	planetmatch scores [level]    - Show stored scores
//	planetmatch simulate          - Play levels headlessly with a bot
//
// Global flags:
//
//	--seed <value>      - RNG seed for reproducible boards
//	--db <path>         - Score database (default: ~/.planetmatch/scores.db)
//	--config <path>     - Custom planets.yaml
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Log destination
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planetmatch",
	Short: "Planet Match - swap planets, line up three, clear the system",
	Long: `Planet Match is a match-three puzzle for the terminal.

Swap two neighbouring planets to line up three or more of a kind. Matched
planets vanish, the ones above fall, and new planets drop in from the top.
Reach the target score before you run out of moves.

Available commands:
  play      - Play the campaign
  levels    - List campaign levels
  scores    - View stored scores
  simulate  - Benchmark levels with a greedy bot

Examples:
  planetmatch play
  planetmatch play --level 4 --difficulty hard
  planetmatch scores 01-first-orbit
  planetmatch simulate --level 2 --games 500`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.planetmatch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom planets.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: stderr, or ~/.planetmatch/planetmatch.log while playing)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
