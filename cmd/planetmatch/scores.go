package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/planetmatch/internal/games/planets"
	"github.com/vovakirdan/planetmatch/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level-id]",
	Short: "Show stored scores",
	Long: `Without arguments, show the best campaign runs and a per-level summary.
With a level id, show recent attempts at that level.

Examples:
  planetmatch scores
  planetmatch scores 01-first-orbit`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		err = printLevelScores(store, args[0])
	} else {
		err = printOverview(store)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printOverview(store *storage.Store) error {
	scores, err := store.TopScores(planets.GameID, 10)
	if err != nil {
		return err
	}

	fmt.Println("Best runs")
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("  No runs recorded yet. Play 'planetmatch play' to set one!")
	} else {
		fmt.Printf("  %-5s  %-10s  %s\n", "Rank", "Score", "When")
		fmt.Printf("  %-5s  %-10s  %s\n", "----", "-----", "----")
		for i, e := range scores {
			fmt.Printf("  %-5s  %-10s  %s\n",
				humanize.Ordinal(i+1), humanize.Comma(int64(e.Score)), humanize.Time(e.CreatedAt))
		}
	}

	stats, err := store.GetGameStats(planets.GameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %s  Best: %s  Average: %s\n",
			humanize.Comma(int64(stats.GamesCount)),
			humanize.Comma(int64(stats.HighScore)),
			humanize.CommafWithDigits(stats.AvgScore, 1))
	}

	sums, err := store.LevelSummaries()
	if err != nil {
		return err
	}
	if len(sums) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Levels")
	fmt.Println()
	fmt.Printf("  %-20s  %-7s  %-6s  %-8s  %s\n", "Level", "Played", "Won", "Best", "Last played")
	for _, s := range sums {
		fmt.Printf("  %-20s  %-7s  %-6s  %-8s  %s\n",
			s.LevelID,
			humanize.Comma(int64(s.Attempts)),
			fmt.Sprintf("%.0f%%", s.WinRate()*100),
			humanize.Comma(int64(s.BestScore)),
			humanize.Time(s.LastPlayed))
	}
	return nil
}

func printLevelScores(store *storage.Store, levelID string) error {
	results, err := store.LevelResults(levelID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Recent attempts - %s\n", levelID)
	fmt.Println()
	if len(results) == 0 {
		fmt.Println("  No attempts recorded for this level.")
		return nil
	}

	fmt.Printf("  %-14s  %-6s  %-6s  %-10s  %s\n", "Score", "Moves", "Result", "Reshuffles", "When")
	for _, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %-14s  %-6d  %-6s  %-10d  %s\n",
			fmt.Sprintf("%s/%s", humanize.Comma(int64(r.Score)), humanize.Comma(int64(r.TargetScore))),
			r.MovesUsed, outcome, r.Reshuffles, humanize.Time(r.CreatedAt))
	}

	if best, err := store.BestLevelScore(levelID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %s\n", humanize.Comma(int64(best)))
	}
	return nil
}
