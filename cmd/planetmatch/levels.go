package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/planetmatch/internal/config"
	"github.com/vovakirdan/planetmatch/internal/games/planets/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `List the campaign in play order: the built-in levels plus any level
files found in levels_dir (default ~/.planetmatch/levels). A custom level
with the same id as a built-in one replaces it.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	campaign, err := loadCampaign(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	printLevels(campaign, cfg)
}

func printLevels(campaign []levels.Level, cfg config.PlanetsConfig) {
	difficulty := config.NewDifficultyManager(cfg.Difficulty)

	fmt.Println("Campaign:")
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %-22s  %-5s  %-5s  %-6s  %-5s  %s\n",
		"#", "ID", "Name", "Size", "Moves", "Target", "Types", "Source")

	for i, l := range campaign {
		types := l.TypeCount
		if types == 0 {
			types = difficulty.TypeCount(cfg.Engine.TypeCount, i)
		}
		source := "built-in"
		if l.FilePath != "" {
			source = l.FilePath
		}
		fmt.Printf("  %-3d  %-20s  %-22s  %-5s  %-5d  %-6d  %-5d  %s\n",
			i+1, l.ID, l.DisplayName(),
			fmt.Sprintf("%dx%d", l.Width, l.Height),
			difficulty.Moves(l.Moves, i), difficulty.Target(l.TargetScore, i),
			types, source)
	}

	fmt.Println()
	fmt.Printf("Custom levels: %s\n", cfg.LevelsDir)
}
