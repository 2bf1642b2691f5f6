package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/planetmatch/internal/config"
	"github.com/vovakirdan/planetmatch/internal/games/planets"
	"github.com/vovakirdan/planetmatch/internal/games/planets/engine"
	"github.com/vovakirdan/planetmatch/internal/games/planets/levels"
	"github.com/vovakirdan/planetmatch/internal/games/planets/sim"
	"github.com/vovakirdan/planetmatch/internal/storage"
)

var (
	flagSimLevel   string
	flagSimGames   int
	flagSimWorkers int
	flagSimSave    bool
	flagSimDiff    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play levels headlessly with a greedy bot",
	Long: `Play many seeded games with a bot that always takes the swap clearing
the most planets, and report the win rate and score spread. Use it to check
that level targets are reachable.

--level takes a campaign number or a level id; without it every level is
simulated. Seeds start at --seed (or 1).

Examples:
  planetmatch simulate --games 200
  planetmatch simulate --level 3 --games 1000 --workers 8
  planetmatch simulate --level custom-asteroid --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimLevel, "level", "", "Level number (1-based) or id; empty simulates the whole campaign")
	simulateCmd.Flags().IntVar(&flagSimGames, "games", 100, "Games per level")
	simulateCmd.Flags().IntVar(&flagSimWorkers, "workers", 0, "Concurrent games (0 = GOMAXPROCS)")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store each game as a level result")
	simulateCmd.Flags().StringVar(&flagSimDiff, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(flagSimDiff)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	campaign, err := loadCampaign(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	indexes, err := selectLevels(campaign, flagSimLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if flagSimSave {
		if store = openStore(logger); store != nil {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	session := uuid.NewString()

	fmt.Printf("  %-20s  %-6s  %-7s  %-10s  %-10s  %s\n", "Level", "Games", "Won", "Mean", "Target", "Reshuffles")
	for _, i := range indexes {
		lvl := campaign[i]
		p := lvl.Params(difficulty.TypeCount(cfg.Engine.TypeCount, i))
		p.Moves = difficulty.Moves(lvl.Moves, i)
		p.TargetScore = difficulty.Target(lvl.TargetScore, i)

		layout, err := lvl.Board()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		start := time.Now()
		rep, err := sim.Run(ctx, sim.Job{
			Params: p,
			Layout: layout,
			Options: engine.Options{
				TypeCount:         cfg.Engine.TypeCount,
				PointsPerToken:    cfg.Engine.PointsPerToken,
				ReshuffleAttempts: cfg.Engine.ReshuffleAttempts,
				Logger:            logger,
			},
			Games:   flagSimGames,
			Workers: flagSimWorkers,
			Seed:    seed,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error simulating %s: %v\n", lvl.ID, err)
			os.Exit(1)
		}
		logger.Debug("level simulated", "level", lvl.ID, "games", len(rep.Results), "took", time.Since(start))

		fmt.Printf("  %-20s  %-6s  %-7s  %-10s  %-10s  %s\n",
			lvl.ID,
			humanize.Comma(int64(len(rep.Results))),
			fmt.Sprintf("%.1f%%", rep.WinRate()*100),
			humanize.CommafWithDigits(rep.MeanScore(), 1),
			humanize.Comma(int64(p.TargetScore)),
			humanize.Comma(int64(rep.Reshuffles)))

		if store != nil {
			saveSimResults(store, session, lvl.ID, p.TargetScore, rep, logger)
		}
	}
}

// selectLevels resolves --level to campaign indexes.
func selectLevels(campaign []levels.Level, sel string) ([]int, error) {
	if sel == "" {
		all := make([]int, len(campaign))
		for i := range campaign {
			all[i] = i
		}
		return all, nil
	}
	if n, err := strconv.Atoi(sel); err == nil {
		if n < 1 || n > len(campaign) {
			return nil, fmt.Errorf("level %d out of range 1-%d", n, len(campaign))
		}
		return []int{n - 1}, nil
	}
	for i, l := range campaign {
		if l.ID == sel {
			return []int{i}, nil
		}
	}
	return nil, fmt.Errorf("unknown level %q", sel)
}

func saveSimResults(store planets.ResultSaver, session, levelID string, target int, rep sim.Report, logger *log.Logger) {
	for _, r := range rep.Results {
		_, err := store.SaveLevelResult(storage.LevelResult{
			SessionID:   session,
			LevelID:     levelID,
			Score:       r.Score,
			TargetScore: target,
			MovesUsed:   r.Swaps,
			Won:         r.Won,
			Reshuffles:  r.Reshuffles,
		})
		if err != nil {
			logger.Warn("cannot save simulated result", "level", levelID, "err", err)
			return
		}
	}
}
