package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/planetmatch/internal/core"
	"github.com/vovakirdan/planetmatch/internal/games/planets"
	"github.com/vovakirdan/planetmatch/internal/platform/tui"
	"github.com/vovakirdan/planetmatch/internal/storage"
)

var (
	flagLevel      int
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Play the Planet Match campaign.

Without --level a level picker opens first; after a run ends, Esc returns
to it.

Controls:
  Arrows/WASD/hjkl  - Move cursor
  Space/Enter       - Select a planet, then a neighbour to swap
  Mouse click       - Select / swap
  ?                 - Hint
  P/Esc             - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5 planet types, no move reduction
  normal - 6 planet types, campaign ramps up
  hard   - 7 planet types, fewer moves and higher targets later on
  fixed  - no ramp, levels play exactly as defined

Examples:
  planetmatch play
  planetmatch play --level 3
  planetmatch play --difficulty easy
  planetmatch play --config ./my-planets.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this campaign level (1-based); 0 opens the level picker")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	campaign, err := loadCampaign(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	if flagLevel < 0 || flagLevel > len(campaign) {
		fmt.Fprintf(os.Stderr, "Error: level %d out of range 1-%d\n", flagLevel, len(campaign))
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed

	settings := planets.Settings{Config: cfg, Campaign: campaign, Logger: logger}
	if store != nil {
		settings.Store = store
	}

	if flagLevel > 0 {
		rc.StartLevel = flagLevel - 1
		if _, err := playOnce(rc, settings, store, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := menuLoop(rc, settings, store, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// menuLoop alternates between the level picker, the scoreboard and play
// until the player quits.
func menuLoop(rc core.RuntimeConfig, settings planets.Settings, store *storage.Store, logger *log.Logger) error {
	campaign := settings.Campaign
	var (
		scorer tui.BestScorer
		reader tui.ScoreReader
	)
	if store != nil {
		scorer, reader = store, store
	}

	for {
		menu, err := tui.RunMenu(campaign, scorer, rc)
		if err != nil {
			return err
		}
		rc = menu.Config

		switch {
		case menu.Quit:
			return nil

		case menu.WantsScoreboard:
			goBack, err := tui.RunScoreboard(reader, campaign, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			rc.StartLevel = menu.StartLevel
			res, err := playOnce(rc, settings, store, logger)
			if err != nil {
				return err
			}
			if !res.Back {
				return nil
			}
		}
	}
}

func playOnce(rc core.RuntimeConfig, settings planets.Settings, store *storage.Store, logger *log.Logger) (tui.Result, error) {
	game := planets.New(settings)

	var saver tui.ScoreSaver
	if store != nil {
		saver = store
	}

	logger.Info("starting game", "level", rc.StartLevel+1, "seed", rc.Seed)
	res, err := tui.Run(game, saver, rc)
	if err != nil {
		return res, err
	}
	logger.Info("game ended", "score", res.Score)
	return res, nil
}
