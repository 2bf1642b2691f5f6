// Package planets adapts the planet-match engine to the terminal runner:
// cursor and click input, a paced replay of engine events, the level
// campaign, and result recording.
package planets

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/planetmatch/internal/config"
	"github.com/vovakirdan/planetmatch/internal/core"
	"github.com/vovakirdan/planetmatch/internal/games/planets/engine"
	"github.com/vovakirdan/planetmatch/internal/games/planets/levels"
	"github.com/vovakirdan/planetmatch/internal/storage"
)

// GameID is the key run totals are stored under.
const GameID = "planets"

// ResultSaver persists finished level attempts. *storage.Store satisfies it.
type ResultSaver interface {
	SaveLevelResult(r storage.LevelResult) (int64, error)
}

// Settings wire a game to its tuning, levels and collaborators.
type Settings struct {
	Config   config.PlanetsConfig
	Campaign []levels.Level
	Store    ResultSaver
	Logger   *log.Logger
}

// Phase is where a run is in the campaign.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelCleared
	PhaseGameOver
	PhaseComplete
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelCleared:
		return "level_cleared"
	case PhaseGameOver:
		return "game_over"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Game is one campaign run.
type Game struct {
	settings   Settings
	difficulty *config.DifficultyManager
	logger     *log.Logger

	sessionID string
	seed      int64
	tick      uint64

	levelIndex int
	level      levels.Level
	eng        *engine.Engine
	runScore   int // banked from finished levels
	banked     bool

	pacer   pacer
	display *engine.Board
	shown   hud
	cursor  engine.Coord
	hint    *engine.Swap

	message      string
	messageTicks int

	phase      Phase
	phaseTicks int
	paused     bool
	screenW    int
	screenH    int
	tooSmall   bool
}

// hud holds the values shown above the board, which lag the engine while
// events are replayed.
type hud struct {
	score     int
	movesLeft int
}

// New creates a game. Missing settings fall back to the embedded config
// and the built-in campaign.
func New(s Settings) *Game {
	if s.Config == (config.PlanetsConfig{}) {
		s.Config = config.DefaultPlanetsConfig()
	}
	if len(s.Campaign) == 0 {
		s.Campaign = levels.Builtin()
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	return &Game{
		settings:   s,
		difficulty: config.NewDifficultyManager(s.Config.Difficulty),
		logger:     s.Logger,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// SessionID identifies the current run in stored results and logs.
func (g *Game) SessionID() string {
	return g.sessionID
}

// Reset starts a new run at cfg.StartLevel.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.sessionID = uuid.NewString()
	g.logger = g.settings.Logger.With("session", g.sessionID[:8])
	g.seed = cfg.Seed
	g.tick = 0
	g.runScore = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	start := core.Clamp(cfg.StartLevel, 0, len(g.settings.Campaign)-1)
	g.loadLevel(start)
	g.checkScreenSize()
}

// levelSeed derives a distinct, reproducible seed per level.
func (g *Game) levelSeed(index int) int64 {
	return g.seed + int64(index)*1_000_003
}

// LevelParams returns the engine parameters for a campaign level after
// difficulty scaling.
func (g *Game) LevelParams(index int) engine.Params {
	lvl := g.settings.Campaign[index]
	eng := g.settings.Config.Engine

	p := lvl.Params(g.difficulty.TypeCount(eng.TypeCount, index))
	p.Moves = g.difficulty.Moves(lvl.Moves, index)
	p.TargetScore = g.difficulty.Target(lvl.TargetScore, index)
	return p
}

func (g *Game) loadLevel(index int) {
	g.levelIndex = index
	g.level = g.settings.Campaign[index]
	g.pacer.reset()
	g.hint = nil
	g.message = ""
	g.messageTicks = 0
	g.banked = false
	g.phase = PhasePlaying
	g.phaseTicks = 0

	ec := g.settings.Config.Engine
	g.eng = engine.New(engine.Options{
		TypeCount:         ec.TypeCount,
		PointsPerToken:    ec.PointsPerToken,
		ReshuffleAttempts: ec.ReshuffleAttempts,
		Logger:            g.logger,
	})

	p := g.LevelParams(index)
	err := g.initialize(p, g.levelSeed(index))
	if err != nil {
		g.logger.Error("cannot start level", "level", g.level.ID, "err", err)
		g.setMessage("Level failed to load", 0)
		g.phase = PhaseGameOver
		g.display = engine.NewBoard(1, 1)
		return
	}

	g.display = g.eng.Board()
	g.shown = hud{score: 0, movesLeft: p.Moves}
	g.cursor = engine.C(p.Width/2, p.Height/2)
	g.logger.Info("level started", "level", g.level.ID, "index", index,
		"moves", p.Moves, "target", p.TargetScore, "types", p.TypeCount)
}

func (g *Game) initialize(p engine.Params, seed int64) error {
	layout, err := g.level.Board()
	if err != nil {
		return err
	}
	if layout != nil {
		return g.eng.InitializeBoard(p, layout, seed)
	}
	return g.eng.InitializeLevel(p, seed)
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	// Input is locked while the board animates.
	if g.pacer.busy() {
		g.advancePacing()
		return core.StepResult{State: g.State(), Changed: true}
	}

	switch g.phase {
	case PhaseLevelCleared:
		g.phaseTicks--
		if g.phaseTicks <= 0 {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State(), Changed: true}
	case PhaseGameOver, PhaseComplete:
		return core.StepResult{State: g.State()}
	}

	changed := g.handleInput(in)
	return core.StepResult{State: g.State(), Changed: changed}
}

func (g *Game) handleInput(in core.InputFrame) bool {
	w, h := g.eng.Params().Width, g.eng.Params().Height
	moved := false

	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y = core.Clamp(g.cursor.Y+1, 0, h-1)
		moved = true
	case in.Has(core.ActionDown):
		g.cursor.Y = core.Clamp(g.cursor.Y-1, 0, h-1)
		moved = true
	case in.Has(core.ActionLeft):
		g.cursor.X = core.Clamp(g.cursor.X-1, 0, w-1)
		moved = true
	case in.Has(core.ActionRight):
		g.cursor.X = core.Clamp(g.cursor.X+1, 0, w-1)
		moved = true
	}

	if in.Click != nil {
		if c, ok := g.cellAt(in.Click.X, in.Click.Y); ok {
			g.cursor = c
			g.selectCursor()
			return true
		}
	}

	if in.Has(core.ActionSelect) {
		g.selectCursor()
		return true
	}

	if in.Has(core.ActionHint) {
		if s, ok := g.eng.Hint(); ok {
			g.hint = &s
		}
		return true
	}

	return moved
}

func (g *Game) selectCursor() {
	res := g.eng.Select(g.cursor)
	if res.Action != engine.SelectSwapped {
		return
	}

	swap := res.Swap
	switch swap.Outcome {
	case engine.OutcomeRejected:
		g.setMessage(rejectionText(swap.Err), g.settings.Config.Pacing.InvalidSwap*4)
	case engine.OutcomeNoMatch:
		g.setMessage("No match", g.settings.Config.Pacing.InvalidSwap*4)
	case engine.OutcomeCascade:
		g.hint = nil
		g.pacer.enqueue(swap.Events, g.settings.Config.Pacing)
		if swap.Cascade.Chains > 1 {
			g.setMessage(chainText(swap.Cascade.Chains), g.settings.Config.Pacing.LevelPause)
		}
	}
}

func rejectionText(err error) string {
	switch {
	case errors.Is(err, engine.ErrNotAdjacent):
		return "Pick a neighbouring planet"
	case errors.Is(err, engine.ErrGameOver):
		return "Level over"
	default:
		return "Wait for the board to settle"
	}
}

func (g *Game) setMessage(msg string, ticks int) {
	g.message = msg
	g.messageTicks = ticks
}

// advancePacing replays queued events and, once the queue drains,
// finishes the level if the engine reached a terminal status.
func (g *Game) advancePacing() {
	g.pacer.advance(g)
	if g.pacer.busy() {
		return
	}

	// The replayed board must have caught up with the engine.
	if b := g.eng.Board(); !g.display.Equal(b) {
		g.logger.Warn("display out of sync with engine, resyncing")
		g.display = b
	}
	st := g.eng.State()
	g.shown = hud{score: st.Score(), movesLeft: st.MovesLeft()}

	if st.IsTerminal() {
		g.finishLevel()
	}
}

func (g *Game) finishLevel() {
	st := g.eng.State()
	snap := g.eng.Snapshot()
	won := st.Status() == engine.StatusWon

	g.runScore += st.Score()
	g.banked = true
	g.record(storage.LevelResult{
		SessionID:   g.sessionID,
		LevelID:     g.level.ID,
		Score:       st.Score(),
		TargetScore: st.TargetScore(),
		MovesUsed:   snap.Swaps,
		Won:         won,
		Reshuffles:  snap.Reshuffles,
	})
	g.logger.Info("level finished", "level", g.level.ID, "status", st.Status(),
		"score", st.Score(), "run_score", g.runScore)

	if !won {
		g.phase = PhaseGameOver
		return
	}
	g.phase = PhaseLevelCleared
	g.phaseTicks = g.settings.Config.Pacing.LevelPause
}

func (g *Game) record(r storage.LevelResult) {
	if g.settings.Store == nil {
		return
	}
	if _, err := g.settings.Store.SaveLevelResult(r); err != nil {
		g.logger.Warn("cannot save level result", "level", r.LevelID, "err", err)
	}
}

func (g *Game) advanceLevel() {
	if g.levelIndex >= len(g.settings.Campaign)-1 {
		g.phase = PhaseComplete
		g.logger.Info("campaign complete", "run_score", g.runScore)
		return
	}
	g.loadLevel(g.levelIndex + 1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.runScore
	if !g.banked && g.eng != nil && g.eng.State() != nil {
		score += g.shown.score
	}
	return core.GameState{
		Score:    score,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseComplete,
		Paused:   g.paused || g.tooSmall || g.phase == PhaseLevelCleared,
		Busy:     g.pacer.busy(),
		Won:      g.phase == PhaseComplete,
	}
}

// Phase returns where the run is in the campaign.
func (g *Game) Phase() Phase {
	return g.phase
}

// Level returns the level being played and its campaign index.
func (g *Game) Level() (levels.Level, int) {
	return g.level, g.levelIndex
}
