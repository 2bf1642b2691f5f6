// Package engine is the planet-matching grid simulation: board setup,
// swap validation, match detection, cascades, deadlock detection and
// reshuffling, plus the move/score state that decides a level.
//
// The engine is synchronous. Every call runs to a settled board and
// reports what happened as a list of events; a presentation layer may
// replay them at its own pace.
package engine

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

var (
	// ErrInvalidParams is returned by InitializeLevel for unusable level
	// parameters.
	ErrInvalidParams = errors.New("engine: invalid level parameters")
	// ErrNotInitialized rejects swaps before a level is loaded.
	ErrNotInitialized = errors.New("engine: level not initialized")
	// ErrNotAdjacent rejects swaps between cells that do not share an edge.
	ErrNotAdjacent = errors.New("engine: cells are not adjacent")
	// ErrBusy rejects swaps while the board is settling.
	ErrBusy = errors.New("engine: board is settling")
	// ErrGameOver rejects swaps after the level is won or lost.
	ErrGameOver = errors.New("engine: level is over")
)

// MinTypeCount is the fewest token types that still allows a board
// without pre-existing matches.
const MinTypeCount = 3

// maxSettleRounds bounds reshuffle-then-cascade rounds after a deadlock.
const maxSettleRounds = 16

// Params are the inputs of one level.
type Params struct {
	Width       int
	Height      int
	Moves       int
	TargetScore int
	TypeCount   int
}

// Validate checks that the parameters describe a playable level.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.Moves <= 0:
		return fmt.Errorf("%w: moves %d", ErrInvalidParams, p.Moves)
	case p.TargetScore < 0:
		return fmt.Errorf("%w: target score %d", ErrInvalidParams, p.TargetScore)
	case p.TypeCount < MinTypeCount:
		return fmt.Errorf("%w: type count %d, need at least %d", ErrInvalidParams, p.TypeCount, MinTypeCount)
	}
	return nil
}

// Options tune the engine independently of any level.
type Options struct {
	TypeCount         int // used when Params.TypeCount is zero
	PointsPerToken    int
	ReshuffleAttempts int

	// Source overrides the seeded generator. Tests use it to script draws.
	Source Source
	// Sink receives every event as it happens, in addition to the
	// per-call list returned by RequestSwap.
	Sink   EventSink
	Logger *log.Logger
}

// DefaultOptions returns the reference tuning: six planet types,
// ten points per token and up to 100 reshuffle attempts.
func DefaultOptions() Options {
	return Options{
		TypeCount:         6,
		PointsPerToken:    DefaultPointsPerToken,
		ReshuffleAttempts: DefaultReshuffleAttempts,
	}
}

// Outcome classifies a swap request.
type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeNoMatch
	OutcomeCascade
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeNoMatch:
		return "no_match"
	case OutcomeCascade:
		return "cascade"
	default:
		return "unknown"
	}
}

// SwapResult is the answer to RequestSwap.
type SwapResult struct {
	Outcome Outcome
	// Err explains a rejection.
	Err        error
	Cascade    CascadeResult
	Reshuffles int
	Events     []Event
}

// Engine owns the board and game state of one level session.
type Engine struct {
	opts   Options
	params Params
	logger *log.Logger

	rng        Source
	board      *Board
	state      *GameState
	resolver   *Resolver
	reshuffler *Reshuffler

	processing bool
	selected   *Coord
	pending    []Event

	swaps      int
	reshuffles int
}

// New creates an engine. Zero-valued options fall back to DefaultOptions.
func New(opts Options) *Engine {
	def := DefaultOptions()
	if opts.TypeCount == 0 {
		opts.TypeCount = def.TypeCount
	}
	if opts.PointsPerToken == 0 {
		opts.PointsPerToken = def.PointsPerToken
	}
	if opts.ReshuffleAttempts == 0 {
		opts.ReshuffleAttempts = def.ReshuffleAttempts
	}
	return &Engine{opts: opts, logger: opts.Logger}
}

// emit records an event for the current call and forwards it.
func (e *Engine) emit(ev Event) {
	e.pending = append(e.pending, ev)
	if e.opts.Sink != nil {
		e.opts.Sink.Emit(ev)
	}
}

func (e *Engine) takeEvents() []Event {
	events := e.pending
	e.pending = nil
	return events
}

// InitializeLevel replaces the board and game state with a fresh level.
// The new board has no matches and, unless reshuffling is exhausted, at
// least one legal move.
func (e *Engine) InitializeLevel(p Params, seed int64) error {
	p, err := e.prepare(p)
	if err != nil {
		return err
	}
	rng := e.source(seed)
	e.load(p, generateBoard(p.Width, p.Height, p.TypeCount, rng), rng)

	if e.logger != nil {
		e.logger.Debug("level initialized",
			"width", p.Width, "height", p.Height,
			"moves", p.Moves, "target", p.TargetScore,
			"types", p.TypeCount, "seed", seed)
	}
	return nil
}

// InitializeBoard starts a level on a given layout instead of a generated
// one. Every cell must hold a token of a type below p.TypeCount. Matches
// already on the board are left for the first swap to clear; a
// deadlocked layout is reshuffled as usual.
func (e *Engine) InitializeBoard(p Params, b *Board, seed int64) error {
	p, err := e.prepare(p)
	if err != nil {
		return err
	}
	if b == nil || b.Width() != p.Width || b.Height() != p.Height {
		return fmt.Errorf("%w: board does not match %dx%d", ErrInvalidParams, p.Width, p.Height)
	}
	for i, c := range b.cells {
		t, ok := c.Type()
		if !ok || t < 0 || t >= p.TypeCount {
			return fmt.Errorf("%w: cell %v holds %v", ErrInvalidParams, C(i%b.width, i/b.width), c)
		}
	}
	e.load(p, b.Clone(), e.source(seed))

	if e.logger != nil {
		e.logger.Debug("level initialized from layout",
			"width", p.Width, "height", p.Height,
			"moves", p.Moves, "target", p.TargetScore, "types", p.TypeCount)
	}
	return nil
}

func (e *Engine) prepare(p Params) (Params, error) {
	if p.TypeCount == 0 {
		p.TypeCount = e.opts.TypeCount
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	if e.processing {
		return p, ErrBusy
	}
	return p, nil
}

func (e *Engine) source(seed int64) Source {
	if e.opts.Source != nil {
		return e.opts.Source
	}
	return NewSource(seed)
}

func (e *Engine) load(p Params, board *Board, rng Source) {
	e.params = p
	e.rng = rng
	e.board = board

	sink := SinkFunc(e.emit)
	e.state = NewGameState(p.Moves, p.TargetScore, sink)
	e.resolver = NewResolver(e.board, e.rng, p.TypeCount, e.opts.PointsPerToken, e.state, sink).WithLogger(e.logger)
	e.reshuffler = NewReshuffler(e.board, e.rng, e.opts.ReshuffleAttempts, sink).WithLogger(e.logger)
	e.selected = nil
	e.pending = nil
	e.swaps = 0
	e.reshuffles = 0

	// Points from a cascade caused by the opening reshuffle are not the
	// player's doing.
	opening := NewResolver(e.board, e.rng, p.TypeCount, e.opts.PointsPerToken, nil, sink).WithLogger(e.logger)
	e.processing = true
	e.settle(opening)
	e.processing = false
	e.pending = nil
}

// generateBoard fills a board column by column, never placing a token
// that would complete a run with the two cells to its left or below.
func generateBoard(width, height, typeCount int, rng Source) *Board {
	b := NewBoard(width, height)
	allowed := make([]int, 0, typeCount)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			allowed = allowed[:0]
			for t := 0; t < typeCount; t++ {
				if !completesRun(b, x, y, t) {
					allowed = append(allowed, t)
				}
			}
			b.SetToken(C(x, y), allowed[rng.Intn(len(allowed))])
		}
	}
	return b
}

func completesRun(b *Board, x, y, t int) bool {
	tok := Token(t)
	if x >= 2 && b.Get(C(x-1, y)).Same(tok) && b.Get(C(x-2, y)).Same(tok) {
		return true
	}
	if y >= 2 && b.Get(C(x, y-1)).Same(tok) && b.Get(C(x, y-2)).Same(tok) {
		return true
	}
	return false
}

// settle reshuffles a deadlocked board and clears whatever matches the
// reshuffle created, repeating while the result is still deadlocked.
func (e *Engine) settle(resolver *Resolver) int {
	rounds := 0
	for rounds < maxSettleRounds {
		if e.state.IsTerminal() || HasAnyLegalMove(e.board) {
			break
		}
		rounds++
		res := e.reshuffler.Shuffle()
		if matches := FindAllMatches(e.board); matches.Len() > 0 {
			resolver.Resolve(matches)
		}
		if res.Exhausted {
			break
		}
	}
	e.reshuffles += rounds
	return rounds
}

// RequestSwap is the player's move. A rejected or non-matching swap
// leaves the board untouched and costs nothing. A matching swap commits,
// cascades to a settled board, spends exactly one move and reshuffles
// if no legal move remains.
//
// Panics if either coordinate is outside the board.
func (e *Engine) RequestSwap(a, b Coord) SwapResult {
	if e.board == nil {
		return SwapResult{Outcome: OutcomeRejected, Err: ErrNotInitialized}
	}
	e.mustInBounds(a)
	e.mustInBounds(b)

	switch {
	case e.processing:
		return SwapResult{Outcome: OutcomeRejected, Err: ErrBusy}
	case e.state.IsTerminal():
		return SwapResult{Outcome: OutcomeRejected, Err: ErrGameOver}
	case !AreAdjacent(a, b):
		return SwapResult{Outcome: OutcomeRejected, Err: ErrNotAdjacent}
	}

	e.processing = true
	defer func() { e.processing = false }()
	e.selected = nil

	if !WouldMatch(e.board, a, b) {
		return SwapResult{Outcome: OutcomeNoMatch}
	}

	e.board.swap(a, b)
	ta, _ := e.board.Get(a).Type()
	tb, _ := e.board.Get(b).Type()
	e.emit(Event{Kind: EventCellsChanged, Changes: []CellChange{{At: a, Type: ta}, {At: b, Type: tb}}})
	e.swaps++

	cascade := e.resolver.Resolve(FindAllMatches(e.board))
	// Score is applied before the move is spent so that reaching the
	// target on the last move wins.
	e.state.DecreaseMove()
	reshuffles := e.settle(e.resolver)

	if e.logger != nil {
		e.logger.Debug("swap resolved",
			"swap", Swap{A: a, B: b}, "chains", cascade.Chains,
			"points", cascade.Points, "score", e.state.Score(),
			"moves_left", e.state.MovesLeft(), "status", e.state.Status())
	}

	return SwapResult{
		Outcome:    OutcomeCascade,
		Cascade:    cascade,
		Reshuffles: reshuffles,
		Events:     e.takeEvents(),
	}
}

func (e *Engine) mustInBounds(c Coord) {
	if !e.board.InBounds(c) {
		panic(fmt.Sprintf("engine: coordinate %v outside %dx%d board", c, e.board.width, e.board.height))
	}
}

// Processing reports whether the board is settling. Swaps are rejected
// while it is true; it is only observable from event sinks.
func (e *Engine) Processing() bool {
	return e.processing
}

// Params returns the parameters of the current level.
func (e *Engine) Params() Params {
	return e.params
}

// Board returns a copy of the current board, or nil before a level is
// initialized.
func (e *Engine) Board() *Board {
	if e.board == nil {
		return nil
	}
	return e.board.Clone()
}

// State returns the live game state. Callers must treat it as read-only.
func (e *Engine) State() *GameState {
	return e.state
}

// Hint returns a legal swap if one exists.
func (e *Engine) Hint() (Swap, bool) {
	if e.board == nil || e.processing {
		return Swap{}, false
	}
	return FindLegalMove(e.board)
}
