package engine

import "github.com/charmbracelet/log"

// DefaultReshuffleAttempts caps the permutations tried per reshuffle.
const DefaultReshuffleAttempts = 100

// ReshuffleResult describes one reshuffle.
type ReshuffleResult struct {
	Attempts int
	// Exhausted is set when no permutation within the cap had a legal
	// move; the last permutation is kept anyway.
	Exhausted bool
}

// Reshuffler re-places the tokens of a deadlocked board.
type Reshuffler struct {
	board       *Board
	rng         Source
	maxAttempts int
	sink        EventSink
	logger      *log.Logger
}

// NewReshuffler creates a reshuffler over board.
func NewReshuffler(board *Board, rng Source, maxAttempts int, sink EventSink) *Reshuffler {
	if maxAttempts <= 0 {
		maxAttempts = DefaultReshuffleAttempts
	}
	if sink == nil {
		sink = discard{}
	}
	return &Reshuffler{
		board:       board,
		rng:         rng,
		maxAttempts: maxAttempts,
		sink:        sink,
	}
}

// WithLogger sets the logger used for reshuffle diagnostics.
func (r *Reshuffler) WithLogger(l *log.Logger) *Reshuffler {
	r.logger = l
	return r
}

// Shuffle permutes the board's tokens until some swap yields a match or
// the attempt cap is reached. The multiset of tokens never changes, and
// matches the permutation happens to create are left for the caller.
func (r *Reshuffler) Shuffle() ReshuffleResult {
	tokens := r.board.Tokens()
	res := ReshuffleResult{Exhausted: true}

	for res.Attempts < r.maxAttempts {
		res.Attempts++
		shuffle(r.rng, tokens)
		r.place(tokens)
		if HasAnyLegalMove(r.board) {
			res.Exhausted = false
			break
		}
	}

	if r.logger != nil {
		if res.Exhausted {
			r.logger.Warn("reshuffle exhausted, keeping deadlocked board", "attempts", res.Attempts)
		} else {
			r.logger.Debug("board reshuffled", "attempts", res.Attempts)
		}
	}

	changes := make([]CellChange, 0, len(tokens))
	i := 0
	for x := 0; x < r.board.width; x++ {
		for y := 0; y < r.board.height; y++ {
			changes = append(changes, CellChange{At: C(x, y), Type: tokens[i]})
			i++
		}
	}
	r.sink.Emit(Event{
		Kind:      EventReshuffled,
		Changes:   changes,
		Attempts:  res.Attempts,
		Exhausted: res.Exhausted,
	})
	return res
}

// place writes tokens back in column-major order.
func (r *Reshuffler) place(tokens []int) {
	i := 0
	for x := 0; x < r.board.width; x++ {
		for y := 0; y < r.board.height; y++ {
			r.board.SetToken(C(x, y), tokens[i])
			i++
		}
	}
}
