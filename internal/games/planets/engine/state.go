package engine

// Status is the lifecycle of a level.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Scorer receives score awarded by a cascade.
type Scorer interface {
	AddScore(amount int)
}

// GameState tracks moves, score and the win/loss outcome of one level.
// Once the level is won or lost every mutation is a no-op.
type GameState struct {
	movesLeft   int
	score       int
	targetScore int
	status      Status
	sink        EventSink
}

// NewGameState creates a state for a level with the given move budget
// and target. A nil sink discards events.
func NewGameState(moves, targetScore int, sink EventSink) *GameState {
	if sink == nil {
		sink = discard{}
	}
	return &GameState{
		movesLeft:   moves,
		targetScore: targetScore,
		status:      StatusPlaying,
		sink:        sink,
	}
}

// MovesLeft returns the remaining move budget.
func (s *GameState) MovesLeft() int {
	return s.movesLeft
}

// Score returns the current score.
func (s *GameState) Score() int {
	return s.score
}

// TargetScore returns the score needed to win.
func (s *GameState) TargetScore() int {
	return s.targetScore
}

// Status returns the current lifecycle status.
func (s *GameState) Status() Status {
	return s.status
}

// IsTerminal reports whether the level is won or lost.
func (s *GameState) IsTerminal() bool {
	return s.status != StatusPlaying
}

// AddScore adds amount to the score and wins the level as soon as the
// target is reached, regardless of moves left.
func (s *GameState) AddScore(amount int) {
	if s.IsTerminal() || amount <= 0 {
		return
	}
	s.score += amount
	s.sink.Emit(Event{Kind: EventScoreChanged, Score: s.score, Delta: amount})

	if s.score >= s.targetScore {
		s.status = StatusWon
		s.sink.Emit(Event{Kind: EventWon, Score: s.score})
	}
}

// DecreaseMove spends one move. Running out of moves below the target
// loses the level.
func (s *GameState) DecreaseMove() {
	if s.IsTerminal() {
		return
	}
	if s.movesLeft > 0 {
		s.movesLeft--
	}
	s.sink.Emit(Event{Kind: EventMovesChanged, MovesLeft: s.movesLeft})

	if s.movesLeft <= 0 && s.score < s.targetScore {
		s.status = StatusLost
		s.sink.Emit(Event{Kind: EventLost, Score: s.score})
	}
}
