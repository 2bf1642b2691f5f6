package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameStateWinsOnTarget(t *testing.T) {
	rec := &Recorder{}
	s := NewGameState(3, 50, rec)

	s.AddScore(30)
	assert.Equal(t, StatusPlaying, s.Status())
	s.AddScore(30)

	assert.Equal(t, StatusWon, s.Status())
	assert.Equal(t, 60, s.Score())
	assert.Equal(t, 3, s.MovesLeft())
	assert.Equal(t, []EventKind{EventScoreChanged, EventScoreChanged, EventWon}, rec.Kinds())
}

func TestGameStateLosesWhenOutOfMoves(t *testing.T) {
	rec := &Recorder{}
	s := NewGameState(2, 100, rec)

	s.AddScore(40)
	s.DecreaseMove()
	assert.False(t, s.IsTerminal())
	s.DecreaseMove()

	assert.Equal(t, StatusLost, s.Status())
	assert.Equal(t, 0, s.MovesLeft())
	assert.Equal(t, EventLost, rec.Events[len(rec.Events)-1].Kind)
}

func TestGameStateTerminalIsFrozen(t *testing.T) {
	tests := []struct {
		name   string
		drive  func(*GameState)
		status Status
	}{
		{"won", func(s *GameState) { s.AddScore(10) }, StatusWon},
		{"lost", func(s *GameState) { s.DecreaseMove() }, StatusLost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}
			s := NewGameState(1, 10, rec)
			tt.drive(s)
			assert.Equal(t, tt.status, s.Status())

			score, moves := s.Score(), s.MovesLeft()
			n := len(rec.Events)

			s.AddScore(100)
			s.DecreaseMove()

			assert.Equal(t, tt.status, s.Status())
			assert.Equal(t, score, s.Score())
			assert.Equal(t, moves, s.MovesLeft())
			assert.Len(t, rec.Events, n)
		})
	}
}

// Scoring the target on the final move wins because score lands
// before the move is spent.
func TestGameStateWinBeatsLastMove(t *testing.T) {
	s := NewGameState(1, 30, nil)
	s.AddScore(30)
	s.DecreaseMove()

	assert.Equal(t, StatusWon, s.Status())
	assert.Equal(t, 1, s.MovesLeft())
}

func TestGameStateIgnoresNonPositiveScore(t *testing.T) {
	rec := &Recorder{}
	s := NewGameState(3, 0, rec)

	s.AddScore(0)
	s.AddScore(-5)

	assert.Equal(t, 0, s.Score())
	assert.Equal(t, StatusPlaying, s.Status())
	assert.Empty(t, rec.Events)
}

func TestGameStateZeroMovesLoseOnFirstDecrease(t *testing.T) {
	s := NewGameState(0, 10, nil)
	s.DecreaseMove()
	assert.Equal(t, 0, s.MovesLeft())
	assert.Equal(t, StatusLost, s.Status())
}
