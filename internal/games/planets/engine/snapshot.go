package engine

// Snapshot captures the complete engine state for determinism testing
// and replay.
type Snapshot struct {
	Width       int
	Height      int
	Tokens      []int // column-major
	Score       int
	MovesLeft   int
	TargetScore int
	Status      Status
	Swaps       int // committed swaps
	Reshuffles  int
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	if e.board == nil {
		return Snapshot{}
	}
	return Snapshot{
		Width:       e.board.width,
		Height:      e.board.height,
		Tokens:      e.board.Tokens(),
		Score:       e.state.Score(),
		MovesLeft:   e.state.MovesLeft(),
		TargetScore: e.state.TargetScore(),
		Status:      e.state.Status(),
		Swaps:       e.swaps,
		Reshuffles:  e.reshuffles,
	}
}
