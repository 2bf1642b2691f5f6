package planets

// Snapshot captures the run state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int // 1-indexed for display
	LevelID   string
	Phase     Phase
	Score     int // shown score of the current level
	RunScore  int
	MovesLeft int
	Target    int
	Board     []int // displayed tokens, column-major
	Busy      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Level:     g.levelIndex + 1,
		LevelID:   g.level.ID,
		Phase:     g.phase,
		Score:     g.shown.score,
		RunScore:  g.runScore,
		MovesLeft: g.shown.movesLeft,
		Busy:      g.pacer.busy(),
	}
	if st := g.eng.State(); st != nil {
		s.Target = st.TargetScore()
	}
	if g.display != nil {
		s.Board = g.display.Tokens()
	}
	return s
}
