package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneMoveEngine(t *testing.T, moves, target int, opts Options) *Engine {
	t.Helper()
	if opts.Source == nil {
		opts.Source = script(0, 1, 2)
	}
	e := New(opts)
	p := Params{Width: 8, Height: 8, Moves: moves, TargetScore: target, TypeCount: 6}
	require.NoError(t, e.InitializeBoard(p, parse(t, oneMove8x8...), 0))
	return e
}

func TestInitializeLevelBoards(t *testing.T) {
	sizes := []struct {
		w, h, types int
	}{
		{8, 8, 6},
		{6, 9, 4},
		{4, 4, 3},
		{10, 3, 5},
	}

	for _, sz := range sizes {
		for seed := int64(1); seed <= 50; seed++ {
			e := New(DefaultOptions())
			p := Params{Width: sz.w, Height: sz.h, Moves: 10, TargetScore: 500, TypeCount: sz.types}
			require.NoError(t, e.InitializeLevel(p, seed))

			b := e.Board()
			assert.Zero(t, FindAllMatches(b).Len(), "%dx%d seed %d\n%s", sz.w, sz.h, seed, b)
			assert.True(t, HasAnyLegalMove(b), "%dx%d seed %d\n%s", sz.w, sz.h, seed, b)
			assert.Zero(t, b.EmptyCount())
			for _, tok := range b.Tokens() {
				assert.Less(t, tok, sz.types)
			}

			s := e.State()
			assert.Equal(t, 0, s.Score())
			assert.Equal(t, 10, s.MovesLeft())
			assert.Equal(t, StatusPlaying, s.Status())
			assert.False(t, e.Processing())
		}
	}
}

func TestGenerateBoardHasNoMatches(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		b := generateBoard(7, 7, 3, NewSource(seed))
		assert.Zero(t, FindAllMatches(b).Len(), "seed %d\n%s", seed, b)
	}
}

func TestInitializeLevelInvalidParams(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"zero width", Params{Width: 0, Height: 8, Moves: 5, TargetScore: 100, TypeCount: 6}},
		{"negative height", Params{Width: 8, Height: -1, Moves: 5, TargetScore: 100, TypeCount: 6}},
		{"no moves", Params{Width: 8, Height: 8, Moves: 0, TargetScore: 100, TypeCount: 6}},
		{"negative target", Params{Width: 8, Height: 8, Moves: 5, TargetScore: -1, TypeCount: 6}},
		{"too few types", Params{Width: 8, Height: 8, Moves: 5, TargetScore: 100, TypeCount: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(DefaultOptions())
			err := e.InitializeLevel(tt.p, 1)
			assert.True(t, errors.Is(err, ErrInvalidParams), "got %v", err)
			assert.Nil(t, e.Board())
		})
	}
}

func TestInitializeLevelDefaultsTypeCount(t *testing.T) {
	e := New(Options{TypeCount: 4})
	require.NoError(t, e.InitializeLevel(Params{Width: 6, Height: 6, Moves: 3, TargetScore: 90}, 3))
	assert.Equal(t, 4, e.Params().TypeCount)
}

func TestInitializeBoardRejectsBadLayouts(t *testing.T) {
	p := Params{Width: 3, Height: 3, Moves: 5, TargetScore: 100, TypeCount: 3}

	tests := []struct {
		name  string
		board *Board
		p     Params
	}{
		{"nil", nil, p},
		{"wrong size", MustParseBoard("01", "10"), p},
		{"empty cell", MustParseBoard("012", "1.0", "201"), p},
		{"type out of range", MustParseBoard("012", "130", "201"), p},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(DefaultOptions()).InitializeBoard(tt.p, tt.board, 1)
			assert.True(t, errors.Is(err, ErrInvalidParams), "got %v", err)
		})
	}
}

func TestInitializeBoardResolvesDeadlock(t *testing.T) {
	e := New(DefaultOptions())
	p := Params{Width: 8, Height: 8, Moves: 5, TargetScore: 1000, TypeCount: 6}
	layout := parse(t, deadlocked8x8...)
	require.NoError(t, e.InitializeBoard(p, layout, 42))

	b := e.Board()
	assert.True(t, HasAnyLegalMove(b))
	assert.Zero(t, FindAllMatches(b).Len())

	snap := e.Snapshot()
	assert.GreaterOrEqual(t, snap.Reshuffles, 1)
	assert.Equal(t, 0, snap.Score, "opening cascades are not scored")
	assert.Equal(t, 5, snap.MovesLeft)
	assert.False(t, layout.Equal(b), "engine works on its own copy")
	assert.True(t, MustParseBoard(deadlocked8x8...).Equal(layout))
}

func TestRequestSwapWinOnLastMove(t *testing.T) {
	e := oneMoveEngine(t, 1, 30, Options{})

	res := e.RequestSwap(C(1, 0), C(1, 1))

	require.NoError(t, res.Err)
	assert.Equal(t, OutcomeCascade, res.Outcome)
	assert.Equal(t, CascadeResult{Chains: 1, Cleared: 3, Points: 30}, res.Cascade)
	assert.Equal(t, StatusWon, e.State().Status())
	assert.Equal(t, 30, e.State().Score())
	assert.Equal(t, 1, e.State().MovesLeft())

	var kinds []EventKind
	for _, ev := range res.Events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []EventKind{
		EventCellsChanged, EventMatched, EventScoreChanged, EventWon,
		EventCollapsed, EventRefilled,
	}, kinds)

	assert.Equal(t, []CellChange{{At: C(1, 0), Type: 1}, {At: C(1, 1), Type: 5}}, res.Events[0].Changes)
}

func TestRequestSwapCascadeSpendsOneMove(t *testing.T) {
	rec := &Recorder{}
	e := oneMoveEngine(t, 5, 1000, Options{Sink: rec})

	res := e.RequestSwap(C(1, 1), C(1, 0))

	require.Equal(t, OutcomeCascade, res.Outcome)
	assert.Equal(t, 4, e.State().MovesLeft())
	assert.Equal(t, 30, e.State().Score())
	assert.Equal(t, StatusPlaying, e.State().Status())
	assert.Zero(t, res.Reshuffles)

	want := MustParseBoard(
		"00124501",
		"41232345",
		"25010123",
		"03454501",
		"41232345",
		"25010123",
		"03454501",
		"45232345",
	)
	assert.Equal(t, want.String(), e.Board().String())

	assert.Equal(t, []EventKind{
		EventCellsChanged, EventMatched, EventScoreChanged,
		EventCollapsed, EventRefilled, EventMovesChanged,
	}, rec.Kinds())
	assert.Equal(t, rec.Events, res.Events)

	hint, ok := e.Hint()
	assert.True(t, ok)
	assert.Equal(t, Swap{A: C(3, 6), B: C(3, 7)}, hint)
}

func TestRequestSwapLosesOnLastMove(t *testing.T) {
	e := oneMoveEngine(t, 1, 1000, Options{})

	res := e.RequestSwap(C(1, 0), C(1, 1))

	assert.Equal(t, OutcomeCascade, res.Outcome)
	assert.Equal(t, StatusLost, e.State().Status())
	assert.Equal(t, 0, e.State().MovesLeft())
	assert.Equal(t, EventLost, res.Events[len(res.Events)-1].Kind)
}

func TestRequestSwapNoMatch(t *testing.T) {
	e := oneMoveEngine(t, 5, 1000, Options{})
	before := e.Board()

	res := e.RequestSwap(C(4, 4), C(5, 4))

	assert.Equal(t, OutcomeNoMatch, res.Outcome)
	assert.NoError(t, res.Err)
	assert.Empty(t, res.Events)
	assert.True(t, before.Equal(e.Board()))
	assert.Equal(t, 5, e.State().MovesLeft())
	assert.Equal(t, 0, e.Snapshot().Swaps)
}

func TestRequestSwapRejections(t *testing.T) {
	t.Run("not initialized", func(t *testing.T) {
		res := New(DefaultOptions()).RequestSwap(C(0, 0), C(1, 0))
		assert.Equal(t, OutcomeRejected, res.Outcome)
		assert.ErrorIs(t, res.Err, ErrNotInitialized)
	})

	t.Run("not adjacent", func(t *testing.T) {
		e := oneMoveEngine(t, 5, 1000, Options{})
		before := e.Board()
		for _, pair := range [][2]Coord{
			{C(0, 0), C(2, 0)},
			{C(1, 0), C(2, 1)},
			{C(3, 3), C(3, 3)},
		} {
			res := e.RequestSwap(pair[0], pair[1])
			assert.Equal(t, OutcomeRejected, res.Outcome)
			assert.ErrorIs(t, res.Err, ErrNotAdjacent)
		}
		assert.True(t, before.Equal(e.Board()))
		assert.Equal(t, 5, e.State().MovesLeft())
	})

	t.Run("game over", func(t *testing.T) {
		e := oneMoveEngine(t, 1, 30, Options{})
		require.Equal(t, OutcomeCascade, e.RequestSwap(C(1, 0), C(1, 1)).Outcome)

		hint, ok := e.Hint()
		require.True(t, ok)
		res := e.RequestSwap(hint.A, hint.B)
		assert.ErrorIs(t, res.Err, ErrGameOver)
		assert.Equal(t, 30, e.State().Score())
	})

	t.Run("busy", func(t *testing.T) {
		var e *Engine
		var reentrant []SwapResult
		sink := SinkFunc(func(ev Event) {
			if e != nil && e.Processing() && len(reentrant) == 0 {
				reentrant = append(reentrant, e.RequestSwap(C(0, 0), C(0, 1)))
			}
		})
		e = oneMoveEngine(t, 5, 1000, Options{Sink: sink})

		res := e.RequestSwap(C(1, 0), C(1, 1))

		assert.Equal(t, OutcomeCascade, res.Outcome)
		require.Len(t, reentrant, 1)
		assert.Equal(t, OutcomeRejected, reentrant[0].Outcome)
		assert.ErrorIs(t, reentrant[0].Err, ErrBusy)
		assert.False(t, e.Processing())
		assert.Equal(t, 4, e.State().MovesLeft())
	})
}

func TestRequestSwapOutOfRangePanics(t *testing.T) {
	e := oneMoveEngine(t, 5, 1000, Options{})
	assert.Panics(t, func() { e.RequestSwap(C(7, 0), C(8, 0)) })
	assert.Panics(t, func() { e.RequestSwap(C(0, -1), C(0, 0)) })
	assert.Panics(t, func() { e.Select(C(0, 8)) })
}

func TestSelectClickSemantics(t *testing.T) {
	e := oneMoveEngine(t, 5, 1000, Options{})

	r := e.Select(C(1, 0))
	assert.Equal(t, SelectSet, r.Action)
	sel, ok := e.Selected()
	assert.True(t, ok)
	assert.Equal(t, C(1, 0), sel)

	assert.Equal(t, SelectCleared, e.Select(C(1, 0)).Action)
	_, ok = e.Selected()
	assert.False(t, ok)

	e.Select(C(1, 0))
	r = e.Select(C(5, 5))
	assert.Equal(t, SelectMoved, r.Action)
	assert.Equal(t, C(5, 5), r.Selected)

	e.Select(C(1, 1))
	r = e.Select(C(1, 0))
	assert.Equal(t, SelectSwapped, r.Action)
	assert.Equal(t, OutcomeCascade, r.Swap.Outcome)
	_, ok = e.Selected()
	assert.False(t, ok)
	assert.Equal(t, 4, e.State().MovesLeft())

	e.Select(C(0, 0))
	e.ClearSelection()
	_, ok = e.Selected()
	assert.False(t, ok)
}

func TestSelectIgnoredWhenOver(t *testing.T) {
	assert.Equal(t, SelectIgnored, New(DefaultOptions()).Select(C(0, 0)).Action)

	e := oneMoveEngine(t, 1, 30, Options{})
	e.RequestSwap(C(1, 0), C(1, 1))
	assert.Equal(t, SelectIgnored, e.Select(C(0, 0)).Action)
}

func TestEngineIsDeterministic(t *testing.T) {
	play := func() []Snapshot {
		e := New(DefaultOptions())
		require.NoError(t, e.InitializeLevel(Params{Width: 7, Height: 9, Moves: 12, TargetScore: 100000, TypeCount: 5}, 2024))
		snaps := []Snapshot{e.Snapshot()}
		for i := 0; i < 12; i++ {
			hint, ok := e.Hint()
			if !ok {
				break
			}
			e.RequestSwap(hint.A, hint.B)
			snaps = append(snaps, e.Snapshot())
		}
		return snaps
	}

	first, second := play(), play()
	assert.Equal(t, first, second)
	last := first[len(first)-1]
	assert.Equal(t, StatusLost, last.Status)
	assert.Equal(t, 12, last.Swaps)
}

func TestPlayoutKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		e := New(DefaultOptions())
		require.NoError(t, e.InitializeLevel(Params{Width: 8, Height: 8, Moves: 20, TargetScore: 100000, TypeCount: 6}, seed))

		prevScore := 0
		for !e.State().IsTerminal() {
			moves := LegalMoves(e.Board())
			require.NotEmpty(t, moves, "seed %d", seed)
			m := moves[len(moves)/2]
			res := e.RequestSwap(m.A, m.B)
			require.Equal(t, OutcomeCascade, res.Outcome)

			b := e.Board()
			assert.Zero(t, FindAllMatches(b).Len())
			assert.Zero(t, b.EmptyCount())
			assert.GreaterOrEqual(t, e.State().Score(), prevScore+30)
			if res.Reshuffles == 0 {
				assert.Equal(t, prevScore+res.Cascade.Points, e.State().Score())
			}
			prevScore = e.State().Score()
		}
		assert.Equal(t, StatusLost, e.State().Status())
	}
}
