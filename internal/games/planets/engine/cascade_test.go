package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCollapsesAndRefills(t *testing.T) {
	b := parse(t,
		"523",
		"134",
		"145",
		"150",
		"402",
	)
	rec := &Recorder{}
	r := NewResolver(b, script(2, 3, 4), 6, DefaultPointsPerToken, nil, rec)

	res := r.Resolve(FindAllMatches(b))

	assert.Equal(t, CascadeResult{Chains: 1, Cleared: 3, Points: 30}, res)
	assert.Equal(t, MustParseBoard("423", "334", "245", "550", "402").String(), b.String())
	assert.Equal(t, []EventKind{EventMatched, EventCollapsed, EventRefilled}, rec.Kinds())

	matched := rec.Events[0]
	assert.Equal(t, 1, matched.Chain)
	assert.Equal(t, []Coord{C(0, 1), C(0, 2), C(0, 3)}, matched.Cells)

	assert.Equal(t, []Fall{{From: C(0, 4), To: C(0, 1)}}, rec.Events[1].Falls)
	assert.Equal(t, []CellChange{
		{At: C(0, 2), Type: 2},
		{At: C(0, 3), Type: 3},
		{At: C(0, 4), Type: 4},
	}, rec.Events[2].Changes)
}

func TestResolveWholeColumn(t *testing.T) {
	b := parse(t,
		"10",
		"12",
		"10",
	)
	rec := &Recorder{}
	r := NewResolver(b, script(0, 2, 0), 6, DefaultPointsPerToken, nil, rec)

	res := r.Resolve(FindAllMatches(b))

	assert.Equal(t, 1, res.Chains)
	assert.Equal(t, 30, res.Points)
	assert.Empty(t, rec.Events[1].Falls)
	assert.Equal(t, MustParseBoard("00", "22", "00").String(), b.String())
}

func TestResolveNoMatchesIsNoop(t *testing.T) {
	b := parse(t, deadlocked3x3...)
	before := b.Clone()
	rec := &Recorder{}

	res := NewResolver(b, NewSource(1), 3, DefaultPointsPerToken, nil, rec).Resolve(FindAllMatches(b))

	assert.Zero(t, res)
	assert.Empty(t, rec.Events)
	assert.True(t, before.Equal(b))
}

func TestResolveScoresThroughGameState(t *testing.T) {
	b := parse(t,
		"523",
		"134",
		"145",
		"150",
		"402",
	)
	rec := &Recorder{}
	state := NewGameState(5, 1000, rec)
	r := NewResolver(b, script(2, 3, 4), 6, DefaultPointsPerToken, state, rec)

	r.Resolve(FindAllMatches(b))

	assert.Equal(t, 30, state.Score())
	assert.Equal(t, StatusPlaying, state.Status())
	assert.Equal(t, []EventKind{EventMatched, EventScoreChanged, EventCollapsed, EventRefilled}, rec.Kinds())
	assert.Equal(t, 30, rec.Events[1].Delta)
}

func TestResolveAlwaysSettles(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		rng := NewSource(seed)
		b := NewBoard(6, 7)
		for x := 0; x < 6; x++ {
			for y := 0; y < 7; y++ {
				b.SetToken(C(x, y), rng.Intn(4))
			}
		}
		counts := map[int]int{}
		for _, tok := range b.Tokens() {
			counts[tok]++
		}

		initial := FindAllMatches(b)
		res := NewResolver(b, rng, 4, DefaultPointsPerToken, nil, nil).Resolve(initial)

		require.Zero(t, FindAllMatches(b).Len(), "seed %d left matches\n%s", seed, b)
		require.Zero(t, b.EmptyCount(), "seed %d left holes", seed)
		assert.Equal(t, res.Cleared*DefaultPointsPerToken, res.Points)
		if initial.Len() == 0 {
			assert.Zero(t, res.Chains)
		} else {
			assert.GreaterOrEqual(t, res.Cleared, initial.Len())
		}
	}
}
