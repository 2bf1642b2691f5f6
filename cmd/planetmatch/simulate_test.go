package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/planetmatch/internal/games/planets/levels"
	"github.com/vovakirdan/planetmatch/internal/games/planets/sim"
	"github.com/vovakirdan/planetmatch/internal/storage"
)

func TestSelectLevels(t *testing.T) {
	campaign := levels.Builtin()

	all, err := selectLevels(campaign, "")
	require.NoError(t, err)
	assert.Len(t, all, len(campaign))

	one, err := selectLevels(campaign, "3")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, one)

	byID, err := selectLevels(campaign, campaign[1].ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, byID)

	_, err = selectLevels(campaign, "0")
	assert.Error(t, err)
	_, err = selectLevels(campaign, "nope")
	assert.Error(t, err)
}

type recordingSaver struct {
	results []storage.LevelResult
}

func (r *recordingSaver) SaveLevelResult(lr storage.LevelResult) (int64, error) {
	r.results = append(r.results, lr)
	return int64(len(r.results)), nil
}

func TestSaveSimResults(t *testing.T) {
	saver := &recordingSaver{}
	rep := sim.Report{Results: []sim.Result{
		{Seed: 1, Score: 200, Won: true, Swaps: 4},
		{Seed: 2, Score: 90, Swaps: 5, Reshuffles: 1},
	}}

	saveSimResults(saver, "session", "lvl", 160, rep, log.New(io.Discard))

	require.Len(t, saver.results, 2)
	assert.True(t, saver.results[0].Won)
	assert.Equal(t, 160, saver.results[1].TargetScore)
	assert.Equal(t, 1, saver.results[1].Reshuffles)
	assert.Equal(t, "session", saver.results[1].SessionID)
}
