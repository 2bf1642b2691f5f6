package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/planetmatch/internal/games/planets/engine"
)

const testdataDir = "testdata/levels"

func TestBuiltinLevelsAreValid(t *testing.T) {
	lvls := Builtin()
	require.NotEmpty(t, lvls)

	first := lvls[0]
	assert.Equal(t, 8, first.Width)
	assert.Equal(t, 8, first.Height)
	assert.Equal(t, 5, first.Moves)
	assert.Equal(t, 160, first.TargetScore)

	seen := map[string]bool{}
	for _, l := range lvls {
		assert.NoError(t, l.Validate(), l.ID)
		assert.False(t, seen[l.ID], "duplicate id %s", l.ID)
		seen[l.ID] = true
	}
}

func TestLevelParams(t *testing.T) {
	l := Level{ID: "x", Width: 5, Height: 6, Moves: 4, TargetScore: 90}
	assert.Equal(t, engine.Params{Width: 5, Height: 6, Moves: 4, TargetScore: 90, TypeCount: 6}, l.Params(6))

	l.TypeCount = 4
	assert.Equal(t, 4, l.Params(6).TypeCount)
}

func TestLevelValidate(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		ok    bool
	}{
		{"valid", Level{ID: "a", Width: 3, Height: 3, Moves: 1, TargetScore: 10}, true},
		{"missing id", Level{Width: 3, Height: 3, Moves: 1}, false},
		{"no moves", Level{ID: "a", Width: 3, Height: 3}, false},
		{"zero width", Level{ID: "a", Height: 3, Moves: 2}, false},
		{"layout size mismatch", Level{ID: "a", Width: 4, Height: 3, Moves: 2, Layout: []string{"012", "120", "201"}}, false},
		{"layout hole", Level{ID: "a", Width: 3, Height: 3, Moves: 2, Layout: []string{"012", "1.0", "201"}}, false},
		{"layout type above count", Level{ID: "a", Width: 3, Height: 3, Moves: 2, TypeCount: 3, Layout: []string{"012", "150", "201"}}, false},
		{"layout ok", Level{ID: "a", Width: 3, Height: 3, Moves: 2, TypeCount: 3, Layout: []string{"012", "120", "201"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.level.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidLevel), "got %v", err)
		})
	}
}

func TestLoaderLoadAll(t *testing.T) {
	lvls, skipped, err := NewLoader(testdataDir).LoadAllReport()
	require.NoError(t, err)

	ids := make([]string, len(lvls))
	for i, l := range lvls {
		ids[i] = l.ID
	}
	assert.Equal(t, []string{"01-first-orbit", "custom-asteroid", "custom-locked"}, ids)
	assert.Len(t, skipped, 1, "broken.yaml is skipped")
}

func TestLoaderLoadFile(t *testing.T) {
	l, err := NewLoader(testdataDir).LoadByID("custom-asteroid")
	require.NoError(t, err)

	assert.Equal(t, "Asteroid Field", l.Name)
	assert.Equal(t, 6, l.Width)
	assert.Equal(t, 6, l.Height)
	assert.Equal(t, 7, l.Moves)
	assert.Equal(t, 250, l.TargetScore)
	assert.Equal(t, "ops", l.Metadata["author"])
	assert.Equal(t, filepath.Join(testdataDir, "asteroid.yaml"), l.FilePath)
}

func TestLoaderLayoutSizesBoard(t *testing.T) {
	l, err := NewLoader(testdataDir).LoadByID("custom-locked")
	require.NoError(t, err)

	assert.Equal(t, 3, l.Width)
	assert.Equal(t, 3, l.Height)
	b, err := l.Board()
	require.NoError(t, err)
	assert.False(t, engine.HasAnyLegalMove(b))

	e := engine.New(engine.DefaultOptions())
	require.NoError(t, e.InitializeBoard(l.Params(6), b, 1))
	assert.True(t, engine.HasAnyLegalMove(e.Board()))
}

func TestLoaderLoadByIDMissing(t *testing.T) {
	_, err := NewLoader(testdataDir).LoadByID("nope")
	assert.Error(t, err)
}

func TestCampaignMergesCustomLevels(t *testing.T) {
	lvls, skipped, err := Campaign(testdataDir)
	require.NoError(t, err)
	assert.Len(t, skipped, 1)

	builtin := Builtin()
	require.Len(t, lvls, len(builtin)+2)

	assert.Equal(t, "First Orbit (hard)", lvls[0].Name)
	assert.Equal(t, 4, lvls[0].Moves)
	assert.Equal(t, "custom-asteroid", lvls[len(builtin)].ID)
	assert.Equal(t, "custom-locked", lvls[len(builtin)+1].ID)
}

func TestCampaignWithoutDirectory(t *testing.T) {
	lvls, _, err := Campaign(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Equal(t, Builtin(), lvls)

	lvls, _, err = Campaign("")
	require.NoError(t, err)
	assert.Len(t, lvls, len(Builtin()))
}

func TestLoaderRejectsUnparseableYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: [unterminated"), 0o644))

	_, err := NewLoader(dir).LoadFile(path)
	assert.Error(t, err)
}
