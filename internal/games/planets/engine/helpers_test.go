package engine

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// scripted replays a fixed cycle of draws. Each value is reduced modulo n.
type scripted struct {
	vals []int
	pos  int
}

func script(vals ...int) *scripted {
	return &scripted{vals: vals}
}

func (s *scripted) Intn(n int) int {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v % n
}

// maxDraw always draws n-1, which makes Fisher-Yates the identity.
type maxDraw struct{}

func (maxDraw) Intn(n int) int { return n - 1 }

func sortedTokens(b *Board) []int {
	tokens := b.Tokens()
	sort.Ints(tokens)
	return tokens
}

func parse(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

// deadlocked8x8 has no matches and no legal move.
var deadlocked8x8 = []string{
	"01234501",
	"45012345",
	"23450123",
	"01234501",
	"45012345",
	"23450123",
	"01234501",
	"45012345",
}

// oneMove8x8 has exactly one legal swap, (1,0)<->(1,1), which clears
// exactly three cells on the bottom row.
var oneMove8x8 = []string{
	"01234501",
	"45012345",
	"23450123",
	"01234501",
	"45012345",
	"23450123",
	"01234501",
	"45112345",
}

// deadlocked3x3 is a Latin square: no swap can line up three tokens.
var deadlocked3x3 = []string{
	"012",
	"120",
	"201",
}
