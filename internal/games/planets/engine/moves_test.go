package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b Coord
		want bool
	}{
		{"right", C(2, 2), C(3, 2), true},
		{"left", C(2, 2), C(1, 2), true},
		{"up", C(2, 2), C(2, 3), true},
		{"down", C(2, 2), C(2, 1), true},
		{"same cell", C(2, 2), C(2, 2), false},
		{"diagonal", C(2, 2), C(3, 3), false},
		{"two apart", C(2, 2), C(4, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AreAdjacent(tt.a, tt.b))
			assert.Equal(t, tt.want, AreAdjacent(tt.b, tt.a))
		})
	}
}

func TestWouldMatchLeavesBoardUntouched(t *testing.T) {
	b := parse(t, oneMove8x8...)
	before := b.Clone()

	assert.True(t, WouldMatch(b, C(1, 0), C(1, 1)))
	assert.True(t, before.Equal(b))

	assert.False(t, WouldMatch(b, C(4, 4), C(5, 4)))
	assert.True(t, before.Equal(b))

	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			if x+1 < b.Width() {
				WouldMatch(b, C(x, y), C(x+1, y))
			}
			if y+1 < b.Height() {
				WouldMatch(b, C(x, y), C(x, y+1))
			}
		}
	}
	assert.True(t, before.Equal(b), "probing every pair must not change the board")
}

func TestWouldMatchOutOfRangePanics(t *testing.T) {
	b := parse(t, deadlocked3x3...)
	assert.Panics(t, func() { WouldMatch(b, C(2, 2), C(3, 2)) })
}

func TestHasAnyLegalMove(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want bool
	}{
		{"deadlocked 3x3", deadlocked3x3, false},
		{"deadlocked 8x8", deadlocked8x8, false},
		{"one move 8x8", oneMove8x8, true},
		{"vertical slide", []string{"10", "02", "10"}, true},
		{"gap filled by neighbour", []string{"101", "010"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := parse(t, tt.rows...)
			assert.Equal(t, tt.want, HasAnyLegalMove(b))
			assert.Equal(t, tt.want, len(LegalMoves(b)) > 0)
		})
	}
}

func TestFindLegalMove(t *testing.T) {
	b := parse(t, oneMove8x8...)

	move, ok := FindLegalMove(b)
	assert.True(t, ok)
	assert.Equal(t, Swap{A: C(1, 0), B: C(1, 1)}, move)
	assert.Equal(t, []Swap{move}, LegalMoves(b))
	assert.Equal(t, 3, SwapGain(b, move))
	assert.Equal(t, 0, SwapGain(b, Swap{A: C(4, 4), B: C(5, 4)}))
}

// The right/top scan must agree with trying every swap in every
// direction on a copy of the board.
func TestDeadlockOracleMatchesBruteForce(t *testing.T) {
	dirs := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for seed := int64(1); seed <= 300; seed++ {
		b := generateBoard(4, 4, 3, NewSource(seed))

		brute := false
		for x := 0; x < 4 && !brute; x++ {
			for y := 0; y < 4 && !brute; y++ {
				for _, d := range dirs {
					a, n := C(x, y), C(x+d[0], y+d[1])
					if !b.InBounds(n) {
						continue
					}
					probe := b.Clone()
					probe.swap(a, n)
					if FindAllMatches(probe).Len() > 0 {
						brute = true
						break
					}
				}
			}
		}

		assert.Equal(t, brute, HasAnyLegalMove(b), "seed %d board\n%s", seed, b)
	}
}
