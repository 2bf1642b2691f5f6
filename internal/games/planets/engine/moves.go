package engine

// WouldMatch reports whether swapping a and b would create a match at
// either cell. The board is swapped in place and always restored before
// returning. Panics if either coordinate is out of range.
func WouldMatch(b *Board, a, c Coord) bool {
	b.swap(a, c)
	found := FindMatchesAt(b, a).Len() > 0 || FindMatchesAt(b, c).Len() > 0
	b.swap(a, c)
	return found
}

// HasAnyLegalMove reports whether at least one adjacent swap produces a
// match. Each cell probes its right and top neighbour, which covers every
// adjacent pair exactly once.
func HasAnyLegalMove(b *Board) bool {
	_, ok := FindLegalMove(b)
	return ok
}

// FindLegalMove returns the first legal swap in scan order
// (columns left to right, rows bottom to top, right neighbour first).
func FindLegalMove(b *Board) (Swap, bool) {
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			here := C(x, y)
			if x+1 < b.width {
				if right := C(x+1, y); WouldMatch(b, here, right) {
					return Swap{A: here, B: right}, true
				}
			}
			if y+1 < b.height {
				if top := C(x, y+1); WouldMatch(b, here, top) {
					return Swap{A: here, B: top}, true
				}
			}
		}
	}
	return Swap{}, false
}

// LegalMoves returns every legal swap in scan order.
func LegalMoves(b *Board) []Swap {
	var moves []Swap
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			here := C(x, y)
			if x+1 < b.width && WouldMatch(b, here, C(x+1, y)) {
				moves = append(moves, Swap{A: here, B: C(x+1, y)})
			}
			if y+1 < b.height && WouldMatch(b, here, C(x, y+1)) {
				moves = append(moves, Swap{A: here, B: C(x, y+1)})
			}
		}
	}
	return moves
}

// SwapGain returns how many cells a swap would clear on its first
// cascade step, or 0 if it is not legal. The board is left untouched.
func SwapGain(b *Board, s Swap) int {
	b.swap(s.A, s.B)
	gain := FindAllMatches(b).Len()
	b.swap(s.A, s.B)
	return gain
}
