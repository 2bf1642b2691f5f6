package engine

import "sort"

// MinRun is the shortest line of identical tokens that counts as a match.
const MinRun = 3

// MatchSet is a deduplicated set of matched cells.
type MatchSet map[Coord]struct{}

// Add inserts c into the set.
func (m MatchSet) Add(c Coord) {
	m[c] = struct{}{}
}

// Contains reports whether c is in the set.
func (m MatchSet) Contains(c Coord) bool {
	_, ok := m[c]
	return ok
}

// Len returns the number of matched cells.
func (m MatchSet) Len() int {
	return len(m)
}

// Coords returns the cells in column-major order so callers iterate
// deterministically.
func (m MatchSet) Coords() []Coord {
	out := make([]Coord, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// FindAllMatches scans every row and column for runs of MinRun or more
// identical tokens and returns the union of their cells.
func FindAllMatches(b *Board) MatchSet {
	matches := make(MatchSet)

	for y := 0; y < b.height; y++ {
		start := 0
		for x := 1; x <= b.width; x++ {
			if x < b.width && b.Get(C(x, y)).Same(b.Get(C(start, y))) {
				continue
			}
			if x-start >= MinRun && !b.Get(C(start, y)).IsEmpty() {
				for i := start; i < x; i++ {
					matches.Add(C(i, y))
				}
			}
			start = x
		}
	}

	for x := 0; x < b.width; x++ {
		start := 0
		for y := 1; y <= b.height; y++ {
			if y < b.height && b.Get(C(x, y)).Same(b.Get(C(x, start))) {
				continue
			}
			if y-start >= MinRun && !b.Get(C(x, start)).IsEmpty() {
				for i := start; i < y; i++ {
					matches.Add(C(x, i))
				}
			}
			start = y
		}
	}

	return matches
}

// FindMatchesAt returns the runs passing through c: the horizontal run
// on its row and the vertical run on its column, each kept only when it
// reaches MinRun. An empty cell never matches.
func FindMatchesAt(b *Board, c Coord) MatchSet {
	matches := make(MatchSet)
	cell := b.Get(c)
	if cell.IsEmpty() {
		return matches
	}

	left, right := c.X, c.X
	for left-1 >= 0 && b.Get(C(left-1, c.Y)).Same(cell) {
		left--
	}
	for right+1 < b.width && b.Get(C(right+1, c.Y)).Same(cell) {
		right++
	}
	if right-left+1 >= MinRun {
		for x := left; x <= right; x++ {
			matches.Add(C(x, c.Y))
		}
	}

	down, up := c.Y, c.Y
	for down-1 >= 0 && b.Get(C(c.X, down-1)).Same(cell) {
		down--
	}
	for up+1 < b.height && b.Get(C(c.X, up+1)).Same(cell) {
		up++
	}
	if up-down+1 >= MinRun {
		for y := down; y <= up; y++ {
			matches.Add(C(c.X, y))
		}
	}

	return matches
}
