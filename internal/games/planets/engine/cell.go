package engine

// Cell holds either a planet token or nothing.
// The zero value is an empty cell.
type Cell struct {
	token  int
	filled bool
}

// Token returns a cell holding the given planet type.
func Token(t int) Cell {
	return Cell{token: t, filled: true}
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// IsEmpty reports whether the cell holds no token.
func (c Cell) IsEmpty() bool {
	return !c.filled
}

// Type returns the planet type and whether the cell is filled.
func (c Cell) Type() (int, bool) {
	return c.token, c.filled
}

// Same reports whether both cells hold the same token.
// Two empty cells are never the same.
func (c Cell) Same(other Cell) bool {
	return c.filled && other.filled && c.token == other.token
}

// String renders the cell for debugging: the type digit or '.'.
func (c Cell) String() string {
	if !c.filled {
		return "."
	}
	return string(tokenRune(c.token))
}

func tokenRune(t int) rune {
	if t >= 0 && t < 10 {
		return rune('0' + t)
	}
	if t >= 10 && t < 36 {
		return rune('a' + t - 10)
	}
	return '?'
}

// PlanetNames are the display names of the first eight token types.
var PlanetNames = []string{"Lava", "Ice", "Gas", "Crystal", "Desert", "Ocean", "Jungle", "Void"}

// PlanetName returns the display name for a token type.
func PlanetName(t int) string {
	if t >= 0 && t < len(PlanetNames) {
		return PlanetNames[t]
	}
	return "Planet"
}
