package engine

import "fmt"

// Coord is a cell position on the board.
// X grows to the right, Y grows upward: row 0 is the bottom row and
// tokens fall toward it.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// AreAdjacent reports whether a and b share an edge.
// Diagonal neighbours and identical coordinates are not adjacent.
func AreAdjacent(a, b Coord) bool {
	return a.Manhattan(b) == 1
}

// Swap is an unordered pair of adjacent cells.
type Swap struct {
	A Coord
	B Coord
}

func (s Swap) String() string {
	return s.A.String() + "<->" + s.B.String()
}
