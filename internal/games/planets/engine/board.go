package engine

import (
	"fmt"
	"strings"
)

// Board is the planet grid.
// Cells are stored in a flat slice indexed by y*width + x.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates a board with every cell empty.
// Panics if either dimension is not positive.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("engine: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// ParseBoard builds a board from text rows, top row first.
// Digits are token types and '.' is an empty cell. All rows must have
// the same length.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("engine: empty board")
	}
	b := NewBoard(len(rows[0]), len(rows))
	for i, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("engine: row %d has %d cells, want %d", i, len(row), b.width)
		}
		y := b.height - 1 - i
		for x, r := range row {
			switch {
			case r == '.':
				b.Set(C(x, y), Empty())
			case r >= '0' && r <= '9':
				b.Set(C(x, y), Token(int(r-'0')))
			default:
				return nil, fmt.Errorf("engine: invalid cell %q at row %d", r, i)
			}
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard that panics on error.
func MustParseBoard(rows ...string) *Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

func (b *Board) index(c Coord) int {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("engine: coordinate %v outside %dx%d board", c, b.width, b.height))
	}
	return c.Y*b.width + c.X
}

// Get returns the cell at c. Panics if c is out of range.
func (b *Board) Get(c Coord) Cell {
	return b.cells[b.index(c)]
}

// Set stores cell at c. Panics if c is out of range.
func (b *Board) Set(c Coord, cell Cell) {
	b.cells[b.index(c)] = cell
}

// SetToken stores a token of type t at c.
func (b *Board) SetToken(c Coord, t int) {
	b.Set(c, Token(t))
}

// swap exchanges the contents of two cells.
func (b *Board) swap(a, c Coord) {
	ia, ic := b.index(a), b.index(c)
	b.cells[ia], b.cells[ic] = b.cells[ic], b.cells[ia]
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{width: b.width, height: b.height, cells: cells}
}

// Equal reports whether two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i, cell := range b.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for _, cell := range b.cells {
		if cell.IsEmpty() {
			n++
		}
	}
	return n
}

// Tokens returns every token type in column-major order
// (all y for x=0, then x=1, ...). Empty cells are reported as -1.
func (b *Board) Tokens() []int {
	out := make([]int, 0, len(b.cells))
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			t, ok := b.Get(C(x, y)).Type()
			if !ok {
				t = -1
			}
			out = append(out, t)
		}
	}
	return out
}

// String renders the board with the top row first.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := b.height - 1; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			sb.WriteString(b.Get(C(x, y)).String())
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
