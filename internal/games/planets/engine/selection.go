package engine

// SelectAction says how a click changed the selection.
type SelectAction int

const (
	// SelectIgnored: the engine is settling, over, or not initialized.
	SelectIgnored SelectAction = iota
	SelectSet
	SelectCleared
	// SelectMoved: a non-adjacent cell replaced the previous selection.
	SelectMoved
	// SelectSwapped: an adjacent cell was clicked and a swap was requested.
	SelectSwapped
)

// SelectResult is the answer to Select.
type SelectResult struct {
	Action   SelectAction
	Selected Coord      // valid for SelectSet and SelectMoved
	Swap     SwapResult // valid for SelectSwapped
}

// Select applies click semantics to c: the first click selects, clicking
// the same cell clears, clicking a neighbour swaps, and clicking anywhere
// else moves the selection.
//
// Panics if c is outside the board.
func (e *Engine) Select(c Coord) SelectResult {
	if e.board == nil || e.processing || e.state.IsTerminal() {
		return SelectResult{Action: SelectIgnored}
	}
	e.mustInBounds(c)

	if e.selected == nil {
		e.selected = &c
		return SelectResult{Action: SelectSet, Selected: c}
	}

	first := *e.selected
	e.selected = nil

	switch {
	case first == c:
		return SelectResult{Action: SelectCleared}
	case AreAdjacent(first, c):
		return SelectResult{Action: SelectSwapped, Swap: e.RequestSwap(first, c)}
	default:
		e.selected = &c
		return SelectResult{Action: SelectMoved, Selected: c}
	}
}

// Selected returns the selected cell, if any.
func (e *Engine) Selected() (Coord, bool) {
	if e.selected == nil {
		return Coord{}, false
	}
	return *e.selected, true
}

// ClearSelection drops the current selection.
func (e *Engine) ClearSelection() {
	e.selected = nil
}
