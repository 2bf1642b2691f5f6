package engine

// EventKind identifies what happened during a simulation step.
type EventKind int

const (
	// EventCellsChanged reports cells whose token changed outside a
	// cascade, e.g. the two cells of a committed swap.
	EventCellsChanged EventKind = iota
	// EventMatched reports matched cells that were removed.
	EventMatched
	// EventCollapsed reports tokens that fell inside their column.
	EventCollapsed
	// EventRefilled reports new tokens drawn into empty cells.
	EventRefilled
	EventScoreChanged
	EventMovesChanged
	EventWon
	EventLost
	// EventReshuffled reports a full board rewrite after a deadlock.
	EventReshuffled
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCellsChanged:
		return "cells_changed"
	case EventMatched:
		return "matched"
	case EventCollapsed:
		return "collapsed"
	case EventRefilled:
		return "refilled"
	case EventScoreChanged:
		return "score_changed"
	case EventMovesChanged:
		return "moves_changed"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	case EventReshuffled:
		return "reshuffled"
	default:
		return "unknown"
	}
}

// CellChange is a cell that now holds a given token.
type CellChange struct {
	At   Coord
	Type int
}

// Fall is a token moving down its column.
type Fall struct {
	From Coord
	To   Coord
}

// Event is one observable step of the simulation. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind EventKind

	// Chain is the 1-based cascade iteration for matched, collapsed and
	// refilled events; 0 otherwise.
	Chain int

	Changes []CellChange // cells_changed, refilled, reshuffled
	Cells   []Coord      // matched
	Falls   []Fall       // collapsed

	Score     int // score_changed: new total
	Delta     int // score_changed: amount added
	MovesLeft int // moves_changed

	Attempts  int  // reshuffled: permutations tried
	Exhausted bool // reshuffled: cap hit without finding a legal move
}

// EventSink receives events as the engine produces them.
type EventSink interface {
	Emit(Event)
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) {
	f(e)
}

// Recorder is an EventSink that keeps every event it receives.
type Recorder struct {
	Events []Event
}

// Emit appends e.
func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []EventKind {
	kinds := make([]EventKind, len(r.Events))
	for i, e := range r.Events {
		kinds[i] = e.Kind
	}
	return kinds
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// fanout forwards events to several sinks, skipping nil ones.
type fanout []EventSink

func (f fanout) Emit(e Event) {
	for _, s := range f {
		if s != nil {
			s.Emit(e)
		}
	}
}

type discard struct{}

func (discard) Emit(Event) {}
