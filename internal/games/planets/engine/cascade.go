package engine

import "github.com/charmbracelet/log"

// DefaultPointsPerToken is the score awarded for each matched cell.
const DefaultPointsPerToken = 10

// CascadeResult summarises one cascade run.
type CascadeResult struct {
	Chains  int // remove/collapse/refill iterations
	Cleared int // total cells removed across all chains
	Points  int // total points awarded
}

// Resolver runs the remove, collapse, refill and re-scan loop until the
// board holds no matches.
type Resolver struct {
	board          *Board
	rng            Source
	typeCount      int
	pointsPerToken int
	scorer         Scorer
	sink           EventSink
	logger         *log.Logger
}

// NewResolver creates a resolver over board. A nil scorer awards nothing
// and a nil sink discards events.
func NewResolver(board *Board, rng Source, typeCount, pointsPerToken int, scorer Scorer, sink EventSink) *Resolver {
	if sink == nil {
		sink = discard{}
	}
	return &Resolver{
		board:          board,
		rng:            rng,
		typeCount:      typeCount,
		pointsPerToken: pointsPerToken,
		scorer:         scorer,
		sink:           sink,
	}
}

// WithLogger sets the logger used for chain diagnostics.
func (r *Resolver) WithLogger(l *log.Logger) *Resolver {
	r.logger = l
	return r
}

// Resolve clears matches starting from initial until the board settles.
// On return the board holds no matches and no empty cells.
func (r *Resolver) Resolve(initial MatchSet) CascadeResult {
	var res CascadeResult
	matches := initial

	for matches.Len() > 0 {
		res.Chains++
		points := matches.Len() * r.pointsPerToken
		res.Cleared += matches.Len()
		res.Points += points

		r.remove(matches, res.Chains)
		if r.scorer != nil {
			r.scorer.AddScore(points)
		}
		r.collapse(res.Chains)
		r.refill(res.Chains)

		matches = FindAllMatches(r.board)
	}

	if r.logger != nil && res.Chains > 0 {
		r.logger.Debug("cascade settled", "chains", res.Chains, "cleared", res.Cleared, "points", res.Points)
	}
	return res
}

func (r *Resolver) remove(matches MatchSet, chain int) {
	cells := matches.Coords()
	for _, c := range cells {
		r.board.Set(c, Empty())
	}
	r.sink.Emit(Event{Kind: EventMatched, Chain: chain, Cells: cells})
}

// collapse compacts every column toward y=0, keeping token order and
// leaving the empty cells at the top.
func (r *Resolver) collapse(chain int) {
	var falls []Fall
	for x := 0; x < r.board.width; x++ {
		gap := 0
		for y := 0; y < r.board.height; y++ {
			from := C(x, y)
			cell := r.board.Get(from)
			if cell.IsEmpty() {
				gap++
				continue
			}
			if gap == 0 {
				continue
			}
			to := C(x, y-gap)
			r.board.Set(to, cell)
			r.board.Set(from, Empty())
			falls = append(falls, Fall{From: from, To: to})
		}
	}
	r.sink.Emit(Event{Kind: EventCollapsed, Chain: chain, Falls: falls})
}

// refill draws a fresh token for every empty cell. No match avoidance is
// applied here; new matches feed the next chain.
func (r *Resolver) refill(chain int) {
	var changes []CellChange
	for x := 0; x < r.board.width; x++ {
		for y := 0; y < r.board.height; y++ {
			c := C(x, y)
			if !r.board.Get(c).IsEmpty() {
				continue
			}
			t := r.rng.Intn(r.typeCount)
			r.board.SetToken(c, t)
			changes = append(changes, CellChange{At: c, Type: t})
		}
	}
	r.sink.Emit(Event{Kind: EventRefilled, Chain: chain, Changes: changes})
}
