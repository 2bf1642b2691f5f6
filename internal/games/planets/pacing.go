package planets

import (
	"fmt"

	"github.com/vovakirdan/planetmatch/internal/config"
	"github.com/vovakirdan/planetmatch/internal/games/planets/engine"
)

// step is one engine event held on screen for a number of ticks.
type step struct {
	event engine.Event
	ticks int
}

// pacer replays engine events onto the display board at a readable pace.
// The engine settles a swap instantly; the pacer is what keeps input
// locked until the player has seen every chain.
type pacer struct {
	queue   []step
	current *step
	elapsed int

	// flash marks matched cells that are about to disappear.
	flash map[engine.Coord]bool
	// fresh marks cells that just received a token.
	fresh map[engine.Coord]bool
}

func (p *pacer) reset() {
	p.queue = nil
	p.current = nil
	p.elapsed = 0
	p.flash = nil
	p.fresh = nil
}

func (p *pacer) busy() bool {
	return p.current != nil || len(p.queue) > 0
}

// enqueue schedules events using the per-kind durations in pacing.
func (p *pacer) enqueue(events []engine.Event, pacing config.PacingConfig) {
	for _, ev := range events {
		p.queue = append(p.queue, step{event: ev, ticks: durationOf(ev.Kind, pacing)})
	}
}

func durationOf(kind engine.EventKind, pacing config.PacingConfig) int {
	switch kind {
	case engine.EventCellsChanged:
		return pacing.Swap
	case engine.EventMatched:
		return pacing.Remove
	case engine.EventCollapsed:
		return pacing.Fall
	case engine.EventRefilled:
		return pacing.Refill
	case engine.EventReshuffled:
		return pacing.Shuffle
	default:
		return 0
	}
}

// advance moves the replay forward by one tick. Zero-length steps are
// applied in the same tick as the step before them.
func (p *pacer) advance(g *Game) {
	for {
		if p.current == nil {
			if len(p.queue) == 0 {
				return
			}
			next := p.queue[0]
			p.queue = p.queue[1:]
			p.current = &next
			p.elapsed = 0
			p.begin(g, next.event)
		}

		if p.elapsed < p.current.ticks {
			p.elapsed++
			if p.elapsed < p.current.ticks {
				return
			}
		}

		p.end(g, p.current.event)
		p.current = nil
		if len(p.queue) == 0 || p.queue[0].ticks > 0 {
			return
		}
	}
}

func (p *pacer) begin(g *Game, ev engine.Event) {
	p.fresh = nil
	switch ev.Kind {
	case engine.EventCellsChanged, engine.EventRefilled, engine.EventReshuffled:
		p.fresh = make(map[engine.Coord]bool, len(ev.Changes))
		for _, c := range ev.Changes {
			g.display.SetToken(c.At, c.Type)
			p.fresh[c.At] = true
		}
		if ev.Kind == engine.EventReshuffled {
			g.setMessage("No moves left, reshuffling", g.settings.Config.Pacing.LevelPause)
		}
	case engine.EventMatched:
		p.flash = make(map[engine.Coord]bool, len(ev.Cells))
		for _, c := range ev.Cells {
			p.flash[c] = true
		}
	case engine.EventCollapsed:
		for _, f := range ev.Falls {
			g.display.Set(f.To, g.display.Get(f.From))
			g.display.Set(f.From, engine.Empty())
		}
	case engine.EventScoreChanged:
		g.shown.score = ev.Score
	case engine.EventMovesChanged:
		g.shown.movesLeft = ev.MovesLeft
	case engine.EventWon:
		g.setMessage(fmt.Sprintf("Target %d reached!", g.eng.State().TargetScore()), 0)
	case engine.EventLost:
		g.setMessage("Out of moves", 0)
	}
}

func (p *pacer) end(g *Game, ev engine.Event) {
	switch ev.Kind {
	case engine.EventMatched:
		for _, c := range ev.Cells {
			g.display.Set(c, engine.Empty())
		}
		p.flash = nil
	case engine.EventCellsChanged, engine.EventRefilled, engine.EventReshuffled:
		p.fresh = nil
	}
}

func chainText(chains int) string {
	return fmt.Sprintf("Chain x%d!", chains)
}
