// Package sim plays levels headlessly with a greedy bot. It is used to
// check that level targets are reachable and to compare tunings.
package sim

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/planetmatch/internal/games/planets/engine"
)

// Job describes a batch of games on one level.
type Job struct {
	Params  engine.Params
	Layout  *engine.Board // optional fixed opening board
	Options engine.Options
	Games   int
	Workers int // <= 0 means GOMAXPROCS
	Seed    int64
}

// Result is the outcome of one game.
type Result struct {
	Seed       int64
	Score      int
	Won        bool
	Swaps      int
	Reshuffles int
}

// Report aggregates a batch.
type Report struct {
	Results    []Result // in seed order
	Wins       int
	TotalScore int
	Reshuffles int
}

// WinRate returns the fraction of games won.
func (r Report) WinRate() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.Wins) / float64(len(r.Results))
}

// MeanScore returns the average final score.
func (r Report) MeanScore() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.TotalScore) / float64(len(r.Results))
}

// BestMove returns the legal swap that clears the most cells on its first
// step. Ties go to the earliest swap in scan order.
func BestMove(b *engine.Board) (engine.Swap, bool) {
	var (
		best     engine.Swap
		bestGain int
	)
	for _, s := range engine.LegalMoves(b) {
		if g := engine.SwapGain(b, s); g > bestGain {
			best, bestGain = s, g
		}
	}
	return best, bestGain > 0
}

// Play runs one game to completion with the greedy bot.
func Play(ctx context.Context, job Job, seed int64) (Result, error) {
	opts := job.Options
	opts.Source = nil
	opts.Sink = nil
	eng := engine.New(opts)

	var err error
	if job.Layout != nil {
		err = eng.InitializeBoard(job.Params, job.Layout, seed)
	} else {
		err = eng.InitializeLevel(job.Params, seed)
	}
	if err != nil {
		return Result{}, fmt.Errorf("sim: seed %d: %w", seed, err)
	}

	for !eng.State().IsTerminal() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		move, ok := BestMove(eng.Board())
		if !ok {
			// An exhausted reshuffle can leave the board without moves.
			break
		}
		res := eng.RequestSwap(move.A, move.B)
		if res.Outcome != engine.OutcomeCascade {
			return Result{}, fmt.Errorf("sim: seed %d: legal move %v was %v: %w", seed, move, res.Outcome, res.Err)
		}
	}

	snap := eng.Snapshot()
	return Result{
		Seed:       seed,
		Score:      snap.Score,
		Won:        snap.Status == engine.StatusWon,
		Swaps:      snap.Swaps,
		Reshuffles: snap.Reshuffles,
	}, nil
}

// Run plays job.Games games concurrently, seeded job.Seed, job.Seed+1, ...
// The first error cancels the remaining games.
func Run(ctx context.Context, job Job) (Report, error) {
	if job.Games <= 0 {
		return Report{}, nil
	}
	workers := job.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, job.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range job.Games {
		g.Go(func() error {
			r, err := Play(ctx, job, job.Seed+int64(i))
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	rep := Report{Results: results}
	for _, r := range results {
		if r.Won {
			rep.Wins++
		}
		rep.TotalScore += r.Score
		rep.Reshuffles += r.Reshuffles
	}
	return rep, nil
}
