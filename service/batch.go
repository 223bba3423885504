package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-pursuit/game"
	"github.com/beka-birhanu/vinom-pursuit/game/pursuit"
	"github.com/beka-birhanu/vinom-pursuit/game/search"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBatchWorkers = 8
	defaultBatchMaxTick = 1000
)

var ErrNoRuns = errors.New("batch needs at least one run")

// BatchConfig describes a set of independent runs on the same grid.
type BatchConfig struct {
	Grid       game.Grid
	Strategy   search.StrategyID
	Agent      game.Cell // Agent start
	Adversary  game.Cell // Adversary start
	Goal       game.Cell
	Runs       int
	Workers    int     // Concurrent runs, defaults to 8
	Seed       int64   // Run n seeds its pursuer with Seed+n+1, so a summary does not depend on scheduling. 0 picks a base from the clock
	GreedyProb float64 // Pursuer greedy probability
	MaxTicks   int     // Per run, defaults to 1000
}

// BatchSummary aggregates the outcomes of a batch.
type BatchSummary struct {
	Strategy    search.StrategyID
	Runs        int
	Caught      int
	ReachedGoal int
	Unfinished  int // Hit the tick limit
	TotalTicks  int
}

// CatchRate returns the share of runs the adversary won.
func (s BatchSummary) CatchRate() float64 {
	return ratio(s.Caught, s.Runs)
}

// GoalRate returns the share of runs the agent won.
func (s BatchSummary) GoalRate() float64 {
	return ratio(s.ReachedGoal, s.Runs)
}

// AvgTicks returns the mean run length.
func (s BatchSummary) AvgTicks() float64 {
	return ratio(s.TotalTicks, s.Runs)
}

// String summarises the batch on one line.
func (s BatchSummary) String() string {
	return fmt.Sprintf("%s: %s runs, goal %.1f%%, caught %.1f%%, unfinished %d, avg %s ticks",
		s.Strategy, humanize.Comma(int64(s.Runs)), 100*s.GoalRate(), 100*s.CatchRate(),
		s.Unfinished, humanize.FormatFloat("#,###.##", s.AvgTicks()))
}

// baseSeed returns seed, or a clock based seed when seed is 0.
func baseSeed(seed int64, now func() time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now().UnixNano()
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// RunBatch runs c.Runs seeded simulations over a bounded pool of workers.
func RunBatch(ctx context.Context, c BatchConfig) (BatchSummary, error) {
	if c.Runs <= 0 {
		return BatchSummary{}, ErrNoRuns
	}
	if c.Workers <= 0 {
		c.Workers = defaultBatchWorkers
	}
	if c.MaxTicks <= 0 {
		c.MaxTicks = defaultBatchMaxTick
	}

	pathfinder, err := search.New(c.Strategy, c.Grid)
	if err != nil {
		return BatchSummary{}, err
	}

	seed := baseSeed(c.Seed, time.Now)
	summary := BatchSummary{Strategy: c.Strategy, Runs: c.Runs}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Workers)

	for n := 0; n < c.Runs; n++ {
		g.Go(func() error {
			policy := pursuit.New(c.Grid,
				pursuit.WithRand(pursuit.NewRand(seed+int64(n)+1)),
				pursuit.WithGreedyProbability(c.GreedyProb),
			)
			sim, err := game.NewSimulation(c.Grid, c.Goal, pathfinder, policy)
			if err != nil {
				return err
			}
			start, err := sim.NewState(c.Agent, c.Adversary)
			if err != nil {
				return err
			}

			out, err := runSession(ctx, uuid.Nil, SessionConfig{
				Strategy:   c.Strategy,
				Simulation: sim,
				Start:      start,
				MaxTicks:   c.MaxTicks,
			}, nil)
			if err != nil && !errors.Is(err, ErrTickLimit) {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			summary.TotalTicks += out.Ticks()
			switch out.Status {
			case game.StatusCaught:
				summary.Caught++
			case game.StatusReachedGoal:
				summary.ReachedGoal++
			default:
				summary.Unfinished++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return BatchSummary{}, err
	}
	return summary, nil
}
