package service

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pursuit/game"
	"github.com/beka-birhanu/vinom-pursuit/game/search"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// Comparison is one strategy's answer for a start/goal pair.
type Comparison struct {
	Strategy search.StrategyID
	Path     game.Path
	Expanded int
	Elapsed  time.Duration
}

// String summarises the comparison on one line.
func (c Comparison) String() string {
	if !c.Path.Found() {
		return fmt.Sprintf("%-6s no path, %s cells expanded in %s", c.Strategy, humanize.Comma(int64(c.Expanded)), c.Elapsed)
	}
	return fmt.Sprintf("%-6s %d steps, %s cells expanded in %s", c.Strategy, c.Path.Edges(), humanize.Comma(int64(c.Expanded)), c.Elapsed)
}

// CompareStrategies runs every registered strategy on the same pair concurrently.
// Each goroutine builds its own strategy so no search state is shared; only the read-only grid is.
// Results come back in search.Strategies order.
func CompareStrategies(ctx context.Context, grid game.Grid, start, goal game.Cell) ([]Comparison, error) {
	results := make([]Comparison, len(search.Strategies))
	g, ctx := errgroup.WithContext(ctx)

	for idx, id := range search.Strategies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s, err := search.New(id, grid)
			if err != nil {
				return err
			}

			began := time.Now()
			res := s.Search(start, goal)
			results[idx] = Comparison{
				Strategy: id,
				Path:     res.Path,
				Expanded: res.Expanded,
				Elapsed:  time.Since(began),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
