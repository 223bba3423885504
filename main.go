package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-pursuit/config"
	"github.com/beka-birhanu/vinom-pursuit/game"
	"github.com/beka-birhanu/vinom-pursuit/game/maze"
	"github.com/beka-birhanu/vinom-pursuit/game/pursuit"
	"github.com/beka-birhanu/vinom-pursuit/game/search"
	logger "github.com/beka-birhanu/vinom-pursuit/infrastruture/log"
	"github.com/beka-birhanu/vinom-pursuit/infrastruture/render"
	"github.com/beka-birhanu/vinom-pursuit/service"
	"github.com/beka-birhanu/vinom-pursuit/service/i"
)

var ErrUnknownMode = errors.New("unknown mode")

// Global variables for dependencies
var (
	layout         config.Layout
	grid           *maze.Grid
	strategyID     search.StrategyID
	playerStart    game.Cell
	enemyStart     game.Cell
	goal           game.Cell
	sessionManager *service.SessionManager
	appLogger      i.Logger
)

func cell(p config.Position) game.Cell {
	return game.Cell{Row: p.Row, Col: p.Col}
}

func initLayout() error {
	var err error
	layout, err = config.LoadLayout(config.Envs.LayoutFile)
	if err != nil {
		return fmt.Errorf("loading layout: %w", err)
	}

	grid, err = maze.New(layout.Maze)
	if err != nil {
		return fmt.Errorf("building grid: %w", err)
	}

	playerStart, enemyStart, goal = cell(layout.Player), cell(layout.Enemy), cell(layout.Goal)
	appLogger.Info(fmt.Sprintf("Grid %dx%d loaded, goal at %v", grid.Height(), grid.Width(), goal))
	return nil
}

func initStrategy() error {
	var err error
	strategyID, err = search.ParseStrategy(config.Envs.Strategy)
	if err != nil {
		return fmt.Errorf("selecting strategy: %w", err)
	}
	appLogger.Info(fmt.Sprintf("Search strategy %s selected", strategyID))
	return nil
}

func initSessionManager() error {
	sessionLogger, err := logger.New("SESSION", config.ColorCyan, os.Stdout)
	if err != nil {
		return fmt.Errorf("creating session logger: %w", err)
	}

	sessionManager = service.NewSessionManager(sessionLogger)
	appLogger.Info("Session manager initialized")
	return nil
}

func tickInterval() time.Duration {
	if config.Envs.TickRate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / config.Envs.TickRate)
}

func play(ctx context.Context) error {
	pathfinder, err := search.New(strategyID, grid)
	if err != nil {
		return err
	}

	pursuer := pursuit.New(grid,
		pursuit.WithRand(pursuit.NewRand(config.Envs.Seed)),
		pursuit.WithGreedyProbability(config.Envs.GreedyProb),
	)

	sim, err := game.NewSimulation(grid, goal, pathfinder, pursuer)
	if err != nil {
		return err
	}

	start, err := sim.NewState(playerStart, enemyStart)
	if err != nil {
		return err
	}

	id, err := sessionManager.NewSession(ctx, service.SessionConfig{
		Strategy:     strategyID,
		Simulation:   sim,
		Start:        start,
		TickInterval: tickInterval(),
		MaxTicks:     config.Envs.MaxTicks,
		Renderer:     render.NewTerminal(os.Stdout, grid, goal),
	})
	if err != nil {
		return err
	}

	out, err := sessionManager.Wait(id)
	if errors.Is(err, context.Canceled) {
		appLogger.Info(fmt.Sprintf("Stopped at tick %d", out.Ticks()))
		return nil
	}
	if err != nil && !errors.Is(err, service.ErrTickLimit) {
		return err
	}

	switch out.Status {
	case game.StatusCaught:
		appLogger.Info("Enemy caught player!")
	case game.StatusReachedGoal:
		appLogger.Info("Player reached goal!")
	default:
		appLogger.Warning(fmt.Sprintf("No winner after %d ticks", out.Ticks()))
	}
	return nil
}

func compare(ctx context.Context) error {
	results, err := service.CompareStrategies(ctx, grid, playerStart, goal)
	if err != nil {
		return err
	}

	for _, r := range results {
		appLogger.Info(r.String())
	}
	return nil
}

func batch(ctx context.Context) error {
	for _, id := range search.Strategies {
		summary, err := service.RunBatch(ctx, service.BatchConfig{
			Grid:       grid,
			Strategy:   id,
			Agent:      playerStart,
			Adversary:  enemyStart,
			Goal:       goal,
			Runs:       config.Envs.BatchRuns,
			Workers:    config.Envs.BatchWorkers,
			Seed:       config.Envs.Seed,
			GreedyProb: config.Envs.GreedyProb,
			MaxTicks:   config.Envs.MaxTicks,
		})
		if err != nil {
			return err
		}
		appLogger.Info(summary.String())
	}
	return nil
}

func dispatch(ctx context.Context, mode string) error {
	switch mode {
	case "play":
		return play(ctx)
	case "compare":
		return compare(ctx)
	case "batch":
		return batch(ctx)
	default:
		return fmt.Errorf("%w %q, want play, compare or batch", ErrUnknownMode, mode)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		return err
	}

	for _, setup := range []func() error{initLayout, initStrategy, initSessionManager} {
		if err := setup(); err != nil {
			appLogger.Error(err.Error())
			return err
		}
	}
	defer sessionManager.StopAll()

	if err := dispatch(ctx, config.Envs.Mode); err != nil {
		appLogger.Error(fmt.Sprintf("Running %s: %v", config.Envs.Mode, err))
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}
