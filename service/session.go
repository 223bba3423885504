package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pursuit/game"
	"github.com/beka-birhanu/vinom-pursuit/game/search"
	"github.com/beka-birhanu/vinom-pursuit/service/i"
	"github.com/google/uuid"
)

// Session-related errors.
var (
	ErrTickLimit         = errors.New("tick limit reached before the run ended")
	ErrSessionNotFound   = errors.New("session not found")
	ErrMissingSimulation = errors.New("session needs a simulation")
)

// SessionConfig describes one simulation run.
type SessionConfig struct {
	Strategy     search.StrategyID // Reported with every snapshot.
	Simulation   *game.Simulation  // Tick source.
	Start        game.State        // Initial positions.
	TickInterval time.Duration     // Pause between ticks, 0 runs back to back.
	MaxTicks     int               // Ticks before giving up, 0 for no limit.
	Renderer     i.Renderer        // Optional.
	KeepTrail    bool              // Record every state in the outcome.
}

// Outcome is how a run ended.
type Outcome struct {
	SessionID uuid.UUID
	Strategy  search.StrategyID
	Status    game.Status
	Final     game.State
	Trail     []game.State // Start state followed by one entry per tick, when requested.
}

// Ticks returns the number of ticks the run took.
func (o Outcome) Ticks() int {
	return o.Final.Tick
}

// runSession drives the simulation one tick at a time until it reaches a terminal status,
// the tick limit, or ctx is done. The partial outcome is returned alongside any error.
func runSession(ctx context.Context, id uuid.UUID, c SessionConfig, logger i.Logger) (Outcome, error) {
	if c.Simulation == nil {
		return Outcome{}, ErrMissingSimulation
	}

	sim := c.Simulation
	out := Outcome{
		SessionID: id,
		Strategy:  c.Strategy,
		Final:     c.Start,
		Status:    sim.Status(c.Start),
	}
	if c.KeepTrail {
		out.Trail = append(out.Trail, c.Start)
	}
	render(c.Renderer, logger, id, c.Strategy, out.Final, out.Status)

	var ticks <-chan time.Time
	if c.TickInterval > 0 {
		ticker := time.NewTicker(c.TickInterval)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for !out.Status.Terminal() {
		if c.MaxTicks > 0 && out.Final.Tick >= c.MaxTicks {
			return out, fmt.Errorf("%w: %d", ErrTickLimit, c.MaxTicks)
		}

		if ticks != nil {
			select {
			case <-ctx.Done():
				return out, ctx.Err()
			case <-ticks:
			}
		} else if err := ctx.Err(); err != nil {
			return out, err
		}

		out.Final, out.Status = sim.Tick(out.Final)
		if c.KeepTrail {
			out.Trail = append(out.Trail, out.Final)
		}
		render(c.Renderer, logger, id, c.Strategy, out.Final, out.Status)
	}

	return out, nil
}

func render(r i.Renderer, logger i.Logger, id uuid.UUID, strategy search.StrategyID, st game.State, status game.Status) {
	if r == nil {
		return
	}
	err := r.Render(i.Snapshot{
		SessionID: id,
		Strategy:  string(strategy),
		State:     st,
		Status:    status,
	})
	if err != nil {
		logger.Warning(fmt.Sprintf("rendering tick %d of session %s: %s", st.Tick, id, err))
	}
}
