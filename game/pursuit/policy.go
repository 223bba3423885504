// Package pursuit implements the adversary's movement: mostly greedy chasing with an
// occasional uniformly random step.
package pursuit

import (
	"math"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-pursuit/game"
	"github.com/beka-birhanu/vinom-pursuit/game/maze"
)

const (
	// DefaultGreedyProbability is the chance of taking the distance minimising step.
	DefaultGreedyProbability = 0.7
)

// Rand is the random source the policy draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type Option func(*Policy)

var _ game.Pursuer = &Policy{}

// Policy is a stochastic pursuer.
// It is not safe for concurrent use unless the injected Rand is.
type Policy struct {
	grid       game.Grid
	rng        Rand
	greedyProb float64
}

// New returns a policy over grid. Without WithRand the policy seeds its own source from the clock.
func New(grid game.Grid, options ...Option) *Policy {
	p := &Policy{
		grid:       grid,
		greedyProb: DefaultGreedyProbability,
	}

	for _, opt := range options {
		opt(p)
	}

	if p.rng == nil {
		p.rng = NewRand(0)
	}

	return p
}

// WithRand sets the random source, which makes the policy reproducible.
func WithRand(r Rand) Option {
	return func(p *Policy) {
		p.rng = r
	}
}

// WithGreedyProbability sets the chance of a greedy step. Values are clamped to [0, 1].
func WithGreedyProbability(prob float64) Option {
	return func(p *Policy) {
		p.greedyProb = math.Max(0, math.Min(1, prob))
	}
}

// GreedyProbability returns the configured chance of a greedy step.
func (p *Policy) GreedyProbability() float64 {
	return p.greedyProb
}

// Pursue returns the adversary's next cell. A stuck adversary stays where it is.
func (p *Policy) Pursue(adversary, target game.Cell) game.Cell {
	moves := p.grid.Neighbors(adversary)
	if len(moves) == 0 {
		return adversary
	}

	if p.rng.Float64() < p.greedyProb {
		return Closest(moves, target)
	}

	return moves[p.rng.Intn(len(moves))]
}

// Closest returns the first cell in moves with the smallest Manhattan distance to target.
// moves must not be empty.
func Closest(moves []game.Cell, target game.Cell) game.Cell {
	best := moves[0]
	bestDist := math.MaxInt
	for _, m := range moves {
		if d := maze.Manhattan(m, target); d < bestDist {
			best, bestDist = m, d
		}
	}
	return best
}

// NewRand returns a seeded source for WithRand. A zero seed is replaced by the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
