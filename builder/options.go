package builder

import (
	"fmt"
	"math/rand"
)

// DefaultDensity is the obstacle probability used by Scatter.
const DefaultDensity = 0.2

// Option customizes a build by mutating config before constructors run.
type Option func(*config)

// config aggregates all knobs used by constructors. Passed by value.
type config struct {
	// rng drives stochastic constructors; nil means no randomness.
	rng *rand.Rand
	// density is the obstacle probability for Scatter.
	density float64
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{density: DefaultDensity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed creates a seeded RNG. Use in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithDensity sets the Scatter obstacle probability. Panics unless p ∈ [0,1].
func WithDensity(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithDensity(%v) outside [0,1]", p))
	}
	return func(c *config) {
		c.density = p
	}
}
