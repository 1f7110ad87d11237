package builder

import "math/rand"

// BuilderOption configures a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the function naming the i-th city.
// Panics if fn is nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand uses r for every stochastic decision.
// Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed uses a fresh rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDistanceFn sets the distance distribution.
// Panics if fn is nil.
func WithDistanceFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDistanceFn(nil)")
	}
	return func(c *builderConfig) {
		c.distanceFn = fn
	}
}

// WithTimeFn sets the time distribution.
// Panics if fn is nil.
func WithTimeFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithTimeFn(nil)")
	}
	return func(c *builderConfig) {
		c.timeFn = fn
	}
}
