package builder

import "math/rand"

// builderConfig is the resolved, immutable view of all BuilderOptions.
type builderConfig struct {
	idFn       IDFn       // index → city name
	rng        *rand.Rand // nil unless WithSeed/WithRand
	distanceFn WeightFn   // draws Weights.Distance
	timeFn     WeightFn   // draws Weights.Time
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		distanceFn: DefaultWeightFn,
		timeFn:     DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
