package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is used for both weights when no distribution is set,
// and by stochastic WeightFns when no RNG is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn draws one non-negative edge weight.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn draws from U[min,max). Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// UniformIntWeightFn draws a whole number from [min,max]. Integral weights
// keep path sums exact, which tests comparing costs rely on.
// Panics unless 0 ≤ min ≤ max.
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// WithConstantWeights fixes both weights of every generated edge.
func WithConstantWeights(distance, time float64) BuilderOption {
	d, t := ConstantWeightFn(distance), ConstantWeightFn(time)
	return func(c *builderConfig) {
		c.distanceFn, c.timeFn = d, t
	}
}

// WithUniformDistance draws distances from U[min,max).
func WithUniformDistance(min, max float64) BuilderOption {
	return WithDistanceFn(UniformWeightFn(min, max))
}

// WithUniformTime draws times from U[min,max).
func WithUniformTime(min, max float64) BuilderOption {
	return WithTimeFn(UniformWeightFn(min, max))
}
