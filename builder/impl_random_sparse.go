package builder

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomSparse returns a Constructor for an Erdős–Rényi G(n,p) graph:
// each pair i<j is linked independently with probability p.
//
// p of exactly 0 or 1 needs no RNG; any other p requires WithSeed or
// WithRand. Pairs are visited i ascending, then j ascending, so a fixed seed
// reproduces the graph exactly.
//
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseNodes, ErrTooFewCities)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addCities(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMax:
				case p == probMin:
					continue
				case cfg.rng.Float64() >= p:
					continue
				}
				link(g, cfg, ids[i], ids[j])
			}
		}

		return nil
	}
}
