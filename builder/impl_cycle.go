package builder

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a ring of n cities, closing
// idFn(n-1) back to idFn(0).
//
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewCities)
		}

		ids := addCities(g, cfg, n)
		for i := 0; i < n; i++ {
			link(g, cfg, ids[i], ids[(i+1)%n])
		}

		return nil
	}
}
