package builder

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the chain idFn(0) – idFn(1) – … – idFn(n-1).
//
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewCities)
		}

		ids := addCities(g, cfg, n)
		for i := 1; i < n; i++ {
			link(g, cfg, ids[i-1], ids[i])
		}

		return nil
	}
}
