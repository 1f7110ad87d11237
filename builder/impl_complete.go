package builder

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that links every pair of n cities.
//
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewCities)
		}

		ids := addCities(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(g, cfg, ids[i], ids[j])
			}
		}

		return nil
	}
}
